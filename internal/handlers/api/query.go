package api

import (
	"github.com/gofiber/fiber/v3"

	"shortcuts/internal/models"
	"shortcuts/internal/resolver"
)

// HeaderSessionID carries the query session id in both directions.
const HeaderSessionID = "X-Session-ID"

const maxQueryLength = 1024

// QueryHandler resolves launcher input via JSON API.
type QueryHandler struct {
	sessions *resolver.Sessions
}

// NewQueryHandler creates a new API query handler.
func NewQueryHandler(sessions *resolver.Sessions) *QueryHandler {
	return &QueryHandler{sessions: sessions}
}

// Query answers a keystroke from in-memory state only.
func (h *QueryHandler) Query(c fiber.Ctx) error {
	q := c.Query("q")
	if len(q) > maxQueryLength {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, "query too long")
	}

	sess, id := h.sessions.Get(c.Get(HeaderSessionID))
	c.Set(HeaderSessionID, id)

	return jsonSuccess(c, models.QueryResponse{
		SessionID: id,
		Query:     q,
		Results:   orEmpty(sess.Query(q)),
	})
}

// Delayed runs the suggestion path, blocking on at most one provider fetch.
// A superseded request answers with no rows.
func (h *QueryHandler) Delayed(c fiber.Ctx) error {
	q := c.Query("q")
	if len(q) > maxQueryLength {
		return jsonError(c, fiber.StatusRequestEntityTooLarge, "query too long")
	}

	sess, id := h.sessions.Get(c.Get(HeaderSessionID))
	c.Set(HeaderSessionID, id)

	return jsonSuccess(c, models.QueryResponse{
		SessionID: id,
		Query:     q,
		Delayed:   true,
		Results:   orEmpty(sess.QueryDelayed(c.Context(), q)),
	})
}

func orEmpty(results []models.Result) []models.Result {
	if results == nil {
		return []models.Result{}
	}
	return results
}
