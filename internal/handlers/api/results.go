package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"shortcuts/internal/launcher"
	"shortcuts/internal/models"
	"shortcuts/internal/resolver"
)

// ResultHandler executes rows previously returned to a session.
type ResultHandler struct {
	sessions *resolver.Sessions
	launcher *launcher.Launcher
}

// NewResultHandler creates a new API result handler.
func NewResultHandler(sessions *resolver.Sessions, l *launcher.Launcher) *ResultHandler {
	return &ResultHandler{sessions: sessions, launcher: l}
}

// Activate performs the primary action of a row.
func (h *ResultHandler) Activate(c fiber.Ctx) error {
	row, msg := h.lookup(c)
	if msg != "" {
		return jsonError(c, fiber.StatusNotFound, msg)
	}

	ok, newQuery := h.launcher.ActivateResult(c.Context(), &row)
	return jsonSuccess(c, models.ActivateResponse{Success: ok, NewQuery: newQuery})
}

// ContextMenu lists the secondary actions of a row.
func (h *ResultHandler) ContextMenu(c fiber.Ctx) error {
	row, msg := h.lookup(c)
	if msg != "" {
		return jsonError(c, fiber.StatusNotFound, msg)
	}

	actions := launcher.ContextActions(&row)
	if actions == nil {
		actions = []models.ContextAction{}
	}
	return jsonSuccess(c, actions)
}

// ContextAction performs the n-th secondary action of a row.
func (h *ResultHandler) ContextAction(c fiber.Ctx) error {
	row, msg := h.lookup(c)
	if msg != "" {
		return jsonError(c, fiber.StatusNotFound, msg)
	}

	n, err := strconv.Atoi(c.Params("n"))
	actions := launcher.ContextActions(&row)
	if err != nil || n < 0 || n >= len(actions) {
		return jsonError(c, fiber.StatusNotFound, "context action not found")
	}

	ok, _ := h.launcher.Activate(c.Context(), actions[n].Action)
	return jsonSuccess(c, models.ActivateResponse{Success: ok})
}

// lookup finds the row named by the :id param in the caller's session, or
// returns why it could not.
func (h *ResultHandler) lookup(c fiber.Ctx) (models.Result, string) {
	sess, ok := h.sessions.Lookup(c.Get(HeaderSessionID))
	if !ok {
		return models.Result{}, "unknown session"
	}

	row, ok := sess.Result(c.Params("id"))
	if !ok {
		return models.Result{}, "result not found"
	}
	return row, ""
}
