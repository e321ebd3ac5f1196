package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"shortcuts/internal/store"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store *store.Store
	db    Pinger
}

// NewProbeHandler creates a new probe handler. database may be nil when
// records come from a file.
func NewProbeHandler(st *store.Store, database Pinger) *ProbeHandler {
	return &ProbeHandler{store: st, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if shortcuts are loaded and the database, if any, is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	if loadErr := h.store.Snapshot().LoadError(); loadErr != "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "shortcuts not loaded: " + loadErr,
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
