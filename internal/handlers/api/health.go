package api

import (
	"github.com/gofiber/fiber/v3"

	"shortcuts/internal/models"
	"shortcuts/internal/store"
)

// StatusSource reports suggestion provider health.
type StatusSource interface {
	Statuses() []models.ProviderStatus
}

// HealthHandler reports record and provider state via JSON API.
type HealthHandler struct {
	store    *store.Store
	statuses StatusSource
}

// NewHealthHandler creates a new API health handler. statuses may be nil when
// the provider checker is disabled.
func NewHealthHandler(st *store.Store, statuses StatusSource) *HealthHandler {
	return &HealthHandler{store: st, statuses: statuses}
}

// Health returns the loaded record count, the load error if any, and the
// last probe result of every provider.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	snap := h.store.Snapshot()

	providers := []models.ProviderStatus{}
	if h.statuses != nil {
		providers = append(providers, h.statuses.Statuses()...)
	}

	status := models.HealthHealthy
	if snap.LoadError() != "" {
		status = models.HealthUnhealthy
	}

	return jsonSuccess(c, fiber.Map{
		"status":     status,
		"records":    snap.Len(),
		"location":   h.store.Location(),
		"load_error": snap.LoadError(),
		"providers":  providers,
	})
}
