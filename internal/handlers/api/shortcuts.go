package api

import (
	"github.com/gofiber/fiber/v3"

	"shortcuts/internal/models"
	"shortcuts/internal/store"
)

// ShortcutHandler exposes the loaded record set via JSON API.
type ShortcutHandler struct {
	store *store.Store
}

// NewShortcutHandler creates a new API shortcut handler.
func NewShortcutHandler(st *store.Store) *ShortcutHandler {
	return &ShortcutHandler{store: st}
}

// List returns every loaded shortcut in load order.
func (h *ShortcutHandler) List(c fiber.Ctx) error {
	records := h.store.Snapshot().Records()
	if records == nil {
		records = []models.Record{}
	}
	return jsonSuccess(c, records)
}

// Reload re-reads the record source. A failed load is reported in the body
// and the previous records stay in place.
func (h *ShortcutHandler) Reload(c fiber.Ctx) error {
	err := h.store.Reload(c.Context())
	snap := h.store.Snapshot()

	resp := models.ReloadResponse{Records: snap.Len(), LoadError: snap.LoadError()}
	if err != nil {
		return jsonErrorData(c, fiber.StatusUnprocessableEntity, err.Error(), resp)
	}
	return jsonSuccess(c, resp)
}
