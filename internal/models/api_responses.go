package models

import "time"

// QueryResponse contains the rows produced for one query.
type QueryResponse struct {
	SessionID string   `json:"session_id"`
	Query     string   `json:"query"`
	Delayed   bool     `json:"delayed"`
	Results   []Result `json:"results"`
}

// ActivateResponse reports the outcome of choosing a row.
type ActivateResponse struct {
	Success  bool   `json:"success"`
	NewQuery string `json:"new_query,omitempty"`
}

// ReloadResponse reports the record store state after a reload.
type ReloadResponse struct {
	Records   int    `json:"records"`
	LoadError string `json:"load_error,omitempty"`
}

// ProviderStatus contains the last probe result for a suggestion provider.
type ProviderStatus struct {
	Provider  string     `json:"provider"`
	Status    string     `json:"status"`
	CheckedAt *time.Time `json:"checked_at"`
	Error     string     `json:"error,omitempty"`
}

// Provider probe status constants
const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
	HealthUnknown   = "unknown"
)
