package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"shortcuts/internal/models"
)

// UpsertProviderStatus records the outcome of one provider probe.
func (d *DB) UpsertProviderStatus(ctx context.Context, provider, status string, checkedAt time.Time, errorMsg *string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO provider_statuses (provider, status, checked_at, error)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider) DO UPDATE
		SET status = EXCLUDED.status, checked_at = EXCLUDED.checked_at, error = EXCLUDED.error
	`, provider, status, checkedAt, errorMsg)
	return err
}

// GetProviderStatus returns the last probe outcome for provider.
func (d *DB) GetProviderStatus(ctx context.Context, provider string) (*models.ProviderStatus, error) {
	var s models.ProviderStatus
	var checkedAt time.Time
	var errorMsg *string
	err := d.Pool.QueryRow(ctx, `
		SELECT provider, status, checked_at, error FROM provider_statuses WHERE provider = $1
	`, provider).Scan(&s.Provider, &s.Status, &checkedAt, &errorMsg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProviderStatusNotFound
	}
	if err != nil {
		return nil, err
	}
	s.CheckedAt = &checkedAt
	if errorMsg != nil {
		s.Error = *errorMsg
	}
	return &s, nil
}

// ListProviderStatuses returns every recorded probe outcome.
func (d *DB) ListProviderStatuses(ctx context.Context) ([]models.ProviderStatus, error) {
	rows, err := d.Pool.Query(ctx, `SELECT provider, status, checked_at, error FROM provider_statuses ORDER BY provider`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.ProviderStatus
	for rows.Next() {
		var s models.ProviderStatus
		var checkedAt time.Time
		var errorMsg *string
		if err := rows.Scan(&s.Provider, &s.Status, &checkedAt, &errorMsg); err != nil {
			return nil, err
		}
		s.CheckedAt = &checkedAt
		if errorMsg != nil {
			s.Error = *errorMsg
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
