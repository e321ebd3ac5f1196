package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"shortcuts/internal/models"
)

// shortcutColumns is the standard column list for shortcut queries.
const shortcutColumns = `name, keyword, url, icon_path, domain, suggestion_provider, is_default`

func scanShortcut(row pgx.Row) (*models.Record, error) {
	var r models.Record
	err := row.Scan(&r.Name, &r.Keyword, &r.URL, &r.IconPath, &r.Domain, &r.SuggestionProvider, &r.IsDefault)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShortcutNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanShortcuts(rows pgx.Rows) ([]models.Record, error) {
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.Name, &r.Keyword, &r.URL, &r.IconPath, &r.Domain, &r.SuggestionProvider, &r.IsDefault); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ListShortcuts returns every shortcut in insertion order.
func (d *DB) ListShortcuts(ctx context.Context) ([]models.Record, error) {
	rows, err := d.Pool.Query(ctx, `SELECT `+shortcutColumns+` FROM shortcuts ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	return scanShortcuts(rows)
}

// GetShortcutByKeyword retrieves a shortcut by keyword, ignoring case.
func (d *DB) GetShortcutByKeyword(ctx context.Context, keyword string) (*models.Record, error) {
	row := d.Pool.QueryRow(ctx, `SELECT `+shortcutColumns+` FROM shortcuts WHERE lower(keyword) = lower($1)`, keyword)
	return scanShortcut(row)
}

// CreateShortcut inserts a shortcut. Flagging it as default clears the flag
// on every other shortcut.
func (d *DB) CreateShortcut(ctx context.Context, r *models.Record) error {
	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		if r.IsDefault {
			if _, err := tx.Exec(ctx, `UPDATE shortcuts SET is_default = FALSE, updated_at = NOW() WHERE is_default`); err != nil {
				return err
			}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO shortcuts (`+shortcutColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, r.Name, r.Keyword, r.URL, r.IconPath, r.Domain, r.SuggestionProvider, r.IsDefault)
		if isUniqueViolation(err) {
			return ErrDuplicateKeyword
		}
		return err
	})
}

// UpdateShortcut replaces the shortcut stored under keyword.
func (d *DB) UpdateShortcut(ctx context.Context, keyword string, r *models.Record) error {
	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		if r.IsDefault {
			if _, err := tx.Exec(ctx, `
				UPDATE shortcuts SET is_default = FALSE, updated_at = NOW()
				WHERE is_default AND lower(keyword) <> lower($1)
			`, keyword); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `
			UPDATE shortcuts
			SET name = $1, keyword = $2, url = $3, icon_path = $4, domain = $5,
				suggestion_provider = $6, is_default = $7, updated_at = NOW()
			WHERE lower(keyword) = lower($8)
		`, r.Name, r.Keyword, r.URL, r.IconPath, r.Domain, r.SuggestionProvider, r.IsDefault, keyword)
		if isUniqueViolation(err) {
			return ErrDuplicateKeyword
		}
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrShortcutNotFound
		}
		return nil
	})
}

// DeleteShortcut removes the shortcut stored under keyword.
func (d *DB) DeleteShortcut(ctx context.Context, keyword string) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM shortcuts WHERE lower(keyword) = lower($1)`, keyword)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrShortcutNotFound
	}
	return nil
}

// ReplaceShortcuts swaps the whole table for records in one transaction.
func (d *DB) ReplaceShortcuts(ctx context.Context, records []models.Record) error {
	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM shortcuts`); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, r := range records {
			batch.Queue(`
				INSERT INTO shortcuts (`+shortcutColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, r.Name, r.Keyword, r.URL, r.IconPath, r.Domain, r.SuggestionProvider, r.IsDefault)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateKeyword
			}
			return fmt.Errorf("failed to insert shortcuts: %w", err)
		}
		return nil
	})
}

// Source adapts the shortcuts table to the record store.
type Source struct {
	db *DB
}

// NewSource returns a record source reading the shortcuts table.
func NewSource(d *DB) *Source {
	return &Source{db: d}
}

// Load lists every shortcut.
func (s *Source) Load(ctx context.Context) ([]models.Record, error) {
	return s.db.ListShortcuts(ctx)
}

// Location is empty: database records have no file to open.
func (s *Source) Location() string {
	return ""
}
