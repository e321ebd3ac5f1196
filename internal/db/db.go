package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortcuts/internal/models"
	"shortcuts/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedShortcuts inserts records that do not exist yet. Existing keywords are
// left alone, as is the current default if there is one.
func (d *DB) SeedShortcuts(ctx context.Context, records []models.Record) error {
	hasDefault, err := d.hasDefault(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO shortcuts (name, keyword, url, icon_path, domain, suggestion_provider, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (lower(keyword)) DO NOTHING
	`

	for _, r := range records {
		isDefault := r.IsDefault && !hasDefault
		if _, err := d.Pool.Exec(ctx, query,
			r.Name, r.Keyword, r.URL, r.IconPath, r.Domain, r.SuggestionProvider, isDefault,
		); err != nil {
			return fmt.Errorf("failed to seed shortcut %s: %w", r.Keyword, err)
		}
		hasDefault = hasDefault || isDefault
	}

	return nil
}

func (d *DB) hasDefault(ctx context.Context) (bool, error) {
	var exists bool
	err := d.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shortcuts WHERE is_default)`).Scan(&exists)
	return exists, err
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}
