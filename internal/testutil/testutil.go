// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"shortcuts/internal/db"
	"shortcuts/internal/models"
)

// TestDB creates a test database connection and returns a cleanup function.
// Uses TEST_DATABASE_URL environment variable or defaults to a test database.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanupTestData(ctx, database.Pool)
	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM shortcuts")
	pool.Exec(ctx, "DELETE FROM keyword_lookups")
	pool.Exec(ctx, "DELETE FROM provider_statuses")
}

// CreateTestShortcut inserts a shortcut and fails the test on error.
func CreateTestShortcut(t *testing.T, database *db.DB, rec models.Record) {
	t.Helper()
	if err := database.CreateShortcut(context.Background(), &rec); err != nil {
		t.Fatalf("failed to create test shortcut %s: %v", rec.Keyword, err)
	}
}

// Records is a small record set covering every result kind.
func Records() []models.Record {
	return []models.Record{
		{Name: "Google", Keyword: "g", URL: "https://www.google.com/search?q=%s", SuggestionProvider: "google", IsDefault: true},
		{Name: "GitHub", Keyword: "gh", URL: "https://github.com/search?q=%s", Domain: "https://github.com"},
		{Name: "Wikipedia", Keyword: "w", URL: "https://en.wikipedia.org/w/index.php?search=%s", SuggestionProvider: "wikipedia"},
		{Name: "Both", Keyword: "both", URL: "https://a.example/%s https://b.example/%s"},
	}
}
