// Package app wires the shortcut components from configuration.
package app

import (
	"context"
	"fmt"
	"log"

	"shortcuts/internal/config"
	"shortcuts/internal/db"
	"shortcuts/internal/launcher"
	"shortcuts/internal/metrics"
	"shortcuts/internal/resolver"
	"shortcuts/internal/store"
	"shortcuts/internal/suggest"
)

// App holds the wired components.
type App struct {
	Cfg      *config.Config
	DB       *db.DB // nil unless records live in Postgres
	Store    *store.Store
	Client   *suggest.HTTPClient
	Resolver *resolver.Resolver
	Launcher *launcher.Launcher
}

// Options controls startup side effects.
type Options struct {
	// Seed writes the example shortcuts when none exist yet.
	Seed bool
	// Metrics registers collectors with the default Prometheus registry.
	Metrics bool
}

// Open connects the record source, loads the records and builds the resolver.
func Open(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	a := &App{Cfg: cfg}

	var source store.Source
	var lookups metrics.LookupStore
	if cfg.UsesDatabase() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		if opts.Seed {
			if err := database.SeedShortcuts(ctx, config.ExampleShortcuts()); err != nil {
				log.Printf("Warning: failed to seed shortcuts: %v", err)
			}
		}
		a.DB = database
		source = db.NewSource(database)
		lookups = database
	} else {
		fileSource := config.NewFileSource(cfg.ShortcutsFile)
		if opts.Seed {
			if err := config.WriteExample(fileSource.Location()); err != nil {
				log.Printf("Warning: failed to write example shortcuts: %v", err)
			}
		}
		source = fileSource
		lookups = metrics.NewMemoryLookups()
	}

	if opts.Metrics {
		metrics.Init(lookups)
	} else if a.DB != nil {
		// Short-lived processes still count lookups in the shared table.
		metrics.SetLookupStore(a.DB)
	}

	opener, err := launcher.NewShellOpener(cfg.BrowserCommand)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Store = store.Open(ctx, source)
	a.Client = suggest.NewHTTPClient(cfg.SuggestionTimeout, cfg.SuggestionLimit, suggest.DefaultProviders())
	a.Resolver = resolver.New(a.Store, a.Client, resolver.Options{ActionKeyword: cfg.ActionKeyword})
	a.Launcher = launcher.New(opener, a.Store)
	return a, nil
}

// Close releases the database connection, if any.
func (a *App) Close() {
	metrics.Flush()
	if a.DB != nil {
		a.DB.Close()
	}
}
