package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shortcuts/internal/app"
	"shortcuts/internal/config"
	"shortcuts/internal/jobs"
	"shortcuts/internal/resolver"
	"shortcuts/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	a, err := app.Open(ctx, cfg, app.Options{Seed: cfg.IsDev(), Metrics: true})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()
	log.Printf("Loaded %d shortcuts (source: %s)", a.Store.Snapshot().Len(), cfg.RecordSource)

	deps := server.Deps{
		Store:    a.Store,
		Sessions: resolver.NewSessions(a.Resolver, cfg.SessionIdleTTL),
		Launcher: a.Launcher,
	}
	if a.DB != nil {
		deps.DB = a.DB
	}

	// Provider checker
	if cfg.ProviderCheckInterval > 0 {
		var persist jobs.StatusStore
		if a.DB != nil {
			persist = a.DB
		}
		checker := jobs.NewProviderChecker(a.Client, a.Store, persist, cfg.ProviderCheckInterval)
		if err := checker.Restore(ctx); err != nil {
			log.Printf("Warning: failed to restore provider statuses: %v", err)
		}
		deps.Statuses = checker
		go checker.Start(ctx)
	} else {
		log.Println("Provider checker disabled (PROVIDER_CHECK_INTERVAL=0)")
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, deps); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
