package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shortcuts/internal/handlers"
	"shortcuts/internal/handlers/api"
	"shortcuts/internal/launcher"
	"shortcuts/internal/middleware"
	"shortcuts/internal/resolver"
	"shortcuts/internal/store"
)

// Deps are the components the routes serve.
type Deps struct {
	Store    *store.Store
	Sessions *resolver.Sessions
	Launcher *launcher.Launcher

	// Optional
	Statuses api.StatusSource
	DB       handlers.Pinger
	Gatherer prometheus.Gatherer
	Verifier middleware.TokenVerifier
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	probeHandler := handlers.NewProbeHandler(deps.Store, deps.DB)
	queryHandler := api.NewQueryHandler(deps.Sessions)
	resultHandler := api.NewResultHandler(deps.Sessions, deps.Launcher)
	shortcutHandler := api.NewShortcutHandler(deps.Store)
	healthHandler := api.NewHealthHandler(deps.Store, deps.Statuses)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	verifier := deps.Verifier
	if verifier == nil && s.Cfg.OIDCEnabled() {
		v, err := middleware.NewOIDCVerifier(ctx, s.Cfg.OIDCIssuer, s.Cfg.OIDCClientID)
		if err != nil {
			return err
		}
		verifier = v
	}

	var apiGroup fiber.Router
	if verifier != nil {
		authMiddleware := middleware.NewAuthMiddleware(verifier)
		apiGroup = s.App.Group("/api", authMiddleware.RequireAuth)
	} else {
		log.Println("API authentication is disabled. Set OIDC_ISSUER and OIDC_CLIENT_ID to enable.")
		apiGroup = s.App.Group("/api")
	}

	apiGroup.Get("/query", queryHandler.Query)
	apiGroup.Get("/query/delayed", queryHandler.Delayed)
	apiGroup.Post("/results/:id/activate", resultHandler.Activate)
	apiGroup.Get("/results/:id/context", resultHandler.ContextMenu)
	apiGroup.Post("/results/:id/context/:n", resultHandler.ContextAction)
	apiGroup.Get("/shortcuts", shortcutHandler.List)
	apiGroup.Post("/reload", shortcutHandler.Reload)
	apiGroup.Get("/health", healthHandler.Health)

	return nil
}
