package api

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/api/ws"
	"storebill_server/config"
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager) chi.Router {
	r := chi.NewRouter()

	mwLogger := config.NewMiddlewareLogger(cfg)
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.TokenService, sm.StoreService)
	hub := ws.NewHub(logger)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.SetupLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before auth / csrf)
	r.Use(mw.SetupCORS().Handler)

	// Throttling
	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(logger, cfg, sm, hub, mw).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the StoreBill API"),
			gecho.Send(),
		)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
