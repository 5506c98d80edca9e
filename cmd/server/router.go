package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/isaqu3d/star-wars-wiki-api/internal/api"
	apimw "github.com/isaqu3d/star-wars-wiki-api/internal/api/middleware"
	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
)

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	cfg := app.config
	production := cfg.Server.IsProduction()
	errs := api.ErrorHandler{Production: production}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apimw.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(apimw.Recoverer(errs.Panic))
	r.Use(apimw.SecurityHeaders(production))
	// go-chi/cors allows every origin when none are listed.
	if len(cfg.Security.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Security.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "Authorization", shared.TraceIDHeader},
			ExposedHeaders:   []string{shared.TraceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(httprate.Limit(
		cfg.Security.RateLimitMax,
		cfg.Security.RateLimitWindow(),
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(errs.TooManyRequests),
	))
	r.Use(apimw.ReadOnly(production))

	// Set before mounting so sub-routers inherit them.
	r.NotFound(errs.NotFound)
	r.MethodNotAllowed(errs.MethodNotAllowed)

	r.Get("/health", app.health)
	r.Handle("/metrics", app.metrics.Handler())

	doc := api.Mount(r, app.catalog, api.RouteOptions{
		Errors:    errs,
		BodyLimit: cfg.Security.BodyLimitBytes,
		Logger:    app.logger,
	}, cfg.Server.APIVersion)
	if !production {
		r.Get("/docs/openapi.json", api.OpenAPIHandler(doc))
	}

	return r
}
