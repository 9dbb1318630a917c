// Package router assembles the chi router: middleware chain, CORS,
// rate limiting, API routes and the operational endpoints.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/nineylabs/smart-server/docs"
	"github.com/nineylabs/smart-server/internal/config"
	"github.com/nineylabs/smart-server/internal/handler"
	"github.com/nineylabs/smart-server/internal/middleware"
)

const requestTimeout = 60 * time.Second

// Setup builds the HTTP handler for the service.
func Setup(h *handler.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Compress)

	// Routes
	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/live", h.Liveness)
		r.Get("/ready", h.Readiness)
	})

	r.Route(cfg.API.Prefix, func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.API.RateLimitRequests, cfg.API.RateLimitWindow))

		r.Route("/ml", func(r chi.Router) {
			r.Post("/predict", h.Predict)
			r.Get("/models", h.ListModels)
			r.Get("/models/{name}", h.GetModel)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/", h.GetRecommendations)
			r.Get("/categories", h.Categories)
			r.Get("/trending", h.Trending)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	if cfg.API.DocsEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
		))
	}

	return r
}
