// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package httpapi wires the recommendation engine to a Chi-based HTTP
// surface: generating recommendations, ingesting user actions, and the
// usual health/metrics endpoints.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/movierec/internal/config"
)

// Router builds the HTTP handler serving every movierec endpoint.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter constructs a Router.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Handler returns the configured net/http handler, ready to pass to
// http.Server.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", rt.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(rt.rateLimit())

		r.Route("/users/{userID}/recommendations", func(r chi.Router) {
			r.Get("/", rt.handler.GetRecommendations)
		})
		r.Post("/actions", rt.handler.PostAction)
	})

	return r
}

// rateLimit returns the httprate middleware, or a no-op when rate
// limiting is disabled (spec's Non-goals exclude auth/abuse controls,
// but the ambient rate-limit layer is still wired per the teacher's
// chi_middleware.go pattern).
func (rt *Router) rateLimit() func(http.Handler) http.Handler {
	if rt.cfg.RateLimit.Disabled {
		return func(next http.Handler) http.Handler { return next }
	}
	window := rt.cfg.RateLimit.WindowLength
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(rt.cfg.RateLimit.RequestLimit, window, httprate.WithKeyFuncs(httprate.KeyByIP))
}
