// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package api provides the HTTP surface: routing, middleware and handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/showtimenow/showtimenow/internal/config"
)

// Router assembles the HTTP handler tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router over the given handler and security settings.
func NewRouter(handler *Handler, security *config.SecurityConfig) *Router {
	return &Router{
		handler:    handler,
		middleware: NewMiddleware(security),
	}
}

// Setup builds the chi route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints stay outside the rate limit so monitoring is never
	// throttled.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(SecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.Health)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(RequestLogging())

		r.Get("/movies", router.handler.Movies)
		r.Get("/personalized-content", router.handler.PersonalizedContent)
		r.Get("/site-chrome", router.handler.SiteChrome)
		r.Post("/bookings", router.handler.CreateBooking)
		r.Post("/send-email", router.handler.SendEmail)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
