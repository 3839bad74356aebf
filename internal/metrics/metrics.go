// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package metrics provides Prometheus instrumentation for ShowTimeNow.
//
// Instrumented concerns:
//   - Content repository fetch latency and errors
//   - Personalization resolution outcomes per fallback step
//   - Notification delivery attempts per channel
//   - HTTP request latency
//   - Content client circuit breaker state
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Content client metrics
	ContentFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Duration of content repository fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"content_type", "variant"}, // variant: "base" or "variant"
	)

	ContentFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_errors_total",
			Help: "Total number of content repository fetch errors",
		},
		[]string{"content_type", "error_type"},
	)

	// Personalization metrics
	PersonalizeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "personalize_requests_total",
			Help: "Total personalization resolutions by resolution path",
		},
		[]string{"path"}, // "variant", "filtered", "fallback"
	)

	PersonalizeMovieCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "personalize_movie_count",
			Help:    "Number of movies returned per personalization resolution",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 12, 16, 24},
		},
	)

	MemberSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "member_selections_total",
			Help: "Total family member selections observed on the selection bus",
		},
		[]string{"age_group"},
	)

	// Notification metrics
	NotificationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_attempts_total",
			Help: "Total notification delivery attempts by sender and outcome",
		},
		[]string{"sender", "outcome"}, // outcome: "success", "failure"
	)

	// Booking metrics
	BookingsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_total",
			Help: "Total confirmed bookings by seat type",
		},
		[]string{"seat_type"},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total requests through circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// ObserveHTTPRequest records one HTTP request observation.
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}
