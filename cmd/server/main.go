// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

// Package main is the entry point for the ShowTimeNow server.
//
// ShowTimeNow is a movie ticketing site backed by a headless CMS. It serves
// the movie catalog, resolves age-banded personalized movie lists per family
// member, confirms seat bookings and dispatches confirmation emails through
// a primary/fallback delivery chain.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 sources (env vars, config file, defaults)
//  2. Content client: CMS delivery API client behind a circuit breaker
//  3. Services: catalog, personalization resolver, notification chain, booking
//  4. Selection bus: in-process broadcast of family-member selections,
//     consumed by a tracker that logs and counts each selection
//  5. HTTP server: chi router with CORS, rate limiting and metrics
//
// # Configuration
//
// The CMS credentials are optional. Without CONTENTSTACK_API_KEY and
// CONTENTSTACK_DELIVERY_TOKEN the server still runs; every listing falls
// back to static content.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits up to 10s for in-flight requests, then
// closes the selection bus.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/showtimenow/showtimenow/internal/api"
	"github.com/showtimenow/showtimenow/internal/booking"
	"github.com/showtimenow/showtimenow/internal/bus"
	"github.com/showtimenow/showtimenow/internal/catalog"
	"github.com/showtimenow/showtimenow/internal/config"
	"github.com/showtimenow/showtimenow/internal/content"
	"github.com/showtimenow/showtimenow/internal/logging"
	"github.com/showtimenow/showtimenow/internal/notify"
	"github.com/showtimenow/showtimenow/internal/personalize"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Msg("Starting ShowTimeNow server")

	client := content.NewBreakerClient(content.NewHTTPClient(&cfg.Contentstack))

	selection := bus.New()
	defer func() { _ = selection.Close() }() //nolint:errcheck // Best effort cleanup

	trackCtx, stopTracking := context.WithCancel(context.Background())
	defer stopTracking()
	if _, err := selection.Track(trackCtx); err != nil {
		return fmt.Errorf("failed to start selection tracking: %w", err)
	}

	simulated := notify.NewSimulatedSender(cfg.Notify.SimulatedDelay)
	notifier := notify.NewManager(&cfg.Notify)

	handler := api.NewHandler(
		catalog.NewService(client, &cfg.Contentstack),
		personalize.NewResolver(client, &cfg.Contentstack, &cfg.Personalize),
		booking.NewService(notifier),
		selection,
		simulated,
	)
	router := api.NewRouter(handler, &cfg.Security)

	requestTimeout := cfg.Server.Timeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout,
		IdleTimeout:       2 * requestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
