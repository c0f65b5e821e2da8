// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

/*
Package api assembles the HTTP surface of the Linkhive server.

# Architecture

This package owns the router and the middleware chain but no business
logic: domain handlers are injected and mounted. The chain order matters —
tracing first, then logging, then the identity guard, so every downstream
log line carries a request ID and (when present) a verified user ID.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/linkhive/api/internal/platform/config"
	"github.com/linkhive/api/internal/platform/constants"
	"github.com/linkhive/api/internal/platform/middleware"
)

// RouteProvider is anything that contributes a sub-router to the API.
type RouteProvider interface {
	Routes() http.Handler
}

// Handlers groups the injected domain handlers mounted by the server.
type Handlers struct {
	Health   *HealthHandler
	Auth     RouteProvider
	Account  RouteProvider
	Bookmark RouteProvider
}

// Server is the long-running HTTP server for the Linkhive API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the complete router and wraps it in a tuned http.Server.
func NewServer(cfg *config.Config, logger *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) *Server {
	router := chi.NewRouter()

	// ── 1. Cross-Cutting Chain ────────────────────────────────────────────
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.Authenticate(verifier))
	router.Use(middleware.CORS(cfg))
	router.Use(chimw.CleanPath)

	// ── 2. Operational Probes ─────────────────────────────────────────────
	router.Get("/health", handlers.Health.Liveness)
	router.Get("/ready", handlers.Health.Readiness)

	// ── 3. API Surface ────────────────────────────────────────────────────
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", handlers.Auth.Routes())

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)
			protected.Mount("/users", handlers.Account.Routes())
			protected.Mount("/bookmarks", handlers.Bookmark.Routes())
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
		logger: logger,
	}
}

// ListenAndServe starts accepting connections. It blocks until the server
// stops and never returns http.ErrServerClosed as an error.
func (server *Server) ListenAndServe() error {
	server.logger.Info("http_server_listening", slog.String("addr", server.httpServer.Addr))

	if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (server *Server) Shutdown(ctx context.Context) error {
	server.logger.Info("http_server_shutting_down")
	return server.httpServer.Shutdown(ctx)
}
