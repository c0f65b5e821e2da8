// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

// Command api is the Linkhive server binary.
//
// Startup order is deliberate: config, backends, migrations, token service,
// then the HTTP server. Any failure before the listener opens aborts the
// process; after that, SIGINT/SIGTERM triggers a graceful drain.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/linkhive/api/internal/api"
	"github.com/linkhive/api/internal/core/bookmark"
	"github.com/linkhive/api/internal/platform/config"
	"github.com/linkhive/api/internal/platform/constants"
	"github.com/linkhive/api/internal/platform/migration"
	"github.com/linkhive/api/internal/platform/postgres"
	redisstore "github.com/linkhive/api/internal/platform/redis"
	"github.com/linkhive/api/internal/platform/sec"
	"github.com/linkhive/api/internal/users/account"
	"github.com/linkhive/api/internal/users/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", constants.AppName),
	)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("startup_failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Info("config_loaded", slog.String("environment", cfg.Environment))

	// ── 2. Backends ───────────────────────────────────────────────────────
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	redisClient, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// ── 3. Schema Migrations ──────────────────────────────────────────────
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		return err
	}

	// ── 4. Security Services ──────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTTTL)
	if err != nil {
		return err
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresUserRepository(pool)
	resetTokenRepository := auth.NewRedisResetTokenRepository(redisClient)
	bookmarkRepository := bookmark.NewPostgresRepository(pool)

	authHandler := auth.NewHandler(auth.NewService(userRepository, resetTokenRepository, tokens))
	accountHandler := account.NewHandler(account.NewService(userRepository))
	bookmarkHandler := bookmark.NewHandler(bookmark.NewService(bookmarkRepository))

	server := api.NewServer(cfg, logger, tokens, api.Handlers{
		Health:   api.NewHealthHandler(pool, redisClient),
		Auth:     authHandler,
		Account:  accountHandler,
		Bookmark: bookmarkHandler,
	})

	// ── 6. Serve & Drain ──────────────────────────────────────────────────
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.ListenAndServe() }()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server_stopped")
	return nil
}
