// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/linkhive/api/internal/platform/constants"
	"github.com/linkhive/api/internal/platform/postgres"
	redisstore "github.com/linkhive/api/internal/platform/redis"
	"github.com/linkhive/api/internal/platform/respond"
)

// HealthHandler serves the operational probes used by orchestrators.
type HealthHandler struct {
	pool  *pgxpool.Pool
	redis *goredis.Client
}

// NewHealthHandler creates the probe handler with its backend handles.
func NewHealthHandler(pool *pgxpool.Pool, redis *goredis.Client) *HealthHandler {
	return &HealthHandler{pool: pool, redis: redis}
}

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Liveness handles GET /health. It only proves the process is serving;
// orchestrators use it to decide whether to restart the container.
func (handler *HealthHandler) Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: constants.AppVersion,
	})
}

// Readiness handles GET /ready. It pings both backends so traffic is only
// routed once the server can actually do work.
func (handler *HealthHandler) Readiness(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{}
	status := http.StatusOK

	if err := postgres.Ping(request.Context(), handler.pool); err != nil {
		checks["postgres"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["postgres"] = "ok"
	}

	if err := redisstore.Ping(request.Context(), handler.redis); err != nil {
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["redis"] = "ok"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}

	respond.JSON(writer, status, healthResponse{
		Status:  state,
		Version: constants.AppVersion,
		Checks:  checks,
	})
}
