// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Race Arbitration
//
// The users.account unique email index is the actual arbiter for concurrent
// signups: two requests can both pass the lookup, but only one insert
// commits. This package recognizes the loser's SQLSTATE 23505 and surfaces
// it as a CONFLICT [apperr.AppError] so the service layer can translate it
// the same way as a pre-insert duplicate.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/linkhive/api/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique-constraint violations become client-safe conflicts.
	if IsUniqueViolation(err) {
		return apperr.Conflict("Resource already exists")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsNoRows reports whether err is the driver's empty-result sentinel.
// Stores use it to attach a resource-specific NOT_FOUND instead of the
// generic one produced by Wrap.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// rejection (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
