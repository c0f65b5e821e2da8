// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package apperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/api/internal/platform/apperr"
)

/*
TestAppError_StatusMapping verifies the fixed HTTP status per error kind.
*/
func TestAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"validation", apperr.ValidationError("bad input"), apperr.CodeValidation, http.StatusBadRequest},
		{"conflict", apperr.Conflict("Credentials taken"), apperr.CodeConflict, http.StatusForbidden},
		{"invalid_credentials", apperr.InvalidCredentials(), apperr.CodeInvalidCredentials, http.StatusForbidden},
		{"unauthorized", apperr.Unauthorized("no token"), apperr.CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("denied"), apperr.CodeForbidden, http.StatusForbidden},
		{"not_found", apperr.NotFound("Bookmark"), apperr.CodeNotFound, http.StatusNotFound},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestInvalidCredentials_Indistinguishable asserts that two independently
constructed credential failures carry identical wire-visible content.
*/
func TestInvalidCredentials_Indistinguishable(t *testing.T) {
	notFoundPath := apperr.InvalidCredentials()
	mismatchPath := apperr.InvalidCredentials()

	assert.Equal(t, notFoundPath.Code, mismatchPath.Code)
	assert.Equal(t, notFoundPath.Message, mismatchPath.Message)
	assert.Equal(t, notFoundPath.HTTPStatus, mismatchPath.HTTPStatus)
}

/*
TestAppError_Unwrap verifies that the cause chain is traversable and that
the client-safe message never includes the cause.
*/
func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("pq: connection refused")
	wrapped := apperr.Internal(cause)

	assert.True(t, errors.Is(wrapped, cause))
	assert.NotContains(t, wrapped.Error(), "connection refused")

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInternal, ae.Code)
}

/*
TestAppError_KindHelpers checks IsConflict / IsNotFound classification.
*/
func TestAppError_KindHelpers(t *testing.T) {
	assert.True(t, apperr.IsConflict(apperr.Conflict("dup")))
	assert.False(t, apperr.IsConflict(apperr.NotFound("User")))
	assert.True(t, apperr.IsNotFound(apperr.NotFound("User")))
	assert.False(t, apperr.IsNotFound(errors.New("plain")))
}
