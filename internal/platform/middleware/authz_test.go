// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/api/internal/platform/ctxutil"
	"github.com/linkhive/api/internal/platform/middleware"
	"github.com/linkhive/api/internal/platform/sec"
)

// guardedProbe builds Authenticate+RequireAuth around a probe handler that
// records whether it ran and with which identity.
func guardedProbe(verifier middleware.TokenVerifier) (http.Handler, *bool, **sec.AuthClaims) {
	invoked := false
	var seen *sec.AuthClaims

	probe := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		invoked = true
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	chain := middleware.Authenticate(verifier)(middleware.RequireAuth(probe))
	return chain, &invoked, &seen
}

func newVerifier(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "linkhive.test", 15*time.Minute)
	require.NoError(t, err)
	return service
}

/*
TestGuard_MissingHeader verifies the guard fails closed: no Authorization
header means 401 and the handler is never invoked.
*/
func TestGuard_MissingHeader(t *testing.T) {
	chain, invoked, _ := guardedProbe(newVerifier(t))

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, *invoked)
}

/*
TestGuard_MalformedHeader covers headers that are present but not a valid
bearer scheme.
*/
func TestGuard_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no_scheme", "some-raw-token"},
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"too_many_parts", "Bearer a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, invoked, _ := guardedProbe(newVerifier(t))

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			request.Header.Set("Authorization", tt.header)
			recorder := httptest.NewRecorder()
			chain.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, *invoked)
		})
	}
}

/*
TestGuard_InvalidToken verifies every verification failure kind maps to 401.
*/
func TestGuard_InvalidToken(t *testing.T) {
	verifier := newVerifier(t)

	expired, err := verifier.Issue(7, "a@x.com", -time.Minute)
	require.NoError(t, err)

	other, err := sec.NewTokenService("another-secret-another-secret!!!", "linkhive.test", 15*time.Minute)
	require.NoError(t, err)
	foreignSigned, err := other.Issue(7, "a@x.com", 15*time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"expired", expired},
		{"wrong_secret", foreignSigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain, invoked, _ := guardedProbe(verifier)

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			request.Header.Set("Authorization", "Bearer "+tt.token)
			recorder := httptest.NewRecorder()
			chain.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, *invoked)
		})
	}
}

/*
TestGuard_ValidToken verifies a valid token lets the handler run with the
resolved identity attached to the request context.
*/
func TestGuard_ValidToken(t *testing.T) {
	verifier := newVerifier(t)
	token, err := verifier.Issue(42, "a@x.com", 15*time.Minute)
	require.NoError(t, err)

	chain, invoked, seen := guardedProbe(verifier)

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, *invoked)
	require.NotNil(t, *seen)
	assert.Equal(t, int64(42), (*seen).UserID)
	assert.Equal(t, "a@x.com", (*seen).Email)
}
