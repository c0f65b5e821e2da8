// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package middleware

import (
	"net/http"
	"strings"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/internal/platform/constants"
	"github.com/linkhive/api/internal/platform/ctxutil"
	"github.com/linkhive/api/internal/platform/respond"
	"github.com/linkhive/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous ([RequireAuth] fails it closed
//     on protected groups).
//  3. If present but malformed, abort with HTTP 401 — the handler is never
//     invoked.
//  4. Else verify via [TokenVerifier]; any failure kind (malformed,
//     bad signature, expired) aborts with HTTP 401.
//  5. On success, inject the [*sec.AuthClaims] into the request context for
//     the remainder of that request's processing.
//
// The middleware is side-effect-free beyond context attachment: identity
// comes entirely from the token's signed claims, with no store round-trip.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Together the pair
// implements the fail-closed identity guard: a protected handler only ever
// runs with a verified identity already attached to its context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
