// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the [auth.TokenProvider] interface.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Callers that need to distinguish why a token
// was rejected match with [errors.Is]; the HTTP boundary maps all of them to
// a single 401 outcome.
var (
	// ErrTokenMalformed means the string could not be parsed or decoded as a JWT.
	ErrTokenMalformed = errors.New("auth: token malformed")

	// ErrTokenSignatureInvalid means the signature does not match the signing secret.
	ErrTokenSignatureInvalid = errors.New("auth: token signature invalid")

	// ErrTokenExpired means the token was well-formed and signed but its expiry has elapsed.
	ErrTokenExpired = errors.New("auth: token expired")

	// ErrTokenInvalid covers every other verification failure (bad claims,
	// unexpected algorithm, not-yet-valid).
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// AuthClaims represents the payload embedded inside a JWT access token.
// It is the RequestIdentity attached to every authenticated request.
//
// # Why custom claims?
//
// By embedding the UserID and Email directly inside the JWT, the identity
// guard can reconstruct the active user context WITHOUT querying the
// database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID int64  `json:"uid"`
	Email  string `json:"eml"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// # Concurrency
//
// The signing secret is loaded once at construction and never mutated, so a
// single TokenService is safe for unsynchronized concurrent use by every
// request goroutine.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService from a process-wide signing
// secret and the default access-token lifetime.
//
// An empty secret is a fatal misconfiguration: the caller must abort startup.
func NewTokenService(secret, issuer string, accessTokenTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if accessTokenTTL <= 0 {
		return nil, fmt.Errorf("auth: invalid access token TTL %s", accessTokenTTL)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    accessTokenTTL,
	}, nil
}

// AccessTokenTTL returns the configured default token lifetime.
func (service *TokenService) AccessTokenTTL() time.Duration {
	return service.ttl
}

// Issue creates a new signed JWT access token for a user.
//
// The structure is deterministic; only the time-based iat/exp claims and the
// resulting signature vary between invocations.
func (service *TokenService) Issue(userID int64, email string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string and returns the
// identity it carries.
//
// # Failure kinds
//
// The returned error matches exactly one of [ErrTokenMalformed],
// [ErrTokenSignatureInvalid], [ErrTokenExpired], or [ErrTokenInvalid].
// Signature comparison is the library's constant-time HMAC check.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Pinning the algorithm family prevents downgrade tricks where a
		// token declares "none" or an asymmetric method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, classifyVerifyError(err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// classifyVerifyError maps golang-jwt parse errors onto the package's
// sentinel failure kinds.
func classifyVerifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %s", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %s", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %s", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %s", ErrTokenInvalid, err)
	}
}
