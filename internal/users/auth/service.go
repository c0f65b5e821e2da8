// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/internal/platform/sec"
)

// TokenProvider abstracts the credential minting side of [sec.TokenService]
// so the service can be tested with a deterministic fake.
type TokenProvider interface {
	Issue(userID int64, email string, timeToLive time.Duration) (string, error)
	AccessTokenTTL() time.Duration
}

// SignupInput carries the already-validated fields of a registration request.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthSession is the outcome of a successful signup or signin: a signed
// access token plus the account it authenticates.
type AuthSession struct {
	AccessToken string
	User        *User
}

// Service implements the authentication use cases: registration, login, and
// the password lifecycle (change, forgot, reset).
type Service struct {
	users       UserRepository
	resetTokens ResetTokenRepository
	tokens      TokenProvider
}

// NewService wires the authentication service with its storage and token
// dependencies.
func NewService(users UserRepository, resetTokens ResetTokenRepository, tokens TokenProvider) *Service {
	return &Service{
		users:       users,
		resetTokens: resetTokens,
		tokens:      tokens,
	}
}

/*
Signup registers a new account and immediately signs it in.

The email is normalized before any storage access. Duplicate detection is
two-layered: a cheap pre-insert lookup catches the common case, and the
unique index catches the race where two signups pass the lookup at once.
Both layers surface the identical CONFLICT response.

Parameters:
  - context: context.Context
  - input: SignupInput (validated at the HTTP boundary)

Returns:
  - *AuthSession: Access token plus the created account
  - error: apperr.Conflict when the email is taken, or internal failures
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*AuthSession, error) {
	email := NormalizeEmail(input.Email)

	_, err := service.users.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict("Credentials taken")
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if err := service.users.Create(context, user); err != nil {
		// A concurrent signup won the insert. Translate to the same
		// response the pre-insert lookup produces.
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Credentials taken")
		}
		return nil, err
	}

	return service.startSession(user)
}

/*
Signin authenticates an email/password pair and mints an access token.

An unknown email and a wrong password produce the exact same error so a
caller cannot probe which addresses have accounts.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *AuthSession: Access token plus the authenticated account
  - error: apperr.InvalidCredentials or internal failures
*/
func (service *Service) Signin(context context.Context, email, password string) (*AuthSession, error) {
	user, err := service.users.FindByEmail(context, NormalizeEmail(email))
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.InvalidCredentials()
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	return service.startSession(user)
}

/*
ForgotPassword begins the password recovery flow.

For a known account it generates a one-time token and stores its digest with
a short TTL. For an unknown email it silently succeeds with an empty token,
so the endpoint reveals nothing about which addresses are registered.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - string: The raw reset token (empty for unknown accounts)
  - error: Internal failures only
*/
func (service *Service) ForgotPassword(context context.Context, email string) (string, error) {
	user, err := service.users.FindByEmail(context, NormalizeEmail(email))
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}

	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("generate reset token: %w", err))
	}

	if err := service.resetTokens.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return "", err
	}

	return token, nil
}

/*
ResetPassword completes the recovery flow: it resolves the token, replaces
the password hash, and burns the token.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - error: apperr.NotFound for invalid/expired tokens, or internal failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	userID, err := service.resetTokens.Get(context, token)
	if err != nil {
		return err
	}

	hash, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	if err := service.users.UpdatePassword(context, userID, hash); err != nil {
		return err
	}

	// Single use. A failed delete is not fatal; the TTL still bounds it.
	return service.resetTokens.Delete(context, token)
}

/*
ChangePassword rotates the password of an authenticated user after
re-verifying the current one.

Parameters:
  - context: context.Context
  - userID: int64 (taken from the request identity, never from the body)
  - currentPassword: string
  - newPassword: string

Returns:
  - error: apperr.Forbidden when the current password is wrong, or failures
*/
func (service *Service) ChangePassword(context context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Forbidden("Current password is incorrect")
	}

	hash, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	return service.users.UpdatePassword(context, userID, hash)
}

// startSession mints an access token for the user and packages the session.
func (service *Service) startSession(user *User) (*AuthSession, error) {
	token, err := service.tokens.Issue(user.ID, user.Email, service.tokens.AccessTokenTTL())
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("issue access token: %w", err))
	}

	return &AuthSession{AccessToken: token, User: user}, nil
}
