// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package account

import (
	"context"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/internal/users/auth"
)

// UpdateInput carries a partial profile edit. Nil fields are left untouched.
type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// Service implements the profile use cases for the authenticated user.
type Service struct {
	users Repository
}

// NewService wires the account service with its user store.
func NewService(users Repository) *Service {
	return &Service{users: users}
}

/*
GetProfile returns the authenticated user's own account.

Parameters:
  - context: context.Context
  - userID: int64 (from the verified token)

Returns:
  - *auth.User: The profile
  - error: apperr.NotFound (account closed since the token was issued) or failures
*/
func (service *Service) GetProfile(context context.Context, userID int64) (*auth.User, error) {
	return service.users.FindByID(context, userID)
}

/*
UpdateProfile applies a partial edit to the authenticated user's account.

A changed email is normalized before the write; the unique index arbitrates
uniqueness and a rejection surfaces as a conflict.

Parameters:
  - context: context.Context
  - userID: int64
  - input: UpdateInput

Returns:
  - *auth.User: The updated profile
  - error: apperr.Conflict when the new email is taken, or failures
*/
func (service *Service) UpdateProfile(context context.Context, userID int64, input UpdateInput) (*auth.User, error) {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = auth.NormalizeEmail(*input.Email)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := service.users.Update(context, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Email is already registered")
		}
		return nil, err
	}

	return user, nil
}

/*
DeleteAccount closes the authenticated user's account.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteAccount(context context.Context, userID int64) error {
	return service.users.SoftDelete(context, userID)
}
