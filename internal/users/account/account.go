// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

/*
Package account implements the authenticated user's profile surface:
reading, editing, and closing their own account.

# Architecture

The package owns no entity of its own — it operates on [auth.User] through
a narrow repository view. Every operation is scoped to the identity carried
by the request's verified token; there is no way to address another account.
*/
package account

import (
	"context"

	"github.com/linkhive/api/internal/users/auth"
)

// Repository is the slice of the user store this package needs. The
// authentication store satisfies it directly.
type Repository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*auth.User, error)

	/*
		Update persists changes to mutable profile fields.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: apperr.Conflict (email taken) or persistence failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		SoftDelete closes the account without destroying the row.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id int64) error
}
