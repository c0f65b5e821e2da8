// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package bookmark

import (
	"context"

	"github.com/linkhive/api/pkg/pagination"
)

// Repository defines the data access contract for bookmarks.
//
// List queries are always owner-scoped; FindByID is not, because the service
// needs the stored owner to decide between NOT FOUND and FORBIDDEN.
type Repository interface {

	/*
		ListByOwner returns one page of a user's bookmarks, newest first.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - search: string (pre-folded substring filter; empty means no filter)
		  - params: pagination.Params

		Returns:
		  - []*Bookmark: The page of results
		  - int: Total matching rows across all pages
		  - error: Database retrieval failures
	*/
	ListByOwner(context context.Context, userID int64, search string, params pagination.Params) ([]*Bookmark, int, error)

	/*
		FindByID returns a bookmark regardless of owner.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Bookmark: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Bookmark, error)

	/*
		Create persists a new bookmark and fills in its generated ID.

		Parameters:
		  - context: context.Context
		  - bookmark: *Bookmark

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, bookmark *Bookmark) error

	/*
		Update persists changes to a bookmark's content fields.

		Parameters:
		  - context: context.Context
		  - bookmark: *Bookmark

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Update(context context.Context, bookmark *Bookmark) error

	/*
		Delete removes a bookmark permanently.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr.NotFound or persistence failures
	*/
	Delete(context context.Context, id int64) error
}
