// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package bookmark

import (
	"context"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/pkg/pagination"
	"github.com/linkhive/api/pkg/textnorm"
)

// CreateInput carries the validated fields of a new bookmark.
type CreateInput struct {
	Title       string
	Link        string
	Description *string
}

// UpdateInput carries a partial bookmark edit. Nil fields are left untouched.
type UpdateInput struct {
	Title       *string
	Link        *string
	Description *string
}

// Service implements the bookmark use cases with owner scoping.
type Service struct {
	bookmarks Repository
}

// NewService wires the bookmark service with its store.
func NewService(bookmarks Repository) *Service {
	return &Service{bookmarks: bookmarks}
}

/*
List returns one page of the user's bookmarks, optionally filtered by a
free-text search. The query is folded the same way the stored search column
is, so matching is accent- and case-insensitive.

Parameters:
  - context: context.Context
  - userID: int64
  - search: string (raw query from the client; empty means no filter)
  - params: pagination.Params

Returns:
  - []*Bookmark: The page of results
  - pagination.Meta: Metadata for the response envelope
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, userID int64, search string, params pagination.Params) ([]*Bookmark, pagination.Meta, error) {
	bookmarks, total, err := service.bookmarks.ListByOwner(context, userID, textnorm.Fold(search), params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return bookmarks, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
Get returns one of the user's bookmarks by ID.

A bookmark owned by someone else is reported as NOT FOUND, so a caller
cannot use reads to probe which IDs exist.

Parameters:
  - context: context.Context
  - userID: int64
  - bookmarkID: int64

Returns:
  - *Bookmark: The bookmark
  - error: apperr.NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, userID, bookmarkID int64) (*Bookmark, error) {
	bookmark, err := service.bookmarks.FindByID(context, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, apperr.NotFound("Bookmark")
	}

	return bookmark, nil
}

/*
Create saves a new bookmark owned by the user.

Parameters:
  - context: context.Context
  - userID: int64
  - input: CreateInput (validated at the HTTP boundary)

Returns:
  - *Bookmark: The created bookmark with its generated ID
  - error: Persistence failures
*/
func (service *Service) Create(context context.Context, userID int64, input CreateInput) (*Bookmark, error) {
	bookmark := &Bookmark{
		UserID:      userID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
	}
	if err := service.bookmarks.Create(context, bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

/*
Update applies a partial edit to one of the user's bookmarks.

Unlike Get, a write against someone else's bookmark is FORBIDDEN: the
caller presented a valid identity but lacks rights to the resource.

Parameters:
  - context: context.Context
  - userID: int64
  - bookmarkID: int64
  - input: UpdateInput

Returns:
  - *Bookmark: The updated bookmark
  - error: apperr.NotFound, apperr.Forbidden, or persistence failures
*/
func (service *Service) Update(context context.Context, userID, bookmarkID int64, input UpdateInput) (*Bookmark, error) {
	bookmark, err := service.bookmarks.FindByID(context, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, apperr.Forbidden("Access to resources denied")
	}

	if input.Title != nil {
		bookmark.Title = *input.Title
	}
	if input.Link != nil {
		bookmark.Link = *input.Link
	}
	if input.Description != nil {
		bookmark.Description = input.Description
	}

	if err := service.bookmarks.Update(context, bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

/*
Delete removes one of the user's bookmarks.

Parameters:
  - context: context.Context
  - userID: int64
  - bookmarkID: int64

Returns:
  - error: apperr.NotFound, apperr.Forbidden, or persistence failures
*/
func (service *Service) Delete(context context.Context, userID, bookmarkID int64) error {
	bookmark, err := service.bookmarks.FindByID(context, bookmarkID)
	if err != nil {
		return err
	}
	if bookmark.UserID != userID {
		return apperr.Forbidden("Access to resources denied")
	}

	return service.bookmarks.Delete(context, bookmarkID)
}
