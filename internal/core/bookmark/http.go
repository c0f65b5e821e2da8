// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package bookmark

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/linkhive/api/internal/platform/request"
	"github.com/linkhive/api/internal/platform/respond"
	"github.com/linkhive/api/internal/platform/validate"
	"github.com/linkhive/api/pkg/pagination"
)

// Handler exposes the bookmark use cases over HTTP. The parent router
// enforces authentication for this whole group.
type Handler struct {
	service *Service
}

// NewHandler creates the bookmark HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the /bookmarks sub-router.
func (handler *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/{id}", handler.Get)
	router.Patch("/{id}", handler.Update)
	router.Delete("/{id}", handler.Delete)

	return router
}

type createBookmarkRequest struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Description *string `json:"description"`
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

/*
List handles GET /bookmarks?q=&page=&limit=.

Responses:
  - 200: Paginated envelope of the caller's bookmarks
  - 401: Missing/invalid bearer token
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	search := request.URL.Query().Get(FieldQuery)
	params := pagination.FromRequest(request)

	bookmarks, meta, err := handler.service.List(request.Context(), userID, search, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookmarks, meta)
}

/*
Get handles GET /bookmarks/{id}.

Responses:
  - 200: The bookmark
  - 401: Missing/invalid bearer token
  - 404: Unknown ID, or a bookmark owned by someone else
*/
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID, err := requestutil.Int64Param(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmark, err := handler.service.Get(request.Context(), userID, bookmarkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookmark)
}

/*
Create handles POST /bookmarks.

Responses:
  - 201: The created bookmark
  - 400: Validation failure
  - 401: Missing/invalid bearer token
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body createBookmarkRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, body.Title).
		MaxLen(FieldTitle, body.Title, TitleMaxLength).
		Required(FieldLink, body.Link).
		URL(FieldLink, body.Link)
	if body.Description != nil {
		validator.MaxLen(FieldDescription, *body.Description, DescriptionMaxLength)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmark, err := handler.service.Create(request.Context(), userID, CreateInput{
		Title:       body.Title,
		Link:        body.Link,
		Description: body.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, bookmark)
}

/*
Update handles PATCH /bookmarks/{id}. Only the fields present in the body
are changed.

Responses:
  - 200: The updated bookmark
  - 400: Validation failure
  - 401: Missing/invalid bearer token
  - 403: Bookmark owned by someone else
  - 404: Unknown ID
*/
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID, err := requestutil.Int64Param(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body updateBookmarkRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if body.Title != nil {
		validator.Required(FieldTitle, *body.Title).MaxLen(FieldTitle, *body.Title, TitleMaxLength)
	}
	if body.Link != nil {
		validator.Required(FieldLink, *body.Link).URL(FieldLink, *body.Link)
	}
	if body.Description != nil {
		validator.MaxLen(FieldDescription, *body.Description, DescriptionMaxLength)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmark, err := handler.service.Update(request.Context(), userID, bookmarkID, UpdateInput{
		Title:       body.Title,
		Link:        body.Link,
		Description: body.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookmark)
}

/*
Delete handles DELETE /bookmarks/{id}.

Responses:
  - 204: Bookmark removed
  - 401: Missing/invalid bearer token
  - 403: Bookmark owned by someone else
  - 404: Unknown ID
*/
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID, err := requestutil.Int64Param(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), userID, bookmarkID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
