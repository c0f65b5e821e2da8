// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/linkhive/api/internal/platform/request"
	"github.com/linkhive/api/internal/platform/respond"
	"github.com/linkhive/api/internal/platform/validate"
	"github.com/linkhive/api/internal/users/auth"
)

// Handler exposes the profile use cases over HTTP. All routes operate on
// "me" — the identity inside the verified token.
type Handler struct {
	service *Service
}

// NewHandler creates the account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the /users sub-router. The parent router already
// enforces authentication for this whole group.
func (handler *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Get("/me", handler.GetProfile)
	router.Patch("/me", handler.UpdateProfile)
	router.Delete("/me", handler.DeleteAccount)

	return router
}

type updateProfileRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

/*
GetProfile handles GET /users/me.

Responses:
  - 200: The authenticated user's profile (password hash never serialized)
  - 401: Missing/invalid bearer token
*/
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
UpdateProfile handles PATCH /users/me. Only the fields present in the body
are changed.

Responses:
  - 200: The updated profile
  - 400: Validation failure
  - 401: Missing/invalid bearer token
  - 403: New email already registered
*/
func (handler *Handler) UpdateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body updateProfileRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if body.Email != nil {
		validator.Required(auth.FieldEmail, *body.Email).Email(auth.FieldEmail, *body.Email)
	}
	if body.FirstName != nil {
		validator.MaxLen(auth.FieldFirstName, *body.FirstName, 100)
	}
	if body.LastName != nil {
		validator.MaxLen(auth.FieldLastName, *body.LastName, 100)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateProfile(request.Context(), userID, UpdateInput{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DeleteAccount handles DELETE /users/me.

Responses:
  - 204: Account closed
  - 401: Missing/invalid bearer token
*/
func (handler *Handler) DeleteAccount(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAccount(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
