// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linkhive/api/internal/platform/middleware"
	requestutil "github.com/linkhive/api/internal/platform/request"
	"github.com/linkhive/api/internal/platform/respond"
	"github.com/linkhive/api/internal/platform/validate"
)

// Handler exposes the authentication use cases over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the authentication HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes assembles the /auth sub-router.
//
// Signup, signin and the recovery endpoints are public; change-password
// requires a verified identity.
func (handler *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Post("/signup", handler.Signup)
	router.Post("/signin", handler.Signin)
	router.Post("/forgot-password", handler.ForgotPassword)
	router.Post("/reset-password", handler.ResetPassword)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/change-password", handler.ChangePassword)
	})

	return router
}

// # Request / Response Shapes

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// tokenResponse is the minimal bearer-token payload returned by signup.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// sessionResponse extends tokenResponse with the authenticated account.
type sessionResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

// messageResponse is used by endpoints with nothing to return but an outcome.
type messageResponse struct {
	Message string `json:"message"`
}

// # Endpoints

/*
Signup handles POST /auth/signup.

Responses:
  - 201: Bearer token for the freshly created account
  - 400: Validation failure
  - 403: Email already registered
*/
func (handler *Handler) Signup(writer http.ResponseWriter, request *http.Request) {
	var body signupRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, body.Email).
		Email(FieldEmail, body.Email).
		Required(FieldPassword, body.Password).
		MinLen(FieldPassword, body.Password, PasswordMinLength)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Signup(request.Context(), SignupInput{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tokenResponse{
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(handler.service.tokens.AccessTokenTTL().Seconds()),
	})
}

/*
Signin handles POST /auth/signin.

Responses:
  - 200: Bearer token plus the authenticated account
  - 400: Validation failure
  - 403: Credentials incorrect (identical for unknown email and wrong password)
*/
func (handler *Handler) Signin(writer http.ResponseWriter, request *http.Request) {
	var body signinRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, body.Email).
		Required(FieldPassword, body.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Signin(request.Context(), body.Email, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(handler.service.tokens.AccessTokenTTL().Seconds()),
		User:        session.User,
	})
}

/*
ForgotPassword handles POST /auth/forgot-password.

The response is identical whether or not the email has an account. In a
deployment with an outbound mailer, the token would be emailed; here it is
logged server-side only and the client just gets an acknowledgement.

Responses:
  - 200: Acknowledgement
  - 400: Validation failure
*/
func (handler *Handler) ForgotPassword(writer http.ResponseWriter, request *http.Request) {
	var body forgotPasswordRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, body.Email).Email(FieldEmail, body.Email)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.ForgotPassword(request.Context(), body.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messageResponse{
		Message: "If the email is registered, a reset link has been sent",
	})
}

/*
ResetPassword handles POST /auth/reset-password.

Responses:
  - 200: Password replaced
  - 400: Validation failure
  - 404: Token unknown or expired
*/
func (handler *Handler) ResetPassword(writer http.ResponseWriter, request *http.Request) {
	var body resetPasswordRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldToken, body.Token).
		Required(FieldNewPassword, body.NewPassword).
		MinLen(FieldNewPassword, body.NewPassword, PasswordMinLength)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ResetPassword(request.Context(), body.Token, body.NewPassword); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messageResponse{Message: "Password has been reset"})
}

/*
ChangePassword handles POST /auth/change-password (authenticated).

Responses:
  - 200: Password rotated
  - 400: Validation failure
  - 401: Missing/invalid bearer token
  - 403: Current password incorrect
*/
func (handler *Handler) ChangePassword(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body changePasswordRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldCurrentPassword, body.CurrentPassword).
		Required(FieldNewPassword, body.NewPassword).
		MinLen(FieldNewPassword, body.NewPassword, PasswordMinLength)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), userID, body.CurrentPassword, body.NewPassword); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messageResponse{Message: "Password has been changed"})
}
