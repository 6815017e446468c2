package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/response"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// AuthService defines user signup and signin operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (model.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (model.AuthResult, error)
}

// CookieOptions controls the access token cookie.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	cookie      CookieOptions
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, cookie CookieOptions, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// SignUp handles POST /auth/signup.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	h.logger.Debug("Auth handler: processing signup request",
		"email", req.Email)

	res, err := h.authService.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	h.respondWithToken(w, http.StatusCreated, res.AccessToken)
}

// SignIn handles POST /auth/signin.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	h.logger.Debug("Auth handler: processing signin request",
		"email", req.Email)

	res, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	h.respondWithToken(w, http.StatusOK, res.AccessToken)
}

func (h *Auth) respondWithToken(w http.ResponseWriter, status int, token string) {
	response.SetAccessTokenCookie(w, token, h.cookie.TTL, h.cookie.Secure)
	response.JSON(w, status, tokenResponse{AccessToken: token})
}
