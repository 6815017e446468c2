// Package response writes JSON bodies, error bodies and the access token cookie.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json; charset=utf-8"

	AccessTokenCookie = "access_token"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	StatusCode int               `json:"status_code"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an ErrorBody with status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{StatusCode: status, Message: message})
}

// ValidationError writes a 400 listing the offending fields.
func ValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Errors:     fields,
	})
}

// StatusFor maps a domain error to the HTTP status and the message shown to clients.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusForbidden, model.ErrInvalidCredentials.Error()
	case errors.Is(err, model.ErrDuplicateEmail):
		return http.StatusForbidden, model.ErrDuplicateEmail.Error()
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, model.ErrForbidden.Error()
	case errors.Is(err, model.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, model.ErrTokenInvalid), errors.Is(err, model.ErrTokenMissing):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// WriteError writes the mapped error response for err.
func WriteError(w http.ResponseWriter, err error) {
	status, message := StatusFor(err)
	Error(w, status, message)
}

// SetAccessTokenCookie attaches the token as an HttpOnly cookie living as long as the token.
func SetAccessTokenCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	})
}
