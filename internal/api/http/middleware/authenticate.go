package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/handler"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/response"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// Authenticator resolves an identity from an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates access tokens and injects the identity into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid token with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.authenticator.Authenticate(r.Context(), tokenFromRequest(r))
		if err != nil {
			handler.WriteError(w, r, err, m.logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetIdentityToContext(r.Context(), identity)))
	})
}

// tokenFromRequest prefers the Authorization header over the cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if c, err := r.Cookie(response.AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}
