package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/handler"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// AccessGuard decides whether an identity may act on a bookmark.
type AccessGuard interface {
	CanAccess(ctx context.Context, identity model.Identity, bookmarkID int64) (bool, error)
}

// RequireBookmarkAccess lets a request through only when the caller owns the
// bookmark named by the {id} URL parameter. Must run after Authenticate.
type RequireBookmarkAccess struct {
	guard          AccessGuard
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewRequireBookmarkAccess(guard AccessGuard, contextManager model.ContextManager, logger *logger.Logger) *RequireBookmarkAccess {
	return &RequireBookmarkAccess{guard: guard, contextManager: contextManager, logger: logger}
}

func (m *RequireBookmarkAccess) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.contextManager.GetIdentityFromContext(r.Context())
		if !ok {
			handler.WriteError(w, r, model.ErrTokenMissing, m.logger)
			return
		}

		bookmarkID, err := handler.ParseID(chi.URLParam(r, handler.ParamID))
		if err != nil {
			handler.WriteError(w, r, err, m.logger)
			return
		}

		allowed, err := m.guard.CanAccess(r.Context(), identity, bookmarkID)
		if err != nil {
			handler.WriteError(w, r, err, m.logger)
			return
		}
		if !allowed {
			handler.WriteError(w, r, model.ErrForbidden, m.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}
