package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
)

// Logging logs method, path, status and duration for each request.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", chimiddleware.GetReqID(r.Context()),
		}
		if status >= http.StatusInternalServerError {
			l.logger.Error("HTTP request failed", args...)
			return
		}
		l.logger.Info("HTTP request completed", args...)
	})
}
