package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		write     bool
		wantLevel string
		wantMsg   string
	}{
		{name: "ok", status: http.StatusOK, write: true, wantLevel: "INFO", wantMsg: "HTTP request completed"},
		{name: "implicit ok", write: false, wantLevel: "INFO", wantMsg: "HTTP request completed"},
		{name: "client error", status: http.StatusNotFound, write: true, wantLevel: "INFO", wantMsg: "HTTP request completed"},
		{name: "server error", status: http.StatusInternalServerError, write: true, wantLevel: "ERROR", wantMsg: "HTTP request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogging(logger.NewWithWriter(&buf, 0, logger.FormatJSON))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.write {
					w.WriteHeader(tt.status)
				}
			})

			rec := httptest.NewRecorder()
			l.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			out := buf.String()
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, out, tt.wantMsg)
			assert.Contains(t, out, `"path":"/healthz"`)
			assert.Contains(t, out, `"method":"GET"`)
		})
	}
}
