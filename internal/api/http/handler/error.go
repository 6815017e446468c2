package handler

import (
	"errors"
	"net/http"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/response"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
)

func handleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		if len(reqErr.Fields) > 0 {
			response.ValidationError(w, reqErr.Message, reqErr.Fields)
			return
		}
		response.Error(w, http.StatusBadRequest, reqErr.Message)
		return
	}

	if status, _ := response.StatusFor(err); status >= http.StatusInternalServerError {
		log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}
	response.WriteError(w, err)
}

// WriteError writes err the way handlers do. Middleware uses it so request
// errors look the same everywhere.
func WriteError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	handleError(w, r, err, log)
}
