package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORS allows credentialed cross-origin requests from the given origins.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:       []string{"Authorization", "Content-Type"},
		AllowCredentials:     true,
		MaxAge:               300,
		OptionsSuccessStatus: http.StatusNoContent,
	})
	return c.Handler
}
