package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"seedco-api/pkg/utils"
)

// CORS builds the allow-list handler from config.
func CORS(cfg utils.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
