package middlewares

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// CORSMiddleware allows browser pages on the given origins to read the
// status endpoints. Cookies are only accepted from an explicit origin list;
// an empty list or "*" opens the endpoints to any origin without credentials.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	anyOrigin := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: !anyOrigin,
		MaxAge:           300,
	})
}
