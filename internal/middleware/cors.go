package middleware

import (
	"net/http"
	"strings"

	"bazaar-be/internal/auth"
	"bazaar-be/internal/logger"
)

// CORS allows the storefront frontend at origin to call the API with credentials.
func CORS(origin string) func(http.Handler) http.Handler {
	exposed := strings.Join([]string{auth.SessionTokenHeader, logger.RequestIDHeader}, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Language, X-Request-ID, X-Device-ID")
			h.Set("Access-Control-Expose-Headers", exposed)
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
