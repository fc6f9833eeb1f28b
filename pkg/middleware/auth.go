package middleware

import (
	"net/http"
	"strings"

	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/utils"

	"go.uber.org/zap"
)

// AdminAuth guards the dashboard routes. It checks the bearer token
// against the in-process session store; there is nothing to look up
// remotely and no expiry to enforce.
func AdminAuth(auth usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" || token == authHeader {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			if !auth.Validate(token) {
				logger.Warn("Rejected admin request",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
