package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/medkeeper/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Пути из skipPaths (health check) доступны без токена.
// Совпадение user_id токена с userId запроса проверяют handlers.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			requestID := handlers.GetRequestID(r.Context())

			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "request_id", requestID)
				handlers.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format", "request_id", requestID)
				handlers.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid token format")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, strings.TrimSpace(parts[1]))
			if err != nil {
				logger.Warn("Invalid access token", "error", err, "request_id", requestID)
				handlers.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)

			logger.Debug("User authenticated", "user_id", claims.UserID, "request_id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
