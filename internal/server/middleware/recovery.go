package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/medkeeper/internal/server/handlers"
)

// RecoveryMiddleware создает middleware для восстановления после паники
// Перехватывает panic, логирует стек вызовов и возвращает 500 в формате {error, message}
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"request_id", handlers.GetRequestID(r.Context()),
						"stack", string(debug.Stack()),
					)

					// Детали паники клиенту не отдаем
					handlers.WriteError(w, http.StatusInternalServerError, handlers.ErrCodeInternal, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
