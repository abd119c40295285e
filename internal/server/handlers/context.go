package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для user_id из проверенного токена
	UserIDKey contextKey = "user_id"
	// RequestIDKey ключ для X-Request-ID
	RequestIDKey contextKey = "request_id"
)

// GetUserID извлекает user_id токена из контекста.
// false означает, что аутентификация отключена.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetRequestID извлекает request id из контекста
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
