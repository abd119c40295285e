package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Классы ошибок удалённого сервиса. Проверяются через errors.Is.
var (
	// ErrNotFound запись отсутствует на сервере (404)
	ErrNotFound = errors.New("remote record not found")

	// ErrValidation сервер отклонил запрос (4xx кроме 404, 408, 429); повтор не поможет
	ErrValidation = errors.New("request rejected by server")

	// ErrTransient временный сбой: 5xx, 408, 429 или ошибка транспорта
	ErrTransient = errors.New("server temporarily unavailable")
)

// Error is a non-2xx response of the record service.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is maps the status code onto ErrNotFound, ErrValidation or ErrTransient.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrTransient:
		return isTransientStatus(e.StatusCode)
	case ErrValidation:
		return e.StatusCode >= 400 && e.StatusCode < 500 &&
			e.StatusCode != http.StatusNotFound && !isTransientStatus(e.StatusCode)
	}
	return false
}

func isTransientStatus(code int) bool {
	return code >= 500 || code == http.StatusRequestTimeout || code == http.StatusTooManyRequests
}
