package api

import (
	"errors"
	"fmt"
)

// ErrConnection возвращается, когда запрос к бэкенду не дошел до сервера
// (сеть недоступна, таймаут, DNS). Хендлеры показывают на него общее
// сообщение о недоступности сервера.
var ErrConnection = errors.New("api: connection failed")

// Error — ошибка уровня HTTP: бэкенд ответил, но со статусом вне 2xx.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// IsStatus сообщает, является ли err ошибкой API с указанным HTTP-статусом.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsConnectionError сообщает, что запрос не дошел до бэкенда.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}
