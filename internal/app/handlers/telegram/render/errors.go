package render

import (
	"errors"
	"net/http"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
)

// SendAPIError показывает пользователю сообщение об ошибке бэкенда:
// текст из ответа API, если он есть, иначе общую формулировку.
func SendAPIError(c telebot.Context, err error) error {
	if api.IsConnectionError(err) {
		return c.Send(messages.ConnectionFailed)
	}
	if api.IsStatus(err, http.StatusUnauthorized) || api.IsStatus(err, http.StatusForbidden) {
		return c.Send(messages.Forbidden)
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return c.Send(apiErr.Message)
	}
	return c.Send(messages.ConnectionFailed)
}
