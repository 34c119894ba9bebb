package start_handler

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
)

// StartHandler обрабатывает команду /start: восстанавливает сессию из
// хранилища и показывает стартовую страницу либо экран входа.
type StartHandler struct {
	authService *auth.Service
	navMachine  *nav.Machine
	views       *render.Views
}

// NewStartHandler возвращает структуру обработчика.
func NewStartHandler(authService *auth.Service, navMachine *nav.Machine, views *render.Views) *StartHandler {
	return &StartHandler{
		authService: authService,
		navMachine:  navMachine,
		views:       views,
	}
}

// Handle метод, который будет использоваться для обработки команды /start.
func (h *StartHandler) Handle(c telebot.Context) error {
	chatID := c.Chat().ID

	sess, err := h.authService.Restore(context.Background(), chatID)
	if err != nil {
		return render.SendAPIError(c, err)
	}

	if sess == nil {
		if err := h.navMachine.NavigateTo(chatID, model.PageLogin, nil); err != nil {
			return err
		}
		return h.views.LoginScreen(c)
	}

	home := sess.HomePage()
	if err := h.navMachine.NavigateTo(chatID, home, sess); err != nil {
		return err
	}
	if sess.Username != "" {
		if err := c.Send(fmt.Sprintf(messages.WelcomeBackFmt, sess.Username)); err != nil {
			return err
		}
	}
	return h.views.Dashboard(c, sess)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
