package auth_handler

import (
	"context"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/forms"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	"github.com/IT-Nick/quizbot/internal/domain/quizflow"
)

// AuthHandler обрабатывает кнопки входа, регистрации и выхода.
// Сами учетные данные собирает текстовая форма, здесь только запуск.
type AuthHandler struct {
	authService *auth.Service
	navMachine  *nav.Machine
	attempts    *quizflow.Registry
	views       *render.Views
}

// NewAuthHandler возвращает структуру обработчика.
func NewAuthHandler(
	authService *auth.Service,
	navMachine *nav.Machine,
	attempts *quizflow.Registry,
	views *render.Views,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		navMachine:  navMachine,
		attempts:    attempts,
		views:       views,
	}
}

// HandleLogin запускает форму входа.
func (h *AuthHandler) HandleLogin(c telebot.Context) error {
	chatID := c.Chat().ID
	if err := h.navMachine.NavigateTo(chatID, model.PageLogin, nil); err != nil {
		return err
	}
	form := forms.New(forms.KindLogin)
	h.navMachine.SetForm(chatID, form)
	return c.Send(form.Current().Prompt)
}

// HandleRegister запускает форму регистрации.
func (h *AuthHandler) HandleRegister(c telebot.Context) error {
	chatID := c.Chat().ID
	if err := h.navMachine.NavigateTo(chatID, model.PageRegister, nil); err != nil {
		return err
	}
	form := forms.New(forms.KindRegister)
	h.navMachine.SetForm(chatID, form)
	return c.Send(form.Current().Prompt)
}

// HandleLogout завершает сессию и возвращает на экран входа.
// Работает с любой страницы.
func (h *AuthHandler) HandleLogout(c telebot.Context) error {
	chatID := c.Chat().ID

	if err := h.authService.Logout(context.Background(), chatID); err != nil {
		return render.SendAPIError(c, err)
	}
	h.attempts.Drop(chatID)
	h.views.DropQuestionsState(chatID)
	h.navMachine.Reset(chatID)

	if err := h.navMachine.NavigateTo(chatID, model.PageLogin, nil); err != nil {
		return err
	}
	if err := c.Send(messages.LoggedOut); err != nil {
		return err
	}
	return h.views.LoginScreen(c)
}
