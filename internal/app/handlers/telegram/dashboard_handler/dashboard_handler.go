package dashboard_handler

import (
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	"github.com/IT-Nick/quizbot/internal/domain/quizflow"
)

// DashboardHandler возвращает пользователя на стартовую страницу его роли.
type DashboardHandler struct {
	authService *auth.Service
	navMachine  *nav.Machine
	attempts    *quizflow.Registry
	views       *render.Views
}

// NewDashboardHandler возвращает структуру обработчика.
func NewDashboardHandler(
	authService *auth.Service,
	navMachine *nav.Machine,
	attempts *quizflow.Registry,
	views *render.Views,
) *DashboardHandler {
	return &DashboardHandler{
		authService: authService,
		navMachine:  navMachine,
		attempts:    attempts,
		views:       views,
	}
}

// Handle обрабатывает кнопку возврата в меню. Активная попытка
// викторины при этом сбрасывается.
func (h *DashboardHandler) Handle(c telebot.Context) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}

	h.attempts.Drop(chatID)
	if err := h.navMachine.NavigateTo(chatID, sess.HomePage(), sess); err != nil {
		return err
	}
	return h.views.Dashboard(c, sess)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *DashboardHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
