package create_admin_handler

import (
	"fmt"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/forms"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
)

// CreateAdminHandler — форма создания учетной записи с ролью.
// Данные собирает текстовая форма, роль выбирается кнопкой на
// последнем шаге, после чего запись создается.
type CreateAdminHandler struct {
	authService *auth.Service
	navMachine  *nav.Machine
	views       *render.Views
}

// NewCreateAdminHandler возвращает структуру обработчика.
func NewCreateAdminHandler(authService *auth.Service, navMachine *nav.Machine, views *render.Views) *CreateAdminHandler {
	return &CreateAdminHandler{
		authService: authService,
		navMachine:  navMachine,
		views:       views,
	}
}

// HandleOpen запускает форму создания пользователя.
func (h *CreateAdminHandler) HandleOpen(c telebot.Context) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageCreateAdmin, sess); err != nil {
		return c.Send(messages.Forbidden)
	}
	form := forms.New(forms.KindCreateAdmin)
	h.navMachine.SetForm(chatID, form)
	return c.Send(form.Current().Prompt)
}

// SendRoleButtons показывает выбор роли для создаваемой записи.
func (h *CreateAdminHandler) SendRoleButtons(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data(model.RoleUser, "ca_role", model.RoleUser),
		markup.Data(model.RoleAdmin, "ca_role", model.RoleAdmin),
	))
	return c.Send(messages.FormPromptRole, markup)
}

// HandleRole принимает роль и создает учетную запись.
func (h *CreateAdminHandler) HandleRole(c telebot.Context) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}
	form := h.navMachine.Form(chatID)
	if form == nil || form.Kind != forms.KindCreateAdmin || !form.Current().Choice {
		return c.Send(messages.UnknownText)
	}

	form.Set(c.Data())

	err := h.authService.RegisterPrivileged(
		h.navMachine.PageContext(chatID), chatID,
		form.Values["username"], form.Values["email"], form.Values["password"], form.Values["role"])
	if err != nil {
		h.navMachine.SetForm(chatID, nil)
		return render.SendAPIError(c, err)
	}
	h.navMachine.SetForm(chatID, nil)

	if err := c.Send(fmt.Sprintf(messages.AdminUserCreatedFmt, form.Values["username"], form.Values["role"])); err != nil {
		return err
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageAdminDashboard, sess); err != nil {
		return err
	}
	return h.views.AdminDashboard(c)
}
