package manage_quizzes_handler

import (
	"fmt"
	"strconv"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
)

// ManageQuizzesHandler — административный экран викторин: список
// с удалением через подтверждение.
type ManageQuizzesHandler struct {
	authService *auth.Service
	quizService *quizzesService.Service
	navMachine  *nav.Machine
	views       *render.Views
}

// NewManageQuizzesHandler возвращает структуру обработчика.
func NewManageQuizzesHandler(
	authService *auth.Service,
	quizService *quizzesService.Service,
	navMachine *nav.Machine,
	views *render.Views,
) *ManageQuizzesHandler {
	return &ManageQuizzesHandler{
		authService: authService,
		quizService: quizService,
		navMachine:  navMachine,
		views:       views,
	}
}

func (h *ManageQuizzesHandler) open(c telebot.Context) (*model.Session, error) {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return nil, c.Send(messages.NeedLogin)
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageManageQuizzes, sess); err != nil {
		return nil, c.Send(messages.Forbidden)
	}
	return sess, nil
}

// HandleOpen показывает список викторин.
func (h *ManageQuizzesHandler) HandleOpen(c telebot.Context) error {
	sess, err := h.open(c)
	if sess == nil {
		return err
	}
	return h.views.ManageQuizzes(c, sess)
}

// HandleDelete показывает подтверждение удаления.
// Данные callback: идентификатор и название викторины.
func (h *ManageQuizzesHandler) HandleDelete(c telebot.Context) error {
	sess := h.authService.Session(c.Chat().ID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}
	args := c.Args()
	if len(args) < 1 {
		return c.Send(messages.UnknownText)
	}
	id := args[0]
	title := id
	if len(args) > 1 {
		title = args[1]
	}

	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data(messages.BtnConfirm, "quiz_delete_yes", id),
		markup.Data(messages.BtnCancel, "quiz_delete_no"),
	))
	return c.EditOrSend(fmt.Sprintf(messages.ConfirmDeleteQuiz, title), markup)
}

// HandleDeleteConfirmed удаляет викторину и перечитывает список.
func (h *ManageQuizzesHandler) HandleDeleteConfirmed(c telebot.Context) error {
	sess, err := h.open(c)
	if sess == nil {
		return err
	}
	chatID := c.Chat().ID

	id, convErr := strconv.Atoi(c.Data())
	if convErr != nil {
		return c.Send(messages.UnknownText)
	}
	if err := h.quizService.Delete(h.navMachine.PageContext(chatID), sess.Token, id); err != nil {
		return render.SendAPIError(c, err)
	}
	if err := c.Send(messages.QuizDeleted); err != nil {
		return err
	}
	return h.views.ManageQuizzes(c, sess)
}

// HandleDeleteCancelled возвращает список без изменений.
func (h *ManageQuizzesHandler) HandleDeleteCancelled(c telebot.Context) error {
	sess, err := h.open(c)
	if sess == nil {
		return err
	}
	if err := c.Send(messages.DeleteCancelled); err != nil {
		return err
	}
	return h.views.ManageQuizzes(c, sess)
}
