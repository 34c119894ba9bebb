package manage_questions_handler

import (
	"fmt"
	"strconv"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/forms"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	questionsService "github.com/IT-Nick/quizbot/internal/domain/questions/service"
)

// ManageQuestionsHandler — административный экран банка вопросов:
// фильтр по категории, постраничный список, изменение и удаление.
type ManageQuestionsHandler struct {
	authService     *auth.Service
	questionService *questionsService.Service
	navMachine      *nav.Machine
	views           *render.Views
}

// NewManageQuestionsHandler возвращает структуру обработчика.
func NewManageQuestionsHandler(
	authService *auth.Service,
	questionService *questionsService.Service,
	navMachine *nav.Machine,
	views *render.Views,
) *ManageQuestionsHandler {
	return &ManageQuestionsHandler{
		authService:     authService,
		questionService: questionService,
		navMachine:      navMachine,
		views:           views,
	}
}

func (h *ManageQuestionsHandler) open(c telebot.Context) (*model.Session, error) {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return nil, c.Send(messages.NeedLogin)
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageManageQuestions, sess); err != nil {
		return nil, c.Send(messages.Forbidden)
	}
	return sess, nil
}

// HandleOpen загружает каталог заново и показывает первую страницу.
func (h *ManageQuestionsHandler) HandleOpen(c telebot.Context) error {
	sess, err := h.open(c)
	if sess == nil {
		return err
	}
	return h.views.ReloadQuestions(c, sess)
}

// HandleCategory применяет фильтр категории. Список фильтруется по уже
// загруженному каталогу, без похода на бэкенд.
func (h *ManageQuestionsHandler) HandleCategory(c telebot.Context) error {
	if sess := h.authService.Session(c.Chat().ID); sess == nil {
		return c.Send(messages.NeedLogin)
	}
	h.views.SetQuestionCategory(c.Chat().ID, c.Data())
	return h.views.QuestionsPage(c)
}

// HandlePage листает страницы каталога.
func (h *ManageQuestionsHandler) HandlePage(c telebot.Context) error {
	if sess := h.authService.Session(c.Chat().ID); sess == nil {
		return c.Send(messages.NeedLogin)
	}
	page, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.UnknownText)
	}
	h.views.SetQuestionPage(c.Chat().ID, page)
	return h.views.QuestionsPage(c)
}

// HandleEdit открывает форму изменения вопроса с текущими значениями
// в подсказках.
func (h *ManageQuestionsHandler) HandleEdit(c telebot.Context) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}
	id, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.UnknownText)
	}
	question := h.views.FindQuestion(chatID, id)
	if question == nil {
		return c.Send(messages.UnknownText)
	}

	if err := h.navMachine.NavigateTo(chatID, model.PageUpdateQuestion, sess); err != nil {
		return c.Send(messages.Forbidden)
	}
	h.navMachine.SelectQuestion(chatID, question)

	form := forms.New(forms.KindUpdateQuestion)
	form.QuestionID = id
	h.navMachine.SetForm(chatID, form)

	if err := c.Send(fmt.Sprintf("Изменение вопроса «%s». Текущие значения можно повторить копированием.", question.QuestionTitle)); err != nil {
		return err
	}
	return c.Send(form.Current().Prompt)
}

// HandleDelete показывает подтверждение удаления вопроса.
func (h *ManageQuestionsHandler) HandleDelete(c telebot.Context) error {
	chatID := c.Chat().ID
	if sess := h.authService.Session(chatID); sess == nil {
		return c.Send(messages.NeedLogin)
	}
	id, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.UnknownText)
	}
	title := c.Data()
	if question := h.views.FindQuestion(chatID, id); question != nil {
		title = question.QuestionTitle
	}

	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data(messages.BtnConfirm, "qst_delete_yes", c.Data()),
		markup.Data(messages.BtnCancel, "qst_delete_no"),
	))
	return c.EditOrSend(fmt.Sprintf(messages.ConfirmDeleteQst, title), markup)
}

// HandleDeleteConfirmed удаляет вопрос и перечитывает каталог.
func (h *ManageQuestionsHandler) HandleDeleteConfirmed(c telebot.Context) error {
	sess, err := h.open(c)
	if sess == nil {
		return err
	}
	chatID := c.Chat().ID

	id, convErr := strconv.Atoi(c.Data())
	if convErr != nil {
		return c.Send(messages.UnknownText)
	}
	if err := h.questionService.Delete(h.navMachine.PageContext(chatID), sess.Token, id); err != nil {
		return render.SendAPIError(c, err)
	}
	if err := c.Send(messages.QuestionDeleted); err != nil {
		return err
	}
	return h.views.ReloadQuestions(c, sess)
}

// HandleDeleteCancelled возвращает список без изменений.
func (h *ManageQuestionsHandler) HandleDeleteCancelled(c telebot.Context) error {
	sess, err := h.open(c)
	if sess == nil {
		return err
	}
	if err := c.Send(messages.DeleteCancelled); err != nil {
		return err
	}
	return h.views.QuestionsPage(c)
}

// HandleAdd открывает форму добавления вопроса.
func (h *ManageQuestionsHandler) HandleAdd(c telebot.Context) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageAddQuestion, sess); err != nil {
		return c.Send(messages.Forbidden)
	}
	form := forms.New(forms.KindAddQuestion)
	h.navMachine.SetForm(chatID, form)
	return c.Send(form.Current().Prompt)
}
