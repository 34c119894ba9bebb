package create_quiz_handler

import (
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/forms"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	questionsService "github.com/IT-Nick/quizbot/internal/domain/questions/service"
)

// CreateQuizHandler — форма сборки новой викторины: название текстом,
// категория кнопкой, число вопросов текстом.
type CreateQuizHandler struct {
	authService     *auth.Service
	questionService *questionsService.Service
	navMachine      *nav.Machine
	views           *render.Views
}

// NewCreateQuizHandler возвращает структуру обработчика.
func NewCreateQuizHandler(
	authService *auth.Service,
	questionService *questionsService.Service,
	navMachine *nav.Machine,
	views *render.Views,
) *CreateQuizHandler {
	return &CreateQuizHandler{
		authService:     authService,
		questionService: questionService,
		navMachine:      navMachine,
		views:           views,
	}
}

// HandleOpen запускает форму создания викторины.
func (h *CreateQuizHandler) HandleOpen(c telebot.Context) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageCreateQuiz, sess); err != nil {
		return c.Send(messages.Forbidden)
	}
	form := forms.New(forms.KindCreateQuiz)
	h.navMachine.SetForm(chatID, form)
	return c.Send(form.Current().Prompt)
}

// HandleCategory принимает категорию, выбранную кнопкой, и переходит
// к следующему шагу формы.
func (h *CreateQuizHandler) HandleCategory(c telebot.Context) error {
	chatID := c.Chat().ID
	if sess := h.authService.Session(chatID); sess == nil {
		return c.Send(messages.NeedLogin)
	}
	form := h.navMachine.Form(chatID)
	if form == nil || form.Kind != forms.KindCreateQuiz || !form.Current().Choice {
		return c.Send(messages.UnknownText)
	}

	form.Set(c.Data())
	return c.Send(form.Current().Prompt)
}

// SendCategoryButtons показывает категории, доступные для викторины.
// Используется текстовой формой, когда очередь доходит до шага выбора.
func (h *CreateQuizHandler) SendCategoryButtons(c telebot.Context, sess *model.Session) error {
	chatID := c.Chat().ID
	categories := h.views.Categories(chatID)
	if len(categories) == 0 {
		catalog, err := h.questionService.LoadCatalog(h.navMachine.PageContext(chatID), sess.Token)
		if err != nil {
			return render.SendAPIError(c, err)
		}
		categories = catalog.Categories[1:]
	}

	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, markup.Row(markup.Data(category, "cq_cat", category)))
	}
	markup.Inline(rows...)
	return c.Send(messages.FormPromptQuizCat, markup)
}
