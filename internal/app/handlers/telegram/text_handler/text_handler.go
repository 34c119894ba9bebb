package text_handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/create_admin_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/create_quiz_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/forms"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	questionsService "github.com/IT-Nick/quizbot/internal/domain/questions/service"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
)

// TextHandler принимает текстовые сообщения и ведет по шагам активную
// форму чата. Сообщение вне формы получает подсказку про /start.
type TextHandler struct {
	authService     *auth.Service
	quizService     *quizzesService.Service
	questionService *questionsService.Service
	navMachine      *nav.Machine
	views           *render.Views
	createQuiz      *create_quiz_handler.CreateQuizHandler
	createAdmin     *create_admin_handler.CreateAdminHandler
	validate        *validator.Validate
}

// NewTextHandler возвращает структуру обработчика.
func NewTextHandler(
	authService *auth.Service,
	quizService *quizzesService.Service,
	questionService *questionsService.Service,
	navMachine *nav.Machine,
	views *render.Views,
	createQuiz *create_quiz_handler.CreateQuizHandler,
	createAdmin *create_admin_handler.CreateAdminHandler,
) *TextHandler {
	return &TextHandler{
		authService:     authService,
		quizService:     quizService,
		questionService: questionService,
		navMachine:      navMachine,
		views:           views,
		createQuiz:      createQuiz,
		createAdmin:     createAdmin,
		validate:        validator.New(),
	}
}

// Handle обрабатывает очередной текстовый ответ формы.
func (h *TextHandler) Handle(c telebot.Context) error {
	chatID := c.Chat().ID
	form := h.navMachine.Form(chatID)
	if form == nil || form.Done() {
		return c.Send(messages.UnknownText)
	}

	step := form.Current()
	text := c.Text()

	switch {
	case step.Choice:
		return c.Send(messages.FormChooseWithButton)
	case step.Optional && text == "-":
		form.Skip()
	case step.Number:
		if _, err := strconv.Atoi(text); err != nil {
			return c.Send(messages.FormNumberExpected)
		}
		form.Set(text)
	case step.Field == "email":
		if err := h.validate.Var(text, "email"); err != nil {
			return c.Send(messages.InvalidEmail)
		}
		form.Set(text)
	default:
		form.Set(text)
	}

	if !form.Done() {
		next := form.Current()
		if next.Choice {
			return h.sendChoice(c, form)
		}
		return c.Send(next.Prompt)
	}
	return h.finalize(c, form)
}

// sendChoice показывает кнопки для шага, значение которого нельзя
// ввести текстом.
func (h *TextHandler) sendChoice(c telebot.Context, form *forms.Form) error {
	switch form.Kind {
	case forms.KindCreateQuiz:
		sess := h.authService.Session(c.Chat().ID)
		if sess == nil {
			return c.Send(messages.NeedLogin)
		}
		return h.createQuiz.SendCategoryButtons(c, sess)
	case forms.KindCreateAdmin:
		return h.createAdmin.SendRoleButtons(c)
	}
	return c.Send(messages.UnknownText)
}

// finalize выполняет действие заполненной формы.
func (h *TextHandler) finalize(c telebot.Context, form *forms.Form) error {
	chatID := c.Chat().ID
	h.navMachine.SetForm(chatID, nil)

	switch form.Kind {
	case forms.KindLogin:
		return h.finishLogin(c, form)
	case forms.KindRegister:
		return h.finishRegister(c, form)
	case forms.KindAddQuestion, forms.KindUpdateQuestion:
		return h.finishQuestion(c, form)
	case forms.KindCreateQuiz:
		return h.finishCreateQuiz(c, form)
	}
	return c.Send(messages.UnknownText)
}

func (h *TextHandler) finishLogin(c telebot.Context, form *forms.Form) error {
	chatID := c.Chat().ID

	sess, err := h.authService.Login(h.navMachine.PageContext(chatID), chatID,
		form.Values["username"], form.Values["password"])
	if err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) || api.IsStatus(err, http.StatusForbidden) {
			if sendErr := c.Send(messages.LoginFailed); sendErr != nil {
				return sendErr
			}
			return h.views.LoginScreen(c)
		}
		return render.SendAPIError(c, err)
	}

	if err := h.navMachine.NavigateTo(chatID, sess.HomePage(), sess); err != nil {
		return err
	}
	name := sess.Username
	if name == "" {
		name = form.Values["username"]
	}
	if err := c.Send(fmt.Sprintf(messages.LoginSuccessFmt, name)); err != nil {
		return err
	}
	return h.views.Dashboard(c, sess)
}

func (h *TextHandler) finishRegister(c telebot.Context, form *forms.Form) error {
	chatID := c.Chat().ID

	err := h.authService.Register(h.navMachine.PageContext(chatID),
		form.Values["username"], form.Values["email"], form.Values["password"])
	if err != nil {
		return render.SendAPIError(c, err)
	}

	// Регистрация не выдает сессию: пользователь входит сам.
	if err := h.navMachine.NavigateTo(chatID, model.PageLogin, nil); err != nil {
		return err
	}
	if err := c.Send(messages.RegisterSuccess); err != nil {
		return err
	}
	return h.views.LoginScreen(c)
}

func (h *TextHandler) finishQuestion(c telebot.Context, form *forms.Form) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}

	payload := model.QuestionPayload{
		QuestionTitle:   form.Values["question_title"],
		Option1:         form.Values["option1"],
		Option2:         form.Values["option2"],
		Option3:         form.Values["option3"],
		Option4:         form.Values["option4"],
		RightAnswer:     form.Values["right_answer"],
		DifficultyLevel: form.Values["difficultylevel"],
		Category:        form.Values["category"],
	}

	ctx := h.navMachine.PageContext(chatID)
	var err error
	var done string
	if form.Kind == forms.KindUpdateQuestion {
		err = h.questionService.Update(ctx, sess.Token, form.QuestionID, payload)
		done = messages.QuestionUpdated
	} else {
		err = h.questionService.Add(ctx, sess.Token, payload)
		done = messages.QuestionAdded
	}
	if err != nil {
		return render.SendAPIError(c, err)
	}

	if err := c.Send(done); err != nil {
		return err
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageManageQuestions, sess); err != nil {
		return err
	}
	return h.views.ReloadQuestions(c, sess)
}

func (h *TextHandler) finishCreateQuiz(c telebot.Context, form *forms.Form) error {
	chatID := c.Chat().ID
	sess := h.authService.Session(chatID)
	if sess == nil {
		return c.Send(messages.NeedLogin)
	}

	numQuestions, err := strconv.Atoi(form.Values["numQ"])
	if err != nil {
		return c.Send(messages.FormNumberExpected)
	}

	err = h.quizService.Create(h.navMachine.PageContext(chatID), sess.Token,
		form.Values["category"], numQuestions, form.Values["title"])
	if err != nil {
		return render.SendAPIError(c, err)
	}

	if err := c.Send(messages.QuizCreated); err != nil {
		return err
	}
	if err := h.navMachine.NavigateTo(chatID, model.PageManageQuizzes, sess); err != nil {
		return err
	}
	return h.views.ManageQuizzes(c, sess)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *TextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
