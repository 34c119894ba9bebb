package quiz_handler

import (
	"strconv"

	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	"github.com/IT-Nick/quizbot/internal/domain/quizflow"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
)

// QuizHandler ведет прохождение викторины: запуск, выбор ответов,
// перемещение по вопросам, отправка и пересдача.
type QuizHandler struct {
	authService *auth.Service
	quizService *quizzesService.Service
	navMachine  *nav.Machine
	attempts    *quizflow.Registry
	views       *render.Views
}

// NewQuizHandler возвращает структуру обработчика.
func NewQuizHandler(
	authService *auth.Service,
	quizService *quizzesService.Service,
	navMachine *nav.Machine,
	attempts *quizflow.Registry,
	views *render.Views,
) *QuizHandler {
	return &QuizHandler{
		authService: authService,
		quizService: quizService,
		navMachine:  navMachine,
		attempts:    attempts,
		views:       views,
	}
}

// session достает сессию чата, отвечая подсказкой о входе, если ее нет.
func (h *QuizHandler) session(c telebot.Context) (*model.Session, bool) {
	sess := h.authService.Session(c.Chat().ID)
	if sess == nil {
		_ = c.Send(messages.NeedLogin)
		return nil, false
	}
	return sess, true
}

// HandleStart загружает вопросы викторины и открывает первый вопрос.
func (h *QuizHandler) HandleStart(c telebot.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return nil
	}
	chatID := c.Chat().ID

	quizID, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.UnknownText)
	}

	if err := h.navMachine.NavigateTo(chatID, model.PageQuiz, sess); err != nil {
		return err
	}
	h.navMachine.SelectQuiz(chatID, quizID)

	questions, err := h.quizService.Questions(h.navMachine.PageContext(chatID), sess.Token, quizID)
	if err != nil {
		return render.SendAPIError(c, err)
	}
	attempt := h.attempts.Start(chatID, quizID, questions)
	return h.views.QuizQuestion(c, attempt)
}

// HandleOption записывает выбранный вариант ответа.
// Данные callback: идентификатор вопроса и индекс варианта.
func (h *QuizHandler) HandleOption(c telebot.Context) error {
	if _, ok := h.session(c); !ok {
		return nil
	}
	attempt := h.attempts.Get(c.Chat().ID)
	if attempt == nil {
		return c.Send(messages.UnknownText)
	}

	args := c.Args()
	if len(args) != 2 {
		return c.Send(messages.UnknownText)
	}
	questionID, err1 := strconv.Atoi(args[0])
	optionIndex, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return c.Send(messages.UnknownText)
	}

	question := attempt.Current()
	if question == nil || question.ID != questionID {
		// Старое сообщение с уже перелистнутым вопросом.
		return h.views.QuizQuestion(c, attempt)
	}
	options := question.Options()
	if optionIndex < 0 || optionIndex >= len(options) {
		return c.Send(messages.UnknownText)
	}

	attempt.SelectOption(questionID, options[optionIndex])
	return h.views.QuizQuestion(c, attempt)
}

// HandlePrev открывает предыдущий вопрос.
func (h *QuizHandler) HandlePrev(c telebot.Context) error {
	return h.step(c, func(a *quizflow.Attempt) { a.Previous() })
}

// HandleNext открывает следующий вопрос.
func (h *QuizHandler) HandleNext(c telebot.Context) error {
	return h.step(c, func(a *quizflow.Attempt) { a.Next() })
}

// HandleJump открывает вопрос по номеру из точек навигации.
func (h *QuizHandler) HandleJump(c telebot.Context) error {
	index, err := strconv.Atoi(c.Data())
	if err != nil {
		return c.Send(messages.UnknownText)
	}
	return h.step(c, func(a *quizflow.Attempt) { a.JumpTo(index) })
}

func (h *QuizHandler) step(c telebot.Context, move func(*quizflow.Attempt)) error {
	if _, ok := h.session(c); !ok {
		return nil
	}
	attempt := h.attempts.Get(c.Chat().ID)
	if attempt == nil {
		return c.Send(messages.UnknownText)
	}
	move(attempt)
	return h.views.QuizQuestion(c, attempt)
}

// HandleSubmit отправляет ответы на бэкенд и показывает результат.
// Неотвеченные вопросы уходят пустыми строками.
func (h *QuizHandler) HandleSubmit(c telebot.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return nil
	}
	chatID := c.Chat().ID
	attempt := h.attempts.Get(chatID)
	if attempt == nil {
		return c.Send(messages.UnknownText)
	}
	if !attempt.CanSubmit() {
		return h.views.QuizQuestion(c, attempt)
	}

	score, err := h.quizService.Submit(
		h.navMachine.PageContext(chatID), sess.Token, attempt.QuizID, attempt.Submission())
	if err != nil {
		return render.SendAPIError(c, err)
	}

	attempt.Complete(score)
	if err := c.Send(messages.QuizSubmitted); err != nil {
		return err
	}
	return h.views.QuizResult(c, attempt)
}

// HandleRetake начинает ту же викторину заново со свежими вопросами.
func (h *QuizHandler) HandleRetake(c telebot.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return nil
	}
	chatID := c.Chat().ID
	attempt := h.attempts.Get(chatID)
	if attempt == nil {
		return c.Send(messages.UnknownText)
	}

	quizID := attempt.QuizID
	if err := h.navMachine.NavigateTo(chatID, model.PageQuiz, sess); err != nil {
		return err
	}
	questions, err := h.quizService.Questions(h.navMachine.PageContext(chatID), sess.Token, quizID)
	if err != nil {
		return render.SendAPIError(c, err)
	}
	fresh := h.attempts.Start(chatID, quizID, questions)
	return h.views.QuizQuestion(c, fresh)
}

// HandleExit прерывает попытку и возвращает в меню.
func (h *QuizHandler) HandleExit(c telebot.Context) error {
	sess, ok := h.session(c)
	if !ok {
		return nil
	}
	chatID := c.Chat().ID
	h.attempts.Drop(chatID)
	if err := h.navMachine.NavigateTo(chatID, sess.HomePage(), sess); err != nil {
		return err
	}
	return h.views.Dashboard(c, sess)
}
