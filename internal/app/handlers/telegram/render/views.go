package render

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	questionsService "github.com/IT-Nick/quizbot/internal/domain/questions/service"
	"github.com/IT-Nick/quizbot/internal/domain/quizflow"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
)

// questionsState — состояние экрана управления вопросами одного чата:
// загруженный каталог, выбранная категория и номер страницы.
type questionsState struct {
	Catalog  *questionsService.Catalog
	Category string
	Page     int
}

// Views отрисовывает страницы бота. Обработчики остаются тонкими:
// разбирают callback и зовут сюда.
type Views struct {
	Quizzes   *quizzesService.Service
	Questions *questionsService.Service
	Nav       *nav.Machine
	Attempts  *quizflow.Registry
	PageSize  int
	Log       zerolog.Logger

	mu     sync.Mutex
	qstate map[int64]*questionsState
}

// NewViews создает отрисовщик страниц.
func NewViews(
	quizzes *quizzesService.Service,
	questions *questionsService.Service,
	navMachine *nav.Machine,
	attempts *quizflow.Registry,
	pageSize int,
	log zerolog.Logger,
) *Views {
	return &Views{
		Quizzes:   quizzes,
		Questions: questions,
		Nav:       navMachine,
		Attempts:  attempts,
		PageSize:  pageSize,
		Log:       log.With().Str("component", "render").Logger(),
		qstate:    make(map[int64]*questionsState),
	}
}

// LoginScreen показывает приветствие с кнопками входа и регистрации.
func (v *Views) LoginScreen(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{}
	login := markup.Data(messages.BtnLogin, "login")
	register := markup.Data(messages.BtnRegister, "register")
	markup.Inline(markup.Row(login), markup.Row(register))
	return c.EditOrSend(messages.WelcomeAnonymous, markup)
}

// Dashboard показывает стартовую страницу по роли сессии.
func (v *Views) Dashboard(c telebot.Context, sess *model.Session) error {
	if sess.IsAdmin() {
		return v.AdminDashboard(c)
	}
	return v.UserDashboard(c, sess)
}

// UserDashboard показывает список викторин с кнопками запуска.
func (v *Views) UserDashboard(c telebot.Context, sess *model.Session) error {
	chatID := c.Chat().ID
	quizzes, err := v.Quizzes.List(v.Nav.PageContext(chatID), sess.Token)
	if err != nil {
		return SendAPIError(c, err)
	}

	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(quizzes)+1)
	for _, quiz := range quizzes {
		label := fmt.Sprintf(messages.QuizCardFmt, quiz.Title, quiz.QuestionCount())
		rows = append(rows, markup.Row(markup.Data(label, "start_quiz", strconv.Itoa(quiz.ID))))
	}
	if sess.IsAdmin() {
		rows = append(rows, markup.Row(markup.Data(messages.BtnManage, "to_dashboard")))
	}
	rows = append(rows, markup.Row(markup.Data(messages.BtnLogout, "logout")))
	markup.Inline(rows...)

	text := messages.DashboardNoQuiz
	if len(quizzes) > 0 {
		text = fmt.Sprintf(messages.DashboardUserFmt, len(quizzes))
	}
	return c.EditOrSend(text, markup)
}

// AdminDashboard показывает разделы администрирования.
func (v *Views) AdminDashboard(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(messages.BtnManageQuizzes, "manage_quizzes")),
		markup.Row(markup.Data(messages.BtnManageQsts, "manage_questions")),
		markup.Row(markup.Data(messages.BtnCreateAdmin, "create_admin_page")),
		markup.Row(markup.Data(messages.BtnLogout, "logout")),
	)
	return c.EditOrSend(messages.DashboardAdmin, markup)
}

// ManageQuizzes показывает список викторин с кнопками удаления.
func (v *Views) ManageQuizzes(c telebot.Context, sess *model.Session) error {
	chatID := c.Chat().ID
	quizzes, err := v.Quizzes.List(v.Nav.PageContext(chatID), sess.Token)
	if err != nil {
		return SendAPIError(c, err)
	}

	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(quizzes)+2)
	for _, quiz := range quizzes {
		label := fmt.Sprintf(messages.QuizCardFmt, quiz.Title, quiz.QuestionCount())
		rows = append(rows, markup.Row(
			markup.Data(label+" "+messages.BtnDelete, "quiz_delete", strconv.Itoa(quiz.ID), quiz.Title),
		))
	}
	rows = append(rows,
		markup.Row(markup.Data(messages.BtnCreateQuiz, "create_quiz_page")),
		markup.Row(markup.Data(messages.BtnBack, "to_dashboard")),
	)
	markup.Inline(rows...)
	return c.EditOrSend(fmt.Sprintf(messages.ManageQuizzesFmt, len(quizzes)), markup)
}

// ReloadQuestions перечитывает каталог вопросов с бэкенда и показывает
// первую страницу без фильтра. Вызывается при входе на экран и после
// каждой мутации.
func (v *Views) ReloadQuestions(c telebot.Context, sess *model.Session) error {
	chatID := c.Chat().ID
	catalog, err := v.Questions.LoadCatalog(v.Nav.PageContext(chatID), sess.Token)
	if err != nil {
		return SendAPIError(c, err)
	}

	v.mu.Lock()
	prev := v.qstate[chatID]
	state := &questionsState{Catalog: catalog, Category: questionsService.CategoryAll}
	// Фильтр переживает перезагрузку каталога, номер страницы — нет.
	if prev != nil {
		state.Category = prev.Category
	}
	v.qstate[chatID] = state
	v.mu.Unlock()

	return v.QuestionsPage(c)
}

// QuestionsPage показывает текущую страницу каталога с кнопками
// категорий, пагинации и действий над вопросами.
func (v *Views) QuestionsPage(c telebot.Context) error {
	chatID := c.Chat().ID
	v.mu.Lock()
	state := v.qstate[chatID]
	v.mu.Unlock()
	if state == nil {
		return c.Send(messages.UnknownText)
	}

	filtered := questionsService.FilterByCategory(state.Catalog.Questions, state.Category)
	page, totalPages := questionsService.PageSlice(filtered, state.Page, v.PageSize)

	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(page)+4)

	catRow := make([]telebot.Btn, 0, len(state.Catalog.Categories))
	for _, category := range state.Catalog.Categories {
		label := category
		if category == state.Category {
			label = "· " + category + " ·"
		}
		catRow = append(catRow, markup.Data(label, "qst_cat", category))
	}
	rows = append(rows, markup.Row(catRow...))

	for _, q := range page {
		rows = append(rows,
			markup.Row(markup.Data(q.QuestionTitle, "qst_edit", strconv.Itoa(q.ID))),
			markup.Row(
				markup.Data(messages.BtnUpdate, "qst_edit", strconv.Itoa(q.ID)),
				markup.Data(messages.BtnDelete, "qst_delete", strconv.Itoa(q.ID)),
			),
		)
	}

	if totalPages > 1 {
		var pager []telebot.Btn
		if state.Page > 0 {
			pager = append(pager, markup.Data(messages.BtnPrevPage, "qst_page", strconv.Itoa(state.Page-1)))
		}
		if state.Page < totalPages-1 {
			pager = append(pager, markup.Data(messages.BtnNextPage, "qst_page", strconv.Itoa(state.Page+1)))
		}
		rows = append(rows, markup.Row(pager...))
	}
	rows = append(rows,
		markup.Row(markup.Data(messages.BtnAddQuestion, "add_question_page")),
		markup.Row(markup.Data(messages.BtnBack, "to_dashboard")),
	)
	markup.Inline(rows...)

	text := fmt.Sprintf(messages.ManageQuestionsFmt, len(filtered), len(state.Catalog.Questions), state.Category)
	return c.EditOrSend(text, markup)
}

// SetQuestionCategory меняет фильтр категории и сбрасывает страницу.
func (v *Views) SetQuestionCategory(chatID int64, category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if state := v.qstate[chatID]; state != nil {
		state.Category = category
		state.Page = 0
	}
}

// SetQuestionPage меняет номер страницы каталога.
func (v *Views) SetQuestionPage(chatID int64, page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if state := v.qstate[chatID]; state != nil {
		state.Page = page
	}
}

// FindQuestion ищет вопрос в загруженном каталоге чата.
func (v *Views) FindQuestion(chatID int64, id int) *model.Question {
	v.mu.Lock()
	defer v.mu.Unlock()
	state := v.qstate[chatID]
	if state == nil {
		return nil
	}
	for i := range state.Catalog.Questions {
		if state.Catalog.Questions[i].ID == id {
			q := state.Catalog.Questions[i]
			return &q
		}
	}
	return nil
}

// Categories возвращает категории из загруженного каталога чата
// без синтетической «All».
func (v *Views) Categories(chatID int64) []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	state := v.qstate[chatID]
	if state == nil || len(state.Catalog.Categories) == 0 {
		return nil
	}
	return state.Catalog.Categories[1:]
}

// EmptyQuiz сообщает, что в викторине нет вопросов, с кнопкой возврата.
func (v *Views) EmptyQuiz(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(messages.BtnToDashboard, "to_dashboard")))
	return c.EditOrSend(messages.QuizEmpty, markup)
}

// QuizQuestion показывает текущий вопрос попытки: варианты ответа,
// точки навигации по вопросам и кнопки перемещения.
func (v *Views) QuizQuestion(c telebot.Context, attempt *quizflow.Attempt) error {
	question := attempt.Current()
	if question == nil {
		return v.EmptyQuiz(c)
	}

	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, 8)

	selected := attempt.Answers[question.ID]
	for i, option := range question.Options() {
		label := fmt.Sprintf("%d. %s", i+1, option)
		if option == selected {
			label = messages.QuizAnsweredMark + " " + label
		}
		rows = append(rows, markup.Row(
			markup.Data(label, "quiz_opt", strconv.Itoa(question.ID), strconv.Itoa(i)),
		))
	}

	if len(attempt.Questions) > 1 {
		dots := make([]telebot.Btn, 0, len(attempt.Questions))
		for i, q := range attempt.Questions {
			label := strconv.Itoa(i + 1)
			if attempt.Answered(q.ID) {
				label += messages.QuizAnsweredMark
			}
			dots = append(dots, markup.Data(label, "quiz_jump", strconv.Itoa(i)))
		}
		rows = append(rows, markup.Row(dots...))
	}

	var navRow []telebot.Btn
	if !attempt.IsFirst() {
		navRow = append(navRow, markup.Data(messages.BtnPrev, "quiz_prev"))
	}
	if !attempt.IsLast() {
		navRow = append(navRow, markup.Data(messages.BtnNext, "quiz_next"))
	} else if attempt.CanSubmit() {
		navRow = append(navRow, markup.Data(messages.BtnSubmit, "quiz_submit"))
	}
	if len(navRow) > 0 {
		rows = append(rows, markup.Row(navRow...))
	}
	rows = append(rows, markup.Row(markup.Data(messages.BtnExitQuiz, "quiz_exit")))
	markup.Inline(rows...)

	text := fmt.Sprintf(messages.QuizQuestionFmt,
		attempt.CurrentIndex+1, len(attempt.Questions), question.QuestionTitle)
	return c.EditOrSend(text, markup)
}

// QuizResult показывает итог завершенной попытки.
func (v *Views) QuizResult(c telebot.Context, attempt *quizflow.Attempt) error {
	percentage := attempt.Percentage()
	text := fmt.Sprintf(messages.QuizResultFmt,
		quizflow.Band(percentage), attempt.Score, len(attempt.Questions), percentage)

	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(messages.BtnRetake, "quiz_retake")),
		markup.Row(markup.Data(messages.BtnToDashboard, "to_dashboard")),
	)
	return c.EditOrSend(text, markup)
}

// DropQuestionsState забывает каталог чата, например при выходе из аккаунта.
func (v *Views) DropQuestionsState(chatID int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.qstate, chatID)
}
