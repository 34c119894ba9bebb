package nav

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/IT-Nick/quizbot/internal/domain/forms"
	"github.com/IT-Nick/quizbot/internal/domain/model"
)

var (
	// ErrUnauthenticated — попытка перейти на защищенную страницу без сессии.
	ErrUnauthenticated = errors.New("nav: authentication required")
	// ErrForbidden — попытка перейти на админскую страницу без роли ADMIN.
	ErrForbidden = errors.New("nav: admin role required")
)

// State — навигационное состояние одного чата: текущая страница,
// выбранные объекты и активная форма. Контекст страницы отменяется
// при каждом переходе, обрывая запросы, начатые на прежней странице.
type State struct {
	Page             model.Page
	SelectedQuizID   int
	SelectedQuestion *model.Question
	Form             *forms.Form

	pageCtx context.Context
	cancel  context.CancelFunc
}

// Machine хранит навигационные состояния всех чатов.
type Machine struct {
	log zerolog.Logger

	mu     sync.Mutex
	states map[int64]*State
}

// NewMachine создает машину страниц.
func NewMachine(log zerolog.Logger) *Machine {
	return &Machine{
		log:    log.With().Str("component", "nav").Logger(),
		states: make(map[int64]*State),
	}
}

// NavigateTo переводит чат на страницу. Доступ проверяется по сессии:
// без сессии доступны только публичные страницы, админские страницы
// требуют роли ADMIN. При неизвестном наборе ролей доступ закрыт.
func (m *Machine) NavigateTo(chatID int64, page model.Page, sess *model.Session) error {
	if sess == nil && !model.PublicPages[page] {
		return ErrUnauthenticated
	}
	if model.AdminPages[page] && (sess == nil || !sess.IsAdmin()) {
		return ErrForbidden
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[chatID]
	if ok && state.cancel != nil {
		state.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.states[chatID] = &State{
		Page:    page,
		pageCtx: ctx,
		cancel:  cancel,
	}

	m.log.Debug().Int64("chat_id", chatID).Str("page", string(page)).Msg("navigated")
	return nil
}

// State возвращает состояние чата или nil, если переходов еще не было.
func (m *Machine) State(chatID int64) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[chatID]
}

// Page возвращает текущую страницу чата. Пустая строка — чат еще не начинал.
func (m *Machine) Page(chatID int64) model.Page {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		return state.Page
	}
	return ""
}

// PageContext возвращает контекст текущей страницы чата. Он отменяется
// при следующем переходе. Для чата без состояния возвращается фоновый
// контекст.
func (m *Machine) PageContext(chatID int64) context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok && state.pageCtx != nil {
		return state.pageCtx
	}
	return context.Background()
}

// SelectQuiz запоминает викторину, выбранную на текущей странице.
func (m *Machine) SelectQuiz(chatID int64, quizID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		state.SelectedQuizID = quizID
	}
}

// SelectQuestion запоминает вопрос, выбранный для редактирования.
func (m *Machine) SelectQuestion(chatID int64, q *model.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		state.SelectedQuestion = q
	}
}

// SetForm привязывает форму к текущей странице чата.
func (m *Machine) SetForm(chatID int64, form *forms.Form) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		state.Form = form
	}
}

// Form возвращает активную форму чата или nil.
func (m *Machine) Form(chatID int64) *forms.Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		return state.Form
	}
	return nil
}

// Reset удаляет состояние чата, отменяя контекст страницы.
func (m *Machine) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[chatID]; ok {
		if state.cancel != nil {
			state.cancel()
		}
		delete(m.states, chatID)
	}
}
