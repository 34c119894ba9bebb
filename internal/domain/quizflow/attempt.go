package quizflow

import (
	"sync"

	"github.com/IT-Nick/quizbot/internal/domain/messages"
	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Attempt — прохождение викторины одним пользователем: загруженные
// вопросы, позиция и карта ответов по идентификатору вопроса.
type Attempt struct {
	QuizID       int
	Questions    []model.Question
	CurrentIndex int
	Answers      map[int]string

	// Finished и Score заполняются после отправки ответов.
	Finished bool
	Score    int
}

// NewAttempt начинает прохождение с первого вопроса.
func NewAttempt(quizID int, questions []model.Question) *Attempt {
	return &Attempt{
		QuizID:    quizID,
		Questions: questions,
		Answers:   make(map[int]string),
	}
}

// Current возвращает текущий вопрос.
func (a *Attempt) Current() *model.Question {
	if len(a.Questions) == 0 {
		return nil
	}
	return &a.Questions[a.CurrentIndex]
}

// SelectOption записывает ответ на вопрос. Повторный выбор заменяет
// прежний ответ.
func (a *Attempt) SelectOption(questionID int, option string) {
	a.Answers[questionID] = option
}

// Next переходит к следующему вопросу, не выходя за последний.
func (a *Attempt) Next() {
	if a.CurrentIndex < len(a.Questions)-1 {
		a.CurrentIndex++
	}
}

// Previous переходит к предыдущему вопросу, не выходя за первый.
func (a *Attempt) Previous() {
	if a.CurrentIndex > 0 {
		a.CurrentIndex--
	}
}

// JumpTo переходит к вопросу по индексу. Индекс вне диапазона игнорируется.
func (a *Attempt) JumpTo(index int) {
	if index >= 0 && index < len(a.Questions) {
		a.CurrentIndex = index
	}
}

// IsFirst сообщает, что открыт первый вопрос.
func (a *Attempt) IsFirst() bool {
	return a.CurrentIndex == 0
}

// IsLast сообщает, что открыт последний вопрос.
func (a *Attempt) IsLast() bool {
	return a.CurrentIndex == len(a.Questions)-1
}

// Answered сообщает, дан ли ответ на вопрос.
func (a *Attempt) Answered(questionID int) bool {
	_, ok := a.Answers[questionID]
	return ok
}

// AnsweredCount возвращает число отвеченных вопросов.
func (a *Attempt) AnsweredCount() int {
	return len(a.Answers)
}

// CanSubmit разрешает отправку, когда отвечен текущий (последний)
// вопрос. Ответы на остальные вопросы не требуются: они уйдут пустыми.
func (a *Attempt) CanSubmit() bool {
	current := a.Current()
	if current == nil {
		return false
	}
	return a.Answered(current.ID)
}

// Submission собирает ответы для отправки: по одной записи на каждый
// вопрос в порядке загрузки, пустая строка для неотвеченных.
func (a *Attempt) Submission() []model.SubmissionEntry {
	entries := make([]model.SubmissionEntry, 0, len(a.Questions))
	for _, q := range a.Questions {
		entries = append(entries, model.SubmissionEntry{
			ID:       q.ID,
			Response: a.Answers[q.ID],
		})
	}
	return entries
}

// Complete фиксирует результат прохождения.
func (a *Attempt) Complete(score int) {
	a.Finished = true
	a.Score = score
}

// Percentage возвращает процент правильных ответов завершенной попытки.
func (a *Attempt) Percentage() int {
	if len(a.Questions) == 0 {
		return 0
	}
	return a.Score * 100 / len(a.Questions)
}

// Band возвращает оценочную реплику по проценту правильных ответов.
func Band(percentage int) string {
	switch {
	case percentage >= 90:
		return messages.BandExcellent
	case percentage >= 70:
		return messages.BandGood
	case percentage >= 50:
		return messages.BandPassing
	default:
		return messages.BandNeedsPractice
	}
}

// Registry хранит активные попытки по идентификатору чата.
type Registry struct {
	mu       sync.Mutex
	attempts map[int64]*Attempt
}

// NewRegistry создает пустой реестр попыток.
func NewRegistry() *Registry {
	return &Registry{attempts: make(map[int64]*Attempt)}
}

// Start регистрирует новую попытку, заменяя прежнюю, если была.
func (r *Registry) Start(chatID int64, quizID int, questions []model.Question) *Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempt := NewAttempt(quizID, questions)
	r.attempts[chatID] = attempt
	return attempt
}

// Get возвращает активную попытку чата или nil.
func (r *Registry) Get(chatID int64) *Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts[chatID]
}

// Drop удаляет попытку чата.
func (r *Registry) Drop(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, chatID)
}
