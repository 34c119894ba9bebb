package forms

import (
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/messages"
)

// Kind различает многошаговые формы, которые бот ведет через текстовые
// сообщения пользователя.
type Kind string

const (
	KindLogin          Kind = "login"
	KindRegister       Kind = "register"
	KindAddQuestion    Kind = "add_question"
	KindUpdateQuestion Kind = "update_question"
	KindCreateQuiz     Kind = "create_quiz"
	KindCreateAdmin    Kind = "create_admin"
)

// Step — один вопрос формы.
type Step struct {
	Field  string
	Prompt string
	// Optional разрешает пропустить шаг командой "-".
	Optional bool
	// Number требует целое число в ответе.
	Number bool
	// Choice означает, что значение приходит кнопкой, а не текстом.
	Choice bool
}

// Form — состояние заполняемой формы: текущий шаг и собранные значения.
type Form struct {
	Kind   Kind
	Steps  []Step
	Index  int
	Values map[string]string
	// QuestionID заполняется для формы обновления вопроса.
	QuestionID int
}

// New создает форму указанного типа с пустыми значениями.
func New(kind Kind) *Form {
	return &Form{
		Kind:   kind,
		Steps:  stepsFor(kind),
		Values: make(map[string]string),
	}
}

// Current возвращает текущий шаг.
func (f *Form) Current() Step {
	return f.Steps[f.Index]
}

// Set записывает значение текущего шага и переходит к следующему.
func (f *Form) Set(value string) {
	f.Values[f.Steps[f.Index].Field] = value
	f.Index++
}

// Skip пропускает необязательный шаг.
func (f *Form) Skip() {
	f.Values[f.Steps[f.Index].Field] = ""
	f.Index++
}

// Done сообщает, что все шаги заполнены.
func (f *Form) Done() bool {
	return f.Index >= len(f.Steps)
}

func stepsFor(kind Kind) []Step {
	switch kind {
	case KindLogin:
		return []Step{
			{Field: "username", Prompt: messages.LoginPromptUsername},
			{Field: "password", Prompt: messages.LoginPromptPassword},
		}
	case KindRegister:
		return []Step{
			{Field: "username", Prompt: messages.RegisterPromptUsername},
			{Field: "email", Prompt: messages.RegisterPromptEmail, Optional: true},
			{Field: "password", Prompt: messages.RegisterPromptPassword},
		}
	case KindAddQuestion, KindUpdateQuestion:
		return []Step{
			{Field: "question_title", Prompt: messages.FormPromptTitle},
			{Field: "option1", Prompt: fmt.Sprintf(messages.FormPromptOptionFmt, 1)},
			{Field: "option2", Prompt: fmt.Sprintf(messages.FormPromptOptionFmt, 2)},
			{Field: "option3", Prompt: fmt.Sprintf(messages.FormPromptOptionFmt, 3)},
			{Field: "option4", Prompt: fmt.Sprintf(messages.FormPromptOptionFmt, 4)},
			{Field: "right_answer", Prompt: messages.FormPromptRightAnswer},
			{Field: "difficultylevel", Prompt: messages.FormPromptDifficulty},
			{Field: "category", Prompt: messages.FormPromptCategory},
		}
	case KindCreateQuiz:
		return []Step{
			{Field: "title", Prompt: messages.FormPromptQuizTitle},
			{Field: "category", Prompt: messages.FormPromptQuizCat, Choice: true},
			{Field: "numQ", Prompt: messages.FormPromptNumQ, Number: true},
		}
	case KindCreateAdmin:
		return []Step{
			{Field: "username", Prompt: messages.RegisterPromptUsername},
			{Field: "email", Prompt: messages.RegisterPromptEmail, Optional: true},
			{Field: "password", Prompt: messages.RegisterPromptPassword},
			{Field: "role", Prompt: messages.FormPromptRole, Choice: true},
		}
	}
	return nil
}
