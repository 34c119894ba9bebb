package model

// Quiz викторина, как ее отдает бэкенд в GET /user/quiz/all.
// Клиенту из списка вопросов нужно только их количество.
type Quiz struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// QuestionCount возвращает количество вопросов викторины.
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}

// SubmissionEntry один ответ в теле POST /user/quiz/submit/{quizId}.
// Для неотвеченных вопросов Response остается пустой строкой.
type SubmissionEntry struct {
	ID       int    `json:"id"`
	Response string `json:"response"`
}
