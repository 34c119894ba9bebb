package model

// Question вопрос викторины. Отсутствующие варианты ответа приходят
// пустыми и отфильтровываются при отображении. RightAnswer сервер
// в пользовательских выдачах не раскрывает, подсчет очков выполняется
// на его стороне.
type Question struct {
	ID              int    `json:"id"`
	QuestionTitle   string `json:"question_title"`
	Option1         string `json:"option1"`
	Option2         string `json:"option2"`
	Option3         string `json:"option3"`
	Option4         string `json:"option4"`
	RightAnswer     string `json:"right_answer,omitempty"`
	DifficultyLevel string `json:"difficultylevel"`
	Category        string `json:"category"`
}

// Options возвращает непустые варианты ответа в порядке option1..option4.
func (q *Question) Options() []string {
	var opts []string
	for _, opt := range []string{q.Option1, q.Option2, q.Option3, q.Option4} {
		if opt != "" {
			opts = append(opts, opt)
		}
	}
	return opts
}

// QuestionPayload плоское тело для создания и обновления вопроса
// (POST /admin/question/addQuestions, PUT /admin/question/update/{id}).
type QuestionPayload struct {
	QuestionTitle   string `json:"question_title"`
	Option1         string `json:"option1"`
	Option2         string `json:"option2"`
	Option3         string `json:"option3"`
	Option4         string `json:"option4"`
	RightAnswer     string `json:"right_answer"`
	DifficultyLevel string `json:"difficultylevel"`
	Category        string `json:"category"`
}
