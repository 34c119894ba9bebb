package model

// Page идентификатор текущего экрана чата. В один момент времени у чата
// активна ровно одна страница.
type Page string

const (
	PageLogin           Page = "login"
	PageRegister        Page = "register"
	PageUserDashboard   Page = "user_dashboard"
	PageAdminDashboard  Page = "admin_dashboard"
	PageCreateAdmin     Page = "create_admin"
	PageManageQuizzes   Page = "manage_quizzes"
	PageManageQuestions Page = "manage_questions"
	PageAddQuestion     Page = "add_question"
	PageUpdateQuestion  Page = "update_question"
	PageCreateQuiz      Page = "create_quiz"
	PageQuiz            Page = "quiz"
)

// AdminPages страницы, доступные только сессиям с ролью ADMIN.
// Переходы на них проверяются навигационной машиной (fail closed),
// а не только скрытием кнопок в интерфейсе.
var AdminPages = map[Page]bool{
	PageAdminDashboard:  true,
	PageCreateAdmin:     true,
	PageManageQuizzes:   true,
	PageManageQuestions: true,
	PageAddQuestion:     true,
	PageUpdateQuestion:  true,
	PageCreateQuiz:      true,
}

// PublicPages страницы, доступные без активной сессии.
var PublicPages = map[Page]bool{
	PageLogin:    true,
	PageRegister: true,
}
