package messages

// Тексты сообщений и кнопок бота. Ключи кнопок привязаны к Unique
// обработчиков, не следует менять их без изменения регистрации в app.
const (
	WelcomeAnonymous = "Добро пожаловать в QuizMaster!\nВойдите или зарегистрируйтесь, чтобы получить доступ к викторинам."
	WelcomeBackFmt   = "С возвращением, %s!"

	LoginPromptUsername    = "Введите имя пользователя:"
	LoginPromptPassword    = "Введите пароль:"
	LoginSuccessFmt        = "Вход выполнен! Здравствуйте, %s."
	LoginFailed            = "Неверные учетные данные."
	RegisterPromptUsername = "Придумайте имя пользователя:"
	RegisterPromptEmail    = "Укажите email (или «-», чтобы пропустить):"
	RegisterPromptPassword = "Придумайте пароль:"
	RegisterSuccess        = "Регистрация прошла успешно! Теперь войдите со своими учетными данными."
	RegisterFailed         = "Не удалось зарегистрироваться."
	InvalidEmail           = "Некорректный email. Попробуйте еще раз (или «-», чтобы пропустить):"
	LoggedOut              = "Вы вышли из аккаунта."

	ConnectionFailed = "Нет соединения с сервером. Попробуйте еще раз."
	Forbidden        = "У вас нет прав для этого действия."
	NeedLogin        = "Сначала войдите в аккаунт."

	DashboardUserFmt  = "📚 Доступные викторины: %d\nВыберите викторину, чтобы начать."
	DashboardNoQuiz   = "Пока нет доступных викторин. Загляните позже!"
	DashboardAdmin    = "⚙️ Панель администратора\nВыберите раздел."
	QuizCardFmt       = "%s — вопросов: %d"
	QuizLoading       = "Загружаем вопросы..."
	QuizEmpty         = "В этой викторине пока нет вопросов."
	QuizQuestionFmt   = "❓ Вопрос %d из %d\n\n%s"
	QuizAnsweredMark  = "✅"
	QuizSubmitted     = "Викторина отправлена!"
	QuizResultFmt     = "Викторина завершена!\n\n%s\nВаш результат: %d из %d (%d%%)"
	BandExcellent     = "🎉 Блестящий результат!"
	BandGood          = "✨ Отличная работа!"
	BandPassing       = "👍 Неплохо!"
	BandNeedsPractice = "📚 Стоит еще потренироваться."

	ManageQuizzesFmt    = "Викторины (%d)\nУдаление необратимо, потребуется подтверждение."
	ManageQuestionsFmt  = "Вопросы (%d из %d) — категория: %s"
	ConfirmDeleteQuiz   = "Удалить викторину «%s»?"
	ConfirmDeleteQst    = "Удалить вопрос «%s»?"
	DeleteCancelled     = "Удаление отменено."
	QuizDeleted         = "Викторина удалена."
	QuestionDeleted     = "Вопрос удален."
	QuestionAdded       = "Вопрос добавлен!"
	QuestionUpdated     = "Вопрос обновлен!"
	QuizCreated         = "Викторина создана!"
	AdminUserCreatedFmt = "Пользователь «%s» создан с ролью %s!"

	FormPromptTitle       = "Введите текст вопроса:"
	FormPromptOptionFmt   = "Вариант ответа %d:"
	FormPromptRightAnswer = "Правильный ответ:"
	FormPromptDifficulty  = "Уровень сложности:"
	FormPromptCategory    = "Категория:"
	FormPromptQuizTitle   = "Название викторины:"
	FormPromptQuizCat     = "Выберите категорию:"
	FormPromptNumQ        = "Количество вопросов:"
	FormPromptRole        = "Выберите роль:"
	FormChooseWithButton  = "Выберите вариант кнопкой выше."
	FormNumberExpected    = "Нужно число. Попробуйте еще раз:"
	FormCancelled         = "Действие отменено."

	UnknownText = "Воспользуйтесь кнопками меню. Чтобы начать заново, отправьте /start."
)

// Подписи кнопок.
const (
	BtnLogin         = "🔑 Войти"
	BtnRegister      = "📝 Зарегистрироваться"
	BtnLogout        = "🚪 Выйти"
	BtnStartQuiz     = "🚀 Начать"
	BtnManage        = "⚙️ Управление"
	BtnManageQuizzes = "Викторины"
	BtnManageQsts    = "Вопросы"
	BtnCreateAdmin   = "Создать пользователя"
	BtnCreateQuiz    = "➕ Создать викторину"
	BtnAddQuestion   = "➕ Добавить вопрос"
	BtnUpdate        = "✏️ Изменить"
	BtnDelete        = "🗑 Удалить"
	BtnConfirm       = "Да, удалить"
	BtnCancel        = "Отмена"
	BtnPrev          = "⬅️ Назад"
	BtnNext          = "Далее ➡️"
	BtnSubmit        = "✅ Завершить"
	BtnExitQuiz      = "🚪 Выйти из викторины"
	BtnToDashboard   = "🏠 В меню"
	BtnRetake        = "🔄 Пройти заново"
	BtnBack          = "◀️ Назад"
	BtnPrevPage      = "« Пред."
	BtnNextPage      = "След. »"
)
