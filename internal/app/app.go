package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v4"
	tbmiddleware "gopkg.in/telebot.v4/middleware"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/auth_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/create_admin_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/create_quiz_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/dashboard_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/manage_questions_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/manage_quizzes_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/quiz_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/text_handler"
	"github.com/IT-Nick/quizbot/internal/app/middleware"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	questionsService "github.com/IT-Nick/quizbot/internal/domain/questions/service"
	"github.com/IT-Nick/quizbot/internal/domain/quizflow"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/IT-Nick/quizbot/internal/infra/logger"
	"github.com/IT-Nick/quizbot/internal/infra/storage"
)

// Services — сервисный слой приложения.
type Services struct {
	authService     *auth.Service
	quizService     *quizzesService.Service
	questionService *questionsService.Service
}

// App — Telegram-клиент бэкенда викторин: собирает конфигурацию,
// хранилище токенов, сервисы и обработчики бота.
type App struct {
	config *config.Config
	log    zerolog.Logger
	bot    *telebot.Bot
	tokens storage.Store

	navMachine *nav.Machine
	attempts   *quizflow.Registry
	views      *render.Views

	Services
}

// NewApp создает приложение по файлу конфигурации.
func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	log := logger.Setup(configImpl.Log.Level, configImpl.Log.Format)

	tokens, err := initStorage(configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app := &App{
		config: configImpl,
		log:    log,
		tokens: tokens,
	}
	app.initServices()

	return app, nil
}

// initStorage выбирает хранилище токенов по конфигурации.
func initStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Type {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "json":
		return storage.NewJSONStore(cfg.Storage.JSONPath)
	case "postgres":
		db := cfg.Storage.Database
		return storage.NewPostgresStore(context.Background(),
			db.Host, db.Port, db.User, db.Password, db.Name)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

// initServices инициализирует сервисы и отрисовщик страниц.
func (app *App) initServices() {
	apiClient := api.NewClient(app.config.API.BaseURL, app.log)

	app.authService = auth.NewService(apiClient, app.tokens, app.log)
	app.quizService = quizzesService.NewService(apiClient, app.log)
	app.questionService = questionsService.NewService(apiClient, app.log)

	app.navMachine = nav.NewMachine(app.log)
	app.attempts = quizflow.NewRegistry()
	app.views = render.NewViews(
		app.quizService, app.questionService,
		app.navMachine, app.attempts,
		app.config.Admin.PageSize, app.log,
	)
}

// ListenAndServeTelegram запускает сервер Telegram бота.
func (app *App) ListenAndServeTelegram() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: &telebot.LongPoller{Timeout: app.config.TelegramBot.PollTimeout},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	// AutoRespond гасит "часики" на каждом callback.
	app.bot.Use(middleware.Recover(app.log), middleware.Logger(app.log), tbmiddleware.AutoRespond())
	app.bootstrapHandlersTelegram()

	app.log.Info().Str("storage", app.config.Storage.Type).Msg("bot started")
	app.bot.Start()

	return nil
}

// bootstrapHandlersTelegram регистрирует обработчики бота.
func (app *App) bootstrapHandlersTelegram() {
	startHandler := start_handler.NewStartHandler(app.authService, app.navMachine, app.views)
	authHandler := auth_handler.NewAuthHandler(app.authService, app.navMachine, app.attempts, app.views)
	dashboardHandler := dashboard_handler.NewDashboardHandler(app.authService, app.navMachine, app.attempts, app.views)
	quizHandler := quiz_handler.NewQuizHandler(app.authService, app.quizService, app.navMachine, app.attempts, app.views)
	quizzesAdmin := manage_quizzes_handler.NewManageQuizzesHandler(app.authService, app.quizService, app.navMachine, app.views)
	questionsAdmin := manage_questions_handler.NewManageQuestionsHandler(app.authService, app.questionService, app.navMachine, app.views)
	createQuiz := create_quiz_handler.NewCreateQuizHandler(app.authService, app.questionService, app.navMachine, app.views)
	createAdmin := create_admin_handler.NewCreateAdminHandler(app.authService, app.navMachine, app.views)
	textHandler := text_handler.NewTextHandler(
		app.authService, app.quizService, app.questionService,
		app.navMachine, app.views, createQuiz, createAdmin,
	)

	app.bot.Handle("/start", startHandler.GetHandlerFunc())

	// Вход, регистрация, выход.
	app.bot.Handle(&telebot.Btn{Unique: "login"}, authHandler.HandleLogin)
	app.bot.Handle(&telebot.Btn{Unique: "register"}, authHandler.HandleRegister)
	app.bot.Handle(&telebot.Btn{Unique: "logout"}, authHandler.HandleLogout)
	app.bot.Handle(&telebot.Btn{Unique: "to_dashboard"}, dashboardHandler.GetHandlerFunc())

	// Прохождение викторины.
	app.bot.Handle(&telebot.Btn{Unique: "start_quiz"}, quizHandler.HandleStart)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_opt"}, quizHandler.HandleOption)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_prev"}, quizHandler.HandlePrev)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_next"}, quizHandler.HandleNext)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_jump"}, quizHandler.HandleJump)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_submit"}, quizHandler.HandleSubmit)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_retake"}, quizHandler.HandleRetake)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_exit"}, quizHandler.HandleExit)

	// Управление викторинами.
	app.bot.Handle(&telebot.Btn{Unique: "manage_quizzes"}, quizzesAdmin.HandleOpen)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_delete"}, quizzesAdmin.HandleDelete)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_delete_yes"}, quizzesAdmin.HandleDeleteConfirmed)
	app.bot.Handle(&telebot.Btn{Unique: "quiz_delete_no"}, quizzesAdmin.HandleDeleteCancelled)
	app.bot.Handle(&telebot.Btn{Unique: "create_quiz_page"}, createQuiz.HandleOpen)
	app.bot.Handle(&telebot.Btn{Unique: "cq_cat"}, createQuiz.HandleCategory)

	// Управление вопросами.
	app.bot.Handle(&telebot.Btn{Unique: "manage_questions"}, questionsAdmin.HandleOpen)
	app.bot.Handle(&telebot.Btn{Unique: "qst_cat"}, questionsAdmin.HandleCategory)
	app.bot.Handle(&telebot.Btn{Unique: "qst_page"}, questionsAdmin.HandlePage)
	app.bot.Handle(&telebot.Btn{Unique: "qst_edit"}, questionsAdmin.HandleEdit)
	app.bot.Handle(&telebot.Btn{Unique: "qst_delete"}, questionsAdmin.HandleDelete)
	app.bot.Handle(&telebot.Btn{Unique: "qst_delete_yes"}, questionsAdmin.HandleDeleteConfirmed)
	app.bot.Handle(&telebot.Btn{Unique: "qst_delete_no"}, questionsAdmin.HandleDeleteCancelled)
	app.bot.Handle(&telebot.Btn{Unique: "add_question_page"}, questionsAdmin.HandleAdd)

	// Создание пользователя с ролью.
	app.bot.Handle(&telebot.Btn{Unique: "create_admin_page"}, createAdmin.HandleOpen)
	app.bot.Handle(&telebot.Btn{Unique: "ca_role"}, createAdmin.HandleRole)

	// Текстовые сообщения ведут активную форму.
	app.bot.Handle(telebot.OnText, textHandler.GetHandlerFunc())
}

// Close освобождает ресурсы приложения.
func (app *App) Close() {
	if closer, ok := app.tokens.(interface{ Close() }); ok {
		closer.Close()
	}
	if app.bot != nil {
		app.bot.Stop()
	}
}
