package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/infra/storage"
)

// Service управляет сессиями пользователей: логин и регистрация через
// бэкенд, разбор токена, восстановление сессии из хранилища после
// перезапуска бота.
type Service struct {
	api      *api.Client
	tokens   storage.Store
	validate *validator.Validate
	log      zerolog.Logger

	mu       sync.RWMutex
	sessions map[int64]*model.Session
}

// NewService создает сервис аутентификации.
func NewService(apiClient *api.Client, tokens storage.Store, log zerolog.Logger) *Service {
	return &Service{
		api:      apiClient,
		tokens:   tokens,
		validate: validator.New(),
		log:      log.With().Str("component", "auth").Logger(),
		sessions: make(map[int64]*model.Session),
	}
}

// Login аутентифицирует пользователя и сохраняет токен в хранилище.
func (s *Service) Login(ctx context.Context, chatID int64, username, password string) (*model.Session, error) {
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess := s.sessionFromToken(token)
	if err := s.tokens.Set(ctx, chatID, token); err != nil {
		s.log.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to persist token")
	}

	s.mu.Lock()
	s.sessions[chatID] = sess
	s.mu.Unlock()

	s.log.Info().Int64("chat_id", chatID).Str("username", sess.Username).Msg("user logged in")
	return sess, nil
}

// Register создает учетную запись. Сессия при этом не создается:
// пользователь должен войти отдельно.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	if email != "" {
		if err := s.validate.Var(email, "email"); err != nil {
			return fmt.Errorf("invalid email: %w", err)
		}
	}
	return s.api.Register(ctx, username, email, password)
}

// RegisterPrivileged создает учетную запись с ролью от имени администратора.
func (s *Service) RegisterPrivileged(ctx context.Context, chatID int64, username, email, password, role string) error {
	sess := s.Session(chatID)
	if sess == nil {
		return fmt.Errorf("no active session for chat %d", chatID)
	}
	if email != "" {
		if err := s.validate.Var(email, "email"); err != nil {
			return fmt.Errorf("invalid email: %w", err)
		}
	}
	return s.api.RegisterPrivileged(ctx, sess.Token, username, email, password, role)
}

// Logout удаляет сессию и сохраненный токен.
func (s *Service) Logout(ctx context.Context, chatID int64) error {
	s.mu.Lock()
	delete(s.sessions, chatID)
	s.mu.Unlock()

	if err := s.tokens.Delete(ctx, chatID); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	s.log.Info().Int64("chat_id", chatID).Msg("user logged out")
	return nil
}

// Restore пытается восстановить сессию из сохраненного токена.
// Возвращает nil без ошибки, если токена нет.
func (s *Service) Restore(ctx context.Context, chatID int64) (*model.Session, error) {
	s.mu.RLock()
	if sess, ok := s.sessions[chatID]; ok {
		s.mu.RUnlock()
		return sess, nil
	}
	s.mu.RUnlock()

	token, ok, err := s.tokens.Get(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if !ok {
		return nil, nil
	}

	sess := s.sessionFromToken(token)
	s.mu.Lock()
	s.sessions[chatID] = sess
	s.mu.Unlock()
	return sess, nil
}

// Session возвращает активную сессию чата или nil.
func (s *Service) Session(chatID int64) *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// sessionFromToken строит сессию из токена. Если claims не разобрались,
// сессия остается валидной: бэкенд все равно проверит токен сам.
func (s *Service) sessionFromToken(token string) *model.Session {
	sess := &model.Session{Token: token}
	claims, err := DecodeClaims(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to decode token claims")
		return sess
	}
	sess.Username = claims.Username
	sess.Roles = claims.Roles
	return sess
}
