package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Service — операции над викторинами поверх API бэкенда.
type Service struct {
	api *api.Client
	log zerolog.Logger
}

// NewService создает сервис викторин.
func NewService(apiClient *api.Client, log zerolog.Logger) *Service {
	return &Service{
		api: apiClient,
		log: log.With().Str("component", "quizzes").Logger(),
	}
}

// List возвращает все викторины.
func (s *Service) List(ctx context.Context, token string) ([]model.Quiz, error) {
	return s.api.Quizzes(ctx, token)
}

// Questions возвращает вопросы викторины для прохождения.
func (s *Service) Questions(ctx context.Context, token string, quizID int) ([]model.Question, error) {
	return s.api.QuizQuestions(ctx, token, quizID)
}

// Submit отправляет ответы и возвращает число правильных.
func (s *Service) Submit(ctx context.Context, token string, quizID int, entries []model.SubmissionEntry) (int, error) {
	score, err := s.api.SubmitQuiz(ctx, token, quizID, entries)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("quiz_id", quizID).Int("score", score).Msg("quiz submitted")
	return score, nil
}

// Create собирает новую викторину из вопросов категории.
func (s *Service) Create(ctx context.Context, token, category string, numQuestions int, title string) error {
	return s.api.CreateQuiz(ctx, token, category, numQuestions, title)
}

// Delete удаляет викторину.
func (s *Service) Delete(ctx context.Context, token string, quizID int) error {
	return s.api.DeleteQuiz(ctx, token, quizID)
}
