package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// CategoryAll — синтетическая категория «показать все», всегда первая
// в списке фильтров.
const CategoryAll = "All"

// Catalog — банк вопросов вместе со списком категорий для фильтрации.
type Catalog struct {
	Questions  []model.Question
	Categories []string
}

// Service — административные операции над банком вопросов.
type Service struct {
	api *api.Client
	log zerolog.Logger
}

// NewService создает сервис вопросов.
func NewService(apiClient *api.Client, log zerolog.Logger) *Service {
	return &Service{
		api: apiClient,
		log: log.With().Str("component", "questions").Logger(),
	}
}

// LoadCatalog загружает вопросы и категории параллельно. Экран
// управления требует обоих списков, поэтому ошибка любого из запросов
// отменяет второй и возвращается целиком.
func (s *Service) LoadCatalog(ctx context.Context, token string) (*Catalog, error) {
	catalog := &Catalog{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		questions, err := s.api.AllQuestions(ctx, token)
		if err != nil {
			return err
		}
		catalog.Questions = questions
		return nil
	})
	g.Go(func() error {
		categories, err := s.api.Categories(ctx, token)
		if err != nil {
			return err
		}
		catalog.Categories = append([]string{CategoryAll}, categories...)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Add добавляет вопрос в банк.
func (s *Service) Add(ctx context.Context, token string, payload model.QuestionPayload) error {
	return s.api.AddQuestion(ctx, token, payload)
}

// Update перезаписывает вопрос.
func (s *Service) Update(ctx context.Context, token string, id int, payload model.QuestionPayload) error {
	return s.api.UpdateQuestion(ctx, token, id, payload)
}

// Delete удаляет вопрос.
func (s *Service) Delete(ctx context.Context, token string, id int) error {
	return s.api.DeleteQuestion(ctx, token, id)
}

// FilterByCategory возвращает вопросы категории. CategoryAll и пустая
// строка отключают фильтр.
func FilterByCategory(questions []model.Question, category string) []model.Question {
	if category == "" || category == CategoryAll {
		return questions
	}
	filtered := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if q.Category == category {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// PageSlice возвращает страницу списка и общее число страниц.
// Номер страницы прижимается к допустимому диапазону.
func PageSlice(questions []model.Question, page, pageSize int) ([]model.Question, int) {
	if pageSize <= 0 || len(questions) == 0 {
		return nil, 0
	}
	totalPages := (len(questions) + pageSize - 1) / pageSize
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}
	start := page * pageSize
	end := start + pageSize
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end], totalPages
}
