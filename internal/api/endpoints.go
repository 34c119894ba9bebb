package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Credentials — тело запросов логина и регистрации.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login аутентифицирует пользователя и возвращает JWT-токен.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	data, err := c.call(ctx, http.MethodPost, "/auth/login", Credentials{
		Username: username,
		Password: password,
	}, "")
	if err != nil {
		return "", err
	}
	return parseToken(data)
}

// parseToken принимает и объект {"token": ...}, и токен-строку.
func parseToken(data json.RawMessage) (string, error) {
	var payload struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Token != "" {
			return payload.Token, nil
		}
		if payload.AccessToken != "" {
			return payload.AccessToken, nil
		}
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil && raw != "" {
		return raw, nil
	}
	if token := strings.TrimSpace(string(data)); token != "" && !strings.HasPrefix(token, "{") {
		return token, nil
	}
	return "", fmt.Errorf("failed to parse login response")
}

// Register создает новую учетную запись пользователя.
// Токен при этом не выдается: после регистрации нужен отдельный логин.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/register", Credentials{
		Username: username,
		Email:    email,
		Password: password,
	}, "")
	return err
}

// RegisterPrivileged создает учетную запись с указанной ролью.
// Доступно только администраторам.
func (c *Client) RegisterPrivileged(ctx context.Context, token, username, email, password, role string) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/admin/register", Credentials{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}, token)
	return err
}

// Quizzes возвращает список всех доступных викторин.
func (c *Client) Quizzes(ctx context.Context, token string) ([]model.Quiz, error) {
	data, err := c.call(ctx, http.MethodGet, "/user/quiz/all", nil, token)
	if err != nil {
		return nil, err
	}
	var quizzes []model.Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quizzes: %w", err)
	}
	return quizzes, nil
}

// QuizQuestions возвращает вопросы викторины. Правильные ответы
// бэкенд в этот список не включает.
func (c *Client) QuizQuestions(ctx context.Context, token string, quizID int) ([]model.Question, error) {
	data, err := c.call(ctx, http.MethodGet, "/user/quiz/get/"+strconv.Itoa(quizID), nil, token)
	if err != nil {
		return nil, err
	}
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	return questions, nil
}

// SubmitQuiz отправляет ответы и возвращает число правильных.
// Бэкенд отвечает числом; на случай другой формы поддержан и объект
// {"score": N}. При нераспознанном ответе счет равен нулю.
func (c *Client) SubmitQuiz(ctx context.Context, token string, quizID int, entries []model.SubmissionEntry) (int, error) {
	data, err := c.call(ctx, http.MethodPost, "/user/quiz/submit/"+strconv.Itoa(quizID), entries, token)
	if err != nil {
		return 0, err
	}

	var score int
	if err := json.Unmarshal(data, &score); err == nil {
		return score, nil
	}
	var payload struct {
		Score int `json:"score"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		return payload.Score, nil
	}
	c.log.Warn().Str("body", string(data)).Msg("unexpected submit response, treating score as 0")
	return 0, nil
}

// AllQuestions возвращает весь банк вопросов, включая правильные ответы.
func (c *Client) AllQuestions(ctx context.Context, token string) ([]model.Question, error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/question/allQuestions", nil, token)
	if err != nil {
		return nil, err
	}
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	return questions, nil
}

// Categories возвращает список категорий вопросов.
func (c *Client) Categories(ctx context.Context, token string) ([]string, error) {
	data, err := c.call(ctx, http.MethodGet, "/admin/question/categories", nil, token)
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

// AddQuestion добавляет новый вопрос в банк.
func (c *Client) AddQuestion(ctx context.Context, token string, payload model.QuestionPayload) error {
	_, err := c.call(ctx, http.MethodPost, "/admin/question/addQuestions", payload, token)
	return err
}

// UpdateQuestion перезаписывает вопрос с указанным идентификатором.
func (c *Client) UpdateQuestion(ctx context.Context, token string, id int, payload model.QuestionPayload) error {
	_, err := c.call(ctx, http.MethodPut, "/admin/question/update/"+strconv.Itoa(id), payload, token)
	return err
}

// DeleteQuestion удаляет вопрос из банка.
func (c *Client) DeleteQuestion(ctx context.Context, token string, id int) error {
	_, err := c.call(ctx, http.MethodDelete, "/admin/question/delete/"+strconv.Itoa(id), nil, token)
	return err
}

// CreateQuiz собирает новую викторину из случайных вопросов категории.
// Параметры передаются в строке запроса, тело отсутствует.
func (c *Client) CreateQuiz(ctx context.Context, token, category string, numQuestions int, title string) error {
	params := url.Values{}
	params.Set("category", category)
	params.Set("numQ", strconv.Itoa(numQuestions))
	params.Set("title", title)
	_, err := c.call(ctx, http.MethodPost, "/admin/quiz/create?"+params.Encode(), nil, token)
	return err
}

// DeleteQuiz удаляет викторину.
func (c *Client) DeleteQuiz(ctx context.Context, token string, id int) error {
	_, err := c.call(ctx, http.MethodDelete, "/admin/quiz/delete/"+strconv.Itoa(id), nil, token)
	return err
}
