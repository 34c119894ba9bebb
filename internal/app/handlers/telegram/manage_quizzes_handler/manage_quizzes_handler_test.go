package manage_quizzes_handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v4"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/auth"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/nav"
	"github.com/IT-Nick/quizbot/internal/domain/quizflow"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizbot/internal/infra/storage"
)

// fakeContext закрывает только методы telebot.Context, которые нужны
// обработчику. Обращение к остальным уронит тест паникой.
type fakeContext struct {
	telebot.Context
	chatID int64
	data   string
}

func (f *fakeContext) Chat() *telebot.Chat { return &telebot.Chat{ID: f.chatID} }
func (f *fakeContext) Data() string        { return f.data }
func (f *fakeContext) Args() []string      { return []string{f.data} }

func (f *fakeContext) Send(_ interface{}, _ ...interface{}) error       { return nil }
func (f *fakeContext) EditOrSend(_ interface{}, _ ...interface{}) error { return nil }

func newHandler(t *testing.T, baseURL string) *ManageQuizzesHandler {
	t.Helper()

	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, _ := json.Marshal(map[string]any{"sub": "admin", "roles": []string{"ADMIN"}})
	enc := base64.RawURLEncoding
	token := enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."

	tokens := storage.NewMemoryStore()
	tokens.Set(context.Background(), 42, token)

	apiClient := api.NewClient(baseURL, zerolog.Nop())
	authService := auth.NewService(apiClient, tokens, zerolog.Nop())
	if _, err := authService.Restore(context.Background(), 42); err != nil {
		t.Fatal(err)
	}

	navMachine := nav.NewMachine(zerolog.Nop())
	quizService := quizzesService.NewService(apiClient, zerolog.Nop())
	views := render.NewViews(quizService, nil, navMachine, quizflow.NewRegistry(), 5, zerolog.Nop())

	return NewManageQuizzesHandler(authService, quizService, navMachine, views)
}

func TestCancelledDeleteIssuesNoDelete(t *testing.T) {
	var deletes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes.Add(1)
		}
		json.NewEncoder(w).Encode([]model.Quiz{{ID: 1, Title: "Go"}})
	}))
	defer srv.Close()

	h := newHandler(t, srv.URL)
	c := &fakeContext{chatID: 42, data: "1"}

	if err := h.HandleDelete(c); err != nil {
		t.Fatalf("HandleDelete: %v", err)
	}
	if err := h.HandleDeleteCancelled(c); err != nil {
		t.Fatalf("HandleDeleteCancelled: %v", err)
	}
	if n := deletes.Load(); n != 0 {
		t.Errorf("cancelled confirmation issued %d DELETE requests", n)
	}
}

func TestConfirmedDeleteIssuesDeleteAndRefetches(t *testing.T) {
	var deletes, lists atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			deletes.Add(1)
			json.NewEncoder(w).Encode("Deleted")
		case r.URL.Path == "/user/quiz/all":
			lists.Add(1)
			json.NewEncoder(w).Encode([]model.Quiz{})
		}
	}))
	defer srv.Close()

	h := newHandler(t, srv.URL)
	c := &fakeContext{chatID: 42, data: "1"}

	if err := h.HandleDeleteConfirmed(c); err != nil {
		t.Fatalf("HandleDeleteConfirmed: %v", err)
	}
	if n := deletes.Load(); n != 1 {
		t.Errorf("DELETE requests = %d, want 1", n)
	}
	if n := lists.Load(); n != 1 {
		t.Errorf("list refetches after delete = %d, want 1", n)
	}
}
