package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/IT-Nick/quizbot/internal/api"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/infra/storage"
)

func adminToken(t *testing.T) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, _ := json.Marshal(map[string]any{"sub": "admin", "roles": []string{"ADMIN"}})
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}

func TestLoginStoresSessionAndToken(t *testing.T) {
	token := adminToken(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer srv.Close()

	tokens := storage.NewMemoryStore()
	svc := NewService(api.NewClient(srv.URL, zerolog.Nop()), tokens, zerolog.Nop())

	sess, err := svc.Login(context.Background(), 42, "admin", "admin123")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if sess.Username != "admin" {
		t.Errorf("Username = %q, want %q", sess.Username, "admin")
	}
	if !sess.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}
	if sess.HomePage() != model.PageAdminDashboard {
		t.Errorf("HomePage() = %q, want %q", sess.HomePage(), model.PageAdminDashboard)
	}

	stored, ok, err := tokens.Get(context.Background(), 42)
	if err != nil || !ok {
		t.Fatalf("token not persisted: ok=%v err=%v", ok, err)
	}
	if stored != token {
		t.Error("persisted token differs from issued token")
	}
}

func TestLoginFailureCreatesNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, zerolog.Nop()), storage.NewMemoryStore(), zerolog.Nop())

	if _, err := svc.Login(context.Background(), 42, "admin", "wrong"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if svc.Session(42) != nil {
		t.Error("session created despite failed login")
	}
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	svc := NewService(api.NewClient(srv.URL, zerolog.Nop()), storage.NewMemoryStore(), zerolog.Nop())

	if err := svc.Register(context.Background(), "newbie", "", "pass123"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if svc.Session(42) != nil {
		t.Error("registration must not create a session")
	}
}

func TestRegisterValidatesEmail(t *testing.T) {
	svc := NewService(api.NewClient("http://127.0.0.1:1", zerolog.Nop()), storage.NewMemoryStore(), zerolog.Nop())

	if err := svc.Register(context.Background(), "user", "not-an-email", "pass"); err == nil {
		t.Error("expected validation error for malformed email")
	}
}

func TestRestoreFromStoredToken(t *testing.T) {
	tokens := storage.NewMemoryStore()
	tokens.Set(context.Background(), 42, adminToken(t))

	svc := NewService(api.NewClient("http://127.0.0.1:1", zerolog.Nop()), tokens, zerolog.Nop())

	sess, err := svc.Restore(context.Background(), 42)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if sess == nil {
		t.Fatal("Restore() = nil, want session")
	}
	if sess.Username != "admin" || !sess.IsAdmin() {
		t.Errorf("restored session = %+v", sess)
	}
}

func TestRestoreWithoutToken(t *testing.T) {
	svc := NewService(api.NewClient("http://127.0.0.1:1", zerolog.Nop()), storage.NewMemoryStore(), zerolog.Nop())

	sess, err := svc.Restore(context.Background(), 42)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if sess != nil {
		t.Errorf("Restore() = %+v, want nil", sess)
	}
}

func TestRestoreToleratesOpaqueToken(t *testing.T) {
	tokens := storage.NewMemoryStore()
	tokens.Set(context.Background(), 42, "opaque-not-a-jwt")

	svc := NewService(api.NewClient("http://127.0.0.1:1", zerolog.Nop()), tokens, zerolog.Nop())

	sess, err := svc.Restore(context.Background(), 42)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if sess == nil || sess.Token != "opaque-not-a-jwt" {
		t.Fatalf("session = %+v, want token preserved", sess)
	}
	if sess.Username != "" || sess.IsAdmin() {
		t.Error("opaque token must yield empty claims")
	}
}

func TestLogoutClearsSessionAndToken(t *testing.T) {
	tokens := storage.NewMemoryStore()
	tokens.Set(context.Background(), 42, adminToken(t))

	svc := NewService(api.NewClient("http://127.0.0.1:1", zerolog.Nop()), tokens, zerolog.Nop())
	if _, err := svc.Restore(context.Background(), 42); err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(context.Background(), 42); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}
	if svc.Session(42) != nil {
		t.Error("session survived logout")
	}
	if _, ok, _ := tokens.Get(context.Background(), 42); ok {
		t.Error("token survived logout")
	}
}
