package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop())
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	if _, err := client.Quizzes(context.Background(), "secret-token"); err != nil {
		t.Fatalf("Quizzes() error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`"jwt-token"`))
	})

	if _, err := client.Login(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestLoginParsesTokenForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"object with token", `{"token":"abc.def.ghi"}`, "abc.def.ghi"},
		{"object with accessToken", `{"accessToken":"xyz"}`, "xyz"},
		{"json string", `"plain.jwt"`, "plain.jwt"},
		{"raw text", `rawtoken`, "rawtoken"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			got, err := client.Login(context.Background(), "user", "pass")
			if err != nil {
				t.Fatalf("Login() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Login() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "user", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Errorf("IsStatus(err, 401) = false, err = %v", err)
	}
	apiErr := err.(*Error)
	if apiErr.Message != "Invalid credentials" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Invalid credentials")
	}
}

func TestConnectionFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", zerolog.Nop())

	_, err := client.Quizzes(context.Background(), "token")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsConnectionError(err) {
		t.Errorf("IsConnectionError(err) = false, err = %v", err)
	}
}

func TestSubmitQuizScoreParsing(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare integer", `7`, 7},
		{"score object", `{"score":4}`, 4},
		{"garbage falls back to zero", `"done"`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			got, err := client.SubmitQuiz(context.Background(), "token", 1, []model.SubmissionEntry{
				{ID: 1, Response: "A"},
			})
			if err != nil {
				t.Fatalf("SubmitQuiz() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("SubmitQuiz() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCreateQuizQueryParams(t *testing.T) {
	var gotQuery, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotMethod = r.Method
		w.Write([]byte(`"Success"`))
	})

	if err := client.CreateQuiz(context.Background(), "token", "Java", 10, "Java Basics"); err != nil {
		t.Fatalf("CreateQuiz() error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	want := "category=Java&numQ=10&title=Java+Basics"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}
