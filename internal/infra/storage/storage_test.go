package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// exerciseStore прогоняет общий контракт Store.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, 1); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, 1, "token-a"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, 2, "token-b"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	token, ok, err := s.Get(ctx, 1)
	if err != nil || !ok || token != "token-a" {
		t.Fatalf("Get(1) = %q, %v, %v", token, ok, err)
	}

	// Повторный Set перезаписывает токен.
	if err := s.Set(ctx, 1, "token-c"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if token, _, _ := s.Get(ctx, 1); token != "token-c" {
		t.Errorf("Get(1) after overwrite = %q, want token-c", token)
	}

	if err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, 1); ok {
		t.Error("token survived Delete")
	}
	if token, _, _ := s.Get(ctx, 2); token != "token-b" {
		t.Error("Delete touched another chat")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	s, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	exerciseStore(t, s)
}

func TestJSONStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "sessions.json")
	ctx := context.Background()

	s, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	if err := s.Set(ctx, 7, "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	token, ok, err := reopened.Get(ctx, 7)
	if err != nil || !ok || token != "persisted" {
		t.Errorf("Get after reopen = %q, %v, %v", token, ok, err)
	}
}
