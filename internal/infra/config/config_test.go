package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	path := writeConfig(t, "api:\n  base_url: \"http://backend:8080\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TelegramBot.Token != "env-token" {
		t.Errorf("Token = %q", cfg.TelegramBot.Token)
	}
	if cfg.API.BaseURL != "http://backend:8080" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Storage.Type != "memory" {
		t.Errorf("Storage.Type = %q, want memory default", cfg.Storage.Type)
	}
	if cfg.TelegramBot.PollTimeout != 10*time.Second {
		t.Errorf("PollTimeout = %v, want 10s default", cfg.TelegramBot.PollTimeout)
	}
	if cfg.Admin.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5 default", cfg.Admin.PageSize)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("API_BASE_URL", "http://env:9090")
	t.Setenv("STORAGE_TYPE", "json")
	path := writeConfig(t, `
telegram_bot:
  token: "file-token"
api:
  base_url: "http://file:8080"
storage:
  type: "memory"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TelegramBot.Token != "env-token" {
		t.Errorf("Token = %q, env must win", cfg.TelegramBot.Token)
	}
	if cfg.API.BaseURL != "http://env:9090" {
		t.Errorf("BaseURL = %q, env must win", cfg.API.BaseURL)
	}
	if cfg.Storage.Type != "json" {
		t.Errorf("Storage.Type = %q, env must win", cfg.Storage.Type)
	}
}

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	path := writeConfig(t, "api:\n  base_url: \"http://backend:8080\"\n")

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error without bot token")
	}
}
