package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации приложения: настройки Telegram-бота,
// адрес бэкенд-API, хранилище токенов сессий и логирование.
type Config struct {
	TelegramBot struct {
		Token       string        `yaml:"token"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
	} `yaml:"telegram_bot"`
	API struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"`
	Storage struct {
		// Type тип хранилища токенов: "memory", "json" или "postgres".
		Type     string `yaml:"type"`
		JSONPath string `yaml:"json_path"`
		Database struct {
			Host     string `yaml:"host"`
			Port     string `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Name     string `yaml:"dbname"`
		} `yaml:"database"`
	} `yaml:"storage"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Admin struct {
		// PageSize размер страницы списка вопросов в панели администратора.
		PageSize int `yaml:"page_size"`
	} `yaml:"admin"`
}

// LoadConfig загружает конфигурацию из yaml-файла и применяет переопределения
// из переменных окружения (файл .env подхватывается, если существует).
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	config := defaults()

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Println("f.Close() failed ", err)
			}
		}()

		if err := yaml.NewDecoder(f).Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	applyEnv(config)

	if config.TelegramBot.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set (TELEGRAM_BOT_TOKEN)")
	}
	if config.API.BaseURL == "" {
		return nil, fmt.Errorf("api base url is not set (API_BASE_URL)")
	}

	return config, nil
}

func defaults() *Config {
	config := &Config{}
	config.TelegramBot.PollTimeout = 10 * time.Second
	config.API.BaseURL = "http://localhost:8080"
	config.Storage.Type = "memory"
	config.Storage.JSONPath = "data/sessions.json"
	config.Log.Level = "info"
	config.Log.Format = "pretty"
	config.Admin.PageSize = 5
	return config
}

func applyEnv(config *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		config.TelegramBot.Token = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		config.Storage.Type = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		config.Log.Format = v
	}
	if v := os.Getenv("POLL_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.TelegramBot.PollTimeout = time.Duration(n) * time.Second
		}
	}
}
