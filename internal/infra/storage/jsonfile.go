package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// JSONStore — реализация, сохраняющая токены в JSON-файл.
// Ключи сериализуются строками, т.к. JSON не допускает числовых ключей.
type JSONStore struct {
	filename string
	mu       sync.Mutex
}

// NewJSONStore создает новый JSONStore с указанным файлом.
// Если файл отсутствует, он инициализируется пустым объектом.
func NewJSONStore(filename string) (*JSONStore, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
		data, _ := json.Marshal(map[string]string{})
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to init storage file: %w", err)
		}
	}
	return &JSONStore{filename: filename}, nil
}

func (s *JSONStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", s.filename, err)
	}
	if len(data) == 0 {
		return make(map[string]string), nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return m, nil
}

func (s *JSONStore) save(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(s.filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", s.filename, err)
	}
	return nil
}

func (s *JSONStore) Get(_ context.Context, chatID int64) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	token, ok := m[strconv.FormatInt(chatID, 10)]
	return token, ok, nil
}

func (s *JSONStore) Set(_ context.Context, chatID int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	m[strconv.FormatInt(chatID, 10)] = token
	return s.save(m)
}

func (s *JSONStore) Delete(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.load()
	if err != nil {
		return err
	}
	delete(m, strconv.FormatInt(chatID, 10))
	return s.save(m)
}
