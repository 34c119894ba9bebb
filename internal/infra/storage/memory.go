package storage

import (
	"context"
	"sync"
)

// MemoryStore — in-memory реализация. Токены живут до перезапуска процесса.
type MemoryStore struct {
	data map[int64]string
	mu   sync.RWMutex
}

// NewMemoryStore создает новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]string)}
}

func (m *MemoryStore) Get(_ context.Context, chatID int64) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.data[chatID]
	return token, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, chatID int64, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[chatID] = token
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, chatID)
	return nil
}
