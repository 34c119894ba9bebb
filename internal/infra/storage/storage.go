package storage

import "context"

// Store определяет интерфейс хранилища токенов сессий. Ключом служит
// идентификатор чата Telegram, значением — непрозрачный токен бэкенда.
// Токен — единственное клиентское состояние, переживающее перезапуск бота.
type Store interface {
	Get(ctx context.Context, chatID int64) (string, bool, error)
	Set(ctx context.Context, chatID int64, token string) error
	Delete(ctx context.Context, chatID int64) error
}
