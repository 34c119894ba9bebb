package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore хранит токены сессий в таблице chat_sessions.
// Используется, когда бот должен переживать перезапуски и работать
// в несколько реплик.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore создает пул соединений, проверяет доступность базы
// и создает таблицу chat_sessions, если она отсутствует.
func NewPostgresStore(ctx context.Context, host, port, user, password, dbname string) (*PostgresStore, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, dbname)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_sessions (
			chat_id BIGINT PRIMARY KEY,
			token TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create chat_sessions table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, chatID int64) (string, bool, error) {
	var token string
	err := s.pool.QueryRow(ctx,
		`SELECT token FROM chat_sessions WHERE chat_id = $1`, chatID,
	).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session: %w", err)
	}
	return token, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, chatID int64, token string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chat_sessions (chat_id, token, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE SET token = $2, updated_at = now()
	`, chatID, token)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, chatID int64) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM chat_sessions WHERE chat_id = $1`, chatID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
