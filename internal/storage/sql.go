package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blueforce/internal/logger"
)

// SQLStorage keeps keys in a single table. The statements are portable between
// SQLite (modernc.org/sqlite, driver "sqlite") and PostgreSQL (pgx, driver "pgx").
type SQLStorage struct {
	db *sqlx.DB
}

// NewSQLStorage creates a SQL-backed Storage on an open connection.
func NewSQLStorage(db *sqlx.DB) *SQLStorage {
	return &SQLStorage{db: db}
}

const schemaKV = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// EnsureSchema creates the key-value table if it does not exist.
func (s *SQLStorage) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaKV)

	logger.Log.Infow("sql schema",
		"query", oneLine(schemaKV),
		"error", err,
	)

	return err
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query := s.db.Rebind(`SELECT value FROM kv_store WHERE key = ?`)

	var value string
	err := s.db.GetContext(ctx, &value, query, key)

	logger.Log.Infow("sql get",
		"query", query,
		"args", []any{key},
		"result", len(value),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStorage) Set(ctx context.Context, key, value string) error {
	query := s.db.Rebind(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value,
		    updated_at = CURRENT_TIMESTAMP
	`)

	res, err := s.db.ExecContext(ctx, query, key, value)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("sql set",
		"query", oneLine(query),
		"args", []any{key, len(value)},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (s *SQLStorage) Remove(ctx context.Context, key string) error {
	query := s.db.Rebind(`DELETE FROM kv_store WHERE key = ?`)

	_, err := s.db.ExecContext(ctx, query, key)

	logger.Log.Infow("sql remove",
		"query", query,
		"args", []any{key},
		"error", err,
	)

	return err
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
