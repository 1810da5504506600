package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todomini/internal/dbx"
)

// SQLRepository stores values in the kv table. The query text differs only in
// placeholder syntax between SQLite and PostgreSQL.
type SQLRepository struct {
	db       dbx.DBTX
	getQuery string
	setQuery string
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{
		db:       db,
		getQuery: `SELECT value FROM kv WHERE key = ?`,
		setQuery: `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`,
	}
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{
		db:       db,
		getQuery: `SELECT value FROM kv WHERE key = $1`,
		setQuery: `
		INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`,
	}
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return []byte(value), nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, r.setQuery, key, string(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
