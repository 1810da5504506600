// Package storage opens the key-value backend selected by configuration and
// prepares its schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/todomini/internal/client/config"
	"github.com/dmitrijs2005/todomini/internal/client/migrations"
	"github.com/dmitrijs2005/todomini/internal/client/repositories/kv"
	"github.com/dmitrijs2005/todomini/internal/common"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage bundles the opened repository with whatever must be released on
// shutdown.
type Storage struct {
	Repo kv.Repository
	db   *sql.DB
}

// Close releases the database handle, if any.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations using the given goose
// dialect ("sqlite3" or "postgres").
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// InitDatabase opens driver/dsn, checks connectivity and runs migrations.
func InitDatabase(ctx context.Context, driver, dsn, dialect string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open builds the repository for cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := InitDatabase(ctx, "sqlite", cfg.DatabaseDSN, "sqlite3")
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
		return &Storage{Repo: kv.NewSQLiteRepository(db), db: db}, nil

	case config.BackendPostgres:
		db, err := InitDatabase(ctx, "pgx", cfg.DatabaseDSN, "postgres")
		if err != nil {
			return nil, err
		}
		return &Storage{Repo: kv.NewPostgresRepository(db), db: db}, nil

	case config.BackendFile:
		repo, err := kv.NewFileRepository(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return &Storage{Repo: repo}, nil

	case config.BackendMemory:
		return &Storage{Repo: kv.NewMemoryRepository()}, nil

	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.StorageBackend)
	}
}
