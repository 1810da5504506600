package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/todomini/internal/client/config"
	"github.com/dmitrijs2005/todomini/internal/client/repositories/kv"
	"github.com/dmitrijs2005/todomini/internal/common"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesKVTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, "sqlite", dsn, "sqlite3")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "kv"))
	assert.True(t, tableExists(t, db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, "sqlite3"))
	require.NoError(t, RunMigrations(ctx, db, "sqlite3"))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_BadDialect(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(context.Background(), db, "oracle-ish")
	require.ErrorContains(t, err, "failed to set goose dialect")
}

func TestRunMigrations_UpErrorWrapped(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("disk full")
	}

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(context.Background(), db, "sqlite3")
	require.ErrorContains(t, err, "migrations: disk full")
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.Config
		wantTyp any
	}{
		{"sqlite", config.Config{StorageBackend: config.BackendSQLite, DatabaseDSN: filepath.Join(dir, "t.db")}, &kv.SQLRepository{}},
		{"file", config.Config{StorageBackend: config.BackendFile, DataDir: filepath.Join(dir, "files")}, &kv.FileRepository{}},
		{"memory", config.Config{StorageBackend: config.BackendMemory}, &kv.MemoryRepository{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, &tt.cfg)
			require.NoError(t, err)
			defer s.Close()

			assert.IsType(t, tt.wantTyp, s.Repo)

			require.NoError(t, s.Repo.Set(ctx, "k", []byte(`{"users":[]}`)))
			v, err := s.Repo.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"users":[]}`, string(v))
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageBackend: "redis"})
	require.ErrorIs(t, err, common.ErrUnknownBackend)
}

func TestOpen_SQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageBackend: config.BackendSQLite, DatabaseDSN: filepath.Join(t.TempDir(), "t.db")}

	s, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, s.Repo.Set(ctx, config.DefaultStorageKey, []byte(`{"users":[],"sessionUserId":null}`)))
	require.NoError(t, s.Close())

	s, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Repo.Get(ctx, config.DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, `{"users":[],"sessionUserId":null}`, string(v))
}
