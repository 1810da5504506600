package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/todomini/internal/filex"
)

// FileRepository maps each key to a file inside dir. Writes go to a temp
// file in the same directory which is synced and renamed over the target,
// so a crash never leaves a half-written record.
type FileRepository struct {
	dir string
	mu  sync.RWMutex
}

// NewFileRepository creates dir if needed.
func NewFileRepository(dir string) (*FileRepository, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileRepository{dir: abs}, nil
}

func (r *FileRepository) path(key string) string {
	return filepath.Join(r.dir, url.PathEscape(key)+".json")
}

func (r *FileRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return data, nil
}

func (r *FileRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := filex.WriteAtomic(r.path(key), value, 0o600); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
