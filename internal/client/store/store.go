// Package store implements the local account and task store.
//
// The whole state (every registered user with their profile and tasks, plus
// the active session pointer) is one models.PersistedData value serialized
// as JSON under a single key of a kv.Repository. Every mutation copies the
// in-memory snapshot, applies the change, writes the full record and only
// then swaps the snapshot, so a failed write leaves the store exactly as it
// was.
//
// A Store is constructed once by the composition root and passed to its
// consumers; there is no package-level state.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/client/repositories/kv"
	"github.com/dmitrijs2005/todomini/internal/common"
	"github.com/dmitrijs2005/todomini/internal/logging"
	"github.com/google/uuid"
)

// Store owns the persisted record and the session derived from it. It is
// safe for concurrent use; operations are serialized.
type Store struct {
	mu       sync.Mutex
	repo     kv.Repository
	key      string
	log      logging.Logger
	now      func() time.Time
	newID    func(prefix string) string
	data     models.PersistedData
	hydrated bool
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid based id generator. prefix is "user" or
// "task".
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

// New returns an un-hydrated Store persisting under key in repo.
func New(repo kv.Repository, key string, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		key:   key,
		log:   log.With("storage_key", key),
		now:   time.Now,
		newID: newUUID,
		data:  models.Empty(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) timestamp() string {
	return models.FormatTimestamp(s.now())
}

// IsHydrated reports whether Hydrate has completed.
func (s *Store) IsHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Data returns a deep copy of the current record.
func (s *Store) Data() models.PersistedData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// mutate runs fn on a copy of the record, persists the result and installs
// it as the new snapshot. The caller must not hold s.mu.
func (s *Store) mutate(ctx context.Context, fn func(d *models.PersistedData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrated {
		return common.ErrNotHydrated
	}

	next := s.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Store) persist(ctx context.Context, d models.PersistedData) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", common.ErrPersistenceFailed, err)
	}
	if err := s.repo.Set(ctx, s.key, raw); err != nil {
		s.log.Error(ctx, "persisting record failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrPersistenceFailed, err)
	}
	return nil
}
