package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/logging"
	"github.com/stretchr/testify/require"
)

const testKey = "todo-mini-backend-v1"

// fakeRepo is an in-memory kv.Repository that records writes and can be
// told to fail.
type fakeRepo struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (f *fakeRepo) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (f *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.sets++
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeRepo) stored(t *testing.T) models.PersistedData {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	var d models.PersistedData
	require.NoError(t, json.Unmarshal(f.data[testKey], &d))
	return d
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sequentialIDs() func(string) string {
	n := map[string]int{}
	return func(prefix string) string {
		n[prefix]++
		return fmt.Sprintf("%s-%d", prefix, n[prefix])
	}
}

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// newTestStore builds a hydrated store over repo with a controllable clock
// and predictable ids.
func newTestStore(t *testing.T, repo *fakeRepo) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: baseTime}
	s := New(repo, testKey, logging.Discard(), WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
	_, err := s.Hydrate(context.Background())
	require.NoError(t, err)
	return s, clock
}

func register(t *testing.T, s *Store, email, password string) {
	t.Helper()
	require.NoError(t, s.Register(context.Background(), models.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  password,
	}))
}

func ptr[T any](v T) *T { return &v }
