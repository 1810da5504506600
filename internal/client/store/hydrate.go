package store

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/common"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// recordSchema checks the top-level shape only: an object whose "users" is
// an array. Anything below that is handled entry by entry in decodeRecord.
var recordSchema = jsonschema.MustCompileString("todomini-record.json", schemaJSON)

// HydrationOutcome tells apart the three ways a store can come up.
type HydrationOutcome int

const (
	// HydrationFresh: nothing was stored under the key.
	HydrationFresh HydrationOutcome = iota
	// HydrationLoaded: the stored record was valid and is now in memory.
	HydrationLoaded
	// HydrationRecovered: the stored record was malformed and replaced by
	// the empty record in memory. Storage is left untouched until the next
	// mutation.
	HydrationRecovered
)

func (o HydrationOutcome) String() string {
	switch o {
	case HydrationFresh:
		return "fresh"
	case HydrationLoaded:
		return "loaded"
	case HydrationRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("HydrationOutcome(%d)", int(o))
	}
}

// HydrationResult is returned by Hydrate. Cause is set only for
// HydrationRecovered and explains why the stored value was rejected.
// Dropped lists the entries of a loaded record that were ignored: user
// entries that do not decode and a session id that is not a string. They
// disappear from storage with the next mutation.
type HydrationResult struct {
	Outcome HydrationOutcome
	Cause   error
	Dropped []error
}

// Hydrate loads the record once. Malformed data is never an error: it is
// logged and reported through the result. Only a failing read is returned
// as an error, and the store then stays un-hydrated so Hydrate may be
// retried.
func (s *Store) Hydrate(ctx context.Context) (HydrationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return HydrationResult{}, common.ErrAlreadyHydrated
	}

	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Error(ctx, "reading record failed", "error", err)
		return HydrationResult{}, fmt.Errorf("%w: %w", common.ErrPersistenceFailed, err)
	}

	var res HydrationResult
	switch data, dropped, cause := decodeRecord(raw); {
	case len(raw) == 0:
		s.data = models.Empty()
		res = HydrationResult{Outcome: HydrationFresh}
	case cause != nil:
		s.data = models.Empty()
		res = HydrationResult{Outcome: HydrationRecovered, Cause: cause}
		s.log.Warn(ctx, "stored record is malformed, starting empty", "error", cause)
	default:
		s.data = data
		res = HydrationResult{Outcome: HydrationLoaded, Dropped: dropped}
		for _, d := range dropped {
			s.log.Warn(ctx, "ignoring malformed stored entry", "error", d)
		}
	}

	s.hydrated = true
	s.log.Info(ctx, "store hydrated", "outcome", res.Outcome.String(), "users", len(s.data.Users))
	return res, nil
}

// rawRecord defers decoding of each user and of the session id so one bad
// entry does not take the whole record down.
type rawRecord struct {
	Users         []json.RawMessage `json:"users"`
	SessionUserID json.RawMessage   `json:"sessionUserId"`
}

var errNotAnObject = errors.New("not an object")

// decodeRecord parses and validates raw. Only a record that is not an object
// or whose "users" is not an array is rejected. A user entry that does not
// decode is left out, and a session id that is not a string reads as no
// session; each such problem is returned in dropped.
func decodeRecord(raw []byte) (data models.PersistedData, dropped []error, err error) {
	if len(raw) == 0 {
		return models.Empty(), nil, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.PersistedData{}, nil, fmt.Errorf("parse: %w", err)
	}
	if err := recordSchema.Validate(doc); err != nil {
		return models.PersistedData{}, nil, fmt.Errorf("validate: %w", err)
	}

	var rec rawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.PersistedData{}, nil, fmt.Errorf("decode: %w", err)
	}

	data = models.Empty()
	for i, entry := range rec.Users {
		u, err := decodeUser(entry)
		if err != nil {
			dropped = append(dropped, fmt.Errorf("users[%d]: %w", i, err))
			continue
		}
		data.Users = append(data.Users, u)
	}

	data.SessionUserID, err = decodeSessionID(rec.SessionUserID)
	if err != nil {
		dropped = append(dropped, fmt.Errorf("sessionUserId: %w", err))
	}
	return data, dropped, nil
}

func decodeUser(raw json.RawMessage) (models.StoredUser, error) {
	var u models.StoredUser
	if isNull(raw) {
		return u, errNotAnObject
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.StoredUser{}, err
	}
	if u.Tasks == nil {
		u.Tasks = []models.Task{}
	}
	return u, nil
}

func decodeSessionID(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 || isNull(raw) {
		return nil, nil
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
