package models

import "time"

// TimestampLayout is the ISO-8601 form used for every persisted timestamp:
// UTC with millisecond precision, e.g. 2024-05-01T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout after converting it to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// PersistedData is the single record written under the storage key.
//
// SessionUserID is a weak reference: when it names no user in Users the
// session counts as unauthenticated.
type PersistedData struct {
	Users         []StoredUser `json:"users"`
	SessionUserID *string      `json:"sessionUserId"`
}

// Empty returns the record used on first run and after recovery.
func Empty() PersistedData {
	return PersistedData{Users: []StoredUser{}}
}

// Clone returns a deep copy of d.
func (d PersistedData) Clone() PersistedData {
	out := PersistedData{Users: make([]StoredUser, len(d.Users))}
	for i, u := range d.Users {
		out.Users[i] = u.Clone()
	}
	if d.SessionUserID != nil {
		id := *d.SessionUserID
		out.SessionUserID = &id
	}
	return out
}

// FindUser returns the index of the user with the given id, or -1.
func (d PersistedData) FindUser(id string) int {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// SessionUser resolves the session pointer. It returns nil when there is no
// session or it points at a missing user.
func (d PersistedData) SessionUser() *StoredUser {
	if d.SessionUserID == nil {
		return nil
	}
	if i := d.FindUser(*d.SessionUserID); i >= 0 {
		return &d.Users[i]
	}
	return nil
}
