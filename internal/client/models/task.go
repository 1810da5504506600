package models

import "time"

// Task is a to-do item owned by exactly one StoredUser.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueAt     string `json:"dueAt"`
	Completed bool   `json:"completed"`
}

// Due parses DueAt. The zero time and an error are returned for malformed
// values.
func (t Task) Due() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, t.DueAt)
}

// TaskPatch lists task fields to change. A nil field is left as is.
type TaskPatch struct {
	Title     *string
	DueAt     *time.Time
	Completed *bool
}
