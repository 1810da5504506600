package store

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/common"
)

// Task operations only ever reach the session user's own list. Without a
// session they fail with common.ErrAuthRequired, like UpdateProfile.
// An unknown task id is not an error: the list is left as is, but the
// user's updatedAt is still bumped and the record persisted.

// withSessionUser runs fn on the session user of a copy of the record and
// bumps that user's updatedAt.
func (s *Store) withSessionUser(ctx context.Context, fn func(u *models.StoredUser)) (string, error) {
	var id string
	err := s.mutate(ctx, func(d *models.PersistedData) error {
		u := d.SessionUser()
		if u == nil {
			return common.ErrAuthRequired
		}
		id = u.ID
		fn(u)
		u.UpdatedAt = s.timestamp()
		return nil
	})
	return id, err
}

// CreateTask appends a new, not completed task and returns it.
func (s *Store) CreateTask(ctx context.Context, title string, dueAt time.Time) (models.Task, error) {
	task := models.Task{
		ID:    s.newID("task"),
		Title: strings.TrimSpace(title),
		DueAt: models.FormatTimestamp(dueAt),
	}

	userID, err := s.withSessionUser(ctx, func(u *models.StoredUser) {
		u.Tasks = append(u.Tasks, task)
	})
	if err != nil {
		return models.Task{}, err
	}

	s.log.Debug(ctx, "task created", "user_id", userID, "task_id", task.ID)
	return task, nil
}

// UpdateTask merges patch into the task with the given id. The title is
// trimmed when present.
func (s *Store) UpdateTask(ctx context.Context, taskID string, patch models.TaskPatch) error {
	userID, err := s.withSessionUser(ctx, func(u *models.StoredUser) {
		i := findTask(u.Tasks, taskID)
		if i < 0 {
			return
		}
		t := &u.Tasks[i]
		if patch.Title != nil {
			t.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.DueAt != nil {
			t.DueAt = models.FormatTimestamp(*patch.DueAt)
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
	})
	if err != nil {
		return err
	}

	s.log.Debug(ctx, "task updated", "user_id", userID, "task_id", taskID)
	return nil
}

// DeleteTask removes the task with the given id, if present.
func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	userID, err := s.withSessionUser(ctx, func(u *models.StoredUser) {
		if i := findTask(u.Tasks, taskID); i >= 0 {
			u.Tasks = append(u.Tasks[:i], u.Tasks[i+1:]...)
		}
	})
	if err != nil {
		return err
	}

	s.log.Debug(ctx, "task deleted", "user_id", userID, "task_id", taskID)
	return nil
}

// ToggleTask flips the completed flag of the task with the given id.
func (s *Store) ToggleTask(ctx context.Context, taskID string) error {
	userID, err := s.withSessionUser(ctx, func(u *models.StoredUser) {
		if i := findTask(u.Tasks, taskID); i >= 0 {
			u.Tasks[i].Completed = !u.Tasks[i].Completed
		}
	})
	if err != nil {
		return err
	}

	s.log.Debug(ctx, "task toggled", "user_id", userID, "task_id", taskID)
	return nil
}

func findTask(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
