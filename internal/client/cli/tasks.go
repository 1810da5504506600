package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/todomini/internal/client/dashboard"
	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/client/validate"
	"github.com/dmitrijs2005/todomini/internal/common"
)

// DueInputLayout is how due dates are typed in.
const DueInputLayout = "2006-01-02 15:04"

var (
	errTaskNotFound = errors.New("no such task, use 'list' to see task numbers")
	errDueFormat    = errors.New("due date must look like " + DueInputLayout)
)

// List prints the session user's tasks ordered by due date. The printed
// numbers can be used as task references by edit, done and delete.
func (a *App) List(_ context.Context) error {
	v := a.store.View()
	if !v.IsAuthenticated {
		return common.ErrAuthRequired
	}

	tasks := dashboard.SortByDue(v.Tasks)
	if len(tasks) == 0 {
		a.println("No tasks yet. Use 'add' to create one.")
		return nil
	}

	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		a.println(fmt.Sprintf("%2d. [%s] %s  (due %s)  %s", i+1, mark, t.Title, dashboard.FormatDue(t.DueAt, a.loc), t.ID))
	}
	return nil
}

// Add prompts for a title and a due date and creates a task. A blank due
// date means now.
func (a *App) Add(ctx context.Context) error {
	title, err := a.ask("Title")
	if err != nil {
		return err
	}
	if err := validate.TaskTitle(title); err != nil {
		return err
	}

	due, err := a.askDue(fmt.Sprintf("Due (%s, blank for now)", DueInputLayout), a.now())
	if err != nil {
		return err
	}

	task, err := a.store.CreateTask(ctx, title, due)
	if err != nil {
		return err
	}
	a.println("Added:", task.Title)
	return nil
}

// Edit changes the title and due date of the referenced task. Blank answers
// keep the current values.
func (a *App) Edit(ctx context.Context, ref string) error {
	task, err := a.resolveTask(ref)
	if err != nil {
		return err
	}

	title, err := a.askDefault("Title", task.Title)
	if err != nil {
		return err
	}
	if err := validate.TaskTitle(title); err != nil {
		return err
	}

	current, err := task.Due()
	if err != nil {
		current = a.now()
	}
	due, err := a.askDue(fmt.Sprintf("Due [%s]", current.In(a.loc).Format(DueInputLayout)), current)
	if err != nil {
		return err
	}

	if err := a.store.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &title, DueAt: &due}); err != nil {
		return err
	}
	a.println("Updated:", title)
	return nil
}

// Done toggles the completed flag of the referenced task.
func (a *App) Done(ctx context.Context, ref string) error {
	task, err := a.resolveTask(ref)
	if err != nil {
		return err
	}
	if err := a.store.ToggleTask(ctx, task.ID); err != nil {
		return err
	}

	if task.Completed {
		a.println("Reopened:", task.Title)
	} else {
		a.println("Completed:", task.Title)
	}
	return nil
}

// Delete removes the referenced task after confirmation.
func (a *App) Delete(ctx context.Context, ref string) error {
	task, err := a.resolveTask(ref)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", task.Title), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if err := a.store.DeleteTask(ctx, task.ID); err != nil {
		return err
	}
	a.println("Deleted:", task.Title)
	return nil
}

// resolveTask finds a task by its number in the sorted list or by id,
// prompting when ref is empty.
func (a *App) resolveTask(ref string) (models.Task, error) {
	v := a.store.View()
	if !v.IsAuthenticated {
		return models.Task{}, common.ErrAuthRequired
	}

	if ref == "" {
		var err error
		if ref, err = a.ask("Task number or id"); err != nil {
			return models.Task{}, err
		}
	}

	tasks := dashboard.SortByDue(v.Tasks)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(tasks) {
			return models.Task{}, errTaskNotFound
		}
		return tasks[n-1], nil
	}
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}
	return models.Task{}, errTaskNotFound
}

// askDue reads a due date in a.loc, returning def for a blank answer.
func (a *App) askDue(prompt string, def time.Time) (time.Time, error) {
	answer, err := a.ask(prompt)
	if err != nil {
		return time.Time{}, err
	}
	if answer == "" {
		return def, nil
	}
	due, err := time.ParseInLocation(DueInputLayout, answer, a.loc)
	if err != nil {
		return time.Time{}, errDueFormat
	}
	return due, nil
}
