// Package dashboard contains the presentation helpers used by the CLI task
// list and account screens.
package dashboard

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/dmitrijs2005/todomini/internal/client/models"
)

// DueLayout renders due dates as day/month hour:minute.
const DueLayout = "02/01 15:04"

// SortByDue returns a copy of tasks ordered by due date, earliest first.
// Ties keep insertion order; unparsable dates go last.
func SortByDue(tasks []models.Task) []models.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b models.Task) int {
		ad, aerr := a.Due()
		bd, berr := b.Due()
		switch {
		case aerr != nil && berr != nil:
			return 0
		case aerr != nil:
			return 1
		case berr != nil:
			return -1
		}
		return ad.Compare(bd)
	})
	return out
}

// Greeting picks a salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Initials returns the upper-cased first letters of the first two words of
// name.
func Initials(name string) string {
	var b strings.Builder
	for i, part := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(part)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FormatDue renders dueAt in loc using DueLayout. Unparsable values are
// returned unchanged.
func FormatDue(dueAt string, loc *time.Location) string {
	t, err := models.Task{DueAt: dueAt}.Due()
	if err != nil {
		return dueAt
	}
	return t.In(loc).Format(DueLayout)
}

// ChangedFields lists the profile fields that after changes relative to
// before. after holds raw form input: its string fields are compared
// trimmed, and a non-empty Password always counts as a change.
func ChangedFields(before, after models.UserProfile) []string {
	var changed []string
	if strings.TrimSpace(after.FirstName) != before.FirstName {
		changed = append(changed, "first name")
	}
	if strings.TrimSpace(after.LastName) != before.LastName {
		changed = append(changed, "last name")
	}
	if !strings.EqualFold(strings.TrimSpace(after.Email), before.Email) {
		changed = append(changed, "email")
	}
	if strings.TrimSpace(after.AvatarURI) != before.AvatarURI {
		changed = append(changed, "avatar")
	}
	if after.Password != "" {
		changed = append(changed, "password")
	}
	return changed
}
