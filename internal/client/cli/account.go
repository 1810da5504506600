package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/todomini/internal/client/dashboard"
	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/client/validate"
	"github.com/dmitrijs2005/todomini/internal/common"
)

// clearValue entered for the avatar removes it.
const clearValue = "-"

// Account edits the session user's profile. Blank answers keep the current
// value; a blank new password keeps the current password.
func (a *App) Account(ctx context.Context) error {
	v := a.store.View()
	if !v.IsAuthenticated {
		return common.ErrAuthRequired
	}
	cur := v.Profile

	var next models.UserProfile
	var err error

	if next.FirstName, err = a.askDefault("First name", cur.FirstName); err != nil {
		return err
	}
	if next.LastName, err = a.askDefault("Last name", cur.LastName); err != nil {
		return err
	}
	if next.Email, err = a.askDefault("Email", cur.Email); err != nil {
		return err
	}
	if next.AvatarURI, err = a.askDefault("Avatar URI ('-' to remove)", cur.AvatarURI); err != nil {
		return err
	}
	if next.AvatarURI == clearValue {
		next.AvatarURI = ""
	}

	if next.Password, err = a.askPassword("New password (blank keeps current)"); err != nil {
		return err
	}
	confirm := ""
	if next.Password != "" {
		if confirm, err = a.askPassword("Confirm new password"); err != nil {
			return err
		}
	}

	if errs := validate.Account(next.FirstName, next.LastName, next.Email, next.Password, confirm); len(errs) > 0 {
		return errors.Join(errs...)
	}

	changed := dashboard.ChangedFields(cur, next)
	if len(changed) == 0 {
		a.println("Nothing to update.")
		return nil
	}

	patch := models.ProfilePatch{
		FirstName: &next.FirstName,
		LastName:  &next.LastName,
		Email:     &next.Email,
		AvatarURI: &next.AvatarURI,
	}
	if next.Password != "" {
		patch.Password = &next.Password
	}
	if err := a.store.UpdateProfile(ctx, patch); err != nil {
		return err
	}

	a.println("Updated:", strings.Join(changed, ", "))
	return nil
}
