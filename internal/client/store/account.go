package store

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/common"
)

// Register creates a user from in and logs them in. Names, email and avatar
// are trimmed; the password is stored as given. The new user is placed first.
//
// Returns common.ErrDuplicateEmail when the normalized email is taken.
func (s *Store) Register(ctx context.Context, in models.RegisterInput) error {
	var id string
	err := s.mutate(ctx, func(d *models.PersistedData) error {
		email := normalizeEmail(in.Email)
		for _, u := range d.Users {
			if normalizeEmail(u.Email) == email {
				return common.ErrDuplicateEmail
			}
		}

		ts := s.timestamp()
		user := models.StoredUser{
			UserProfile: models.UserProfile{
				FirstName: strings.TrimSpace(in.FirstName),
				LastName:  strings.TrimSpace(in.LastName),
				Email:     strings.TrimSpace(in.Email),
				Password:  in.Password,
				AvatarURI: strings.TrimSpace(in.AvatarURI),
			},
			ID:        s.newID("user"),
			CreatedAt: ts,
			UpdatedAt: ts,
			Tasks:     []models.Task{},
		}
		id = user.ID

		d.Users = append([]models.StoredUser{user}, d.Users...)
		d.SessionUserID = &id
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user registered", "user_id", id)
	return nil
}

// Login starts a session for the first user whose normalized email and exact
// password match. On failure the session is unchanged and
// common.ErrInvalidCredentials is returned.
func (s *Store) Login(ctx context.Context, email, password string) error {
	var id string
	err := s.mutate(ctx, func(d *models.PersistedData) error {
		want := normalizeEmail(email)
		for _, u := range d.Users {
			if normalizeEmail(u.Email) == want && u.Password == password {
				id = u.ID
				d.SessionUserID = &id
				return nil
			}
		}
		return common.ErrInvalidCredentials
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user logged in", "user_id", id)
	return nil
}

// Logout clears the session. It always persists, even when nobody is logged
// in.
func (s *Store) Logout(ctx context.Context) error {
	err := s.mutate(ctx, func(d *models.PersistedData) error {
		d.SessionUserID = nil
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "user logged out")
	return nil
}

// UpdateProfile merges patch into the session user's profile.
//
// String fields are trimmed except the password, which replaces the old one
// verbatim when present. The target email (patched or current) must not
// belong to another user.
//
// Errors: common.ErrAuthRequired, common.ErrUserNotFound,
// common.ErrEmailConflict.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	var id string
	err := s.mutate(ctx, func(d *models.PersistedData) error {
		if d.SessionUserID == nil {
			return common.ErrAuthRequired
		}
		id = *d.SessionUserID

		i := d.FindUser(id)
		if i < 0 {
			return common.ErrUserNotFound
		}
		u := &d.Users[i]

		target := normalizeEmail(u.Email)
		if patch.Email != nil {
			target = normalizeEmail(*patch.Email)
		}
		for _, other := range d.Users {
			if other.ID != id && normalizeEmail(other.Email) == target {
				return common.ErrEmailConflict
			}
		}

		setTrimmed(&u.FirstName, patch.FirstName)
		setTrimmed(&u.LastName, patch.LastName)
		setTrimmed(&u.Email, patch.Email)
		setTrimmed(&u.AvatarURI, patch.AvatarURI)
		if patch.Password != nil {
			u.Password = *patch.Password
		}
		u.UpdatedAt = s.timestamp()
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "profile updated", "user_id", id)
	return nil
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
