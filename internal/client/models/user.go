// Package models defines the records persisted by the todomini store.
package models

// UserProfile holds the editable profile fields of an account. The password
// is kept as entered; AvatarURI is an opaque reference, empty for no avatar.
type UserProfile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AvatarURI string `json:"avatarUri"`
}

// StoredUser is an account as persisted: profile, identity, timestamps and
// the user's own tasks in insertion order.
type StoredUser struct {
	UserProfile
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Tasks     []Task `json:"tasks"`
}

// Profile returns a copy of the embedded profile fields.
func (u *StoredUser) Profile() UserProfile {
	return u.UserProfile
}

// Clone returns a deep copy; the task slice is not shared.
func (u StoredUser) Clone() StoredUser {
	u.Tasks = append(make([]Task, 0, len(u.Tasks)), u.Tasks...)
	return u
}

// RegisterInput carries the fields accepted by registration.
type RegisterInput = UserProfile

// ProfilePatch lists profile fields to change. A nil field is left as is.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	AvatarURI *string
}
