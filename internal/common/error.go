// Package common defines sentinel errors shared by the todomini store, its
// storage backends and the CLI. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Account errors.
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailConflict      = errors.New("email conflict")
	ErrUserNotFound       = errors.New("user not found")

	// Session errors.
	ErrAuthRequired = errors.New("auth required")

	// Store lifecycle errors.
	ErrNotHydrated     = errors.New("store not hydrated")
	ErrAlreadyHydrated = errors.New("store already hydrated")

	// Storage errors.
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrUnknownBackend    = errors.New("unknown storage backend")
)

// Message returns the human-readable reason shown to the user for err.
// Unknown errors are returned verbatim.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateEmail):
		return "An account with this email already exists."
	case errors.Is(err, ErrInvalidCredentials):
		return "Incorrect email or password."
	case errors.Is(err, ErrEmailConflict):
		return "This email is already used by another account."
	case errors.Is(err, ErrUserNotFound):
		return "User not found."
	case errors.Is(err, ErrAuthRequired):
		return "No user is logged in."
	case errors.Is(err, ErrNotHydrated):
		return "Data is still loading, try again."
	case errors.Is(err, ErrPersistenceFailed):
		return "Could not save your changes."
	default:
		return err.Error()
	}
}
