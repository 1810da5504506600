// Package validate holds the form rules the CLI applies before calling the
// store. The store itself only enforces email uniqueness and credentials.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	ErrFirstNameRequired  = errors.New("first name is required")
	ErrFirstNameTooShort  = errors.New("first name must be at least 2 characters")
	ErrLastNameRequired   = errors.New("last name is required")
	ErrLastNameTooShort   = errors.New("last name must be at least 2 characters")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailFormat        = errors.New("email format is invalid")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
	ErrConfirmWithoutNew  = errors.New("enter a new password to confirm")
	ErrTaskTitleRequired  = errors.New("task title is required")
	ErrCredentialsMissing = errors.New("email and password are required")
)

// Registration checks the sign-up form. Names and email are trimmed before
// the emptiness check, passwords are not.
func Registration(first, last, email, password, confirm string) error {
	if blank(first) || blank(last) || blank(email) || password == "" || confirm == "" {
		return ErrMissingFields
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Login checks that both credentials were entered.
func Login(email, password string) error {
	if blank(email) || password == "" {
		return ErrCredentialsMissing
	}
	return nil
}

// Account checks the profile form and returns every problem found, in form
// order. An empty newPassword means "keep the current one".
func Account(first, last, email, newPassword, confirm string) []error {
	var errs []error

	errs = appendName(errs, first, ErrFirstNameRequired, ErrFirstNameTooShort)
	errs = appendName(errs, last, ErrLastNameRequired, ErrLastNameTooShort)

	switch email = strings.TrimSpace(email); {
	case email == "":
		errs = append(errs, ErrEmailRequired)
	case !emailPattern.MatchString(email):
		errs = append(errs, ErrEmailFormat)
	}

	changing := newPassword != ""
	if changing && utf8.RuneCountInString(newPassword) < MinPasswordLength {
		errs = append(errs, ErrPasswordTooShort)
	}
	if confirm != "" && !changing {
		errs = append(errs, ErrConfirmWithoutNew)
	}
	if changing && confirm != newPassword {
		errs = append(errs, ErrPasswordMismatch)
	}
	return errs
}

// TaskTitle rejects titles that are empty once trimmed.
func TaskTitle(title string) error {
	if blank(title) {
		return ErrTaskTitleRequired
	}
	return nil
}

func appendName(errs []error, name string, required, tooShort error) []error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return append(errs, required)
	case utf8.RuneCountInString(name) < MinNameLength:
		return append(errs, tooShort)
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
