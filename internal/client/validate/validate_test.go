package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistration(t *testing.T) {
	tests := []struct {
		name                              string
		first, last, email, pass, confirm string
		want                              error
	}{
		{"ok", "Ada", "Lovelace", "a@x.com", "secret", "secret", nil},
		{"blank first name", "  ", "Lovelace", "a@x.com", "secret", "secret", ErrMissingFields},
		{"no email", "Ada", "Lovelace", "", "secret", "secret", ErrMissingFields},
		{"no confirmation", "Ada", "Lovelace", "a@x.com", "secret", "", ErrMissingFields},
		{"whitespace password counts", "Ada", "Lovelace", "a@x.com", " ", " ", nil},
		{"mismatch", "Ada", "Lovelace", "a@x.com", "secret", "Secret", ErrPasswordMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Registration(tt.first, tt.last, tt.email, tt.pass, tt.confirm), tt.want)
		})
	}
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Login("a@x.com", "p"))
	assert.ErrorIs(t, Login(" ", "p"), ErrCredentialsMissing)
	assert.ErrorIs(t, Login("a@x.com", ""), ErrCredentialsMissing)
}

func TestAccount(t *testing.T) {
	tests := []struct {
		name                                 string
		first, last, email, newPass, confirm string
		want                                 []error
	}{
		{name: "valid, keep password", first: "Ada", last: "Lovelace", email: "a@x.com"},
		{name: "valid, new password", first: "Ada", last: "Lovelace", email: "a@x.com", newPass: "secret", confirm: "secret"},
		{name: "names", first: " ", last: "L", email: "a@x.com",
			want: []error{ErrFirstNameRequired, ErrLastNameTooShort}},
		{name: "two letter names", first: "Al", last: "Li", email: "a@x.com"},
		{name: "email missing", first: "Ada", last: "Lovelace", email: "  ",
			want: []error{ErrEmailRequired}},
		{name: "email format", first: "Ada", last: "Lovelace", email: "a@x",
			want: []error{ErrEmailFormat}},
		{name: "email with spaces", first: "Ada", last: "Lovelace", email: "a b@x.com",
			want: []error{ErrEmailFormat}},
		{name: "short password and mismatch", first: "Ada", last: "Lovelace", email: "a@x.com", newPass: "abc", confirm: "abd",
			want: []error{ErrPasswordTooShort, ErrPasswordMismatch}},
		{name: "confirm without new", first: "Ada", last: "Lovelace", email: "a@x.com", confirm: "secret",
			want: []error{ErrConfirmWithoutNew}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Account(tt.first, tt.last, tt.email, tt.newPass, tt.confirm))
		})
	}
}

func TestTaskTitle(t *testing.T) {
	assert.NoError(t, TaskTitle(" Buy milk "))
	assert.ErrorIs(t, TaskTitle(" \t "), ErrTaskTitleRequired)
}
