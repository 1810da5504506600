// Package cli provides the interactive todomini command-line client.
//
// An App drives a read-eval-print loop over a hydrated store: account
// commands (register, login, logout, whoami, account) and task commands
// (list, add, edit, done, delete). Form input is checked with package
// validate before it reaches the store, and store errors are shown through
// common.Message.
//
// The loop is started with App.Run, which blocks until the user exits or
// input ends.
package cli
