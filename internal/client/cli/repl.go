package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/todomini/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Account(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, ref string) error
	Done(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The first token is the command; task commands take an optional task
// reference (list number or id) as the second token. Errors returned by a
// command are printed and the loop continues. The loop exits on EOF, when
// the context is done, or when the user types "exit" or "quit".
//
//	Not logged in: help, register, login, exit | quit
//	Logged in:     help, whoami, account, (l)ist, add, edit, done, delete,
//	               logout, exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("todo %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		ref := ""
		if len(parts) > 1 {
			ref = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, account, (l)ist, add, edit, done, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "account":
			err = a.Account(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "add":
			err = a.Add(ctx)

		case "edit":
			err = a.Edit(ctx, ref)

		case "done":
			err = a.Done(ctx, ref)

		case "delete":
			err = a.Delete(ctx, ref)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", common.Message(err))
		}
	}
}
