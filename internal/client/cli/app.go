package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/todomini/internal/client/dashboard"
	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/client/store"
	"github.com/dmitrijs2005/todomini/internal/logging"
)

// Store is the part of *store.Store the CLI drives.
type Store interface {
	View() store.View
	Register(ctx context.Context, in models.RegisterInput) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error
	CreateTask(ctx context.Context, title string, dueAt time.Time) (models.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch models.TaskPatch) error
	DeleteTask(ctx context.Context, taskID string) error
	ToggleTask(ctx context.Context, taskID string) error
}

type App struct {
	store  Store
	log    logging.Logger
	reader *bufio.Reader
	inFD   int
	out    io.Writer
	now    func() time.Time
	loc    *time.Location
}

// NewApp returns an App reading commands from in and writing to out. Due
// dates are entered and shown in the local time zone.
func NewApp(st Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		store:  st,
		log:    log,
		reader: bufio.NewReader(in),
		inFD:   inputFD(in),
		out:    out,
		now:    time.Now,
		loc:    time.Local,
	}
}

// Run blocks in the REPL until the user exits, input ends or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "cli started")
	printlnFn("Welcome to todomini (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	a.log.Debug(ctx, "cli stopped")
}

func (a *App) isLoggedIn() bool {
	return a.store.View().IsAuthenticated
}

// status is shown in the prompt: a greeting with the user's name, or
// "guest".
func (a *App) status() string {
	v := a.store.View()
	if !v.IsAuthenticated {
		return "(guest)"
	}
	return fmt.Sprintf("(%s, %s)", dashboard.Greeting(a.now().In(a.loc)), v.FullName)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askPassword(prompt string) (string, error) {
	return getPassword(a.reader, a.inFD, prompt, a.out)
}

// askDefault shows current in the prompt and returns it when the answer is
// blank.
func (a *App) askDefault(prompt, current string) (string, error) {
	answer, err := a.ask(fmt.Sprintf("%s [%s]", prompt, current))
	if err != nil || answer == "" {
		return current, err
	}
	return answer, nil
}
