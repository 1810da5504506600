package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todomini/internal/client/dashboard"
	"github.com/dmitrijs2005/todomini/internal/client/models"
	"github.com/dmitrijs2005/todomini/internal/client/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up form and creates an account. The new
// user is logged in on success.
func (a *App) Register(ctx context.Context) error {
	var in models.RegisterInput
	var err error

	if in.FirstName, err = a.ask("First name"); err != nil {
		return err
	}
	if in.LastName, err = a.ask("Last name"); err != nil {
		return err
	}
	if in.Email, err = a.ask("Email"); err != nil {
		return err
	}
	if in.Password, err = a.askPassword("Password"); err != nil {
		return err
	}
	confirm, err := a.askPassword("Confirm password")
	if err != nil {
		return err
	}

	if err := validate.Registration(in.FirstName, in.LastName, in.Email, in.Password, confirm); err != nil {
		return err
	}
	if err := a.store.Register(ctx, in); err != nil {
		return err
	}

	a.println(fmt.Sprintf("Welcome, %s!", a.store.View().FullName))
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password")
	if err != nil {
		return err
	}

	if err := validate.Login(email, password); err != nil {
		return err
	}
	if err := a.store.Login(ctx, email, password); err != nil {
		return err
	}

	v := a.store.View()
	a.println(fmt.Sprintf("%s, %s!", dashboard.Greeting(a.now().In(a.loc)), v.FullName))
	return nil
}

// Logout ends the session. Stored accounts and tasks are kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the session user's profile.
func (a *App) WhoAmI(_ context.Context) error {
	v := a.store.View()
	if !v.IsAuthenticated {
		a.println("Not logged in.")
		return nil
	}

	a.println(fmt.Sprintf("[%s] %s <%s>", dashboard.Initials(v.FullName), v.FullName, v.Profile.Email))
	if v.Profile.AvatarURI != "" {
		a.println("Avatar:", v.Profile.AvatarURI)
	}
	a.println(fmt.Sprintf("%d task(s)", len(v.Tasks)))
	return nil
}
