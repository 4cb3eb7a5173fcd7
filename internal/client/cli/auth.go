package cli

import (
	"context"
	"fmt"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/router"
)

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted and the user lands on the default screen, mirroring
// the post-login redirect of the web console. Failures are reported and
// leave the user where they were; pressing login again starts over.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	identity, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", identity.FullName)
	a.navigate(ctx, router.DefaultAuthenticated)
	return nil
}

// Signup collects the registration form, creates the account and sends the
// user to the login screen, like the web console does after signup.
func (a *App) Signup(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Create a password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Re-enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, fullName, email, password, confirm); err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Signup successful! Please log in.")
	a.navigate(ctx, router.ScreenLogin)
	return nil
}
