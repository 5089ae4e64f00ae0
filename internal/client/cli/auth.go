package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mantis/internal/client/client"
	"github.com/dmitrijs2005/mantis/internal/client/stores"
	"github.com/dmitrijs2005/mantis/internal/common"
)

// Input indirections, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// Login prompts for credentials and the keep-me-signed-in choice, then
// hands them to the auth store, which navigates on success. The global
// loading flag is raised for the duration of the backend call.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	keepMe, err := getYesNo(a.reader, "Keep me signed in?", false, a.out)
	if err != nil {
		return err
	}

	err = a.stores.UI().Track(func() error {
		return a.stores.Auth().Login(ctx, username, string(password), keepMe)
	})
	if err != nil {
		if errors.Is(err, stores.ErrLoginFailed) {
			fmt.Fprintln(a.out, "Login unsuccessful: check your credentials or try again later")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Register creates an account on the backend and sends the user to the
// login page.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.stores.UI().Track(func() error {
		_, err := a.api.Register(ctx, email, username, string(password))
		return err
	})
	switch {
	case errors.Is(err, client.ErrConflict):
		fmt.Fprintln(a.out, "An account with this email or username already exists")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return a.router.Push(ctx, stores.LoginPath)
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	return a.stores.Auth().Logout(ctx)
}
