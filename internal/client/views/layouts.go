package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mantis/internal/client/menu"
	"github.com/dmitrijs2005/mantis/internal/client/stores"
)

const brand = "Mantis"

func banner(w io.Writer, title string) error {
	line := strings.Repeat("=", len(brand)+len(title)+4)
	_, err := fmt.Fprintf(w, "%s\n%s :: %s\n%s\n", line, brand, title, line)
	return err
}

type authLayout struct{}

func (authLayout) Title() string { return "Authentication" }

func (v authLayout) Render(w io.Writer) error {
	return banner(w, v.Title())
}

type homeLayout struct {
	reg *stores.Registry
}

func (homeLayout) Title() string { return "Home" }

func (v homeLayout) Render(w io.Writer) error {
	if err := banner(w, v.Title()); err != nil {
		return err
	}
	hint := "Type 'login' to sign in or 'go /auth/register' to create an account."
	if v.reg.Auth().IsAuthenticated() {
		hint = "Type 'go /dashboard' to open the dashboard."
	}
	_, err := fmt.Fprintf(w, "Welcome to %s.\n%s\n", brand, hint)
	return err
}

type mainLayout struct {
	reg     *stores.Registry
	current func() string
}

func (mainLayout) Title() string { return "Dashboard" }

func (v mainLayout) Render(w io.Writer) error {
	if err := banner(w, v.Title()); err != nil {
		return err
	}

	theme := "light"
	if v.reg.Preferences().IsDarkTheme() {
		theme = "dark"
	}
	name := "anonymous"
	if u := v.reg.Auth().User(); u != nil {
		name = u.DisplayName()
	}
	if _, err := fmt.Fprintf(w, "user: %s | theme: %s | locale: %s\n\n", name, theme, v.reg.Preferences().Locale()); err != nil {
		return err
	}

	active := ""
	if v.current != nil {
		active = v.current()
	}
	if err := menu.Render(w, menu.Sidebar(), active); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
