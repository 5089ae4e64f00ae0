package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/mantis/internal/client/menu"
)

func (a *App) Navigate(ctx context.Context, path string) error {
	return a.router.Push(ctx, path)
}

func (a *App) Menu() error {
	return menu.Render(a.out, menu.Sidebar(), a.router.Current().Path)
}

func (a *App) Routes() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tACCESS")
	for _, r := range a.router.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Path, r.Name, r.Access)
	}
	return tw.Flush()
}

func (a *App) Theme(ctx context.Context) error {
	p := a.stores.Preferences()
	p.ToggleTheme(ctx)
	_, err := fmt.Fprintln(a.out, "Theme:", themeName(p.IsDarkTheme()))
	return err
}

// Locale prints the current locale or, given an argument, sets it.
func (a *App) Locale(ctx context.Context, args []string) error {
	p := a.stores.Preferences()
	if len(args) > 0 {
		p.SetLocale(ctx, args[0])
	}
	_, err := fmt.Fprintln(a.out, "Locale:", p.Locale())
	return err
}

func (a *App) Status() error {
	session := a.stores.Auth().Session()
	prefs := a.stores.Preferences().State()

	user := "anonymous"
	if session.User != nil {
		user = session.User.DisplayName()
		if session.User.KeepMe() {
			user += " (remembered)"
		}
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "user:\t%s\n", user)
	if session.ReturnURL != "" {
		fmt.Fprintf(tw, "return to:\t%s\n", session.ReturnURL)
	}
	fmt.Fprintf(tw, "route:\t%s\n", a.router.Current().Path)
	fmt.Fprintf(tw, "backend:\t%s\n", a.Mode())
	fmt.Fprintf(tw, "theme:\t%s\n", themeName(prefs.IsDarkTheme))
	fmt.Fprintf(tw, "locale:\t%s\n", prefs.Locale)
	return tw.Flush()
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
