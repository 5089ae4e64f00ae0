// Package views renders the dashboard screens as text.
package views

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mantis/internal/client/router"
	"github.com/dmitrijs2005/mantis/internal/client/stores"
)

var ErrUnknownComponent = errors.New("unknown component")

// Loader builds views bound to the app's stores.
type Loader struct {
	reg     *stores.Registry
	current func() string
}

// NewLoader returns a loader. current reports the active path for
// highlighting the sidebar.
func NewLoader(reg *stores.Registry, current func() string) *Loader {
	return &Loader{reg: reg, current: current}
}

// Load satisfies router.Loader.
func (l *Loader) Load(component string) router.ViewFactory {
	return func() (router.View, error) {
		switch component {
		case router.AuthLayout:
			return authLayout{}, nil
		case router.HomeLayout:
			return homeLayout{reg: l.reg}, nil
		case router.MainLayout:
			return mainLayout{reg: l.reg, current: l.current}, nil
		case router.LoginPage:
			return loginPage{reg: l.reg}, nil
		case router.RegisterPage:
			return registerPage{}, nil
		case router.Error404Page:
			return error404Page{}, nil
		case router.DashboardPage:
			return dashboardPage{reg: l.reg}, nil
		case router.TypographyPage:
			return typographyPage{}, nil
		case router.ColorsPage:
			return colorsPage{reg: l.reg}, nil
		case router.ShadowPage:
			return shadowPage{}, nil
		case router.AntIconsPage:
			return antIconsPage{}, nil
		case router.SamplePage:
			return samplePage{}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
}

// Render draws a layout chain, outermost first.
func Render(w io.Writer, vs []router.View) error {
	for _, v := range vs {
		if err := v.Render(w); err != nil {
			return fmt.Errorf("failed to render %s: %w", v.Title(), err)
		}
	}
	return nil
}
