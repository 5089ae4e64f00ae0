package router

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	ErrAccessUnset    = errors.New("route access is not set")
	ErrDuplicateRoute = errors.New("duplicate route path")
	ErrNoComponent    = errors.New("route has no component")
	ErrRedirectLoop   = errors.New("too many redirects")
)

// Access says who may enter a route. Children inherit from their parent
// unless they set their own.
type Access int

const (
	AccessUnset Access = iota
	AccessPublic
	AccessProtected
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	default:
		return "unset"
	}
}

type Meta struct {
	Access Access
}

// View is a rendered screen: a layout frame or a page.
type View interface {
	Title() string
	Render(w io.Writer) error
}

// ViewFactory builds a view on first navigation.
type ViewFactory func() (View, error)

// Route is one entry of a route table. A relative child Path is joined to
// its parent's; an absolute one is used as is.
type Route struct {
	Path      string
	Name      string
	Component ViewFactory
	Meta      Meta
	Children  []Route
}

// RouteInfo describes a resolved table entry.
type RouteInfo struct {
	Path   string
	Name   string
	Access Access
}

func joinPath(parent, child string) string {
	if strings.HasPrefix(child, "/") || parent == "" {
		return normalizePath(child)
	}
	return normalizePath(parent + "/" + child)
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Validate checks a set of tables: every top-level route sets Access, no
// two entries resolve to the same full path, and every leaf has a
// component. All problems are reported together.
func Validate(tables []Route) error {
	seen := make(map[string]struct{})
	var errs []error

	var walk func(r Route, parent string, top bool)
	walk = func(r Route, parent string, top bool) {
		full := joinPath(parent, r.Path)
		if top && r.Meta.Access == AccessUnset {
			errs = append(errs, fmt.Errorf("%w: %s", ErrAccessUnset, full))
		}
		if _, dup := seen[full]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateRoute, full))
		}
		seen[full] = struct{}{}
		if len(r.Children) == 0 && r.Component == nil {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoComponent, full))
		}
		for _, c := range r.Children {
			walk(c, full, false)
		}
	}

	for _, r := range tables {
		walk(r, "", true)
	}

	return errors.Join(errs...)
}
