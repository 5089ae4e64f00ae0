package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mantis/internal/logging"
)

// NotFoundPath is where unknown paths land.
const NotFoundPath = "/auth/pages/error"

const maxRedirects = 8

// Location is the outcome of a navigation.
type Location struct {
	Path   string
	Name   string
	Access Access

	// Requested is the path that was asked for when guards or the
	// not-found fallback redirected elsewhere.
	Requested string
	NotFound  bool

	matched []*record
}

// Guard inspects a pending navigation and returns a path to redirect to,
// or "" to let it through.
type Guard func(ctx context.Context, to Location) (string, error)

// Listener is told about every completed navigation.
type Listener func(ctx context.Context, loc Location)

type record struct {
	path    string
	name    string
	access  Access
	factory ViewFactory
	parent  *record
	leaf    bool

	mu   sync.Mutex
	view View
}

// load builds the view once. A failed load is retried on the next call.
func (r *record) load() (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.view != nil {
		return r.view, nil
	}
	v, err := r.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to load view for %s: %w", r.path, err)
	}
	r.view = v
	return v, nil
}

// Router resolves paths against validated tables and keeps the current
// location.
type Router struct {
	records []*record
	byPath  map[string]*record
	logger  logging.Logger

	mu        sync.RWMutex
	guards    []Guard
	listeners []Listener
	current   Location

	ready     chan struct{}
	readyOnce sync.Once
}

// New validates tables and builds the router.
func New(tables []Route, logger logging.Logger) (*Router, error) {
	if err := Validate(tables); err != nil {
		return nil, err
	}

	r := &Router{
		byPath: make(map[string]*record),
		logger: logger.With("module", "router"),
		ready:  make(chan struct{}),
	}

	var add func(rt Route, parent *record)
	add = func(rt Route, parent *record) {
		rec := &record{
			name:    rt.Name,
			access:  rt.Meta.Access,
			factory: rt.Component,
			parent:  parent,
			leaf:    len(rt.Children) == 0,
		}
		if parent == nil {
			rec.path = joinPath("", rt.Path)
		} else {
			rec.path = joinPath(parent.path, rt.Path)
			if rec.access == AccessUnset {
				rec.access = parent.access
			}
		}
		r.records = append(r.records, rec)
		r.byPath[rec.path] = rec
		for _, c := range rt.Children {
			add(c, rec)
		}
	}
	for _, rt := range tables {
		add(rt, nil)
	}

	return r, nil
}

// BeforeEach installs a guard. Guards run in installation order.
func (r *Router) BeforeEach(g Guard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guards = append(r.guards, g)
}

func (r *Router) OnNavigate(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Resolve matches a path without running guards. Only leaves are
// navigable; anything else resolves to the not-found page.
func (r *Router) Resolve(p string) Location {
	p = normalizePath(p)
	if rec, ok := r.byPath[p]; ok && rec.leaf {
		return locationOf(rec)
	}
	if rec, ok := r.byPath[NotFoundPath]; ok {
		loc := locationOf(rec)
		loc.Requested = p
		loc.NotFound = true
		return loc
	}
	return Location{Path: p, Requested: p, NotFound: true}
}

func locationOf(rec *record) Location {
	loc := Location{Path: rec.path, Name: rec.name, Access: rec.access}
	for c := rec; c != nil; c = c.parent {
		if c.factory != nil {
			loc.matched = append([]*record{c}, loc.matched...)
		}
	}
	return loc
}

// Push navigates to p, following guard redirects, and notifies listeners.
func (r *Router) Push(ctx context.Context, p string) error {
	r.mu.RLock()
	guards := append([]Guard(nil), r.guards...)
	r.mu.RUnlock()

	requested := normalizePath(p)
	target := requested
	var loc Location

	for hops := 0; ; hops++ {
		if hops > maxRedirects {
			return fmt.Errorf("%w: %s", ErrRedirectLoop, requested)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		loc = r.Resolve(target)
		redirect := ""
		for _, g := range guards {
			to, err := g(ctx, loc)
			if err != nil {
				return fmt.Errorf("navigation to %s rejected: %w", loc.Path, err)
			}
			if to != "" {
				redirect = to
				break
			}
		}
		if redirect == "" {
			break
		}
		r.logger.Debug(ctx, "navigation redirected", "from", loc.Path, "to", redirect)
		target = redirect
	}

	if loc.Path != requested && loc.Requested == "" {
		loc.Requested = requested
	}

	r.mu.Lock()
	r.current = loc
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	r.logger.Debug(ctx, "navigated", "path", loc.Path, "name", loc.Name)
	for _, l := range listeners {
		l(ctx, loc)
	}
	return nil
}

// Start performs the initial navigation and then marks the router ready.
func (r *Router) Start(ctx context.Context, initial string) error {
	if err := r.Push(ctx, initial); err != nil {
		return err
	}
	r.readyOnce.Do(func() { close(r.ready) })
	return nil
}

// Ready is closed once the initial navigation completed.
func (r *Router) Ready() <-chan struct{} {
	return r.ready
}

func (r *Router) Current() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Views loads the layout chain and page for loc, outermost first.
func (r *Router) Views(loc Location) ([]View, error) {
	views := make([]View, 0, len(loc.matched))
	for _, rec := range loc.matched {
		v, err := rec.load()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Routes lists every table entry in declaration order.
func (r *Router) Routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, RouteInfo{Path: rec.path, Name: rec.name, Access: rec.access})
	}
	return out
}
