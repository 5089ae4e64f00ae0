package stores

import (
	"context"
	"time"

	"github.com/dmitrijs2005/mantis/internal/client/client"
	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
	"github.com/dmitrijs2005/mantis/internal/logging"
)

// Deps is everything the stores need from the outside world.
type Deps struct {
	API client.Client
	// Local survives restarts; Session lives as long as the terminal session.
	Local     webstorage.Storage
	Session   webstorage.Storage
	Navigator Navigator
	Namespace string
	Env       Environment

	LoginTimeout time.Duration
	Now          func() time.Time

	Logger logging.Logger
}

// Registry owns the one instance of each store for the running app.
type Registry struct {
	auth        *AuthStore
	preferences *PreferenceStore
	ui          *UIStore
}

// NewRegistry builds the stores. The auth store restores any remembered
// session from deps.Local before returning.
func NewRegistry(ctx context.Context, deps Deps) *Registry {
	return &Registry{
		preferences: NewPreferenceStore(ctx, deps.Session, deps.Namespace, deps.Env, deps.Logger),
		ui:          NewUIStore(),
		auth: NewAuthStore(ctx, deps.API, deps.Local, deps.Navigator, deps.Logger, AuthOptions{
			LoginTimeout: deps.LoginTimeout,
			Now:          deps.Now,
		}),
	}
}

func (r *Registry) Auth() *AuthStore {
	return r.auth
}

func (r *Registry) Preferences() *PreferenceStore {
	return r.preferences
}

func (r *Registry) UI() *UIStore {
	return r.ui
}
