package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/mantis/internal/client/client"
	"github.com/dmitrijs2005/mantis/internal/client/config"
	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
	"github.com/dmitrijs2005/mantis/internal/client/router"
	"github.com/dmitrijs2005/mantis/internal/client/stores"
	"github.com/dmitrijs2005/mantis/internal/client/views"
	"github.com/dmitrijs2005/mantis/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const (
	pingTimeout                = 3 * time.Second
	defaultOnlineCheckInterval = 3 * time.Second
)

type App struct {
	config *config.Config
	db     *sql.DB
	api    client.Client
	router *router.Router
	stores *stores.Registry
	logger logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp opens local storage, connects the backend client and wires the
// router and stores together.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewAPIClient(c.APIURL, c.HealthAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	app, err := newApp(ctx, c, logger, db, api, os.Stdin, os.Stdout)
	if err != nil {
		api.Close()
		db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, api client.Client, in io.Reader, out io.Writer) (*App, error) {
	session, err := webstorage.NewSessionStorage(ctx, db, c.SessionID, c.SessionMaxAge)
	if err != nil {
		return nil, err
	}

	// Views read the stores, the stores navigate through the router and the
	// router owns the views, so the loader is bound once everything exists.
	var loader *views.Loader
	rt, err := router.New(router.Tables(func(component string) router.ViewFactory {
		return func() (router.View, error) { return loader.Load(component)() }
	}), logger)
	if err != nil {
		return nil, err
	}

	reg := stores.NewRegistry(ctx, stores.Deps{
		API:          api,
		Local:        webstorage.NewLocalStorage(db),
		Session:      session,
		Navigator:    rt,
		Namespace:    c.StorageNamespace,
		Env:          stores.DetectEnvironment(os.Getenv),
		LoginTimeout: c.LoginTimeout,
		Logger:       logger,
	})
	loader = views.NewLoader(reg, func() string { return rt.Current().Path })
	rt.BeforeEach(router.RequireAuth(reg.Auth(), stores.LoginPath))

	a := &App{
		config: c,
		db:     db,
		api:    api,
		router: rt,
		stores: reg,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
		mode:   ModeOffline,
	}
	rt.OnNavigate(a.render)

	return a, nil
}

// render draws the screen for every completed navigation.
func (a *App) render(ctx context.Context, loc router.Location) {
	vs, err := a.router.Views(loc)
	if err != nil {
		a.logger.Error(ctx, "error loading view", "path", loc.Path, "error", err)
		return
	}
	fmt.Fprintln(a.out)
	if err := views.Render(a.out, vs); err != nil {
		a.logger.Error(ctx, "error rendering view", "path", loc.Path, "error", err)
	}
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	return a.stores.Auth().IsAuthenticated()
}

// Run performs the initial navigation, starts the connectivity watcher and
// blocks in the REPL until the user leaves or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	initial := "/"
	if a.isLoggedIn() {
		initial = stores.DefaultLandingPath
	}
	if err := a.router.Start(ctx, initial); err != nil {
		return err
	}

	select {
	case <-a.router.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.checkOnline(watchCtx)
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to Mantis (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) Close() error {
	if err := a.api.Close(); err != nil {
		a.logger.Warn(context.Background(), "error closing backend client", "error", err)
	}
	return a.db.Close()
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.api.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done and flips the app between online and offline modes. A non-positive
// interval falls back to defaultOnlineCheckInterval.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.logger.Warn(ctx, "invalid online check interval, using default", "interval", interval, "default", defaultOnlineCheckInterval)
		interval = defaultOnlineCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.stores.Auth().User(); u != nil {
		s = u.DisplayName() + " "
	}
	s += string(a.Mode())
	if a.stores.UI().IsLoading() {
		s += " …"
	}
	return fmt.Sprintf("(%s)", s)
}
