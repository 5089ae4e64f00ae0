// Package server wires and runs the development API backend.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/mantis/internal/common"
	"github.com/dmitrijs2005/mantis/internal/logging"
	"github.com/dmitrijs2005/mantis/internal/server/config"
	"github.com/dmitrijs2005/mantis/internal/server/httpapi"
	"github.com/dmitrijs2005/mantis/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/mantis/internal/server/services"

	gs "github.com/dmitrijs2005/mantis/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// NewApp selects PostgreSQL when a DSN is configured and in-memory storage
// otherwise, migrates the schema and seeds the first user.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN != "" {
		var err error
		db, err = sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager(db)
	} else {
		logger.Warn(ctx, "no database DSN configured, using in-memory storage")
		rm = repomanager.NewMemoryRepositoryManager()
	}

	app, err := newApp(ctx, c, logger, db, rm)
	if err != nil && db != nil {
		db.Close()
	}
	return app, err
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	if c.SecretKey == "" {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key: %w", err)
		}
		c.SecretKey = secret
		logger.Warn(ctx, "no secret key configured, tokens will not survive a restart")
	}

	if err := rm.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	us := services.NewUserService(rm, c)

	created, err := us.SeedFirstUser(ctx, c.FirstUserEmail, c.FirstUserUsername, c.FirstUserPassword, c.FirstUserName)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info(ctx, "seeded first user", "username", c.FirstUserUsername)
	}

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

type runner interface {
	Run(ctx context.Context) error
}

// serve runs s and cancels the whole app when it fails.
func (app *App) serve(ctx context.Context, cancelFunc context.CancelFunc, s runner) {
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives, ctx is cancelled or one of
// the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	servers := []runner{
		httpapi.NewServer(app.config.HTTPAddr, app.userService, app.logger, httpapi.Options{
			AuthRatePerSecond: app.config.AuthRatePerSecond,
			AuthBurst:         app.config.AuthBurst,
		}),
		gs.NewGRPCServer(app.config.HealthAddrGRPC, app.logger),
	}

	var wg sync.WaitGroup

	for _, s := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.serve(ctx, cancelFunc, s)
		}()
	}

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "error closing database", "error", err)
		}
	}
}
