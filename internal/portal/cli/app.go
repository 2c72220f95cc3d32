package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/campushq/collegeportal/internal/logging"
	"github.com/campushq/collegeportal/internal/portal/api"
	"github.com/campushq/collegeportal/internal/portal/config"
	"github.com/campushq/collegeportal/internal/portal/guard"
	"github.com/campushq/collegeportal/internal/portal/repositories/state"
	"github.com/campushq/collegeportal/internal/portal/session"

	_ "modernc.org/sqlite"
)

// App ties the portal pieces together for the interactive shell. The current
// route mirrors what a browser address bar would show; navigation decided by
// the session manager or the guard lands here.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     *api.Client
	session *session.Manager
	db      *sql.DB
	route   string
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, cfg.StateDBPath)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		route:  guard.RouteLogin,
		reader: bufio.NewReader(os.Stdin),
	}
	a.api = api.NewClient(cfg.GatewayBaseURL, cfg.RequestTimeout, log)
	a.session = session.NewManager(db, log, a.navigateTo)
	return a, nil
}

// navigateTo is the navigation hook handed to the session manager; the guard
// paths in open.go reuse it so every route change goes through one place.
func (a *App) navigateTo(route string) {
	a.route = route
	printlnFn("Now at", route)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().State == session.StateAuthenticated
}

// Run rehydrates the persisted session and enters the command loop. A token
// restored from a previous run is re-attached to the gateway client so
// authenticated calls work immediately.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Init(ctx); err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}
	if cur := a.session.Current(); cur.State == session.StateAuthenticated {
		a.api.SetToken(cur.Token)
		a.route = guard.RouteDashboard
	}

	a.Root(ctx)
}

// Close tears the app down. The session manager is closed first so a login
// round-trip finishing mid-teardown cannot mutate anything.
func (a *App) Close() {
	a.session.Close()
	if err := a.db.Close(); err != nil {
		a.log.Error(context.Background(), "error closing state database", "error", err)
	}
}
