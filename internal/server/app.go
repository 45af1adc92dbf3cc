// Package server wires the dev identity service together: it opens the user
// database, builds the account service and serves the HTTP API until the
// context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/server/config"
	"github.com/dmitrijs2005/feedbackdesk/internal/server/db"
	"github.com/dmitrijs2005/feedbackdesk/internal/server/httpapi"
	"github.com/dmitrijs2005/feedbackdesk/internal/server/users"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	authRateLimit = 5
	authBurst     = 10
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       db.RepositoryManager
	userService *users.Service
	handler     http.Handler
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	rm, err := db.NewSQLiteRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), c)
	handler := httpapi.NewRouter(us, logger, httpapi.Options{
		Development:   c.LogLevel == "debug",
		AuthRateLimit: authRateLimit,
		AuthBurst:     authBurst,
	})

	return &App{config: c, logger: logger, repos: rm, userService: us, handler: handler}, nil
}

// Handler exposes the HTTP API without binding a socket.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run serves until ctx is done, then shuts the server down gracefully and
// closes the database.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              app.config.ListenAddr,
		Handler:           app.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "identity server listening", "addr", app.config.ListenAddr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		app.logger.Info(context.Background(), "shutting down identity server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
