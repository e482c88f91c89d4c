package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/config"
	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/httpapi"
	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/httpapi/handlers"
	"go.uber.org/zap"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger) *App {
	router := httpapi.NewRouter(httpapi.RouterDeps{
		GreetingHandler: handlers.Greeting,
		HealthHandler:   handlers.Health,
		Logger:          logger,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.logger.Info("starting HTTP server", zap.String("addr", a.httpServer.Addr))
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
