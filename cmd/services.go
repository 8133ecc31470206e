package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/veldrin/prisma-cli/internal/adapters/git"
	"github.com/veldrin/prisma-cli/internal/adapters/notification"
	"github.com/veldrin/prisma-cli/internal/adapters/storage"
	"github.com/veldrin/prisma-cli/internal/adapters/tui"
	"github.com/veldrin/prisma-cli/internal/config"
	"github.com/veldrin/prisma-cli/internal/domain"
	"github.com/veldrin/prisma-cli/internal/ports"
	"github.com/veldrin/prisma-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage    ports.Storage
	controller *services.Controller
	history    *services.HistoryService
	status     *services.StatusService
	git        ports.GitDetector
	notifier   *notification.Notifier
	gate       *tui.TickGate
	config     *config.Config
	mode       domain.Mode
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	app.notifier = notification.New(&app.config.Notifications)

	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	app.storage, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.git = git.NewDetector()
	app.history = services.NewHistoryService(app.storage, app.git)
	if wd, err := os.Getwd(); err == nil {
		app.history.SetWorkingDir(wd)
	}

	// Resolve effective mode: --mode flag > config > default
	modeStr := app.config.Mode
	if modeFlag != "" {
		modeStr = modeFlag
	}
	app.mode, err = domain.ValidateMode(modeStr)
	if err != nil {
		return fmt.Errorf("invalid mode %q: must be classic or prisma", modeStr)
	}

	app.gate = tui.NewTickGate()
	app.controller = services.NewController(services.ControllerConfig{
		DefaultMinutes: app.config.DefaultMinutes,
		Mode:           app.mode,
		Driver:         app.gate,
		Signaler:       app.notifier,
		OnFinished: func(totalMinutes int) {
			fmt.Printf("Session finished: %d minutes of focus.\n", totalMinutes)
		},
		OnSummary: func(final domain.Session, startedAt time.Time) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.history.Record(ctx, final, startedAt); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not record session: %v\n", err)
			}
		},
	})

	app.status = services.NewStatusService(app.controller, app.history)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.controller != nil {
		app.controller.Teardown()
	}
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// runTimer launches the interactive TUI. When startNow is set the
// session skips Setup and begins counting down immediately.
func runTimer(ctx context.Context, startNow bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var gitInfo *ports.GitInfo
	if app.git != nil && app.git.IsAvailable() {
		wd, _ := os.Getwd()
		gitInfo, _ = app.git.Detect(ctx, wd)
	}

	if startNow {
		app.controller.Dispatch(domain.EventStart)
	}

	return tui.Run(ctx, app.controller, app.gate, app.config, gitInfo)
}
