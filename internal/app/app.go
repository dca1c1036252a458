// Package app wires the squeezebox demo application together.
package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/shhac/squeezebox/internal/content"
	"github.com/shhac/squeezebox/internal/logging"
)

// App is the demo application coordinator, responsible for wiring the
// logger, content library, and main window together.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *Config
	logger  *slog.Logger
	library *content.Library
}

// New creates an App from the given configuration, initializing logging
// and loading the accordion content library.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.New("squeezebox", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.Info("initializing squeezebox demo",
		slog.Bool("debug", cfg.Debug),
		slog.String("content_path", cfg.ContentPath),
	)

	library := content.Default()
	if cfg.ContentPath != "" {
		library, err = content.Load(cfg.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
		logger.Info("loaded content library",
			slog.String("path", cfg.ContentPath),
			slog.Int("sets", len(library.Sets)),
		)
	}

	return &App{
		fyneApp: fyneApp,
		config:  cfg,
		logger:  logger,
		library: library,
	}, nil
}

// Run displays the main window and blocks on the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Library returns the loaded accordion content library.
func (a *App) Library() *content.Library {
	return a.library
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
