package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/shhac/squeezebox/internal/app"
	"github.com/shhac/squeezebox/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	bootLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			bootLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	bootLogger.Info("starting squeezebox demo")

	cfg := app.ConfigFromEnv()
	fyneApp := fyneapp.NewWithID("com.shhac.squeezebox")

	demoApp, err := app.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(demoApp.FyneApp(), demoApp)
	demoApp.Run(mainWindow.Window())

	demoApp.Logger().Info("application shutdown complete")
	return nil
}
