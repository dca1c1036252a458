// Package logging configures the structured logger used across squeezebox.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// maxLogSize is the log file size at which the file is rotated aside (2 MB).
const maxLogSize = 2 * 1024 * 1024

// New initializes a JSON logger writing to the platform's log location:
//
//   - macOS:   ~/Library/Logs/squeezebox/squeezebox.log
//   - Linux:   ~/.local/state/squeezebox/squeezebox.log
//   - Windows: %LOCALAPPDATA%\squeezebox\Logs\squeezebox.log
//
// With debug enabled the logger records DEBUG entries and source locations.
// A single previous log generation is kept as <name>.log.old.
func New(appName string, debug bool) (*slog.Logger, error) {
	path, err := logFilePath(appName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := rotateIfNeeded(path); err != nil {
		return nil, fmt.Errorf("rotate log file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})), nil
}

// rotateIfNeeded moves an oversized log file aside to <path>.old, replacing
// the previous generation.
func rotateIfNeeded(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < maxLogSize {
		return nil
	}
	return os.Rename(path, path+".old")
}

// logFilePath returns the platform-specific log file location for appName.
func logFilePath(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appName, appName+".log"), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(local, appName, "Logs", appName+".log"), nil
	default:
		return filepath.Join(home, ".local", "state", appName, appName+".log"), nil
	}
}

// NewNopLogger returns a logger that discards everything, for tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
