// Package logging configures the application logger. The terminal is
// owned by the interactive UI, so logs always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog logger writing JSON lines to path.
//   - path: log file location; empty resolves to DefaultLogPath
//   - level: log level string (trace, debug, info, warn, error)
//
// Returns the logger and a close function for the underlying file.
func Setup(path, level string) (zerolog.Logger, func() error, error) {
	if path == "" {
		var err error
		path, err = DefaultLogPath()
		if err != nil {
			return zerolog.Nop(), nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	log := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return log, f.Close, nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/perfily/perfily.log
// 2. ~/.local/state/perfily/perfily.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "perfily", "perfily.log")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return p, nil
}
