// Package logger provides a thin wrapper around zerolog.Logger used
// throughout hostpass.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Degrade paths (device identity unavailable, primary entropy source
// failure) log at Warn; fatal conditions are returned as errors, never
// logged-and-swallowed.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON to stderr at the given level.
// An unparseable level falls back to Warn, which keeps normal CLI
// output clean while still surfacing degrade warnings.
func New(level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	l := zerolog.New(os.Stderr).Level(lvl).With().
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
