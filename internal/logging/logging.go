// Package logging wires the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/dcao/tagtime/internal/config"
)

// Setup builds a logger from config, installs it as the slog default and
// returns it. Logs go to stderr so that schedule output on stdout stays
// machine-readable.
func Setup(c config.LoggingConfig) *slog.Logger {
	var lvl slog.Level
	switch c.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if c.Format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
