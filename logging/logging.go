// Package logging owns the one-time process-wide logger setup. It is
// invoked from the entry point before any request is served and never
// reinitialised; records flush independently, so there is no teardown.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/querybase/servekit/config"
)

// Init builds the process logger from configuration, installs it as the
// slog default, and returns it.
func Init(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
