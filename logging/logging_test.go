package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/querybase/servekit/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Fatalf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitHonoursLevel(t *testing.T) {
	logger := Init(config.LogConfig{Level: "warn", Format: "text"})

	ctx := context.Background()
	if logger.Enabled(ctx, slog.LevelDebug) {
		t.Fatal("debug must be disabled at warn level")
	}
	if !logger.Enabled(ctx, slog.LevelWarn) {
		t.Fatal("warn must be enabled at warn level")
	}
	if slog.Default() != logger {
		t.Fatal("Init must install the logger as the slog default")
	}
}
