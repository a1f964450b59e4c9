package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"unknown", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level)
			ctx := context.Background()

			if !log.Enabled(ctx, tt.enabled) {
				t.Errorf("New(%q) should enable %v", tt.level, tt.enabled)
			}
			if log.Enabled(ctx, tt.muted) {
				t.Errorf("New(%q) should mute %v", tt.level, tt.muted)
			}
		})
	}
}
