package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/BenjaminLindeen/RoomHub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"invalid falls back to info", "verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Enabled(context.Background(), tt.wantLevel))
			if tt.wantLevel > slog.LevelDebug {
				assert.False(t, log.Enabled(context.Background(), tt.wantLevel-1))
			}
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))

	// Without an attached logger we fall back to the default.
	assert.NotNil(t, FromContext(context.Background()))
}
