package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantDebugOn bool
		wantErrorOn bool
	}{
		{
			name:        "json format with debug level",
			config:      &Config{Level: "debug", Format: "json"},
			wantDebugOn: true,
			wantErrorOn: true,
		},
		{
			name:        "console format with info level",
			config:      &Config{Level: "info", Format: "console"},
			wantDebugOn: false,
			wantErrorOn: true,
		},
		{
			name:        "unknown level defaults to info",
			config:      &Config{Level: "verbose", Format: "json"},
			wantDebugOn: false,
			wantErrorOn: true,
		},
		{
			name:        "error level suppresses warn",
			config:      &Config{Level: "error", Format: "json", Output: "stderr"},
			wantDebugOn: false,
			wantErrorOn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.wantDebugOn, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantErrorOn, log.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestWith(t *testing.T) {
	log := NewDefault()
	child := log.With(slog.String("component", "moderation"))
	require.NotNil(t, child)
	assert.NotSame(t, log, child)
}
