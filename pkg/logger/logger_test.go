package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/flexquotes/backend/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("creates logger from env", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", "stdout")

		logger, err := New()
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("development settings", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")

		logger, err := New()
		require.NoError(t, err)
		require.NotNil(t, logger)
	})
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  appConfig.LoggerConfig
	}{
		{
			name: "production json",
			cfg:  appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"},
		},
		{
			name: "development console",
			cfg:  appConfig.LoggerConfig{Level: "debug", Format: "console", Output: "stdout"},
		},
		{
			name: "warn to stderr",
			cfg:  appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "stderr"},
		},
		{
			name: "empty config uses defaults",
			cfg:  appConfig.LoggerConfig{},
		},
		{
			name: "invalid level falls back to info",
			cfg:  appConfig.LoggerConfig{Level: "loudest", Format: "json", Output: "stdout"},
		},
		{
			name: "unknown output defaults to stdout",
			cfg:  appConfig.LoggerConfig{Level: "info", Format: "json", Output: "/dev/nowhere"},
		},
		{
			name: "case insensitive level",
			cfg:  appConfig.LoggerConfig{Level: "INFO", Format: "json", Output: "stdout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			// Logging must not panic regardless of configured level.
			logger.Debugw("debug", "k", "v")
			logger.Infow("info", "k", "v")
			logger.Warnw("warn", "k", "v")
			logger.Errorw("error", "k", "v")
		})
	}
}

func TestLoggerConfigIsProduction(t *testing.T) {
	assert.True(t, appConfig.LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.False(t, appConfig.LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, appConfig.LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}

func BenchmarkLoggerInfow(b *testing.B) {
	logger, err := NewWithConfig(appConfig.LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infow("benchmark message", "field1", "value1", "field2", 123)
	}
}
