package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSessionSecret = "0123456789abcdef0123456789abcdef"

func validTestConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Auth: AuthConfig{
			SessionSecret: testSessionSecret,
		},
		RateLimit: RateLimitConfig{
			MaxRequests: 100,
			Window:      time.Minute,
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "GIN_MODE", "AUTH_SESSION_SECRET", "REDIS_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.False(t, cfg.RateLimit.Enabled())
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("AUTH_SESSION_SECRET", testSessionSecret)
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := LoadFromEnv()
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, testSessionSecret, cfg.Auth.SessionSecret)
	assert.True(t, cfg.RateLimit.Enabled())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := validTestConfig()
		err := cfg.Validate()
		assert.NoError(t, err)
	})

	t.Run("invalid server config", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.ReadTimeout = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server config validation failed")
	})

	t.Run("invalid logger config", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Logger.Level = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger config validation failed")
	})

	t.Run("missing session secret", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Auth.SessionSecret = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "auth config validation failed")
	})

	t.Run("invalid rate limit config", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.RateLimit.RedisURL = "redis://localhost:6379/0"
		cfg.RateLimit.MaxRequests = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit config validation failed")
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.GinMode = "invalid"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid GIN_MODE")
	})

	t.Run("valid gin modes", func(t *testing.T) {
		validModes := []string{"debug", "release", "test"}
		for _, mode := range validModes {
			cfg := validTestConfig()
			cfg.GinMode = mode
			err := cfg.Validate()
			assert.NoError(t, err, "mode %s should be valid", mode)
		}
	})
}
