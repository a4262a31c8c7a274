package config

import (
	"fmt"
	"time"
)

// RateLimitConfig holds request throttling configuration.
//
// Throttling is backed by redis and disabled entirely when RedisURL is
// empty.
type RateLimitConfig struct {
	// RedisURL is the redis connection URL (redis://host:port/db).
	RedisURL string
	// MaxRequests is the number of requests allowed per window per client.
	MaxRequests int
	// Window is the fixed window size.
	Window time.Duration
}

// LoadRateLimitConfigFromEnv loads rate limit configuration from environment variables.
func LoadRateLimitConfigFromEnv() RateLimitConfig {
	return RateLimitConfig{
		RedisURL:    GetEnv("REDIS_URL", ""),
		MaxRequests: GetEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		Window:      GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// Enabled reports whether throttling is configured.
func (c RateLimitConfig) Enabled() bool {
	return c.RedisURL != ""
}

// Validate validates rate limit configuration.
func (c RateLimitConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.MaxRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be greater than 0")
	}
	if c.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be greater than 0")
	}
	return nil
}
