package config

import "fmt"

// AuthConfig holds session-token configuration.
//
// Sessions are issued by the external identity provider and validated
// here with a shared HS256 secret.
type AuthConfig struct {
	// SessionSecret is the HMAC secret shared with the identity provider.
	SessionSecret string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		SessionSecret: GetEnv("AUTH_SESSION_SECRET", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("AUTH_SESSION_SECRET is required")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("AUTH_SESSION_SECRET must be at least 32 characters")
	}
	return nil
}
