package config

import (
	"fmt"
	"os"
	"strconv"
)

// TokenConfig holds configuration for service-token generation and
// verification. The token attributes operator decisions; end-user
// authentication lives in the surrounding application.
type TokenConfig struct {
	Secret          string
	ExpirationHours int
}

// NewTokenConfig creates a new service-token configuration from environment
// variables. It reads AUTH_TOKEN_SECRET (required) and
// AUTH_TOKEN_EXPIRATION_HOURS (default: 24).
func NewTokenConfig() (*TokenConfig, error) {
	secret := os.Getenv("AUTH_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_SECRET is required but not set")
	}

	expirationStr := os.Getenv("AUTH_TOKEN_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_TOKEN_EXPIRATION_HOURS: %v", err)
	}

	cfg := &TokenConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *TokenConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("AUTH_TOKEN_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("AUTH_TOKEN_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
