package auth

import (
	"fmt"
	"time"
)

// AuthConfig holds the token signing settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		c.Issuer = "sysmayal-backend"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	return nil
}
