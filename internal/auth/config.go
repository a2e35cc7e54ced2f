package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	Issuer          string `yaml:"issuer"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

// LoadAuthConfig loads authentication configuration from a YAML file.
// JWT_SECRET from the environment always wins over the file value.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	config := &AuthConfig{
		Issuer:          "timesheet-backend",
		TokenTTLMinutes: 60,
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading auth config file: %w", err)
			}
			// Missing file is fine, environment variables can carry everything
		} else if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
		}
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
