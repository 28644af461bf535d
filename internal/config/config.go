package config

import (
	"fmt"
	"os"
	"time"
)

// testTokenSecret is only ever used when APP_ENV=test so that fixtures can
// boot without extra environment plumbing. Production refuses to start
// without an explicit secret.
const testTokenSecret = "growbit-test-signing-key"

const defaultTokenTTL = 7 * 24 * time.Hour

type Config struct {
	DatabasePath   string
	Port           string
	Environment    string
	TokenSecret    string
	TokenTTL       time.Duration
	AllowedOrigins string
	LogLevel       string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath:   getEnv("DATABASE_PATH", "growbit.db"),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "production"),
		TokenSecret:    os.Getenv("TOKEN_SECRET"),
		TokenTTL:       defaultTokenTTL,
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = parsed
	}

	if cfg.TokenSecret == "" {
		if !cfg.IsTest() {
			return nil, fmt.Errorf("TOKEN_SECRET must be set")
		}
		cfg.TokenSecret = testTokenSecret
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsTest() bool {
	return c.Environment == "test"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
