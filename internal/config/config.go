package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDatabaseURL     = "lifeline.db"
	defaultAuthSecret      = "change-me-auth-secret"
	defaultPort            = "8080"
	defaultMinIntervalDays = "90"
)

type Config struct {
	AppEnv      string
	DatabaseURL string

	// Shared secret with the external identity provider that issues
	// the bearer tokens this service verifies.
	AuthSecret string

	Port string

	// Minimum days between donations before a donor counts as available.
	MinIntervalDays int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.AuthSecret = strings.TrimSpace(getEnv("AUTH_SECRET", defaultAuthSecret))
	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))

	days, err := strconv.Atoi(getEnv("AVAILABILITY_MIN_INTERVAL_DAYS", defaultMinIntervalDays))
	if err != nil || days <= 0 {
		return nil, fmt.Errorf("config: invalid AVAILABILITY_MIN_INTERVAL_DAYS: %q",
			os.Getenv("AVAILABILITY_MIN_INTERVAL_DAYS"))
	}
	cfg.MinIntervalDays = days

	if cfg.AppEnv == "prod" && cfg.AuthSecret == defaultAuthSecret {
		return nil, fmt.Errorf("config: AUTH_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
