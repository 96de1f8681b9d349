package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr            = ":8080"
	defaultDatabaseURL     = "courtwatch.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "24h"
	defaultMonitorInterval = "5s"
)

type Config struct {
	Addr            string
	DatabaseURL     string
	JWTSecret       string
	JWTAccessTTL    time.Duration
	MonitorInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:        strings.TrimSpace(getEnv("ADDR", defaultAddr)),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.MonitorInterval, err = parseDurationEnv("MONITOR_INTERVAL", defaultMonitorInterval)
	if err != nil {
		return nil, err
	}
	if cfg.MonitorInterval <= 0 {
		return nil, fmt.Errorf("MONITOR_INTERVAL must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
