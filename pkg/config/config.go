// Package config reads application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds everything the binaries need. The parsing/reporting
// core itself owns no environment state; these knobs belong to the
// application shell around it.
type Config struct {
	// Timezone reports are generated in.
	Timezone string
	// SundayWeek switches week reports to Sunday-start (default ISO
	// Monday).
	SundayWeek bool
	// CatalogPath is the product catalog CSV loaded at startup.
	CatalogPath string
	LogLevel    string
}

// Load reads configuration with sensible defaults for a Vietnamese
// shop.
func Load() (*Config, error) {
	cfg := &Config{
		Timezone:    getEnv("POS_TIMEZONE", "Asia/Ho_Chi_Minh"),
		SundayWeek:  getEnvAsBool("POS_SUNDAY_WEEK", false),
		CatalogPath: getEnv("POS_CATALOG_PATH", "catalog.csv"),
		LogLevel:    getEnv("POS_LOG_LEVEL", "info"),
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid POS_TIMEZONE %q: %w", cfg.Timezone, err)
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// SlogLevel maps the configured level string onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
