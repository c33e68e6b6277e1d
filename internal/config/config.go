package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration for the CLI
type Config struct {
	// API Configuration
	API APIConfig

	// Logging Configuration
	Logging LoggingConfig
}

// APIConfig holds backend connection settings
type APIConfig struct {
	BaseURL   string        // overrides the server picked from roomdesk.json when set
	Timeout   time.Duration // per-request HTTP timeout
	RateLimit float64       // requests per second, 0 disables the limiter
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	timeout := 30 * time.Second
	if raw := os.Getenv("ROOMDESK_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid ROOMDESK_HTTP_TIMEOUT %q: must be a positive duration like 30s", raw)
		}
		timeout = d
	}

	var rateLimit float64
	if raw := os.Getenv("ROOMDESK_RATE_LIMIT"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid ROOMDESK_RATE_LIMIT %q: must be a non-negative number", raw)
		}
		rateLimit = v
	}

	// Logging configuration - quiet console output by default
	logLevel := os.Getenv("ROOMDESK_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	logFormat := os.Getenv("ROOMDESK_LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		API: APIConfig{
			BaseURL:   os.Getenv("ROOMDESK_API_BASE_URL"),
			Timeout:   timeout,
			RateLimit: rateLimit,
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
