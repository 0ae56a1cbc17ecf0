package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	TelegramToken  string
	DatabaseDriver string
	DatabaseURL    string
	LogLevel       string
	LogFormat      string
	PrometheusPort string
	WebhookURL     string
	Port           string
	Location       *time.Location
	Messages       Messages
}

// Load loads configuration from a .env file, when present, and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverPostgres),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "text"),
		PrometheusPort: getEnvOrDefault("PROMETHEUS_PORT", "9090"),
		WebhookURL:     os.Getenv("WEBHOOK_URL"),
		Port:           getEnvOrDefault("PORT", "8080"),
	}

	// Collect every problem so a misconfigured deploy is fixed in one go.
	var result *multierror.Error

	if cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN"); cfg.TelegramToken == "" {
		result = multierror.Append(result, fmt.Errorf("TELEGRAM_TOKEN environment variable is required"))
	}

	if cfg.DatabaseURL = os.Getenv("DATABASE_URL"); cfg.DatabaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("DATABASE_URL environment variable is required"))
	}

	if cfg.DatabaseDriver != DriverPostgres && cfg.DatabaseDriver != DriverSQLite {
		result = multierror.Append(result, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q",
			DriverPostgres, DriverSQLite, cfg.DatabaseDriver))
	}

	loc, err := time.LoadLocation(getEnvOrDefault("TIMEZONE", "UTC"))
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid TIMEZONE: %w", err))
	}
	cfg.Location = loc

	cfg.Messages = DefaultMessages()
	if path := os.Getenv("MESSAGES_FILE"); path != "" {
		msgs, err := LoadMessages(path)
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			cfg.Messages = msgs
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
