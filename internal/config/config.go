package config

import (
	"os"
	"strconv"

	"angket/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Analytics AnalyticsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// AnalyticsConfig holds aggregation and export settings
type AnalyticsConfig struct {
	// TrendDefaultDays is the window used when a trend request carries no
	// explicit day count. The engine still clamps whatever it receives.
	TrendDefaultDays int
	// AnalyticsRowCap bounds the row set fetched for summary and
	// distribution views; ExportRowCap is the larger bound for exports.
	AnalyticsRowCap int
	ExportRowCap    int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Analytics: AnalyticsConfig{
			TrendDefaultDays: getEnvIntOrDefault("TREND_DEFAULT_DAYS", 30),
			AnalyticsRowCap:  getEnvIntOrDefault("ANALYTICS_ROW_CAP", 5000),
			ExportRowCap:     getEnvIntOrDefault("EXPORT_ROW_CAP", 20000),
		},
	}

	if config.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Analytics.ExportRowCap < config.Analytics.AnalyticsRowCap {
		return nil, errors.ConfigInvalid("EXPORT_ROW_CAP must not be smaller than ANALYTICS_ROW_CAP")
	}

	return config, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
