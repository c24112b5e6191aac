package config

import (
	"os"
	"strconv"
	"time"

	"github.com/trikaloudis/aquomixlab-heatmaps/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Uploads UploadConfig
	Exports ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds upload and session settings
type UploadConfig struct {
	MaxUploadMB int64
	SessionTTL  time.Duration
	MaxSessions int
}

// ExportConfig holds artifact export settings
type ExportConfig struct {
	Timeout time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Uploads: UploadConfig{
			MaxUploadMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 32)),
			SessionTTL:  getEnvDurationOrDefault("SESSION_TTL", time.Hour),
			MaxSessions: getEnvIntOrDefault("MAX_SESSIONS", 64),
		},
		Exports: ExportConfig{
			Timeout: getEnvDurationOrDefault("EXPORT_TIMEOUT", 30*time.Second),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Uploads.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Uploads.MaxSessions <= 0 {
		return errors.ConfigInvalid("MAX_SESSIONS must be positive")
	}
	if config.Exports.Timeout <= 0 {
		return errors.ConfigInvalid("EXPORT_TIMEOUT must be positive")
	}
	return nil
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
