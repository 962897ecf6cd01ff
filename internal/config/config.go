package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gocontrast/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig
	Output OutputConfig
	Batch  BatchConfig
	Design DesignConfig
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// OutputConfig controls how resolved contrast sets are rendered
type OutputConfig struct {
	Format string // json or text
	Pretty bool
}

// BatchConfig bounds batch resolution
type BatchConfig struct {
	MaxConcurrent int
	Timeout       time.Duration
}

// DesignConfig locates the column list inside design files
type DesignConfig struct {
	Sheet    string // xlsx sheet holding the design matrix
	JSONPath string // gjson path to the column array
}

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

var logLevels = []string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Log: LogConfig{
			Level: strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
		},
		Output: OutputConfig{
			Format: strings.ToLower(getEnvOrDefault("CONTRAST_OUTPUT_FORMAT", FormatJSON)),
			Pretty: getEnvBoolOrDefault("CONTRAST_PRETTY", true),
		},
		Batch: BatchConfig{
			MaxConcurrent: getEnvIntOrDefault("CONTRAST_MAX_CONCURRENT", 4),
			Timeout:       getEnvDurationOrDefault("CONTRAST_BATCH_TIMEOUT", 30*time.Second),
		},
		Design: DesignConfig{
			Sheet:    getEnvOrDefault("DESIGN_SHEET", "Sheet1"),
			JSONPath: getEnvOrDefault("DESIGN_JSON_PATH", "columns"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if !contains(logLevels, config.Log.Level) {
		return errors.ConfigInvalid("LOG_LEVEL must be one of " + strings.Join(logLevels, ", "))
	}
	if config.Output.Format != FormatJSON && config.Output.Format != FormatText {
		return errors.ConfigInvalid("CONTRAST_OUTPUT_FORMAT must be json or text")
	}
	if config.Batch.MaxConcurrent <= 0 {
		return errors.ConfigInvalid("CONTRAST_MAX_CONCURRENT must be positive")
	}
	if config.Batch.Timeout <= 0 {
		return errors.ConfigInvalid("CONTRAST_BATCH_TIMEOUT must be positive")
	}
	if config.Design.JSONPath == "" {
		return errors.ConfigInvalid("DESIGN_JSON_PATH is required")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
