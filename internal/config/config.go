// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings of the server.
type Config struct {
	// HTTP Server
	Port            int
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// Metrics
	MetricsEnabled bool

	// Receipt scanner (optional). Scanning is disabled when the URL is empty.
	ReceiptScannerURL     string
	ReceiptScannerTimeout time.Duration
}

// Load reads the configuration from environment variables, applying defaults.
// Values that fail to parse fall back to their defaults.
func Load() *Config {
	return &Config{
		Port:            getEnvInt("PORT", 8080),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),

		ReceiptScannerURL:     getEnv("RECEIPT_SCANNER_URL", ""),
		ReceiptScannerTimeout: getEnvDuration("RECEIPT_SCANNER_TIMEOUT", 30*time.Second),
	}
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "shutdown timeout must be positive")
	}

	if c.ReceiptScannerURL != "" {
		if parsedURL, err := url.Parse(c.ReceiptScannerURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid receipt scanner URL '%s': %v", c.ReceiptScannerURL, err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			problems = append(problems, fmt.Sprintf("invalid receipt scanner URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
		}
		if c.ReceiptScannerTimeout <= 0 {
			problems = append(problems, "receipt scanner timeout must be positive")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
