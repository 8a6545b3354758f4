package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED", "RECEIPT_SCANNER_URL", "RECEIPT_SCANNER_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.ReceiptScannerURL)
	assert.Equal(t, 30*time.Second, cfg.ReceiptScannerTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RECEIPT_SCANNER_URL", "https://scanner.internal/scan")
	t.Setenv("RECEIPT_SCANNER_TIMEOUT", "5s")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "https://scanner.internal/scan", cfg.ReceiptScannerURL)
	assert.Equal(t, 5*time.Second, cfg.ReceiptScannerTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout, "unparsable values fall back to the default")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:                  8080,
			ShutdownTimeout:       time.Second,
			LogLevel:              "info",
			LogFormat:             "text",
			ReceiptScannerTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid port"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log format"},
		{name: "scanner URL scheme", mutate: func(c *Config) { c.ReceiptScannerURL = "ftp://scanner" }, wantErr: "scheme"},
		{name: "scanner timeout", mutate: func(c *Config) {
			c.ReceiptScannerURL = "http://scanner"
			c.ReceiptScannerTimeout = 0
		}, wantErr: "receipt scanner timeout"},
		{name: "shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: "shutdown timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
