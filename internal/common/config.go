// Package common provides shared utilities for Nivesh
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Nivesh
type Config struct {
	Environment string          `toml:"environment"`
	SecretKey   string          `toml:"secret_key"` // signs the flash-message cookie
	Server      ServerConfig    `toml:"server"`
	Clients     ClientsConfig   `toml:"clients"`
	Batch       BatchConfig     `toml:"batch"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Yahoo YahooConfig `toml:"yahoo"`
	NSE   NSEConfig   `toml:"nse"`
}

// YahooConfig holds Yahoo Finance client configuration
type YahooConfig struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *YahooConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// NSEConfig holds the NSE symbol-directory client configuration
type NSEConfig struct {
	DirectoryURL string `toml:"directory_url"`
	Timeout      string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *NSEConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// BatchConfig holds watch-list batch fetch configuration
type BatchConfig struct {
	Concurrency int `toml:"concurrency"`
}

// SchedulerConfig holds the watch-list prewarm scheduler configuration
type SchedulerConfig struct {
	Enabled bool   `toml:"enabled"`
	Spec    string `toml:"spec"` // cron spec, e.g. "@hourly"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		SecretKey:   "dev-key-change-in-production",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Clients: ClientsConfig{
			Yahoo: YahooConfig{
				BaseURL:   "https://query1.finance.yahoo.com",
				UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
				RateLimit: 10,
				Timeout:   "30s",
			},
			NSE: NSEConfig{
				DirectoryURL: "https://archives.nseindia.com/content/equities/EQUITY_L.csv",
				Timeout:      "30s",
			},
		},
		Batch: BatchConfig{
			Concurrency: 10,
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
			Spec:    "@hourly",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Apply environment overrides
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("NIVESH_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("NIVESH_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("NIVESH_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("NIVESH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if c := os.Getenv("NIVESH_BATCH_CONCURRENCY"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			config.Batch.Concurrency = n
		}
	}

	if url := os.Getenv("NIVESH_DIRECTORY_URL"); url != "" {
		config.Clients.NSE.DirectoryURL = url
	}

	// SECRET_KEY is the historical name; the prefixed form wins when both are set
	if key := os.Getenv("SECRET_KEY"); key != "" {
		config.SecretKey = key
	}
	if key := os.Getenv("NIVESH_SECRET_KEY"); key != "" {
		config.SecretKey = key
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
