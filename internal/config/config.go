// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"warequote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Session contains conversation session storage configuration
	Session SessionConfig `json:"session"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Currency is the quoting currency code
	Currency string `json:"currency"`

	// RatesFile is an optional HCL file overriding the built-in rate tables
	RatesFile string `json:"rates_file,omitempty"`
}

// SessionConfig contains session store settings
type SessionConfig struct {
	// Backend selects the session store (memory, redis)
	Backend string `json:"backend"`

	// RedisAddr is the redis address when Backend is "redis"
	RedisAddr string `json:"redis_addr,omitempty"`

	// TTLSeconds is how long an idle session is retained
	TTLSeconds int `json:"ttl_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	ratesFile := filepath.Join(homeDir, ".warequote", "rates.hcl")
	if _, err := os.Stat(ratesFile); err != nil {
		ratesFile = ""
	}

	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency:  "AUD",
			RatesFile: ratesFile,
		},
		Session: SessionConfig{
			Backend:    "memory",
			TTLSeconds: 1800, // 30 minutes idle
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
