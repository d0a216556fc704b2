// Package config provides configuration loading and validation for the
// matching engine server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default threshold values. Deployments tune them through configuration.
const (
	DefaultPort                 = 8080
	DefaultDiscrepancyThreshold = 10
	DefaultSimilarityThreshold  = 80
)

// Config carries the tunable settings of the engine. All fields are optional;
// missing values fall back to defaults.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty selects the memory store

	// Thresholds
	DiscrepancyThreshold int `json:"discrepancy_threshold,omitempty"` // history-diff score above which a report is significant
	SimilarityThreshold  int `json:"similarity_threshold,omitempty"`  // pool-scan score above which a pair is high similarity

	// Taxonomy
	TaxonomyOverlay string `json:"taxonomy_overlay,omitempty"` // path to a JSON overlay merged over the built-in tables

	// Logging
	LogJSON  bool `json:"log_json,omitempty"`  // emit JSON logs instead of console encoding
	LogDebug bool `json:"log_debug,omitempty"` // enable debug-level logging
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Port:                 DefaultPort,
		DiscrepancyThreshold: DefaultDiscrepancyThreshold,
		SimilarityThreshold:  DefaultSimilarityThreshold,
	}
}

// FromEnv builds a Config from environment variables layered over the
// defaults: PORT, DATABASE_URL, DISCREPANCY_THRESHOLD, SIMILARITY_THRESHOLD,
// TAXONOMY_OVERLAY, LOG_JSON, LOG_DEBUG.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv layers environment variables over the receiver. Variables that are
// unset or empty leave the existing values untouched, so a config file's
// values survive unless the environment overrides them.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		c.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}

	if v := os.Getenv("DISCREPANCY_THRESHOLD"); v != "" {
		threshold, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DISCREPANCY_THRESHOLD: %w", err)
		}
		c.DiscrepancyThreshold = threshold
	}
	if v := os.Getenv("SIMILARITY_THRESHOLD"); v != "" {
		threshold, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SIMILARITY_THRESHOLD: %w", err)
		}
		c.SimilarityThreshold = threshold
	}

	if v := os.Getenv("TAXONOMY_OVERLAY"); v != "" {
		c.TaxonomyOverlay = v
	}
	if b, err := strconv.ParseBool(os.Getenv("LOG_JSON")); err == nil {
		c.LogJSON = b
	}
	if b, err := strconv.ParseBool(os.Getenv("LOG_DEBUG")); err == nil {
		c.LogDebug = b
	}
	return nil
}

// LoadConfig loads configuration from a JSON file layered over the defaults.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.DiscrepancyThreshold < 0 || c.DiscrepancyThreshold > 100 {
		return fmt.Errorf("config error: 'discrepancy_threshold' must be between 0 and 100, got %d", c.DiscrepancyThreshold)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 100 {
		return fmt.Errorf("config error: 'similarity_threshold' must be between 0 and 100, got %d", c.SimilarityThreshold)
	}
	return nil
}
