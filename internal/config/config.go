// Package config provides configuration loading and validation for the CLI
// and the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the studio configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty"`            // HTTP port for serve mode
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS allow list; empty allows any origin

	// Storage
	DocumentsDir string `json:"documents_dir,omitempty"` // Directory holding file-store documents
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL; selects the database store

	// Export
	ExportWorkers int `json:"export_workers,omitempty"` // Concurrent renders during batch export

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed layout information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ExportWorkers < 0 {
		return fmt.Errorf("config error: 'export_workers' must be non-negative")
	}

	for _, origin := range c.AllowedOrigins {
		if origin == "" {
			return fmt.Errorf("config error: 'allowed_origins' must not contain empty entries")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DocumentsDir == "" {
		result.DocumentsDir = defaults.DocumentsDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	if result.ExportWorkers == 0 {
		if defaults.ExportWorkers > 0 {
			result.ExportWorkers = defaults.ExportWorkers
		} else {
			result.ExportWorkers = 4 // Default to four concurrent renders
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
