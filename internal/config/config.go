// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSnapshotDir is where snapshots land when no directory is
// configured.
const DefaultSnapshotDir = "snapshots"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	SnapshotDir string `json:"snapshot_dir,omitempty"` // Directory holding snapshot JSON files

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; file store is used when empty

	// Capture
	ChromeDebugPort int `json:"chrome_debug_port,omitempty"` // Chrome remote debugging port
	CaptureTimeout  int `json:"capture_timeout,omitempty"`   // Capture attempt timeout in seconds

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ChromeDebugPort < 0 || c.ChromeDebugPort > 65535 {
		return fmt.Errorf("config error: 'chrome_debug_port' must be a valid port number")
	}
	if c.CaptureTimeout < 0 {
		return fmt.Errorf("config error: 'capture_timeout' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SnapshotDir == "" {
		result.SnapshotDir = defaults.SnapshotDir
	}
	if result.SnapshotDir == "" {
		result.SnapshotDir = DefaultSnapshotDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ChromeDebugPort == 0 {
		result.ChromeDebugPort = defaults.ChromeDebugPort
	}
	if result.CaptureTimeout == 0 {
		result.CaptureTimeout = defaults.CaptureTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
