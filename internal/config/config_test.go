package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"snapshot_dir": "/data/snapshots",
		"database_url": "postgres://localhost/jobs",
		"chrome_debug_port": 9333,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/data/snapshots", cfg.SnapshotDir)
	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
	assert.Equal(t, 9333, cfg.ChromeDebugPort)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{ChromeDebugPort: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chrome_debug_port")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{CaptureTimeout: -5}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "capture_timeout")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		SnapshotDir:     "snapshots",
		ChromeDebugPort: 9222,
		CaptureTimeout:  30,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		SnapshotDir:     "/data/snapshots",
		DatabaseURL:     "postgres://localhost/jobs",
		ChromeDebugPort: 9222,
		CaptureTimeout:  30,
	}

	partial := Config{
		SnapshotDir: "/custom/snapshots",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "/custom/snapshots", merged.SnapshotDir)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://localhost/jobs", merged.DatabaseURL)
	assert.Equal(t, 9222, merged.ChromeDebugPort)
	assert.Equal(t, 30, merged.CaptureTimeout)
}

func TestMergeWithDefaults_FallbackSnapshotDir(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultSnapshotDir, merged.SnapshotDir)
}
