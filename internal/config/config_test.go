package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"data_dir": "/var/lib/cv-builder",
		"auto_save_ms": 500,
		"log_level": "debug"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/var/lib/cv-builder", cfg.DataDir)
	assert.Equal(t, 500, cfg.AutoSaveMS)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Unset fields take defaults.
	assert.Equal(t, Default().ExportTimeoutSec, cfg.ExportTimeoutSec)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Default()

	cfg.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "port")

	cfg.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "port")

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeAutoSave(t *testing.T) {
	cfg := Default()
	cfg.AutoSaveMS = -1

	err := cfg.Validate()
	assert.ErrorContains(t, err, "auto_save_ms")
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = ""

	assert.ErrorContains(t, cfg.Validate(), "data_dir")
}

func TestValidate_MissingChromeBinary(t *testing.T) {
	cfg := Default()
	cfg.ChromePath = filepath.Join(t.TempDir(), "no-such-chrome")

	err := cfg.Validate()
	assert.ErrorContains(t, err, "chrome binary not found")
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "chatty"

	assert.ErrorContains(t, cfg.Validate(), "unknown log level")
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("CV_BUILDER_PORT", "3000")
	t.Setenv("CV_BUILDER_DATA_DIR", "/tmp/cvdata")
	t.Setenv("CV_BUILDER_AUTO_SAVE_MS", "250")
	t.Setenv("CV_BUILDER_LOG_LEVEL", "warn")

	cfg := Default().ApplyEnv()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "/tmp/cvdata", cfg.DataDir)
	assert.Equal(t, 250, cfg.AutoSaveMS)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestApplyEnv_IgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("CV_BUILDER_PORT", "not-a-number")

	cfg := Default().ApplyEnv()
	assert.Equal(t, Default().Port, cfg.Port)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Default()

	partial := Config{Port: 9999, LogLevel: "error"}
	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, 9999, merged.Port)
	assert.Equal(t, "error", merged.LogLevel)
	assert.Equal(t, defaults.DataDir, merged.DataDir)
	assert.Equal(t, defaults.AutoSaveMS, merged.AutoSaveMS)
	assert.Equal(t, defaults.ExportTimeoutSec, merged.ExportTimeoutSec)
}

func TestDurationAccessors(t *testing.T) {
	cfg := Config{AutoSaveMS: 1500, ExportTimeoutSec: 30, Port: 8080}

	assert.Equal(t, 1500*time.Millisecond, cfg.AutoSaveInterval())
	assert.Equal(t, 30*time.Second, cfg.ExportTimeout())
	assert.Equal(t, ":8080", cfg.Addr())
}
