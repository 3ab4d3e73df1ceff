// Package config provides configuration loading and validation for the
// cv-builder CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents application configuration, loadable from a JSON file with
// environment variable overrides. All fields are optional; missing values use
// defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DataDir    string `json:"data_dir,omitempty"`     // Directory holding saved CV state
	AutoSaveMS int    `json:"auto_save_ms,omitempty"` // Auto-save quiet period in milliseconds

	// Export
	ExportTimeoutSec int    `json:"export_timeout_sec,omitempty"` // Headless browser print timeout
	ChromePath       string `json:"chrome_path,omitempty"`        // Chromium binary; empty means PATH lookup

	// Logging
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
}

// Default returns the built-in configuration. The data directory lands under
// the user config dir when resolvable, otherwise under the working directory.
func Default() Config {
	dataDir := ".cv-builder"
	if base, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(base, "cv-builder")
	}
	return Config{
		Port:             8080,
		DataDir:          dataDir,
		AutoSaveMS:       1000,
		ExportTimeoutSec: 60,
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from a JSON file, filling unset fields from
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return fileCfg.MergeWithDefaults(cfg), nil
}

// ApplyEnv overrides fields from environment variables. Unparsable numeric
// values are ignored rather than failing startup.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv("CV_BUILDER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CV_BUILDER_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("CV_BUILDER_AUTO_SAVE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.AutoSaveMS = ms
		}
	}
	if v := os.Getenv("CV_BUILDER_EXPORT_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			c.ExportTimeoutSec = sec
		}
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("CV_BUILDER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return c
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config error: 'data_dir' must not be empty")
	}
	if c.AutoSaveMS < 0 {
		return fmt.Errorf("config error: 'auto_save_ms' must be non-negative")
	}
	if c.ExportTimeoutSec < 1 {
		return fmt.Errorf("config error: 'export_timeout_sec' must be positive")
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.AutoSaveMS == 0 {
		result.AutoSaveMS = defaults.AutoSaveMS
	}
	if result.ExportTimeoutSec == 0 {
		result.ExportTimeoutSec = defaults.ExportTimeoutSec
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	return result
}

// AutoSaveInterval returns the auto-save quiet period as a duration.
func (c Config) AutoSaveInterval() time.Duration {
	return time.Duration(c.AutoSaveMS) * time.Millisecond
}

// ExportTimeout returns the PDF export timeout as a duration.
func (c Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSec) * time.Second
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
