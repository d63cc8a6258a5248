// Package config loads logger configuration from a TOML file and the
// environment.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"lantern/internal/envx"
)

//go:embed sample_config.toml
var sampleConfig string

// Config encapsulates all logger construction settings. Level, format,
// overflow, and color values keep their configuration spelling; the logging
// package parses them.
type Config struct {
	// Level is the minimum severity (off/trace/debug/info/warn/error/critical).
	Level string `toml:"level"`
	// Format selects the output encoding (kv/json/json-pretty).
	Format string `toml:"format"`
	// Pattern decorates key-value lines; empty keeps the built-in default.
	Pattern string `toml:"pattern"`
	// FlushLevel forces a sink flush for events at or above it.
	FlushLevel string `toml:"flush_level"`

	// Async enables the background worker backend.
	Async bool `toml:"async"`
	// QueueCapacity bounds the asynchronous queue; 0 keeps the default.
	QueueCapacity int `toml:"queue_capacity"`
	// OverflowPolicy is "block" or "drop-oldest".
	OverflowPolicy string `toml:"overflow_policy"`

	// LogDir enables a rotating file sink beside the console when set.
	LogDir string `toml:"log_dir"`
	// FileName names the live log file inside LogDir.
	FileName string `toml:"file_name"`
	// MaxFileSizeMB triggers rotation; 0 keeps the 5 MiB default.
	MaxFileSizeMB int `toml:"max_file_size_mb"`
	// MaxBackups bounds rotated files kept beside the live one.
	MaxBackups int `toml:"max_backups"`
	// RetentionDays prunes rotated files older than this; 0 disables pruning.
	RetentionDays int `toml:"retention_days"`

	// Color is "auto", "always", or "never" for pretty-JSON output.
	Color string `toml:"color"`
	// ConsoleSync serializes console output through the banner gate.
	ConsoleSync bool `toml:"console_sync"`
	// SuppressBanner skips the startup banner.
	SuppressBanner bool `toml:"suppress_banner"`
}

// Default returns the baseline configuration before file and environment
// overrides.
func Default() Config {
	return Config{
		Level:          "info",
		Format:         "kv",
		FlushLevel:     "warn",
		OverflowPolicy: "block",
		FileName:       "lantern.log",
		MaxBackups:     3,
		Color:          "auto",
		ConsoleSync:    true,
	}
}

// DefaultConfigPath returns the absolute path of the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lantern/config.toml")
}

// Load locates and parses a configuration file. When path is empty it tries
// the default location, then lantern.toml in the working directory. The
// returned bool reports whether a file was found; a missing file is not an
// error and yields the defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("lantern.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// ApplyEnv overlays environment variables onto the configuration. Variables
// win over file values so operators can adjust a deployed process without
// editing its config.
func (c *Config) ApplyEnv() {
	c.Level = envx.String("LANTERN_LOG_LEVEL", c.Level)
	c.Format = envx.String("LANTERN_LOG_FORMAT", c.Format)
	c.Async = envx.Bool("LANTERN_LOG_ASYNC", c.Async)
	c.Color = envx.String("LANTERN_COLOR", c.Color)
	c.ConsoleSync = envx.Bool("LANTERN_CONSOLE_SYNC", c.ConsoleSync)
	c.SuppressBanner = envx.Bool("LANTERN_NO_BANNER", c.SuppressBanner)
	c.QueueCapacity = envx.Int("LANTERN_QUEUE_CAPACITY", c.QueueCapacity)
	c.normalize()
}

func (c *Config) normalize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.OverflowPolicy = strings.ToLower(strings.TrimSpace(c.OverflowPolicy))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.LogDir = strings.TrimSpace(c.LogDir)
	if c.FileName == "" {
		c.FileName = "lantern.log"
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 0
	}
	if c.QueueCapacity < 0 {
		c.QueueCapacity = 0
	}
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves ~ and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", pathValue, err)
	}
	return abs, nil
}
