package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lantern/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Level != "info" {
		t.Fatalf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "kv" {
		t.Fatalf("Format = %q, want kv", cfg.Format)
	}
	if cfg.FlushLevel != "warn" {
		t.Fatalf("FlushLevel = %q, want warn", cfg.FlushLevel)
	}
	if cfg.OverflowPolicy != "block" {
		t.Fatalf("OverflowPolicy = %q, want block", cfg.OverflowPolicy)
	}
	if cfg.FileName != "lantern.log" {
		t.Fatalf("FileName = %q, want lantern.log", cfg.FileName)
	}
	if !cfg.ConsoleSync {
		t.Fatal("ConsoleSync must default to true")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
level = "debug"
format = "json"
async = true
queue_capacity = 512
overflow_policy = "DROP-OLDEST"
log_dir = "  /var/log/demo  "
max_backups = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Async || cfg.QueueCapacity != 512 {
		t.Fatalf("async settings not loaded: %+v", cfg)
	}
	if cfg.OverflowPolicy != "drop-oldest" {
		t.Fatalf("OverflowPolicy not normalized: %q", cfg.OverflowPolicy)
	}
	if cfg.LogDir != "/var/log/demo" {
		t.Fatalf("LogDir not trimmed: %q", cfg.LogDir)
	}
	if cfg.MaxBackups != 5 {
		t.Fatalf("MaxBackups = %d", cfg.MaxBackups)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("missing file reported as found")
	}
	if resolved == "" {
		t.Fatal("expected resolved path even when missing")
	}
	if cfg.Level != "info" {
		t.Fatalf("missing file must yield defaults, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("level = [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LANTERN_LOG_LEVEL", "ERROR")
	t.Setenv("LANTERN_LOG_FORMAT", "json-pretty")
	t.Setenv("LANTERN_LOG_ASYNC", "yes")
	t.Setenv("LANTERN_QUEUE_CAPACITY", "128")
	t.Setenv("LANTERN_NO_BANNER", "1")

	cfg := config.Default()
	cfg.ApplyEnv()

	if cfg.Level != "error" {
		t.Fatalf("Level = %q", cfg.Level)
	}
	if cfg.Format != "json-pretty" {
		t.Fatalf("Format = %q", cfg.Format)
	}
	if !cfg.Async {
		t.Fatal("Async not applied")
	}
	if cfg.QueueCapacity != 128 {
		t.Fatalf("QueueCapacity = %d", cfg.QueueCapacity)
	}
	if !cfg.SuppressBanner {
		t.Fatal("SuppressBanner not applied")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	// The sample must itself be a loadable config.
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after creation")
	}
	if cfg == nil {
		t.Fatal("expected config instance")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := config.ExpandPath("~/logs/app.toml")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "logs", "app.toml") {
		t.Fatalf("ExpandPath = %q", got)
	}

	if _, err := config.ExpandPath("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
