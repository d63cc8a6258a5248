package lantern_test

import (
	"bytes"
	"testing"

	"lantern"
)

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv(lantern.EnvLogLevel, "debug")
	t.Setenv(lantern.EnvLogFormat, "json")
	t.Setenv(lantern.EnvLogAsync, "1")

	opts := lantern.OptionsFromEnv()
	if opts.Level != "debug" {
		t.Fatalf("Level = %q", opts.Level)
	}
	if opts.Format != "json" {
		t.Fatalf("Format = %q", opts.Format)
	}
	if !opts.Async {
		t.Fatal("Async not picked up")
	}
}

func TestOptionsFromEnvDefaults(t *testing.T) {
	t.Setenv(lantern.EnvLogLevel, "")
	t.Setenv(lantern.EnvLogFormat, "")
	t.Setenv(lantern.EnvLogAsync, "")

	opts := lantern.OptionsFromEnv()
	if opts.Level != "info" {
		t.Fatalf("Level default = %q", opts.Level)
	}
	if opts.Format != "kv" {
		t.Fatalf("Format default = %q", opts.Format)
	}
	if opts.Async {
		t.Fatal("Async must default to false")
	}
}

func TestColorsEnabled(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(lantern.EnvNoColor, "")
	t.Setenv(lantern.EnvColor, "")
	if lantern.ColorsEnabled(&buf) {
		t.Fatal("non-terminal writer must not enable colors")
	}

	t.Setenv(lantern.EnvColor, "always")
	if !lantern.ColorsEnabled(&buf) {
		t.Fatal("LANTERN_COLOR=always must force colors on")
	}

	t.Setenv(lantern.EnvNoColor, "1")
	if lantern.ColorsEnabled(&buf) {
		t.Fatal("NO_COLOR must win over LANTERN_COLOR")
	}

	t.Setenv(lantern.EnvNoColor, "")
	t.Setenv(lantern.EnvColor, "never")
	if lantern.ColorsEnabled(&buf) {
		t.Fatal("LANTERN_COLOR=never must force colors off")
	}
}
