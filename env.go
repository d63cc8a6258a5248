package lantern

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"lantern/internal/envx"
)

// Environment variables honored by the default logger, the console sinks,
// and the banner emitter.
const (
	// EnvLogLevel selects the minimum level
	// (off/trace/debug/info/warn/warning/error/critical/fatal).
	EnvLogLevel = "LANTERN_LOG_LEVEL"
	// EnvLogFormat selects the output encoding (kv/json/json-pretty).
	EnvLogFormat = "LANTERN_LOG_FORMAT"
	// EnvLogAsync enables the asynchronous sink executor at startup.
	EnvLogAsync = "LANTERN_LOG_ASYNC"
	// EnvColor forces color output on ("always") or off ("never").
	EnvColor = "LANTERN_COLOR"
	// EnvNoColor is the conventional kill switch; any non-empty value
	// disables color everywhere.
	EnvNoColor = "NO_COLOR"
	// EnvConsoleSync toggles banner/output serialization for console sinks.
	EnvConsoleSync = "LANTERN_CONSOLE_SYNC"
	// EnvNoBanner suppresses the startup banner.
	EnvNoBanner = "LANTERN_NO_BANNER"
)

// OptionsFromEnv builds logger options from the environment. Unset variables
// keep their defaults: Info level, key-value format, synchronous backend.
func OptionsFromEnv() Options {
	return Options{
		Level:  envx.String(EnvLogLevel, "info"),
		Format: envx.String(EnvLogFormat, "kv"),
		Async:  envx.Bool(EnvLogAsync, false),
	}
}

// ColorsEnabled reports whether ANSI color output should be used when
// writing to w. NO_COLOR always wins; LANTERN_COLOR=always/never forces the
// decision; otherwise color is enabled only when w is a terminal.
func ColorsEnabled(w io.Writer) bool {
	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvColor))) {
	case "never", "0", "false":
		return false
	case "always", "1", "true":
		return true
	}
	type fdWriter interface{ Fd() uintptr }
	if f, ok := w.(fdWriter); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
