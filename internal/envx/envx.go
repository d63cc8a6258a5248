// Package envx provides small helpers for reading typed values from the
// environment with defaults.
package envx

import (
	"os"
	"strconv"
	"strings"
)

// String returns the value of key, or def when key is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Bool returns the boolean value of key. Accepted truthy spellings are
// 1/true/yes/on; everything else is false. Unset keys return def.
func Bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Int returns the integer value of key, or def when key is unset or does not
// parse.
func Int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
