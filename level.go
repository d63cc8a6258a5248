package lantern

import "strings"

// Level identifies the severity of a log event. Levels are totally ordered:
// Trace < Debug < Info < Warn < Error < Critical. Off is write-never and is
// only meaningful as a logger minimum.
type Level int8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// ParseLevel maps a textual level to a Level. Matching is case-insensitive.
// Unrecognized values fall back to Warn so a misconfigured process still
// surfaces warnings and errors.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "off":
		return LevelOff
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "critical", "fatal":
		return LevelCritical
	default:
		return LevelWarn
	}
}

// String returns the lowercase label used in structured output.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	case LevelOff:
		return "off"
	default:
		return "info"
	}
}

// Label returns the uppercase label used by console text output.
func (l Level) Label() string {
	return strings.ToUpper(l.String())
}
