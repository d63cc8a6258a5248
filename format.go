package lantern

import "strings"

// Format selects the output encoding for rendered events. It governs
// rendering only; level filtering is unaffected by the format.
type Format int8

const (
	// FormatKeyValue appends " key=value" tokens to the plain message and
	// defers timestamp/level decoration to the sink executor's text pattern.
	FormatKeyValue Format = iota
	// FormatJSON renders one single-line JSON object per event.
	FormatJSON
	// FormatPrettyJSON renders an indented JSON object, optionally colorized
	// for terminals.
	FormatPrettyJSON
)

// ParseFormat maps a textual format name to a Format. Matching is
// case-insensitive; unrecognized values fall back to FormatKeyValue.
func ParseFormat(value string) Format {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON
	case "json-pretty", "pretty":
		return FormatPrettyJSON
	case "kv", "keyvalue", "text":
		return FormatKeyValue
	default:
		return FormatKeyValue
	}
}

// String returns the canonical configuration name for the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatPrettyJSON:
		return "json-pretty"
	default:
		return "kv"
	}
}
