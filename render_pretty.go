package lantern

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	prettyKeyColors    = text.Colors{text.FgHiCyan}
	prettyStringColors = text.Colors{text.FgGreen}
	prettyNumberColors = text.Colors{text.FgHiMagenta}
	prettyBoolColors   = text.Colors{text.FgYellow}
	prettyNullColors   = text.Colors{text.Faint}
	prettyPunctColors  = text.Colors{text.Faint}
)

// RenderJSONPretty renders the same key set as RenderJSONLine with two-space
// indentation and one key per line. When colorize is set, values are
// ANSI-colorized by class, with a few domain heuristics: status codes by
// class (2xx/3xx/4xx/5xx), keys ending in "_ms" dimmed, and method/path
// highlighted. Colorization never changes the logical content.
func RenderJSONPretty(level Level, msg string, pairs []Pair, c Context, colorize bool) string {
	entries := collectJSONEntries(level, msg, pairs, c)

	var b strings.Builder
	b.Grow(64 + len(entries)*32)
	b.WriteString(punct("{", colorize))
	b.WriteByte('\n')
	for i, e := range entries {
		b.WriteString("  ")

		var key strings.Builder
		appendJSONString(&key, e.key)
		if colorize {
			b.WriteString(prettyKeyColors.Sprint(key.String()))
		} else {
			b.WriteString(key.String())
		}
		b.WriteString(punct(":", colorize))
		b.WriteByte(' ')

		if colorize {
			b.WriteString(prettyValueColors(e).Sprint(e.value))
		} else {
			b.WriteString(e.value)
		}
		if i < len(entries)-1 {
			b.WriteString(punct(",", colorize))
		}
		b.WriteByte('\n')
	}
	b.WriteString(punct("}", colorize))
	return b.String()
}

func punct(s string, colorize bool) string {
	if !colorize {
		return s
	}
	return prettyPunctColors.Sprint(s)
}

// prettyValueColors picks the color for one rendered value. Key-based
// heuristics win over the generic class colors.
func prettyValueColors(e jsonEntry) text.Colors {
	switch {
	case strings.HasSuffix(e.key, "_ms"):
		return text.Colors{text.Faint}
	case e.key == "method" || e.key == "path":
		return text.Colors{text.Bold, text.FgHiWhite}
	case e.key == "status" && e.class == jsonClassNumber:
		return statusColors(e.value)
	}
	switch e.class {
	case jsonClassNumber:
		return prettyNumberColors
	case jsonClassBool:
		return prettyBoolColors
	case jsonClassNull:
		return prettyNullColors
	default:
		return prettyStringColors
	}
}

// statusColors colors an HTTP status code by its class.
func statusColors(raw string) text.Colors {
	if len(raw) != 3 {
		return prettyNumberColors
	}
	switch raw[0] {
	case '2':
		return text.Colors{text.FgGreen}
	case '3':
		return text.Colors{text.FgCyan}
	case '4':
		return text.Colors{text.FgYellow}
	case '5':
		return text.Colors{text.FgHiRed}
	default:
		return prettyNumberColors
	}
}
