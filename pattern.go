package lantern

import (
	"strconv"
	"strings"
	"time"
)

// DefaultPattern decorates key-value lines with a timestamp and level label,
// matching the conventional "[date time] [level] message" console shape.
const DefaultPattern = "[%Y-%m-%d %H:%M:%S.%e] [%l] %v"

// formatPattern applies a text pattern to a key-value line. Supported verbs:
//
//	%Y %m %d   date components
//	%H %M %S   time components
//	%e         milliseconds
//	%l / %L    lowercase / uppercase level label
//	%v         the rendered message
//	%%         literal percent
//
// %^ and %$ delimit the level color range in upstream pattern dialects; the
// console applies its own styling, so they are accepted and dropped. Unknown
// verbs pass through verbatim.
func formatPattern(pattern string, ts time.Time, level Level, msg string) string {
	if pattern == "" || pattern == "%v" {
		return msg
	}
	var b strings.Builder
	b.Grow(len(pattern) + len(msg) + 16)
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch != '%' || i+1 >= len(pattern) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch pattern[i] {
		case 'Y':
			b.WriteString(ts.Format("2006"))
		case 'm':
			b.WriteString(ts.Format("01"))
		case 'd':
			b.WriteString(ts.Format("02"))
		case 'H':
			b.WriteString(ts.Format("15"))
		case 'M':
			b.WriteString(ts.Format("04"))
		case 'S':
			b.WriteString(ts.Format("05"))
		case 'e':
			ms := ts.Nanosecond() / int(time.Millisecond)
			if ms < 10 {
				b.WriteString("00")
			} else if ms < 100 {
				b.WriteByte('0')
			}
			b.WriteString(strconv.Itoa(ms))
		case 'l':
			b.WriteString(level.String())
		case 'L':
			b.WriteString(level.Label())
		case 'v':
			b.WriteString(msg)
		case '%':
			b.WriteByte('%')
		case '^', '$':
			// color range markers, intentionally dropped
		default:
			b.WriteByte('%')
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}
