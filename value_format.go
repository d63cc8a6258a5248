package lantern

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// stringifyValue formats a value for key-value text output. Numbers and
// booleans keep their natural form; everything else falls back to fmt.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Duration:
		return t.String()
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

const jsonHexDigits = "0123456789abcdef"

// appendJSONString writes s as a JSON string literal with the standard
// control-character escapes; control bytes below 0x20 without a short escape
// become \u00XX.
func appendJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if ch < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(jsonHexDigits[ch>>4])
				b.WriteByte(jsonHexDigits[ch&0xf])
			} else {
				b.WriteByte(ch)
			}
		}
	}
	b.WriteByte('"')
}

// jsonValueClass tags a rendered JSON value for pretty-print colorization.
type jsonValueClass int8

const (
	jsonClassString jsonValueClass = iota
	jsonClassNumber
	jsonClassBool
	jsonClassNull
)

// appendJSONValue writes v as a JSON value. Numeric and boolean values become
// JSON primitives; all other types fall back to their quoted string form.
// The returned class drives pretty-print colorization.
func appendJSONValue(b *strings.Builder, v any) jsonValueClass {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
		return jsonClassNull
	case bool:
		b.WriteString(strconv.FormatBool(t))
		return jsonClassBool
	case int:
		b.WriteString(strconv.FormatInt(int64(t), 10))
		return jsonClassNumber
	case int8:
		b.WriteString(strconv.FormatInt(int64(t), 10))
		return jsonClassNumber
	case int16:
		b.WriteString(strconv.FormatInt(int64(t), 10))
		return jsonClassNumber
	case int32:
		b.WriteString(strconv.FormatInt(int64(t), 10))
		return jsonClassNumber
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
		return jsonClassNumber
	case uint:
		b.WriteString(strconv.FormatUint(uint64(t), 10))
		return jsonClassNumber
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(t), 10))
		return jsonClassNumber
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(t), 10))
		return jsonClassNumber
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(t), 10))
		return jsonClassNumber
	case uint64:
		b.WriteString(strconv.FormatUint(t, 10))
		return jsonClassNumber
	case float32:
		return appendJSONFloat(b, float64(t), 32)
	case float64:
		return appendJSONFloat(b, t, 64)
	default:
		appendJSONString(b, stringifyValue(v))
		return jsonClassString
	}
}

func appendJSONFloat(b *strings.Builder, f float64, bits int) jsonValueClass {
	// NaN and infinities are not representable as JSON numbers.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		appendJSONString(b, strconv.FormatFloat(f, 'f', -1, bits))
		return jsonClassString
	}
	b.WriteString(strconv.FormatFloat(f, 'f', -1, bits))
	return jsonClassNumber
}
