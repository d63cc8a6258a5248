package lantern

import "strings"

// Pair is one explicit key/value attribute supplied to Logf. Pairs render in
// call order and take precedence over context entries on key collision.
type Pair struct {
	Key   string
	Value any
}

// RenderKV renders a key-value text event: the message, one " key=value"
// token per explicit pair, then " rid=", " mod=", and one token per context
// field (sorted by key), in that fixed order. Context entries shadowed by an
// explicit pair key are omitted so explicit pairs win on collision. It never
// fails; values that cannot be formatted degrade to their fmt representation.
func RenderKV(msg string, pairs []Pair, c Context) string {
	var b strings.Builder
	b.Grow(len(msg) + len(pairs)*16 + len(c.Fields)*16 + 32)
	b.WriteString(msg)
	for _, p := range pairs {
		b.WriteByte(' ')
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(stringifyValue(p.Value))
	}
	shadowed := pairKeySet(pairs)
	if c.CorrelationID != "" && !shadowed["rid"] {
		b.WriteString(" rid=")
		b.WriteString(c.CorrelationID)
	}
	if c.Module != "" && !shadowed["mod"] {
		b.WriteString(" mod=")
		b.WriteString(c.Module)
	}
	for _, k := range c.sortedFieldKeys() {
		if shadowed[k] {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(c.Fields[k])
	}
	return b.String()
}
