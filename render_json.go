package lantern

import "strings"

type jsonEntry struct {
	key   string
	value string // rendered JSON value literal
	class jsonValueClass
}

// collectJSONEntries produces the ordered entry list shared by the JSON
// renderers: level, msg, rid (when set), mod (when set), context fields
// sorted by key, then explicit pairs in call order. Context entries shadowed
// by an explicit pair key are omitted so explicit pairs win on collision.
func collectJSONEntries(level Level, msg string, pairs []Pair, c Context) []jsonEntry {
	entries := make([]jsonEntry, 0, 4+len(pairs)+len(c.Fields))

	var b strings.Builder
	appendJSONString(&b, level.String())
	entries = append(entries, jsonEntry{key: "level", value: b.String(), class: jsonClassString})

	b.Reset()
	appendJSONString(&b, msg)
	entries = append(entries, jsonEntry{key: "msg", value: b.String(), class: jsonClassString})

	shadowed := pairKeySet(pairs)
	if c.CorrelationID != "" && !shadowed["rid"] {
		b.Reset()
		appendJSONString(&b, c.CorrelationID)
		entries = append(entries, jsonEntry{key: "rid", value: b.String(), class: jsonClassString})
	}
	if c.Module != "" && !shadowed["mod"] {
		b.Reset()
		appendJSONString(&b, c.Module)
		entries = append(entries, jsonEntry{key: "mod", value: b.String(), class: jsonClassString})
	}
	for _, k := range c.sortedFieldKeys() {
		if shadowed[k] || k == "level" || k == "msg" {
			continue
		}
		b.Reset()
		appendJSONString(&b, c.Fields[k])
		entries = append(entries, jsonEntry{key: k, value: b.String(), class: jsonClassString})
	}
	for _, p := range pairs {
		b.Reset()
		class := appendJSONValue(&b, p.Value)
		entries = append(entries, jsonEntry{key: p.Key, value: b.String(), class: class})
	}
	return entries
}

// RenderJSONLine renders a single-line JSON object with a fixed key order:
// level, msg, rid, mod, context fields, explicit pairs. String values use the
// standard JSON escapes; numeric and boolean values stay unquoted. The output
// is always valid JSON.
func RenderJSONLine(level Level, msg string, pairs []Pair, c Context) string {
	entries := collectJSONEntries(level, msg, pairs, c)

	var b strings.Builder
	b.Grow(32 + len(entries)*24)
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		appendJSONString(&b, e.key)
		b.WriteByte(':')
		b.WriteString(e.value)
	}
	b.WriteByte('}')
	return b.String()
}

func pairKeySet(pairs []Pair) map[string]bool {
	if len(pairs) == 0 {
		return nil
	}
	set := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		set[p.Key] = true
	}
	return set
}
