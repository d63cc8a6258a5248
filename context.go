package lantern

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Context carries per-call-chain metadata merged into structured log output:
// a correlation identifier, a logical module name, and free-form string
// fields. It travels on a context.Context, so it is visible only along the
// call chain that carries it and is never shared between goroutines unless
// the context itself is passed along.
type Context struct {
	CorrelationID string
	Module        string
	Fields        map[string]string
}

type loggingContextKey struct{}

// WithContext returns a context carrying a copy of c. Any logging context
// previously attached is replaced wholesale.
func WithContext(ctx context.Context, c Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggingContextKey{}, c.clone())
}

// ClearContext returns a context whose logging context is empty.
func ClearContext(ctx context.Context) context.Context {
	return WithContext(ctx, Context{})
}

// FromContext returns a defensive copy of the logging context attached to
// ctx, or a zero Context when none is attached. Mutating the returned value
// never affects the stored context.
func FromContext(ctx context.Context) Context {
	if ctx == nil {
		return Context{}
	}
	if c, ok := ctx.Value(loggingContextKey{}).(Context); ok {
		return c.clone()
	}
	return Context{}
}

// NewCorrelationID returns a random identifier suitable for
// Context.CorrelationID.
func NewCorrelationID() string {
	return uuid.NewString()
}

// IsZero reports whether the context carries no metadata.
func (c Context) IsZero() bool {
	return c.CorrelationID == "" && c.Module == "" && len(c.Fields) == 0
}

func (c Context) clone() Context {
	out := Context{CorrelationID: c.CorrelationID, Module: c.Module}
	if len(c.Fields) > 0 {
		out.Fields = make(map[string]string, len(c.Fields))
		for k, v := range c.Fields {
			out.Fields[k] = v
		}
	}
	return out
}

// sortedFieldKeys returns field names in a stable order for rendering.
func (c Context) sortedFieldKeys() []string {
	if len(c.Fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Fields))
	for k := range c.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
