package lantern

import "io"

// SyncExecutor dispatches every line to the sinks on the caller's goroutine.
type SyncExecutor struct {
	core executorCore
}

// NewSyncExecutor builds a synchronous executor over the given sinks.
func NewSyncExecutor(sinks ...Sink) *SyncExecutor {
	e := &SyncExecutor{}
	e.core.init(sinks)
	return e
}

// Write dispatches a fully rendered line.
func (e *SyncExecutor) Write(level Level, line string) {
	if !e.core.enabled(level) {
		return
	}
	e.core.dispatch(level, line)
}

// WriteText applies the text pattern to msg, then dispatches it.
func (e *SyncExecutor) WriteText(level Level, msg string) {
	if !e.core.enabled(level) {
		return
	}
	e.core.dispatch(level, e.core.applyPattern(level, msg))
}

// SetLevel changes the minimum dispatched level.
func (e *SyncExecutor) SetLevel(level Level) {
	e.core.min.Store(int32(level))
}

// SetPattern changes the text pattern applied by WriteText.
func (e *SyncExecutor) SetPattern(pattern string) {
	e.core.setPattern(pattern)
}

// SetFlushThreshold makes events at or above level flush the sinks.
func (e *SyncExecutor) SetFlushThreshold(level Level) {
	e.core.flushAt.Store(int32(level))
}

// SetFallback redirects internal diagnostics, which default to stderr.
func (e *SyncExecutor) SetFallback(w io.Writer) {
	e.core.setFallback(w)
}

// Sinks returns a snapshot of the physical sinks.
func (e *SyncExecutor) Sinks() []Sink {
	sinks, _ := e.core.snapshot()
	out := make([]Sink, len(sinks))
	copy(out, sinks)
	return out
}

// Flush flushes every sink.
func (e *SyncExecutor) Flush() error {
	return e.core.flushSinks()
}

// Close flushes every sink. A synchronous executor has no background work to
// stop, and it never closes the sinks themselves.
func (e *SyncExecutor) Close() error {
	return e.core.flushSinks()
}
