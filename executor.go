package lantern

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Executor receives rendered log lines tagged with severity and dispatches
// them to the configured sinks, either on the caller's goroutine or through a
// background worker with a bounded queue.
//
// Executors never close their sinks: the facade owns sink lifetime, so a
// retired executor can be drained and discarded while its sinks move to the
// replacement.
type Executor interface {
	// Write dispatches a fully rendered line.
	Write(level Level, line string)
	// WriteText runs msg through the configured text pattern before
	// dispatching. The key-value output path uses this entry point, deferring
	// pattern substitution to the executor.
	WriteText(level Level, msg string)
	// SetLevel changes the executor's minimum level.
	SetLevel(level Level)
	// SetPattern changes the text pattern. Only WriteText lines are affected.
	SetPattern(pattern string)
	// SetFlushThreshold makes every event at or above level flush the sinks.
	SetFlushThreshold(level Level)
	// Sinks returns a snapshot of the physical sinks, used when swapping
	// executors.
	Sinks() []Sink
	// Flush forces pending output through to the sinks.
	Flush() error
	// Close drains pending events and stops background work. Sinks stay open.
	Close() error
}

// Sink is one physical output destination for rendered lines.
// Implementations append the line terminator themselves.
type Sink interface {
	WriteLine(level Level, line string) error
	Flush() error
	Close() error
}

// OverflowPolicy controls how an asynchronous executor behaves when its
// bounded queue is full.
type OverflowPolicy int8

const (
	// OverflowBlock makes the caller wait for queue space. No events are
	// ever lost. This is the default.
	OverflowBlock OverflowPolicy = iota
	// OverflowDropOldest discards the oldest queued event to admit the new
	// one. The caller never waits; losses are counted and reported when the
	// executor closes.
	OverflowDropOldest
)

// ParseOverflowPolicy maps a configuration string to a policy. Unrecognized
// values fall back to OverflowBlock.
func ParseOverflowPolicy(value string) OverflowPolicy {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "drop-oldest", "overwrite-oldest":
		return OverflowDropOldest
	default:
		return OverflowBlock
	}
}

// String returns the canonical configuration name for the policy.
func (p OverflowPolicy) String() string {
	if p == OverflowDropOldest {
		return "drop-oldest"
	}
	return "block"
}

// executorCore holds the state shared by the synchronous and asynchronous
// executors: level filter, flush threshold, text pattern, sink set, and the
// fallback stream for internal diagnostics.
type executorCore struct {
	min     atomic.Int32
	flushAt atomic.Int32

	mu       sync.RWMutex
	pattern  string
	sinks    []Sink
	fallback io.Writer
}

func (c *executorCore) init(sinks []Sink) {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	c.sinks = kept
	c.pattern = DefaultPattern
	c.fallback = os.Stderr
	c.min.Store(int32(LevelTrace))
	c.flushAt.Store(int32(LevelWarn))
}

func (c *executorCore) enabled(level Level) bool {
	min := Level(c.min.Load())
	return level != LevelOff && min != LevelOff && level >= min
}

func (c *executorCore) setPattern(pattern string) {
	c.mu.Lock()
	c.pattern = pattern
	c.mu.Unlock()
}

func (c *executorCore) setFallback(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	c.mu.Lock()
	c.fallback = w
	c.mu.Unlock()
}

func (c *executorCore) applyPattern(level Level, msg string) string {
	c.mu.RLock()
	pattern := c.pattern
	c.mu.RUnlock()
	return formatPattern(pattern, time.Now(), level, msg)
}

func (c *executorCore) snapshot() ([]Sink, io.Writer) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sinks, c.fallback
}

// dispatch writes the line to every sink and honors the flush threshold.
// Sink failures surface on the fallback stream and never reach the caller.
func (c *executorCore) dispatch(level Level, line string) {
	sinks, fallback := c.snapshot()
	for _, s := range sinks {
		if err := s.WriteLine(level, line); err != nil {
			fmt.Fprintf(fallback, "lantern: sink write failed: %v\n", err)
		}
	}
	if level >= Level(c.flushAt.Load()) {
		_ = c.flushSinks()
	}
}

func (c *executorCore) flushSinks() error {
	sinks, _ := c.snapshot()
	var firstErr error
	for _, s := range sinks {
		if err := s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
