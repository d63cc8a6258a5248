package lantern

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// DefaultQueueCapacity bounds the asynchronous executor's queue when the
// caller does not choose a capacity.
const DefaultQueueCapacity = 8192

type asyncEntry struct {
	level Level
	line  string
	ack   chan struct{} // non-nil marks a flush request
}

// AsyncExecutor queues rendered lines into a bounded channel consumed by a
// single background worker, so callers return without waiting on sink I/O.
// A single worker preserves per-goroutine call order. The overflow policy is
// fixed at construction: OverflowBlock never loses events, OverflowDropOldest
// never blocks the caller and counts what it discards.
type AsyncExecutor struct {
	core   executorCore
	policy OverflowPolicy
	queue  chan asyncEntry
	done   chan struct{}

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

// NewAsyncExecutor builds an asynchronous executor over the given sinks and
// starts its worker. A non-positive queueCapacity selects
// DefaultQueueCapacity.
func NewAsyncExecutor(sinks []Sink, queueCapacity int, policy OverflowPolicy) *AsyncExecutor {
	if queueCapacity <= 0 {
		queueCapacity = DefaultQueueCapacity
	}
	e := &AsyncExecutor{
		policy: policy,
		queue:  make(chan asyncEntry, queueCapacity),
		done:   make(chan struct{}),
	}
	e.core.init(sinks)
	go e.run()
	return e
}

// Write enqueues a fully rendered line.
func (e *AsyncExecutor) Write(level Level, line string) {
	if !e.core.enabled(level) {
		return
	}
	e.enqueue(asyncEntry{level: level, line: line})
}

// WriteText applies the text pattern to msg, then enqueues it. The pattern
// runs at enqueue time so timestamps reflect the call, not the dequeue.
func (e *AsyncExecutor) WriteText(level Level, msg string) {
	if !e.core.enabled(level) {
		return
	}
	e.enqueue(asyncEntry{level: level, line: e.core.applyPattern(level, msg)})
}

func (e *AsyncExecutor) enqueue(entry asyncEntry) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		// A retired executor still delivers: dispatch synchronously so no
		// event is lost during a sync/async swap.
		e.core.dispatch(entry.level, entry.line)
		return
	}
	if e.policy == OverflowBlock {
		e.queue <- entry
		return
	}
	for {
		select {
		case e.queue <- entry:
			return
		default:
		}
		// Queue full: evict the oldest entry, then retry the send. The
		// worker may win the receive race, which also frees a slot.
		select {
		case old := <-e.queue:
			if old.ack != nil {
				// Never swallow a flush request.
				_ = e.core.flushSinks()
				close(old.ack)
			} else {
				e.dropped.Add(1)
			}
		default:
		}
	}
}

func (e *AsyncExecutor) run() {
	for entry := range e.queue {
		if entry.ack != nil {
			_ = e.core.flushSinks()
			close(entry.ack)
			continue
		}
		e.core.dispatch(entry.level, entry.line)
	}
	close(e.done)
}

// SetLevel changes the minimum enqueued level. Events already queued are
// unaffected.
func (e *AsyncExecutor) SetLevel(level Level) {
	e.core.min.Store(int32(level))
}

// SetPattern changes the text pattern applied by WriteText.
func (e *AsyncExecutor) SetPattern(pattern string) {
	e.core.setPattern(pattern)
}

// SetFlushThreshold makes events at or above level flush the sinks.
func (e *AsyncExecutor) SetFlushThreshold(level Level) {
	e.core.flushAt.Store(int32(level))
}

// SetFallback redirects internal diagnostics, which default to stderr.
func (e *AsyncExecutor) SetFallback(w io.Writer) {
	e.core.setFallback(w)
}

// Sinks returns a snapshot of the physical sinks.
func (e *AsyncExecutor) Sinks() []Sink {
	sinks, _ := e.core.snapshot()
	out := make([]Sink, len(sinks))
	copy(out, sinks)
	return out
}

// Dropped reports how many events the drop-oldest policy has discarded.
func (e *AsyncExecutor) Dropped() uint64 {
	return e.dropped.Load()
}

// Flush waits until every event enqueued before the call has been written,
// then flushes the sinks.
func (e *AsyncExecutor) Flush() error {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return e.core.flushSinks()
	}
	ack := make(chan struct{})
	e.queue <- asyncEntry{ack: ack}
	e.mu.RUnlock()
	<-ack
	return nil
}

// Close drains the queue, flushes the sinks, and stops the worker. The sinks
// stay open. Subsequent writes fall back to synchronous dispatch.
func (e *AsyncExecutor) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	close(e.queue)
	<-e.done
	err := e.core.flushSinks()
	if n := e.dropped.Load(); n > 0 {
		_, fallback := e.core.snapshot()
		fmt.Fprintf(fallback, "lantern: async executor dropped %d event(s) under drop-oldest overflow\n", n)
	}
	return err
}
