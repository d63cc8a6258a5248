package lantern

import "sync"

// Coordinator serializes console writers and holds them back until a one-time
// startup banner has finished printing. It is a two-state gate: banner
// pending or banner done, guarded by a mutex and condition variable, plus a
// separate output mutex that keeps concurrent writes from interleaving.
//
// The initial state is banner-done, so programs that never emit a banner are
// never blocked.
type Coordinator struct {
	mu   sync.Mutex
	cond *sync.Cond
	done bool

	outMu sync.Mutex
}

// NewCoordinator returns a coordinator in the banner-done state.
func NewCoordinator() *Coordinator {
	c := &Coordinator{done: true}
	c.cond = sync.NewCond(&c.mu)
	return c
}

var defaultCoordinator = NewCoordinator()

// DefaultCoordinator returns the process-wide coordinator shared by console
// sinks and the banner emitter.
func DefaultCoordinator() *Coordinator {
	return defaultCoordinator
}

// ResetBanner moves the coordinator to the banner-pending state. Every later
// WaitBanner call blocks until MarkBannerDone runs; a caller that resets the
// banner and never marks it done deadlocks all future console writers.
func (c *Coordinator) ResetBanner() {
	c.mu.Lock()
	c.done = false
	c.mu.Unlock()
}

// WaitBanner blocks the caller until any pending banner has finished
// printing. It returns immediately when no banner is pending.
func (c *Coordinator) WaitBanner() {
	c.mu.Lock()
	for !c.done {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// MarkBannerDone completes a pending banner and wakes every waiting writer.
func (c *Coordinator) MarkBannerDone() {
	c.mu.Lock()
	c.done = true
	c.mu.Unlock()
	c.cond.Broadcast()
}

// WithOutputLock runs write while holding the output mutex so concurrent
// console writers never interleave bytes.
func (c *Coordinator) WithOutputLock(write func()) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	write()
}
