package lantern

import (
	"io"
	"os"

	"lantern/internal/envx"
)

// ConsoleSink writes lines to a console writer. When synchronized, every
// write first waits for a pending startup banner and then runs under the
// coordinator's output lock, so banner output always precedes steady-state
// lines and concurrent writers never interleave.
type ConsoleSink struct {
	w            io.Writer
	coord        *Coordinator
	synchronized bool
}

// NewConsoleSink builds a synchronized console sink. A nil writer selects
// stderr; a nil coordinator selects the process-wide one. Synchronization can
// be disabled process-wide with LANTERN_CONSOLE_SYNC=false.
func NewConsoleSink(w io.Writer, coord *Coordinator) *ConsoleSink {
	return NewConsoleSinkWithSync(w, coord, envx.Bool(EnvConsoleSync, true))
}

// NewConsoleSinkWithSync builds a console sink with an explicit
// synchronization choice, for configuration-driven construction.
func NewConsoleSinkWithSync(w io.Writer, coord *Coordinator, synchronized bool) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}
	if coord == nil {
		coord = DefaultCoordinator()
	}
	return &ConsoleSink{
		w:            w,
		coord:        coord,
		synchronized: synchronized,
	}
}

// WriteLine writes one line, appending the newline.
func (s *ConsoleSink) WriteLine(_ Level, line string) error {
	if !s.synchronized {
		_, err := io.WriteString(s.w, line+"\n")
		return err
	}
	s.coord.WaitBanner()
	var err error
	s.coord.WithOutputLock(func() {
		_, err = io.WriteString(s.w, line+"\n")
	})
	return err
}

// Flush syncs the underlying file when the writer has one. Consoles cannot
// always be synced; those errors are not worth surfacing.
func (s *ConsoleSink) Flush() error {
	if f, ok := s.w.(*os.File); ok {
		_ = f.Sync()
	}
	return nil
}

// Close is a no-op: the process owns stdout and stderr.
func (s *ConsoleSink) Close() error {
	return nil
}
