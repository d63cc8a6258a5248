package lantern

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gofrs/flock"
)

const (
	// DefaultMaxFileSize rotates log files once they pass 5 MiB.
	DefaultMaxFileSize = 5 * 1024 * 1024
	// DefaultMaxBackups keeps three rotated files beside the live one.
	DefaultMaxBackups = 3
)

// FileSink appends rendered lines to a log file and rotates it once it
// exceeds maxSize bytes: path is renamed to path.1, path.1 to path.2, and so
// on, keeping at most maxBackups rotated files. Rotation runs under a
// cross-process advisory lock so two processes sharing the file never rotate
// concurrently.
type FileSink struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
	lock       *flock.Flock
}

// NewFileSink opens (or creates) the log file at path. Non-positive maxSize
// and maxBackups select the defaults.
func NewFileSink(path string, maxSize int64, maxBackups int) (*FileSink, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat log file %s: %w", path, err)
	}
	return &FileSink{
		path:       path,
		maxSize:    maxSize,
		maxBackups: maxBackups,
		file:       file,
		size:       info.Size(),
		lock:       flock.New(path + ".lock"),
	}, nil
}

// WriteLine appends one line, rotating first when the file would pass the
// size limit.
func (s *FileSink) WriteLine(_ Level, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return fmt.Errorf("log file %s is closed", s.path)
	}
	if s.size+int64(len(line))+1 > s.maxSize && s.size > 0 {
		if err := s.rotate(); err != nil {
			return fmt.Errorf("rotate %s: %w", s.path, err)
		}
	}
	n, err := io.WriteString(s.file, line+"\n")
	s.size += int64(n)
	return err
}

// rotate is called with the sink mutex held.
func (s *FileSink) rotate() error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire rotation lock: %w", err)
	}
	defer s.lock.Unlock() //nolint:errcheck // lock file removal is advisory

	if err := s.file.Close(); err != nil {
		s.file = nil
		return s.reopen(err)
	}
	s.file = nil

	oldest := s.path + "." + strconv.Itoa(s.maxBackups)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return s.reopen(err)
	}
	for i := s.maxBackups - 1; i >= 1; i-- {
		from := s.path + "." + strconv.Itoa(i)
		to := s.path + "." + strconv.Itoa(i+1)
		if err := os.Rename(from, to); err != nil && !os.IsNotExist(err) {
			return s.reopen(err)
		}
	}
	if err := os.Rename(s.path, s.path+".1"); err != nil && !os.IsNotExist(err) {
		return s.reopen(err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return s.reopen(err)
	}
	s.file = file
	s.size = 0
	return nil
}

// reopen restores the live file after a failed rotation step so a transient
// error does not leave the sink permanently closed. The rotation cause is
// returned either way; called with the sink mutex held.
func (s *FileSink) reopen(cause error) error {
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return cause
	}
	s.size = 0
	if info, err := file.Stat(); err == nil {
		s.size = info.Size()
	}
	s.file = file
	return cause
}

// Flush syncs file contents to disk.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	return s.file.Sync()
}

// Close syncs and closes the file. Further writes fail.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Sync()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	s.file = nil
	return err
}

// Path returns the live log file path.
func (s *FileSink) Path() string {
	return s.path
}
