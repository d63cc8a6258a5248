package lantern

import (
	"fmt"
	"os"
	"path/filepath"

	"lantern/config"
)

// NewFromConfig builds a logger from file/environment configuration: a
// console sink on stderr, plus a rotating file sink under cfg.LogDir when one
// is configured. Rotated files older than cfg.RetentionDays are pruned.
func NewFromConfig(cfg *config.Config) (*Logger, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	sinks := []Sink{NewConsoleSinkWithSync(os.Stderr, nil, cfg.ConsoleSync)}
	var logPath string
	if cfg.LogDir != "" {
		dir, err := config.ExpandPath(cfg.LogDir)
		if err != nil {
			return nil, fmt.Errorf("resolve log directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		logPath = filepath.Join(dir, cfg.FileName)
		file, err := NewFileSink(logPath, int64(cfg.MaxFileSizeMB)*1024*1024, cfg.MaxBackups)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sinks = append(sinks, file)
	}

	logger := New(Options{
		Level:         cfg.Level,
		Format:        cfg.Format,
		Pattern:       cfg.Pattern,
		FlushLevel:    cfg.FlushLevel,
		Color:         cfg.Color,
		Async:         cfg.Async,
		QueueCapacity: cfg.QueueCapacity,
		Overflow:      cfg.OverflowPolicy,
		Sinks:         sinks,
	})

	if cfg.RetentionDays > 0 && logPath != "" {
		CleanupOldLogs(logger, cfg.RetentionDays, RetentionTarget{
			Dir:     filepath.Dir(logPath),
			Pattern: cfg.FileName + ".*",
			Exclude: []string{logPath},
		})
	}
	return logger, nil
}
