package lantern

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Options describes logger construction parameters. String fields keep their
// configuration spelling; empty values select the documented defaults.
type Options struct {
	Level      string // off/trace/debug/info/warn/error/critical; empty = info
	Format     string // kv/json/json-pretty; empty = kv
	Pattern    string // text pattern for key-value output; empty = DefaultPattern
	FlushLevel string // events at or above this level flush sinks; empty = warn
	Color      string // auto/always/never for pretty-JSON output; empty = auto

	// Async selects the backend mode. QueueCapacity and Overflow only apply
	// to the asynchronous backend.
	Async         bool
	QueueCapacity int
	Overflow      string // block/drop-oldest; empty = block

	// Sinks are the physical outputs. Nil selects a stderr console sink plus
	// a rotating lantern.log file sink.
	Sinks []Sink
	// Executor overrides Sinks entirely when set. Used by tests and by
	// callers bringing their own backend.
	Executor Executor
	// Fallback receives internal diagnostics. Nil selects stderr.
	Fallback io.Writer
}

// Logger is the logging facade: a single mutable object owning the minimum
// level, the output format, the text pattern, and the sink executor handle.
// All state mutations and handle reads take the facade lock; rendering and
// sink I/O happen outside it so slow sinks never serialize unrelated calls.
type Logger struct {
	mu       sync.Mutex
	level    Level
	format   Format
	pattern  string
	flushAt  Level
	colorize bool
	async    bool
	queueCap int
	overflow OverflowPolicy
	exec     Executor
	fallback io.Writer
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger, constructing it from the
// environment on first use. It lives for the rest of the process.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(OptionsFromEnv())
	})
	return defaultLogger
}

// New constructs a logger. Construction never fails: when the default file
// sink cannot be opened the logger continues console-only, and a logger with
// no usable backend degrades to a no-op, reporting the problem on the
// fallback stream instead of taking the host process down.
func New(opts Options) *Logger {
	l := &Logger{
		level:    LevelInfo,
		format:   ParseFormat(opts.Format),
		flushAt:  LevelWarn,
		async:    opts.Async,
		queueCap: opts.QueueCapacity,
		overflow: ParseOverflowPolicy(opts.Overflow),
		fallback: opts.Fallback,
	}
	if l.fallback == nil {
		l.fallback = os.Stderr
	}
	if opts.Level != "" {
		l.level = ParseLevel(opts.Level)
	}
	if opts.FlushLevel != "" {
		l.flushAt = ParseLevel(opts.FlushLevel)
	}
	l.pattern = opts.Pattern
	if l.pattern == "" {
		l.pattern = DefaultPattern
	}
	switch opts.Color {
	case "always", "1", "true":
		l.colorize = true
	case "never", "0", "false":
		l.colorize = false
	default:
		l.colorize = ColorsEnabled(os.Stderr)
	}

	exec := opts.Executor
	if exec == nil {
		sinks := opts.Sinks
		if sinks == nil {
			sinks = l.defaultSinks()
		}
		if opts.Async {
			exec = NewAsyncExecutor(sinks, l.queueCap, l.overflow)
		} else {
			exec = NewSyncExecutor(sinks...)
		}
	}
	l.configureExecutor(exec)
	l.exec = exec
	return l
}

func (l *Logger) defaultSinks() []Sink {
	sinks := []Sink{NewConsoleSink(os.Stderr, nil)}
	file, err := NewFileSink("lantern.log", 0, 0)
	if err != nil {
		fmt.Fprintf(l.fallback, "lantern: file sink unavailable, continuing console-only: %v\n", err)
		return sinks
	}
	return append(sinks, file)
}

// configureExecutor pushes the facade's current settings into exec.
func (l *Logger) configureExecutor(exec Executor) {
	exec.SetLevel(l.level)
	exec.SetPattern(l.pattern)
	exec.SetFlushThreshold(l.flushAt)
	type fallbackSetter interface{ SetFallback(io.Writer) }
	if fs, ok := exec.(fallbackSetter); ok {
		fs.SetFallback(l.fallback)
	}
}

// SetLevel changes the minimum level, effective immediately for subsequent
// calls. Events already queued in an asynchronous backend are unaffected.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	exec := l.exec
	l.mu.Unlock()
	if exec != nil {
		exec.SetLevel(level)
	}
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Enabled reports whether an event at level would currently be emitted.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level != LevelOff && l.level != LevelOff && level >= l.level
}

// SetFormat changes the output encoding, effective on the next call.
// In-flight renders are unaffected.
func (l *Logger) SetFormat(format Format) {
	l.mu.Lock()
	l.format = format
	l.mu.Unlock()
}

// Format returns the current output encoding.
func (l *Logger) Format() Format {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.format
}

// SetFormatFromEnv reads the named environment variable (EnvLogFormat when
// name is empty) and applies the format it selects.
func (l *Logger) SetFormatFromEnv(name string) {
	if name == "" {
		name = EnvLogFormat
	}
	l.SetFormat(ParseFormat(os.Getenv(name)))
}

// SetPattern changes the text pattern used for key-value output.
func (l *Logger) SetPattern(pattern string) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	l.mu.Lock()
	l.pattern = pattern
	exec := l.exec
	l.mu.Unlock()
	if exec != nil {
		exec.SetPattern(pattern)
	}
}

// SetAsync swaps the backend between synchronous and asynchronous execution.
// It is safe while other goroutines log concurrently: under the facade lock
// the current sink set, level, pattern, and flush threshold are snapshotted,
// the retired executor is drained, and the replacement is installed over the
// same sinks. Queued events are flushed before the swap completes; the
// policy is flush-then-swap with zero loss.
//
// Per-goroutine call order is guaranteed for writers that acquire the
// executor handle through the facade after the swap. A writer racing the
// swap with the retired handle still delivers (a closed executor dispatches
// synchronously), but that one event may land after the replacement's first
// writes.
func (l *Logger) SetAsync(enable bool) {
	l.mu.Lock()
	if l.exec == nil || l.async == enable {
		l.mu.Unlock()
		return
	}
	old := l.exec
	sinks := old.Sinks()

	// Drain before installing the replacement so a goroutine's earlier
	// events cannot trail its later ones across the swap.
	if err := old.Flush(); err != nil {
		fmt.Fprintf(l.fallback, "lantern: flush before executor swap: %v\n", err)
	}

	var next Executor
	if enable {
		next = NewAsyncExecutor(sinks, l.queueCap, l.overflow)
	} else {
		next = NewSyncExecutor(sinks...)
	}
	l.configureExecutor(next)
	l.exec = next
	l.async = enable
	l.mu.Unlock()

	// Stragglers that grabbed the old handle before the swap still land:
	// Close drains the queue, and a closed executor dispatches synchronously.
	if err := old.Close(); err != nil {
		fmt.Fprintf(l.fallback, "lantern: close retired executor: %v\n", err)
	}

	mode := "synchronous"
	if enable {
		mode = "asynchronous"
	}
	l.Log(LevelInfo, "logger switched to %s mode", mode)
}

// Async reports whether the asynchronous backend is active.
func (l *Logger) Async() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.async
}

// Log emits a formatted message at the given level with no call-chain
// context. Arguments are evaluated by the caller before the level check
// (caller-eager); guard expensive arguments with Enabled.
func (l *Logger) Log(level Level, format string, args ...any) {
	l.emit(nil, level, formatMessage(format, args), nil)
}

// LogCtx is Log with the logging context carried by ctx merged in.
func (l *Logger) LogCtx(ctx context.Context, level Level, format string, args ...any) {
	l.emit(ctx, level, formatMessage(format, args), nil)
}

// LogModule is Log with a "[module] " prefix composed ahead of rendering.
func (l *Logger) LogModule(module string, level Level, format string, args ...any) {
	l.emit(nil, level, "["+module+"] "+formatMessage(format, args), nil)
}

// LogModuleCtx is LogModule with the logging context carried by ctx.
func (l *Logger) LogModuleCtx(ctx context.Context, module string, level Level, format string, args ...any) {
	l.emit(ctx, level, "["+module+"] "+formatMessage(format, args), nil)
}

// Logf emits msg with alternating key/value pairs, then the correlation id,
// module, and fields of the logging context carried by ctx; explicit pairs
// win on key collision. An odd trailing key is a programmer error and is
// surfaced as a !BADKEY entry rather than silently dropped.
func (l *Logger) Logf(ctx context.Context, level Level, msg string, kvs ...any) {
	l.emit(ctx, level, msg, collectPairs(kvs))
}

// Panicf logs the rendered message at Error level, flushes the backend so
// the failure is observable even if the panic is recovered upstream, and
// then panics with an error carrying the same message. It never returns.
func (l *Logger) Panicf(format string, args ...any) {
	msg := formatMessage(format, args)
	l.emit(nil, LevelError, msg, nil)
	_ = l.Flush()
	panic(errors.New(msg))
}

// Flush forces pending output through the backend to the sinks.
func (l *Logger) Flush() error {
	l.mu.Lock()
	exec := l.exec
	l.mu.Unlock()
	if exec == nil {
		return nil
	}
	return exec.Flush()
}

// Close drains and stops the backend. Sinks stay open; the process-wide
// logger is normally never closed.
func (l *Logger) Close() error {
	l.mu.Lock()
	exec := l.exec
	l.exec = nil
	l.mu.Unlock()
	if exec == nil {
		return nil
	}
	return exec.Close()
}

func (l *Logger) emit(ctx context.Context, level Level, msg string, pairs []Pair) {
	if level == LevelOff {
		return
	}
	l.mu.Lock()
	if l.exec == nil || l.level == LevelOff || level < l.level {
		l.mu.Unlock()
		return
	}
	format := l.format
	colorize := l.colorize
	exec := l.exec
	l.mu.Unlock()

	c := FromContext(ctx)
	switch format {
	case FormatJSON:
		exec.Write(level, RenderJSONLine(level, msg, pairs, c))
	case FormatPrettyJSON:
		exec.Write(level, RenderJSONPretty(level, msg, pairs, c, colorize))
	default:
		exec.WriteText(level, RenderKV(msg, pairs, c))
	}
}

func formatMessage(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// badKey marks a key/value list misuse in the rendered output.
const badKey = "!BADKEY"

func collectPairs(kvs []any) []Pair {
	if len(kvs) == 0 {
		return nil
	}
	pairs := make([]Pair, 0, (len(kvs)+1)/2)
	for i := 0; i < len(kvs); i += 2 {
		if i+1 >= len(kvs) {
			// Odd trailing key: surface the misuse instead of dropping it.
			pairs = append(pairs, Pair{Key: badKey, Value: kvs[i]})
			break
		}
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprint(kvs[i])
		}
		pairs = append(pairs, Pair{Key: key, Value: kvs[i+1]})
	}
	return pairs
}
