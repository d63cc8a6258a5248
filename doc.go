// Package lantern is a process-wide structured logging facility.
//
// It owns a single lazily constructed facade that accepts leveled, formatted,
// and key-value log events from arbitrarily many goroutines, merges
// per-call-chain context into each event, renders the result as key-value
// text, single-line JSON, or indented colorized JSON, and hands the rendered
// line to a sink executor for delivery to console and file sinks.
//
// The facade can be reconfigured at runtime while concurrently in use: level,
// format, and text pattern changes take effect on the next call, and the
// backend can be swapped between synchronous and asynchronous execution with
// a flush-then-swap protocol that never drops queued events.
//
// Console output is serialized through a coordinator so a one-time startup
// banner always finishes printing before steady-state log lines appear.
package lantern
