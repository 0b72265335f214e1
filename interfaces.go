// interfaces.go: public interfaces for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides wall-clock time for report timestamps.
// It is never consulted inside a measurement window; the measured clock
// is the Probe's monotonic reading. This interface exists so tests can
// inject a fixed time.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector receives one record per completed run. Implementations
// can forward the measurements to an external monitoring system.
// This interface is designed for zero overhead when unused.
//
// All methods must be allocation-free and must not block: they are called
// between runs, and a slow collector would distort the campaign's pacing.
type MetricsCollector interface {
	// RecordRun records a completed run: the strategy name, the measured
	// elapsed time in nanoseconds and the collection delta for the run.
	RecordRun(strategy string, elapsedNs int64, collections uint32)
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
type NoOpMetricsCollector struct{}

// RecordRun does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordRun(strategy string, elapsedNs int64, collections uint32) {}
