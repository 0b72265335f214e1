// probe.go: monotonic clock and runtime collector counters
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"runtime"
	"time"
)

// Probe reads the monotonic clock and the runtime's allocation counters.
// It is read-only and side-effect-free from the caller's perspective; the
// harness injects it so tests can substitute a deterministic fake instead of
// depending on the host runtime's allocator telemetry.
type Probe interface {
	// Now returns a monotonic instant in nanoseconds. Only differences
	// between two readings are meaningful.
	Now() int64

	// Collections returns the number of completed collection cycles since
	// process start. Monotonically non-decreasing.
	Collections() uint32

	// Mallocs returns the cumulative count of heap objects allocated since
	// process start. Monotonically non-decreasing.
	Mallocs() uint64
}

// runtimeProbe is the default Probe backed by the Go runtime.
//
// Collections reports runtime.MemStats.NumGC. Go's collector is not
// generational, so a "collection" here is a full GC cycle rather than a
// gen-0 reclamation; the count still rises with allocation pressure, which
// is the property the harness compares across strategies. Mallocs gives the
// precise per-object view where cycle counts are too coarse.
type runtimeProbe struct {
	epoch time.Time
}

// NewRuntimeProbe returns a Probe backed by the runtime's monotonic clock
// and memory statistics.
func NewRuntimeProbe() Probe {
	return &runtimeProbe{epoch: time.Now()}
}

// Now returns nanoseconds elapsed since the probe was created.
// time.Since reads the monotonic clock, so wall-clock adjustments
// cannot skew a measurement window.
func (p *runtimeProbe) Now() int64 {
	return int64(time.Since(p.epoch))
}

// Collections returns the number of completed GC cycles since process start.
// runtime.ReadMemStats stops the world; the runner only calls this outside
// the measured window.
func (p *runtimeProbe) Collections() uint32 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.NumGC
}

// Mallocs returns the cumulative count of heap objects allocated.
func (p *runtimeProbe) Mallocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}
