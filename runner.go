// runner.go: the timed run executor
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Runner executes one strategy for a fixed iteration count and measures the
// steady-state cost of the loop. It cannot fail under normal operation: a run
// either completes its iteration count or the process is terminated externally.
type Runner struct {
	probe   Probe
	sink    Sink
	logger  Logger
	metrics MetricsCollector
}

// NewRunner returns a Runner measuring through probe and forwarding parsed
// fields to sink. Nil sink, logger or metrics fall back to the no-op defaults.
func NewRunner(probe Probe, sink Sink, logger Logger, metrics MetricsCollector) *Runner {
	if sink == nil {
		sink = Discard
	}
	if logger == nil {
		logger = NoOpLogger{}
	}
	if metrics == nil {
		metrics = NoOpMetricsCollector{}
	}
	return &Runner{probe: probe, sink: sink, logger: logger, metrics: metrics}
}

// Run executes s against line for the given iteration count and returns the
// measurement. The timing protocol:
//
//  1. Counter baselines are read before the loop.
//  2. The clock starts on iteration index 1. Index 0 is a deliberate warmup:
//     first-call overhead (cold caches, lazy initialization) is excluded from
//     the measured duration.
//  3. The clock stops immediately after the loop, before the counters are
//     read again; the counter deltas are attributed to the run.
//
// With iterations <= 1 the clock never starts and the elapsed time is 0 by
// definition: there is no measurement window, which is distinct from "fast
// execution". With iterations == 0 the sink never fires and all deltas are 0.
func (r *Runner) Run(s Strategy, line string, iterations int) RunResult {
	if iterations <= 0 {
		return RunResult{Strategy: s.Name()}
	}

	collBase := r.probe.Collections()
	mallocBase := r.probe.Mallocs()

	var start int64
	started := false
	for i := 0; i < iterations; i++ {
		if i == 1 {
			start = r.probe.Now()
			started = true
		}
		s.Parse(line, r.sink)
	}
	var elapsed int64
	if started {
		elapsed = r.probe.Now() - start
	}

	res := RunResult{
		Strategy:    s.Name(),
		ElapsedNs:   elapsed,
		Collections: r.probe.Collections() - collBase,
		Mallocs:     r.probe.Mallocs() - mallocBase,
	}
	r.metrics.RecordRun(res.Strategy, res.ElapsedNs, res.Collections)
	return res
}
