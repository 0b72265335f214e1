// config.go: configuration for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"strings"

	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for a benchmark campaign.
type Config struct {
	// Line is the request line every strategy parses. Must contain exactly
	// two spaces. Default: DefaultLine.
	Line string

	// Iterations is the inner iteration count per run. Iteration index 0 is
	// a warmup excluded from timing. Must be >= 0; 0 applies the default.
	// Default: DefaultIterations.
	Iterations int

	// Trials is how many times each strategy is run. Must be >= 0;
	// 0 applies the default. Default: DefaultTrials.
	Trials int

	// Strategies is the ordered set of measured workloads. The order is
	// fixed across trials. If nil, DefaultStrategies() is used.
	Strategies []Strategy

	// Sink receives the parsed fields of every iteration.
	// If nil, Discard is used. Default: Discard.
	Sink Sink

	// Probe supplies the monotonic clock and collector counters.
	// If nil, the runtime probe is used. Default: NewRuntimeProbe().
	Probe Probe

	// Logger receives per-run progress. If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider supplies wall-clock timestamps for reports.
	// If nil, a timecache-backed implementation is used.
	TimeProvider TimeProvider

	// MetricsCollector receives one record per run.
	// If nil, NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies defaults.
//
// This method is automatically called by New, so you typically don't need to
// call it manually. It is provided as a public API if you want to inspect the
// normalized configuration before creating a bench.
//
// Default values applied:
//   - Line: DefaultLine if empty
//   - Iterations: DefaultIterations if 0
//   - Trials: DefaultTrials if 0
//   - Strategies: DefaultStrategies() if nil
//   - Sink: Discard if nil
//   - Probe: NewRuntimeProbe() if nil
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.Iterations < 0 {
		return NewErrInvalidIterations(c.Iterations)
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}

	if c.Trials < 0 {
		return NewErrInvalidTrials(c.Trials)
	}
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}

	if c.Line == "" {
		c.Line = DefaultLine
	}
	if n := strings.Count(c.Line, " "); n != 2 {
		return NewErrMalformedLine(c.Line, n)
	}

	if c.Strategies == nil {
		c.Strategies = DefaultStrategies()
	}
	for i, s := range c.Strategies {
		if s == nil {
			return NewErrInvalidStrategy(i)
		}
	}

	if c.Sink == nil {
		c.Sink = Discard
	}
	if c.Probe == nil {
		c.Probe = NewRuntimeProbe()
	}
	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Line:             DefaultLine,
		Iterations:       DefaultIterations,
		Trials:           DefaultTrials,
		Strategies:       DefaultStrategies(),
		Sink:             Discard,
		Probe:            NewRuntimeProbe(),
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// Cached time keeps report timestamps allocation-free; measurement windows
// never read it.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
