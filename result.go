// result.go: per-run, aggregated and reported measurements
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"io"
	"time"
)

// RunResult is the measurement of one (strategy, trial) run.
// Immutable after creation; exactly one exists per pair.
type RunResult struct {
	// Strategy is the short name of the measured strategy.
	Strategy string `json:"strategy"`

	// Trial is the zero-based trial index the run belongs to.
	Trial int `json:"trial"`

	// ElapsedNs is the measured steady-state duration in nanoseconds.
	// The warmup iteration is excluded; 0 means no measurement window
	// existed (iteration count <= 1), not instant execution.
	ElapsedNs int64 `json:"elapsed_ns"`

	// Collections is the collection-cycle delta observed across the run.
	Collections uint32 `json:"collections"`

	// Mallocs is the heap-object delta observed across the run.
	Mallocs uint64 `json:"mallocs"`
}

// Elapsed returns the measured duration.
func (r RunResult) Elapsed() time.Duration {
	return time.Duration(r.ElapsedNs)
}

// ElapsedMs returns the measured duration in milliseconds.
func (r RunResult) ElapsedMs() float64 {
	return float64(r.ElapsedNs) / float64(time.Millisecond)
}

// AggregateResult is the ordered sequence of a strategy's runs across all
// trials plus the derived means. Built incrementally by the orchestrator and
// finalized after the last trial.
type AggregateResult struct {
	// Strategy is the short name of the strategy.
	Strategy string `json:"strategy"`

	// Runs holds one RunResult per trial, in trial order.
	Runs []RunResult `json:"runs"`

	// MeanElapsedNs is the arithmetic mean of the runs' elapsed times.
	MeanElapsedNs int64 `json:"mean_elapsed_ns"`

	// TotalCollections is the sum of the runs' collection deltas.
	TotalCollections uint64 `json:"total_collections"`

	// TotalMallocs is the sum of the runs' heap-object deltas.
	TotalMallocs uint64 `json:"total_mallocs"`
}

// MeanElapsed returns the mean run duration.
func (a AggregateResult) MeanElapsed() time.Duration {
	return time.Duration(a.MeanElapsedNs)
}

// MeanElapsedMs returns the mean run duration in milliseconds.
func (a AggregateResult) MeanElapsedMs() float64 {
	return float64(a.MeanElapsedNs) / float64(time.Millisecond)
}

// finalize derives the means and totals from the accumulated runs.
func (a *AggregateResult) finalize() {
	if len(a.Runs) == 0 {
		return
	}
	var elapsed int64
	a.TotalCollections = 0
	a.TotalMallocs = 0
	for _, r := range a.Runs {
		elapsed += r.ElapsedNs
		a.TotalCollections += uint64(r.Collections)
		a.TotalMallocs += r.Mallocs
	}
	a.MeanElapsedNs = elapsed / int64(len(a.Runs))
}

// Report is the complete output of one benchmark campaign.
type Report struct {
	// Line is the input line every strategy parsed.
	Line string `json:"line"`

	// Iterations is the inner iteration count per run.
	Iterations int `json:"iterations"`

	// Trials is the number of trials executed.
	Trials int `json:"trials"`

	// StartedAtNs is the wall-clock start of the campaign in nanoseconds
	// since epoch, taken from the configured TimeProvider.
	StartedAtNs int64 `json:"started_at_ns"`

	// Results holds one aggregate per strategy, in benchmark order.
	Results []AggregateResult `json:"results"`
}

// StartedAt returns the campaign start as wall-clock time.
func (rep *Report) StartedAt() time.Time {
	return time.Unix(0, rep.StartedAtNs)
}

// WriteText writes the human-readable report: one block of per-trial
// collection deltas per strategy, then the per-strategy means.
func (rep *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "line %q, %d iterations, %d trials\n\n", rep.Line, rep.Iterations, rep.Trials); err != nil {
		return err
	}
	for _, agg := range rep.Results {
		if _, err := fmt.Fprintf(w, "%-10s", agg.Strategy); err != nil {
			return err
		}
		for _, run := range agg.Runs {
			if _, err := fmt.Fprintf(w, " %4d", run.Collections); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  collections (total %d, %d objects)\n", agg.TotalCollections, agg.TotalMallocs); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, agg := range rep.Results {
		if _, err := fmt.Fprintf(w, "%-10s %12.3f ms mean elapsed\n", agg.Strategy, agg.MeanElapsedMs()); err != nil {
			return err
		}
	}
	return nil
}
