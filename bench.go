// bench.go: the trial orchestrator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Bench orchestrates a full benchmark campaign: Trials passes over the fixed
// strategy set, each pass running every strategy once at the configured
// iteration count.
//
// Execution is strictly sequential on the calling goroutine. Parallelism is
// deliberately absent: the collector counters are process-wide, and
// concurrent runs would make their deltas unattributable to a strategy.
type Bench struct {
	config Config
	runner *Runner
}

// New validates cfg, normalizes its defaults and returns a ready Bench.
func New(cfg Config) (*Bench, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Bench{
		config: cfg,
		runner: NewRunner(cfg.Probe, cfg.Sink, cfg.Logger, cfg.MetricsCollector),
	}, nil
}

// Config returns the normalized configuration the bench runs with.
func (b *Bench) Config() Config {
	return b.config
}

// Run executes the campaign and returns the finalized report. Within a trial
// the strategies run in fixed order; each run's collection delta is emitted
// through the Logger as soon as the run completes, so the three inner runs of
// a trial are observable before the next trial starts.
func (b *Bench) Run() *Report {
	cfg := b.config
	report := &Report{
		Line:        cfg.Line,
		Iterations:  cfg.Iterations,
		Trials:      cfg.Trials,
		StartedAtNs: cfg.TimeProvider.Now(),
		Results:     make([]AggregateResult, len(cfg.Strategies)),
	}
	for i, s := range cfg.Strategies {
		report.Results[i] = AggregateResult{
			Strategy: s.Name(),
			Runs:     make([]RunResult, 0, cfg.Trials),
		}
	}

	cfg.Logger.Info("campaign started",
		"line", cfg.Line, "iterations", cfg.Iterations, "trials", cfg.Trials)

	for trial := 0; trial < cfg.Trials; trial++ {
		for i, s := range cfg.Strategies {
			res := b.runner.Run(s, cfg.Line, cfg.Iterations)
			res.Trial = trial
			report.Results[i].Runs = append(report.Results[i].Runs, res)

			cfg.Logger.Info("run complete",
				"trial", trial,
				"strategy", res.Strategy,
				"collections", res.Collections,
				"mallocs", res.Mallocs,
				"elapsed_ms", res.ElapsedMs())
		}
	}

	for i := range report.Results {
		report.Results[i].finalize()
		cfg.Logger.Info("strategy mean",
			"strategy", report.Results[i].Strategy,
			"mean_elapsed_ms", report.Results[i].MeanElapsedMs())
	}
	return report
}
