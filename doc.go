// Package xanthos provides a reproducible micro-benchmark harness for
// request-line field splitting.
//
// # Overview
//
// Xanthos measures three equivalent ways of splitting the fixed line
// "GET /css/styles.css HTTP/1.1" into (method, resource, httpVersion):
//
//   - SplitStrategy: tokenize and materialize owned copies (4 objects/call)
//   - IndexSubstringStrategy: index the delimiters, copy each field (3 objects/call)
//   - SliceStrategy: index the delimiters, return views (0 objects/call)
//
// For each run the harness reports the steady-state elapsed time and the
// collector activity attributable to the run, then averages elapsed times
// across trials. The point of the exercise is the spread between the three
// columns, not the absolute numbers.
//
// # Timing protocol
//
// Each run executes its strategy for a fixed iteration count
// (20,000,001 by default) in a tight loop:
//
//   - collector counters are read before the loop (baseline)
//   - the clock starts on iteration index 1; index 0 is a warmup absorbing
//     first-call overhead
//   - the clock stops immediately after the loop
//   - the counter deltas are attributed to the run
//
// A run with an iteration count of 0 or 1 has no measurement window and
// reports an elapsed time of exactly 0.
//
// # Quick start
//
//	bench, err := xanthos.New(xanthos.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	report := bench.Run()
//	report.WriteText(os.Stdout)
//
// Every collaborator is injectable through Config: the Probe (clock and
// collector counters), the Sink consuming parsed fields, the Logger and the
// MetricsCollector. Tests substitute a deterministic probe; production code
// uses the runtime-backed default.
//
// # Why no concurrency
//
// Trials, strategies and iterations execute strictly sequentially on one
// goroutine. The collector counters are process-wide; running strategies in
// parallel would make the deltas unattributable and invalidate the
// comparison.
//
// # View lifetime
//
// SliceStrategy produces fields that share the input line's backing array.
// In Go this is memory-safe (the array outlives every view), but a retained
// view pins the entire line. Sinks that store fields beyond the iteration
// must clone them; the built-in Discard sink does not retain.
//
// # Packages
//
//   - github.com/agilira/xanthos: harness, strategies, probes, results
//   - github.com/agilira/xanthos/cmd/xanthos: command-line runner
//
// # License
//
// See LICENSE file in the repository.
package xanthos
