// runner_test.go: timing-protocol tests with a deterministic probe
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

// scriptProbe replays scripted counter and clock readings, so tests do not
// depend on the host runtime's allocator telemetry. onNow, when set, observes
// the moment of each clock reading.
type scriptProbe struct {
	now     []int64
	coll    []uint32
	mallocs []uint64

	nowIdx, collIdx, mallocIdx int

	onNow func(call int)
}

func (p *scriptProbe) Now() int64 {
	if p.onNow != nil {
		p.onNow(p.nowIdx)
	}
	if p.nowIdx >= len(p.now) {
		panic("scriptProbe: unexpected Now() call")
	}
	v := p.now[p.nowIdx]
	p.nowIdx++
	return v
}

func (p *scriptProbe) Collections() uint32 {
	if p.collIdx >= len(p.coll) {
		panic("scriptProbe: unexpected Collections() call")
	}
	v := p.coll[p.collIdx]
	p.collIdx++
	return v
}

func (p *scriptProbe) Mallocs() uint64 {
	if p.mallocIdx >= len(p.mallocs) {
		panic("scriptProbe: unexpected Mallocs() call")
	}
	v := p.mallocs[p.mallocIdx]
	p.mallocIdx++
	return v
}

// countingStrategy counts its own invocations.
type countingStrategy struct {
	parses *int
}

func (s countingStrategy) Name() string { return "counting" }

func (s countingStrategy) Parse(line string, sink Sink) {
	*s.parses++
	SliceStrategy{}.Parse(line, sink)
}

// TestRunnerZeroIterations verifies the boundary contract: no iterations, no
// clock start, no probe reads, a zero result, and a sink that never fires.
func TestRunnerZeroIterations(t *testing.T) {
	probe := &scriptProbe{} // any probe call panics
	parses := 0
	r := NewRunner(probe, Discard, nil, nil)

	res := r.Run(countingStrategy{parses: &parses}, DefaultLine, 0)

	if parses != 0 {
		t.Errorf("strategy invoked %d times for 0 iterations", parses)
	}
	if res.ElapsedNs != 0 || res.Collections != 0 || res.Mallocs != 0 {
		t.Errorf("zero-iteration run = %+v, want all-zero measurements", res)
	}
	if res.Strategy != "counting" {
		t.Errorf("Strategy = %q, want %q", res.Strategy, "counting")
	}
}

// TestRunnerSingleIterationWarmup verifies that with exactly one iteration
// the clock never starts: the sole iteration is the warmup, and the reported
// elapsed time is zero by definition, not "fast execution".
func TestRunnerSingleIterationWarmup(t *testing.T) {
	probe := &scriptProbe{
		coll:    []uint32{3, 3},
		mallocs: []uint64{10, 10},
		// no Now readings scripted: a clock start would panic
	}
	parses := 0
	r := NewRunner(probe, Discard, nil, nil)

	res := r.Run(countingStrategy{parses: &parses}, DefaultLine, 1)

	if parses != 1 {
		t.Errorf("strategy invoked %d times, want 1", parses)
	}
	if res.ElapsedNs != 0 {
		t.Errorf("ElapsedNs = %d, want 0 (no measurement window)", res.ElapsedNs)
	}
}

// TestRunnerClockStartsOnSecondIteration verifies the warmup rule: the first
// clock reading happens after exactly one parse, the second after all of them.
func TestRunnerClockStartsOnSecondIteration(t *testing.T) {
	const iterations = 5

	parses := 0
	parsesAtNow := []int{}
	probe := &scriptProbe{
		now:     []int64{1_000, 4_500},
		coll:    []uint32{0, 0},
		mallocs: []uint64{0, 0},
		onNow: func(call int) {
			parsesAtNow = append(parsesAtNow, parses)
		},
	}
	r := NewRunner(probe, Discard, nil, nil)

	res := r.Run(countingStrategy{parses: &parses}, DefaultLine, iterations)

	if parses != iterations {
		t.Fatalf("strategy invoked %d times, want %d", parses, iterations)
	}
	if len(parsesAtNow) != 2 {
		t.Fatalf("clock read %d times, want 2", len(parsesAtNow))
	}
	if parsesAtNow[0] != 1 {
		t.Errorf("clock started after %d parses, want 1 (warmup excluded)", parsesAtNow[0])
	}
	if parsesAtNow[1] != iterations {
		t.Errorf("clock stopped after %d parses, want %d", parsesAtNow[1], iterations)
	}
	if res.ElapsedNs != 3_500 {
		t.Errorf("ElapsedNs = %d, want 3500", res.ElapsedNs)
	}
}

// TestRunnerCounterDeltas verifies the collection and malloc deltas are
// after-minus-before readings around the loop.
func TestRunnerCounterDeltas(t *testing.T) {
	probe := &scriptProbe{
		now:     []int64{0, 10},
		coll:    []uint32{5, 9},
		mallocs: []uint64{100, 160},
	}
	r := NewRunner(probe, Discard, nil, nil)

	res := r.Run(SliceStrategy{}, DefaultLine, 2)

	if res.Collections != 4 {
		t.Errorf("Collections = %d, want 4", res.Collections)
	}
	if res.Mallocs != 60 {
		t.Errorf("Mallocs = %d, want 60", res.Mallocs)
	}
}

// recordingCollector captures RecordRun calls.
type recordingCollector struct {
	strategies  []string
	elapsed     []int64
	collections []uint32
}

func (c *recordingCollector) RecordRun(strategy string, elapsedNs int64, collections uint32) {
	c.strategies = append(c.strategies, strategy)
	c.elapsed = append(c.elapsed, elapsedNs)
	c.collections = append(c.collections, collections)
}

// TestRunnerRecordsMetrics verifies each run reaches the metrics collector.
func TestRunnerRecordsMetrics(t *testing.T) {
	probe := &scriptProbe{
		now:     []int64{0, 250},
		coll:    []uint32{1, 3},
		mallocs: []uint64{0, 8},
	}
	collector := &recordingCollector{}
	r := NewRunner(probe, Discard, nil, collector)

	r.Run(SliceStrategy{}, DefaultLine, 3)

	if len(collector.strategies) != 1 {
		t.Fatalf("collector received %d records, want 1", len(collector.strategies))
	}
	if collector.strategies[0] != "slice" || collector.elapsed[0] != 250 || collector.collections[0] != 2 {
		t.Errorf("recorded (%q, %d, %d), want (%q, 250, 2)",
			collector.strategies[0], collector.elapsed[0], collector.collections[0], "slice")
	}
}
