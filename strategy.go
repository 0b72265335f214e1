// strategy.go: the three measured parsing strategies
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "strings"

// Sink receives the three parsed fields of one iteration. The harness calls
// it exactly once per iteration, after the fields are derived, so that the
// compiler cannot eliminate the very work being measured.
//
// For SliceStrategy the fields are views sharing the input line's backing
// storage. A view pins the whole line for as long as it is retained, so a
// sink that stores fields beyond the iteration should clone them first.
type Sink func(method, resource, httpVersion string)

// Package-level sinks. Writing every result to a global keeps the parse and
// the sink call observable to the optimizer.
var (
	sinkMethod   string
	sinkResource string
	sinkVersion  string
)

// Discard is the default sink. It publishes the fields to package-level
// variables and otherwise does nothing.
func Discard(method, resource, httpVersion string) {
	sinkMethod, sinkResource, sinkVersion = method, resource, httpVersion
}

// Strategy derives (method, resource, httpVersion) from one request line and
// forwards the triple to the sink. Parsing is a pure function of the line:
// the same input always yields byte-for-byte identical fields.
//
// Strategies assume a well-formed line containing exactly two spaces
// (Config.Validate enforces this before a campaign starts). Behavior on a
// malformed line is unspecified; this is a performance probe, not a parser.
type Strategy interface {
	// Name returns the short identifier used in results and logs.
	Name() string

	// Parse derives the three fields and passes them to sink.
	Parse(line string, sink Sink)
}

// DefaultStrategies returns the fixed, closed set of strategies in benchmark
// order. The order is part of the measurement contract: later strategies in a
// trial run with warmed caches, so reordering would break comparability with
// reference runs.
func DefaultStrategies() []Strategy {
	return []Strategy{SplitStrategy{}, IndexSubstringStrategy{}, SliceStrategy{}}
}

// SplitStrategy tokenizes the line on spaces and materializes an owned copy
// of each field. Go substrings share the source's backing array, so the
// tokens from strings.Split are views; cloning them models a tokenizer that
// allocates every token. Cost: 4 heap objects per call (the slice plus three
// strings), the highest of the three strategies.
type SplitStrategy struct{}

// Name returns "split".
func (SplitStrategy) Name() string { return "split" }

// Parse tokenizes line and forwards owned copies of fields 0, 1 and 2.
func (SplitStrategy) Parse(line string, sink Sink) {
	fields := strings.Split(line, " ")
	sink(strings.Clone(fields[0]), strings.Clone(fields[1]), strings.Clone(fields[2]))
}

// IndexSubstringStrategy locates the first and last space and extracts each
// field as an owned copy. Cost: 3 heap objects per call, no container.
type IndexSubstringStrategy struct{}

// Name returns "substring".
func (IndexSubstringStrategy) Name() string { return "substring" }

// Parse extracts owned copies of the three fields by delimiter position.
// The resource field excludes both delimiter spaces.
func (IndexSubstringStrategy) Parse(line string, sink Sink) {
	first := strings.IndexByte(line, ' ')
	last := strings.LastIndexByte(line, ' ')
	sink(strings.Clone(line[:first]), strings.Clone(line[first+1:last]), strings.Clone(line[last+1:]))
}

// SliceStrategy uses the same delimiter math as IndexSubstringStrategy but
// returns plain substrings: non-owning views into the line's backing storage.
// Cost: 0 heap objects per call in steady state.
type SliceStrategy struct{}

// Name returns "slice".
func (SliceStrategy) Name() string { return "slice" }

// Parse forwards three views into line. Nothing is copied.
func (SliceStrategy) Parse(line string, sink Sink) {
	first := strings.IndexByte(line, ' ')
	last := strings.LastIndexByte(line, ' ')
	sink(line[:first], line[first+1:last], line[last+1:])
}
