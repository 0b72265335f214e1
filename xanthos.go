// Package xanthos is a micro-benchmark harness for request-line parsing.
//
// Xanthos quantifies the cost of three equivalent strategies for splitting
// a fixed HTTP request line into its three fields:
//
//	split:     tokenize the line and materialize owned copies of each token
//	substring: locate the delimiters, extract each field as an owned copy
//	slice:     locate the delimiters, return views into the original line
//
// Example usage:
//
//	bench, err := xanthos.New(xanthos.Config{
//		Trials:     10,
//		Iterations: 20_000_001,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	report := bench.Run()
//	report.WriteText(os.Stdout)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

const (
	// Version of the Xanthos harness
	Version = "v0.1.0-dev"

	// DefaultLine is the fixed, well-formed request line every strategy parses.
	// It contains exactly two spaces; the strategies assume that shape.
	DefaultLine = "GET /css/styles.css HTTP/1.1"

	// DefaultIterations is the inner iteration count per run (0..=20,000,000).
	// Iteration index 0 is a warmup and is excluded from the measured duration.
	DefaultIterations = 20_000_001

	// DefaultTrials is the number of times each strategy is run.
	DefaultTrials = 10
)
