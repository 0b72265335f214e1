// hotparams_test.go: tests for dynamic benchmark parameters
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewHotParams tests watcher creation from a params file.
func TestNewHotParams(t *testing.T) {
	tempDir := t.TempDir()
	paramsPath := filepath.Join(tempDir, "params.yaml")

	initial := `bench:
  trials: 5
  iterations: 1000
`
	if err := os.WriteFile(paramsPath, []byte(initial), 0644); err != nil {
		t.Fatalf("Failed to write params file: %v", err)
	}

	hp, err := NewHotParams(Config{}, HotParamsOptions{
		ParamsPath:   paramsPath,
		PollInterval: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewHotParams failed: %v", err)
	}
	defer func() { _ = hp.Stop() }()

	if hp.watcher == nil {
		t.Error("Expected non-nil watcher")
	}

	// Until the first reload fires, Current() is the validated base.
	cfg := hp.Current()
	if cfg.Line != DefaultLine || cfg.Iterations != DefaultIterations {
		t.Errorf("Current = {%q %d}, want validated defaults", cfg.Line, cfg.Iterations)
	}
}

// TestNewHotParams_EmptyPath tests error handling for an empty path.
func TestNewHotParams_EmptyPath(t *testing.T) {
	_, err := NewHotParams(Config{}, HotParamsOptions{ParamsPath: ""})

	if err == nil {
		t.Fatal("Expected error for empty params path")
	}
	if GetErrorCode(err) != ErrCodeParamsWatchFailed {
		t.Errorf("code = %q, want %q", GetErrorCode(err), ErrCodeParamsWatchFailed)
	}
}

// TestNewHotParams_InvalidBase tests that a broken base config is rejected
// before any watcher is created.
func TestNewHotParams_InvalidBase(t *testing.T) {
	tempDir := t.TempDir()
	paramsPath := filepath.Join(tempDir, "params.yaml")
	if err := os.WriteFile(paramsPath, []byte("bench:\n  trials: 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write params file: %v", err)
	}

	_, err := NewHotParams(Config{Trials: -1}, HotParamsOptions{ParamsPath: paramsPath})
	if err == nil {
		t.Fatal("Expected error for invalid base config")
	}
	if !IsConfigError(err) {
		t.Errorf("got %v, want config error", err)
	}
}

// TestHotParams_StartStop tests starting and stopping the watcher.
func TestHotParams_StartStop(t *testing.T) {
	tempDir := t.TempDir()
	paramsPath := filepath.Join(tempDir, "params.yaml")
	if err := os.WriteFile(paramsPath, []byte("bench:\n  trials: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write params: %v", err)
	}

	hp, err := NewHotParams(Config{}, HotParamsOptions{
		ParamsPath:   paramsPath,
		PollInterval: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewHotParams failed: %v", err)
	}

	if err := hp.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if err := hp.Stop(); err != nil {
		t.Errorf("Failed to stop: %v", err)
	}
}

// TestHotParamsParse tests parameter extraction from watcher data.
func TestHotParamsParse(t *testing.T) {
	base := Config{}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	hp := &HotParams{base: base, current: base}

	// Nested bench section, float values as YAML/JSON decoders produce them.
	cfg := hp.parseParams(map[string]interface{}{
		"bench": map[string]interface{}{
			"trials":     float64(4),
			"iterations": 5000,
			"line":       "HEAD /index.html HTTP/1.1",
		},
	})
	if cfg.Trials != 4 || cfg.Iterations != 5000 || cfg.Line != "HEAD /index.html HTTP/1.1" {
		t.Errorf("parsed = {%d %d %q}", cfg.Trials, cfg.Iterations, cfg.Line)
	}

	// Flat section.
	cfg = hp.parseParams(map[string]interface{}{
		"trials": 7,
	})
	if cfg.Trials != 7 {
		t.Errorf("flat trials = %d, want 7", cfg.Trials)
	}
	if cfg.Iterations != base.Iterations {
		t.Errorf("unset iterations changed: %d", cfg.Iterations)
	}

	// Invalid values keep the base.
	cfg = hp.parseParams(map[string]interface{}{
		"bench": map[string]interface{}{
			"trials":     -3,
			"iterations": "many",
			"line":       "no-spaces-here",
		},
	})
	if cfg.Trials != base.Trials || cfg.Iterations != base.Iterations || cfg.Line != base.Line {
		t.Errorf("invalid values leaked: {%d %d %q}", cfg.Trials, cfg.Iterations, cfg.Line)
	}

	// Unrelated data leaves everything untouched.
	cfg = hp.parseParams(map[string]interface{}{"other": 1})
	if cfg.Trials != base.Trials {
		t.Errorf("unrelated data changed trials: %d", cfg.Trials)
	}
}

// TestParsePositiveInt tests the numeric extraction helper.
func TestParsePositiveInt(t *testing.T) {
	if v, ok := parsePositiveInt(10); !ok || v != 10 {
		t.Errorf("parsePositiveInt(10) = (%d, %v)", v, ok)
	}
	if v, ok := parsePositiveInt(float64(3)); !ok || v != 3 {
		t.Errorf("parsePositiveInt(3.0) = (%d, %v)", v, ok)
	}
	if _, ok := parsePositiveInt(0); ok {
		t.Error("parsePositiveInt(0) should fail")
	}
	if _, ok := parsePositiveInt(-1); ok {
		t.Error("parsePositiveInt(-1) should fail")
	}
	if _, ok := parsePositiveInt("7"); ok {
		t.Error("parsePositiveInt(string) should fail")
	}
}

// TestParseLine tests the request-line extraction helper.
func TestParseLine(t *testing.T) {
	if v, ok := parseLine("GET / HTTP/1.1"); !ok || v != "GET / HTTP/1.1" {
		t.Errorf("parseLine = (%q, %v)", v, ok)
	}
	if _, ok := parseLine("one-space only"); ok {
		t.Error("line with one space should fail")
	}
	if _, ok := parseLine(42); ok {
		t.Error("non-string should fail")
	}
}
