// hotparams.go: dynamic benchmark parameters with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotParams watches a parameters file and keeps an up-to-date benchmark
// Config derived from it. A running campaign is never touched: changes take
// effect on the next campaign built from Current(). This is what powers
// long-lived "watch" sessions where the operator tunes iteration counts
// between runs without restarting the process.
type HotParams struct {
	watcher *argus.Watcher
	mu      sync.RWMutex
	base    Config
	current Config

	// OnReload is called after parameters are successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotParamsOptions configures parameter watching.
type HotParamsOptions struct {
	// ParamsPath is the path to the parameters file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ParamsPath string

	// PollInterval is how often to check for changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after parameters are successfully reloaded.
	OnReload func(oldConfig, newConfig Config)
}

// NewHotParams creates a watcher for the given parameters file. The base
// config supplies everything the file does not override (probe, sink,
// logger); the file may set:
//
//	bench:
//	  trials: 10
//	  iterations: 20000001
//	  line: "GET /css/styles.css HTTP/1.1"
//
// Values that fail validation are ignored and the previous value is kept.
func NewHotParams(base Config, opts HotParamsOptions) (*HotParams, error) {
	if opts.ParamsPath == "" {
		return nil, NewErrParamsWatchFailed("", fmt.Errorf("params_path is required"))
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}

	hp := &HotParams{
		base:     base,
		current:  base,
		OnReload: opts.OnReload,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ParamsPath, hp.handleParamsChange, argusConfig)
	if err != nil {
		return nil, NewErrParamsWatchFailed(opts.ParamsPath, err)
	}
	hp.watcher = watcher

	return hp, nil
}

// Start begins watching the parameters file for changes.
func (hp *HotParams) Start() error {
	if hp.watcher.IsRunning() {
		return nil // Already started
	}
	return hp.watcher.Start()
}

// Stop stops watching the parameters file.
func (hp *HotParams) Stop() error {
	return hp.watcher.Stop()
}

// Current returns the latest parameter set (thread-safe).
func (hp *HotParams) Current() Config {
	hp.mu.RLock()
	defer hp.mu.RUnlock()
	return hp.current
}

// handleParamsChange is called by Argus when the parameters file changes.
func (hp *HotParams) handleParamsChange(data map[string]interface{}) {
	hp.mu.Lock()
	oldConfig := hp.current
	newConfig := hp.parseParams(data)
	hp.current = newConfig
	hp.mu.Unlock()

	if hp.OnReload != nil {
		hp.OnReload(oldConfig, newConfig)
	}
}

// parsePositiveInt extracts a positive integer from an interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parseLine extracts a well-formed request line from a string value.
func parseLine(value interface{}) (string, bool) {
	if str, ok := value.(string); ok {
		probe := Config{Line: str}
		if err := probe.Validate(); err == nil {
			return str, true
		}
	}
	return "", false
}

// parseParams derives a Config from Argus config data, starting from the
// base config so unset keys keep their values.
func (hp *HotParams) parseParams(data map[string]interface{}) Config {
	config := hp.base

	benchSection, ok := data["bench"].(map[string]interface{})
	if !ok {
		// Try if the whole data IS the bench section
		if _, hasTrials := data["trials"]; hasTrials {
			benchSection = data
		} else if _, hasIterations := data["iterations"]; hasIterations {
			benchSection = data
		} else {
			return config
		}
	}

	if trials, ok := parsePositiveInt(benchSection["trials"]); ok {
		config.Trials = trials
	}
	if iterations, ok := parsePositiveInt(benchSection["iterations"]); ok {
		config.Iterations = iterations
	}
	if line, ok := parseLine(benchSection["line"]); ok {
		config.Line = line
	}

	return config
}
