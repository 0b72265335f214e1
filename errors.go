// errors.go: structured error handling for Xanthos
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for harness configuration and setup.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"
	"strconv"

	"github.com/agilira/go-errors"
)

// Error codes for Xanthos operations. The measured path has no error surface:
// once a campaign starts it either completes or the process is terminated.
// Everything below is rejected at setup time.
const (
	// Configuration errors
	ErrCodeInvalidIterations errors.ErrorCode = "XANTHOS_INVALID_ITERATIONS"
	ErrCodeInvalidTrials     errors.ErrorCode = "XANTHOS_INVALID_TRIALS"
	ErrCodeMalformedLine     errors.ErrorCode = "XANTHOS_MALFORMED_LINE"
	ErrCodeInvalidStrategy   errors.ErrorCode = "XANTHOS_INVALID_STRATEGY"

	// Params watcher errors
	ErrCodeParamsWatchFailed errors.ErrorCode = "XANTHOS_PARAMS_WATCH_FAILED"
)

// Common error messages
const (
	msgInvalidIterations = "invalid iteration count: must be non-negative"
	msgInvalidTrials     = "invalid trial count: must be non-negative"
	msgMalformedLine     = "malformed input line: must contain exactly two spaces"
	msgInvalidStrategy   = "strategy cannot be nil"
	msgParamsWatchFailed = "failed to watch params file"
)

// NewErrInvalidIterations creates an error for a negative iteration count.
func NewErrInvalidIterations(iterations int) error {
	return errors.NewWithContext(ErrCodeInvalidIterations, msgInvalidIterations, map[string]interface{}{
		"provided_iterations": iterations,
	})
}

// NewErrInvalidTrials creates an error for a negative trial count.
func NewErrInvalidTrials(trials int) error {
	return errors.NewWithContext(ErrCodeInvalidTrials, msgInvalidTrials, map[string]interface{}{
		"provided_trials": trials,
	})
}

// NewErrMalformedLine creates an error for an input line the strategies
// cannot safely parse. Rejecting the line up front keeps the strategies
// free of per-iteration validation.
func NewErrMalformedLine(line string, spaces int) error {
	return errors.NewWithContext(ErrCodeMalformedLine, msgMalformedLine, map[string]interface{}{
		"provided_line":   line,
		"spaces_found":    spaces,
		"spaces_required": 2,
	})
}

// NewErrInvalidStrategy creates an error for a nil entry in the strategy list.
func NewErrInvalidStrategy(position int) error {
	return errors.NewWithField(ErrCodeInvalidStrategy, msgInvalidStrategy, "position", strconv.Itoa(position))
}

// NewErrParamsWatchFailed wraps a watcher setup failure.
func NewErrParamsWatchFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeParamsWatchFailed, msgParamsWatchFailed).
		WithContext("path", path)
}

// IsConfigError checks if err was produced by configuration validation.
func IsConfigError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeInvalidIterations || code == ErrCodeInvalidTrials ||
		code == ErrCodeMalformedLine || code == ErrCodeInvalidStrategy
}

// IsMalformedLine checks if err is a malformed input line error.
func IsMalformedLine(err error) bool {
	return errors.HasCode(err, ErrCodeMalformedLine)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
