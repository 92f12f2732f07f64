// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"errors"
	"fmt"
)

// Config holds the scoring weights, thresholds and weak-pattern list used
// by Assess. A Config is never mutated by the scorer, so a single value may
// be shared by any number of concurrent callers.
type Config struct {
	// MinLength is the length below which a password scores zero length
	// points and receives a TooShort finding.
	MinLength int
	// IdealLength is the length at which the length contribution reaches
	// full marks. Longer passwords are capped, never penalized.
	IdealLength int

	// CommonPatterns are known-weak passwords and substrings, matched
	// case-insensitively anywhere in the password.
	CommonPatterns []string

	// Weights of the three positive sub-scores. They must total 100 so the
	// maximum achievable score is 100.
	LengthWeight  int
	ClassWeight   int
	EntropyWeight int

	// Subtractive penalties, applied once per finding after the positive
	// sub-scores are summed.
	PatternPenalty  int
	SequencePenalty int
	RepeatPenalty   int

	// EntropyCeiling is the number of entropy bits at which the entropy
	// contribution reaches full marks.
	EntropyCeiling float64
	// MinBitsPerChar is the bits-per-character floor below which a
	// LowEntropy finding is emitted.
	MinBitsPerChar float64

	// Thresholds are the five ascending inclusive lower bounds of the
	// rating bands, VeryWeak first.
	Thresholds [5]int
}

// DefaultConfig returns the stock scoring configuration. Callers that need
// different thresholds or pattern lists should copy and adjust it, then run
// Validate before use.
func DefaultConfig() Config {
	return Config{
		MinLength:   8,
		IdealLength: 12,
		CommonPatterns: []string{
			"password", "123456", "12345678", "qwerty", "abc123",
			"letmein", "admin", "welcome", "iloveyou",
		},
		LengthWeight:    30,
		ClassWeight:     40,
		EntropyWeight:   30,
		PatternPenalty:  25,
		SequencePenalty: 10,
		RepeatPenalty:   10,
		EntropyCeiling:  60,
		MinBitsPerChar:  2.5,
		Thresholds:      [5]int{0, 30, 50, 70, 88},
	}
}

// Validate reports the first problem that would make scoring results
// meaningless. It is meant to run once at configuration-load time; Assess
// itself never fails.
func (c Config) Validate() error {
	if c.MinLength < 1 {
		return errors.New("minimum length must be at least 1")
	}

	if c.IdealLength < c.MinLength {
		return fmt.Errorf("ideal length %d is smaller than minimum length %d", c.IdealLength, c.MinLength)
	}

	if c.LengthWeight < 0 || c.ClassWeight < 0 || c.EntropyWeight < 0 {
		return errors.New("sub-score weights must not be negative")
	}

	if sum := c.LengthWeight + c.ClassWeight + c.EntropyWeight; sum != 100 {
		return fmt.Errorf("sub-score weights total %d, must total 100", sum)
	}

	if c.PatternPenalty < 0 || c.SequencePenalty < 0 || c.RepeatPenalty < 0 {
		return errors.New("penalties must not be negative")
	}

	if c.EntropyCeiling <= 0 {
		return errors.New("entropy ceiling must be positive")
	}

	if c.MinBitsPerChar < 0 {
		return errors.New("bits-per-character floor must not be negative")
	}

	for i, threshold := range c.Thresholds {
		if threshold < 0 || threshold > 100 {
			return fmt.Errorf("rating threshold %d is outside [0, 100]", threshold)
		}
		if i > 0 && threshold <= c.Thresholds[i-1] {
			return fmt.Errorf("rating thresholds must be strictly ascending, got %v", c.Thresholds)
		}
	}

	return nil
}
