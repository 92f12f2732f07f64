// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"encoding/json"
	"fmt"
)

// FindingKind tags the category of a detected weakness.
type FindingKind int

const (
	FindingTooShort FindingKind = iota
	FindingMissingClass
	FindingLowEntropy
	FindingCommonPattern
	FindingSequentialRun
	FindingRepeatedRun
)

func (k FindingKind) String() string {
	switch k {
	case FindingTooShort:
		return "too-short"
	case FindingMissingClass:
		return "missing-class"
	case FindingLowEntropy:
		return "low-entropy"
	case FindingCommonPattern:
		return "common-pattern"
	case FindingSequentialRun:
		return "sequential-run"
	case FindingRepeatedRun:
		return "repeated-run"
	default:
		return "unknown"
	}
}

func (k FindingKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

func (k *FindingKind) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	for candidate := FindingTooShort; candidate <= FindingRepeatedRun; candidate++ {
		if candidate.String() == label {
			*k = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown finding kind %q", label)
}

// Finding is one detected weakness: a kind plus the data that triggered it
// (the missing class name, the matched pattern, or the offending run).
// Renderers are expected to build their own messages from the pair instead
// of re-running detection.
type Finding struct {
	Kind   FindingKind `json:"kind"`
	Detail string      `json:"detail,omitempty"`
}

// suggestionFor renders the advice for a finding. The text depends only on
// the kind and, for missing classes, the class, so deduplicating by text is
// the same as deduplicating by category.
func suggestionFor(f Finding, cfg Config) string {
	switch f.Kind {
	case FindingTooShort:
		return fmt.Sprintf("Use at least %d characters; %d or more is better", cfg.MinLength, cfg.IdealLength)
	case FindingMissingClass:
		switch f.Detail {
		case ClassLower.String():
			return "Add lowercase letters (a-z)"
		case ClassUpper.String():
			return "Add at least one uppercase letter (A-Z)"
		case ClassDigit.String():
			return "Add at least one number (0-9)"
		default:
			return "Add special characters (e.g. ! @ # $ %)"
		}
	case FindingLowEntropy:
		return "Use a longer password with more varied characters"
	case FindingCommonPattern:
		return "Avoid dictionary words and common passwords like 'password' or '123456'"
	case FindingSequentialRun:
		return "Avoid sequential characters like 'abc' or '123'"
	case FindingRepeatedRun:
		return "Avoid repeating the same character, like 'aaa' or '111'"
	default:
		return ""
	}
}

// buildSuggestions renders one suggestion per finding, deduplicated,
// preserving detection order.
func buildSuggestions(findings []Finding, cfg Config) []string {
	suggestions := make([]string, 0, len(findings))
	seen := make(map[string]struct{}, len(findings))

	for _, f := range findings {
		s := suggestionFor(f, cfg)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
	}

	return suggestions
}
