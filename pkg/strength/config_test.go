// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default configuration should validate: %s", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero min length", func(c *Config) { c.MinLength = 0 }},
		{"ideal below min", func(c *Config) { c.IdealLength = c.MinLength - 1 }},
		{"weights not 100", func(c *Config) { c.LengthWeight = 50 }},
		{"negative weight", func(c *Config) { c.ClassWeight = -40 }},
		{"negative penalty", func(c *Config) { c.PatternPenalty = -1 }},
		{"zero entropy ceiling", func(c *Config) { c.EntropyCeiling = 0 }},
		{"descending thresholds", func(c *Config) { c.Thresholds = [5]int{0, 50, 30, 70, 88} }},
		{"equal thresholds", func(c *Config) { c.Thresholds = [5]int{0, 30, 30, 70, 88} }},
		{"threshold above 100", func(c *Config) { c.Thresholds = [5]int{0, 30, 50, 70, 101} }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate should fail for %s", tc.name)
		}
	}
}

func TestLoadPatterns(t *testing.T) {
	input := "QWERTY\n# a comment\n\npassword\nqwerty\n  letmein  \n"

	patterns, err := LoadPatterns(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Should not fail loading patterns: %s", err)
	}

	want := []string{"letmein", "password", "qwerty"}
	if len(patterns) != len(want) {
		t.Fatalf("Expected %d patterns, got %v", len(want), patterns)
	}
	for i, p := range want {
		if patterns[i] != p {
			t.Errorf("Pattern %d: %q, want %q", i, patterns[i], p)
		}
	}
}
