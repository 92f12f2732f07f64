// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

// Package strength scores passwords with a fixed set of heuristics: length,
// character-class diversity, frequency-based Shannon entropy, weak-pattern
// matching and sequential/repeated run detection. Scoring is pure and
// deterministic; the same password and configuration always produce the
// same assessment.
package strength

import (
	"fmt"
	"math"
)

// Assessment is the immutable result of scoring one password.
type Assessment struct {
	// Score is the clamped final score, 0 to 100.
	Score int `json:"score"`
	// Rating is the band Score falls into.
	Rating Rating `json:"rating"`
	// Entropy is the estimated randomness of the password in bits.
	Entropy float64 `json:"entropy"`
	// Findings lists every detected weakness in detection order.
	Findings []Finding `json:"findings"`
	// Suggestions holds one deduplicated piece of advice per finding
	// category, in the same order as Findings.
	Suggestions []string `json:"suggestions"`
}

// Assess scores a password against cfg. It accepts any string, including
// empty and arbitrary Unicode, performs no I/O and never fails; degenerate
// input simply lands in the lowest band with the full set of findings.
//
// The pipeline runs in a fixed order so findings and suggestions are
// reproducible: length, character classes, entropy, common patterns,
// sequential runs, repeated runs. Penalties are subtracted after the
// positive sub-scores are summed and the result is clamped exactly once.
func Assess(password string, cfg Config) Assessment {
	runes := []rune(password)
	profile := profileOf(runes)
	findings := make([]Finding, 0, 8)

	lengthPoints := 0.0
	if profile.Length < cfg.MinLength {
		findings = append(findings, Finding{
			Kind:   FindingTooShort,
			Detail: fmt.Sprintf("%d of %d characters", profile.Length, cfg.MinLength),
		})
	} else {
		// Nonzero at exactly MinLength, full marks at IdealLength and
		// beyond.
		span := cfg.IdealLength - cfg.MinLength + 1
		steps := profile.Length - cfg.MinLength + 1
		if steps > span {
			steps = span
		}
		lengthPoints = float64(cfg.LengthWeight) * float64(steps) / float64(span)
	}

	classPoints := float64(cfg.ClassWeight) * float64(profile.ClassCount()) / 4
	for _, class := range profile.Missing() {
		findings = append(findings, Finding{Kind: FindingMissingClass, Detail: class.String()})
	}

	entropy := shannonBits(runes)
	entropyPoints := float64(cfg.EntropyWeight) * math.Min(entropy/cfg.EntropyCeiling, 1)
	if profile.Length > 0 && entropy/float64(profile.Length) < cfg.MinBitsPerChar {
		findings = append(findings, Finding{
			Kind:   FindingLowEntropy,
			Detail: fmt.Sprintf("%.1f bits", entropy),
		})
	}

	penalty := 0
	for _, pattern := range matchPatterns(password, cfg.CommonPatterns) {
		findings = append(findings, Finding{Kind: FindingCommonPattern, Detail: pattern})
		penalty += cfg.PatternPenalty
	}

	for _, run := range sequentialRuns(runes) {
		findings = append(findings, Finding{Kind: FindingSequentialRun, Detail: run})
		penalty += cfg.SequencePenalty
	}

	for _, run := range repeatedRuns(runes) {
		findings = append(findings, Finding{Kind: FindingRepeatedRun, Detail: run})
		penalty += cfg.RepeatPenalty
	}

	// The raw sum may go negative; the single clamp below is the only one.
	raw := int(math.Round(lengthPoints+classPoints+entropyPoints)) - penalty
	score := raw
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Assessment{
		Score:       score,
		Rating:      cfg.ratingFor(score),
		Entropy:     entropy,
		Findings:    findings,
		Suggestions: buildSuggestions(findings, cfg),
	}
}
