// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import "math"

// shannonBits estimates the total entropy of a password in bits: the
// Shannon entropy of the observed rune frequency distribution multiplied by
// the rune count. Using observed frequencies instead of a theoretical
// alphabet size means repeated characters earn nothing; "aaaaaaaa" is worth
// zero bits no matter how long it gets.
func shannonBits(runes []rune) float64 {
	if len(runes) == 0 {
		return 0
	}

	freq := make(map[rune]int, len(runes))
	for _, r := range runes {
		freq[r]++
	}

	// Accumulate in first-appearance order, not map order: float addition
	// is not associative, and assessments must be bit-identical across
	// calls.
	length := float64(len(runes))
	entropy := 0.0
	for _, r := range runes {
		count, ok := freq[r]
		if !ok {
			continue
		}
		delete(freq, r)

		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}

	return entropy * length
}
