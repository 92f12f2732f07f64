// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"math"
	"testing"
)

func TestShannonBits(t *testing.T) {
	cases := []struct {
		password string
		want     float64
	}{
		{"", 0},
		{"a", 0},
		{"aaaaaaaa", 0},
		// Two symbols, uniform: 1 bit per character.
		{"aabb", 4},
		// Four distinct symbols: 2 bits per character.
		{"abcd", 8},
		{"abcdabcd", 16},
		// Multi-byte runes count once each.
		{"äöäö", 4},
	}

	for _, tc := range cases {
		got := shannonBits([]rune(tc.password))
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("shannonBits(%q): %f, want: %f", tc.password, got, tc.want)
		}
	}
}

func TestShannonBitsPenalizesRepeats(t *testing.T) {
	// Same length and alphabet classes, different diversity.
	repeated := shannonBits([]rune("aabbaabb"))
	varied := shannonBits([]rune("akxmwpqh"))

	if repeated >= varied {
		t.Errorf("Repeated characters should yield fewer bits: %f vs %f", repeated, varied)
	}
}
