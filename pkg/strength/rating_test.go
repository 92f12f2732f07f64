// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import "testing"

func TestRatingBands(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		score int
		want  Rating
	}{
		{0, VeryWeak},
		{29, VeryWeak},
		// Scores equal to a threshold land in the higher band.
		{30, Weak},
		{49, Weak},
		{50, Moderate},
		{69, Moderate},
		{70, Strong},
		{87, Strong},
		{88, VeryStrong},
		{100, VeryStrong},
	}

	for _, tc := range cases {
		if got := cfg.ratingFor(tc.score); got != tc.want {
			t.Errorf("ratingFor(%d): %s, want: %s", tc.score, got, tc.want)
		}
	}
}

func TestRatingOrdered(t *testing.T) {
	if !(VeryWeak < Weak && Weak < Moderate && Moderate < Strong && Strong < VeryStrong) {
		t.Errorf("Rating bands should be ordered")
	}
}

func TestRatingString(t *testing.T) {
	cases := map[Rating]string{
		VeryWeak:   "Very Weak",
		Weak:       "Weak",
		Moderate:   "Moderate",
		Strong:     "Strong",
		VeryStrong: "Very Strong",
	}

	for rating, want := range cases {
		if rating.String() != want {
			t.Errorf("Rating(%d).String(): %s, want: %s", rating, rating.String(), want)
		}
	}
}
