// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import "strings"

// matchPatterns returns every configured weak pattern contained in the
// password, case-insensitively, in pattern-list order.
func matchPatterns(password string, patterns []string) []string {
	lower := strings.ToLower(password)

	var matched []string
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(pattern)) {
			matched = append(matched, pattern)
		}
	}

	return matched
}

// sequentialRuns finds non-overlapping runs of three or more characters
// whose codes step by exactly +1 or -1, scanning left to right and taking
// each run maximally. The arithmetic is only meaningful for ASCII, so runs
// never include non-ASCII runes.
func sequentialRuns(runes []rune) []string {
	var runs []string

	i := 0
	for i+2 < len(runes) {
		if runes[i] > 127 || runes[i+1] > 127 {
			i++
			continue
		}

		dir := int(runes[i+1]) - int(runes[i])
		if dir != 1 && dir != -1 {
			i++
			continue
		}

		j := i + 1
		for j+1 < len(runes) && runes[j+1] <= 127 && int(runes[j+1])-int(runes[j]) == dir {
			j++
		}

		if j-i+1 >= 3 {
			runs = append(runs, string(runes[i:j+1]))
			i = j + 1
		} else {
			i++
		}
	}

	return runs
}

// repeatedRuns finds maximal runs of three or more identical runes, left to
// right. Runs cannot overlap by construction.
func repeatedRuns(runes []rune) []string {
	var runs []string

	i := 0
	for i < len(runes) {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[i] {
			j++
		}

		if j-i+1 >= 3 {
			runs = append(runs, string(runes[i:j+1]))
		}
		i = j + 1
	}

	return runs
}
