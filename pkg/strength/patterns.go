// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"bufio"
	"io"
	"strings"

	"github.com/jfcg/sorty/v2"
)

// LoadPatterns reads a custom weak-pattern list, one entry per line. Lines
// are lower-cased and trimmed; empty lines and lines starting with # are
// skipped. The result is sorted and deduplicated so detection order stays
// deterministic no matter how the source file is arranged. Wordlists of
// millions of lines are fine; sorting is the bottleneck, not scanning.
func LoadPatterns(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	patterns := make([]string, 0, 64)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sorty.SortSlice(patterns)
	return dedupPatterns(patterns), nil
}

func dedupPatterns(patterns []string) []string {
	if len(patterns) < 2 {
		return patterns
	}

	e := 1
	for i := 1; i < len(patterns); i++ {
		if patterns[i] == patterns[i-1] {
			continue
		}
		patterns[e] = patterns[i]
		e++
	}

	return patterns[:e]
}
