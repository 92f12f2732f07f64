// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

func writeWordlist(t *testing.T, lines string) *os.File {
	t.Helper()

	name := filepath.Join(t.TempDir(), "wordlist.txt")
	if err := os.WriteFile(name, []byte(lines), 0600); err != nil {
		t.Fatalf("Should not fail writing the wordlist: %s", err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatalf("Should not fail opening the wordlist: %s", err)
	}

	t.Cleanup(func() {
		if err := file.Close(); err != nil {
			t.Fatalf("Should not fail closing file: %s", err)
		}
	})

	return file
}

func TestAuditor(t *testing.T) {
	file := writeWordlist(t, "password\naB3!kT9z\nzP7!kM2&qW9#xTj%\n")

	var report bytes.Buffer
	auditor := NewAuditor(file, &report, 1, strength.DefaultConfig())
	if err := auditor.Process(); err != nil {
		t.Errorf("Should not fail processing file: %s", err)
	}

	lines := 0
	seen := make(map[int]Result)
	scanner := bufio.NewScanner(&report)
	for scanner.Scan() {
		lines++
		var record Result
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("Report line should be valid JSON: %s", err)
		}
		seen[record.Line] = record
	}

	if lines != 3 {
		t.Errorf("Report should have 3 lines, got %d", lines)
	}

	if record, ok := seen[1]; !ok || record.Score > 29 {
		t.Errorf("Line 1 ('password') should be reported Very Weak, got %+v", record)
	}
	if record, ok := seen[3]; !ok || record.Score != 100 {
		t.Errorf("Line 3 should be reported with a full score, got %+v", record)
	}

	for line, record := range seen {
		if record.Length == 0 {
			t.Errorf("Line %d should report a length", line)
		}
	}
}

func TestAuditorParallel(t *testing.T) {
	file := writeWordlist(t, "password\n123456\nletmein\nzpkvmwqh\naaaaaaaa\nabc12345\n")

	var report bytes.Buffer
	auditor := NewAuditor(file, &report, 0, strength.DefaultConfig())
	if err := auditor.Process(); err != nil {
		t.Errorf("Should not fail processing file: %s", err)
	}

	lines := 0
	scanner := bufio.NewScanner(&report)
	for scanner.Scan() {
		lines++
	}

	if lines != 6 {
		t.Errorf("Report should have 6 lines, got %d", lines)
	}
}

func TestEstimateFileLines(t *testing.T) {
	file := writeWordlist(t, "one\ntwo\nthree\nfour\n")

	if got := estimateFileLines(file); got != 4 {
		t.Errorf("estimateFileLines: %d, want: %d", got, 4)
	}

	// The sample read must not consume the file.
	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		lines++
	}
	if lines != 4 {
		t.Errorf("File pointer should be reset after estimating, read %d lines", lines)
	}
}
