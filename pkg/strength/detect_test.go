// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package strength

import (
	"reflect"
	"testing"
)

func TestSequentialRuns(t *testing.T) {
	cases := []struct {
		password string
		want     []string
	}{
		{"abc12345", []string{"abc", "12345"}},
		{"321", []string{"321"}},
		{"xcba9x", []string{"cba"}},
		{"ab1cd", nil},
		{"", nil},
		{"aa", nil},
		{"aäbäc", nil},
		{"noqrs", []string{"qrs"}},
	}

	for _, tc := range cases {
		got := sequentialRuns([]rune(tc.password))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("sequentialRuns(%q): %v, want: %v", tc.password, got, tc.want)
		}
	}
}

func TestRepeatedRuns(t *testing.T) {
	cases := []struct {
		password string
		want     []string
	}{
		{"aaabbbbcc", []string{"aaa", "bbbb"}},
		{"aaaaaaaa", []string{"aaaaaaaa"}},
		{"aabbcc", nil},
		{"", nil},
		{"äää", []string{"äää"}},
	}

	for _, tc := range cases {
		got := repeatedRuns([]rune(tc.password))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("repeatedRuns(%q): %v, want: %v", tc.password, got, tc.want)
		}
	}
}

func TestMatchPatterns(t *testing.T) {
	patterns := []string{"password", "123456", "qwerty"}

	cases := []struct {
		password string
		want     []string
	}{
		{"MyPassWord!", []string{"password"}},
		{"xx123456yy", []string{"123456"}},
		{"QWERTY123456", []string{"123456", "qwerty"}},
		{"nothing here", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := matchPatterns(tc.password, patterns)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("matchPatterns(%q): %v, want: %v", tc.password, got, tc.want)
		}
	}
}
