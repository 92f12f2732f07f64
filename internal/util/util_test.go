package util

import "testing"

func TestToScreamingSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Port", "PORT"},
		{"SelfTLS", "SELF_TLS"},
		{"TLSCert", "TLS_CERT"},
		{"IdealLength", "IDEAL_LENGTH"},
		{"CacheEntries", "CACHE_ENTRIES"},
		{"PatternsFile", "PATTERNS_FILE"},
	}

	for _, tc := range cases {
		if got := ToScreamingSnakeCase(tc.in); got != tc.want {
			t.Errorf("ToScreamingSnakeCase(%q): %q, want: %q", tc.in, got, tc.want)
		}
	}
}
