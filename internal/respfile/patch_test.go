// SPDX-License-Identifier: MPL-2.0

package respfile

import (
	"strings"
	"testing"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(Options{
		ResponseFileName: "csc.rsp",
		Desired:          "-langVersion:11",
		Acceptable:       []string{"-langVersion:11", "-langVersion:latest", "-langVersion:preview"},
		Nullable:         "-nullable:enable",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n
}

// platformEOL rewrites the canonical LF terminators of an expected value to
// the terminator the patch algorithm emits on the current platform.
func platformEOL(s string) string {
	return strings.ReplaceAll(s, "\n", lineEnding())
}

func TestPatchAppendsDirective(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty file", "", "-langVersion:11\n"},
		{"unterminated content", "-r:System.dll", "-r:System.dll\n-langVersion:11\n"},
		{"terminated content", "-r:System.dll\n", "-r:System.dll\n-langVersion:11\n"},
		{"multiple tokens", "-r:System.dll\n-warnaserror\n", "-r:System.dll\n-warnaserror\n-langVersion:11\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := n.Patch(tt.input)
			if result != platformEOL(tt.expected) {
				t.Errorf("Patch(%q) = %q, want %q", tt.input, result, platformEOL(tt.expected))
			}
		})
	}
}

func TestPatchShortCircuitsOnAcceptable(t *testing.T) {
	n := newTestNormalizer(t)

	// Compliant content must come back byte-identical, unusual formatting
	// and foreign line terminators included.
	tests := []struct {
		name  string
		input string
	}{
		{"desired directive", "-langVersion:11\n"},
		{"latest variant", "-langVersion:latest\n"},
		{"preview variant", "-langVersion:preview\n"},
		{"mixed case", "-LANGVERSION:LATEST\n"},
		{"crlf terminators", "-r:System.dll\r\n-langVersion:preview\r\n"},
		{"bare cr terminators", "-langVersion:11\r-nullable:enable\r"},
		{"no trailing terminator", "-langVersion:11"},
		{"surrounded by other tokens", "-warnaserror -langVersion:11 -r:System.dll"},
		{"value with suffix", "-langVersion:11.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := n.Patch(tt.input)
			if result != tt.input {
				t.Errorf("Patch(%q) = %q, want input unchanged", tt.input, result)
			}
		})
	}
}

func TestPatchReplacesEveryToken(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single token", "-langVersion:8\n", "-langVersion:11\n"},
		{"previously pinned version", "-langVersion:9\n", "-langVersion:11\n"},
		{"mixed case token", "-LangVersion:7.3\n", "-langVersion:11\n"},
		{"conflicting tokens", "-langVersion:8\n-langVersion:7.3\n", "-langVersion:11\n-langVersion:11\n"},
		{"token between others", "-r:System.dll\n-langVersion:8\n-nullable:enable\n", "-r:System.dll\n-langVersion:11\n-nullable:enable\n"},
		{"tokens on one line", "-langVersion:8 -langVersion:7\n", "-langVersion:11 -langVersion:11\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := n.Patch(tt.input)
			if result != platformEOL(tt.expected) {
				t.Errorf("Patch(%q) = %q, want %q", tt.input, result, platformEOL(tt.expected))
			}
			// No stale version value may survive a patch.
			for _, m := range langVersionPattern.FindAllString(result, -1) {
				if !strings.EqualFold(m, "-langVersion:11") {
					t.Errorf("stale token %q left in %q", m, result)
				}
			}
		})
	}
}

func TestPatchIdempotent(t *testing.T) {
	n := newTestNormalizer(t)

	inputs := []string{
		"",
		"-langVersion:8\n",
		"-langVersion:8\r\n-langVersion:7\r\n",
		"-r:System.dll",
		"-langVersion:preview\n",
		"-warnaserror\n-nullable:disable\n",
	}

	for _, input := range inputs {
		once := n.Patch(input)
		twice := n.Patch(once)
		if twice != once {
			t.Errorf("Patch not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestPatchConverges(t *testing.T) {
	n := newTestNormalizer(t)

	// Any non-compliant input must be compliant after exactly one pass.
	inputs := []string{
		"",
		"-langVersion:8\n",
		"-r:System.dll\n-warnaserror",
		"-langVersion:10 -langVersion:11\n",
	}

	for _, input := range inputs {
		patched := n.Patch(input)
		if !strings.Contains(strings.ToLower(patched), "-langversion:11") {
			t.Errorf("Patch(%q) = %q, missing desired directive", input, patched)
		}
		if n.Patch(patched) != patched {
			t.Errorf("Patch(%q) did not converge in one pass", input)
		}
	}
}

func TestPatchPreservesUnrelatedContent(t *testing.T) {
	n := newTestNormalizer(t)

	input := "-r:System.dll\n# pinned by build tooling\n-langVersion:8\n"
	result := n.Patch(input)

	for _, keep := range []string{"-r:System.dll", "# pinned by build tooling"} {
		if !strings.Contains(result, keep) {
			t.Errorf("Patch dropped unrelated content %q: %q", keep, result)
		}
	}
}

func TestCanonicalizeNewlines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lf only", "a\nb\n", "a\nb\n"},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"bare cr", "a\rb\r", "a\nb\n"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalizeNewlines(tt.input); got != tt.expected {
				t.Errorf("canonicalizeNewlines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
