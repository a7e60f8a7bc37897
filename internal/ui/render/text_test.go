package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "hello world", "hello world"},
		{"control chars dropped", "a\x00b\x1bc", "abc"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"unicode kept", "été ♪", "été ♪"},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("%s: Sanitize(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 6, "hello…"},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
			t.Errorf("%s: Truncate(%q, %d) = %q, want %q", tt.name, tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"centered", "ab", 6, "  ab"},
		{"odd leftover goes right", "abc", 6, " abc"},
		{"wider than width unchanged", "abcdef", 3, "abcdef"},
		{"exact width unchanged", "abc", 3, "abc"},
	}

	for _, tt := range tests {
		if got := Center(tt.input, tt.width); got != tt.want {
			t.Errorf("%s: Center(%q, %d) = %q, want %q", tt.name, tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("len(Row) = %d, want 20", len(got))
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	// Content wider than the row still keeps a single-space gap.
	got = Row("aaaaaaaaaa", "bbbbbbbbbb", 5)
	if got != "aaaaaaaaaa bbbbbbbbbb" {
		t.Errorf("Row overflow = %q", got)
	}
}
