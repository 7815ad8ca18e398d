package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestLeadingWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"  abc", 2},
		{"\t x", 2},
		{"    ", 4},
		{" ", 1},
		{"\u3000x", 1},
		{"\u00a0 x", 2},
		{"\u3000\u3000", 2},
	}

	for _, tt := range tests {
		if got := LeadingWhitespace(tt.in); got != tt.want {
			t.Errorf("LeadingWhitespace(%q) = %d, expected %d", tt.in, got, tt.want)
		}
	}
}

func TestRuneOffset(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want int
	}{
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 5, 3},
		{"\u3000\u3000x", 1, 3},
		{"\u00a0 x", 2, 3},
		{"", 1, 0},
	}

	for _, tt := range tests {
		if got := RuneOffset(tt.in, tt.n); got != tt.want {
			t.Errorf("RuneOffset(%q, %d) = %d, expected %d", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSpaces(t *testing.T) {
	if got := Spaces(3); got != "   " {
		t.Errorf("expected 3 spaces, got %q", got)
	}
	if got := Spaces(0); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := Spaces(-2); got != "" {
		t.Errorf("expected empty string for negative width, got %q", got)
	}
}

func TestLineStartEnd(t *testing.T) {
	text := "foo\nbar\n\nbaz"

	tests := []struct {
		offset     int
		start, end int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 0, 3},
		{4, 4, 7},
		{7, 4, 7},
		{8, 8, 8},
		{9, 9, 12},
		{12, 9, 12},
		{99, 9, 12},
		{-1, 0, 3},
	}

	for _, tt := range tests {
		if got := LineStart(text, tt.offset); got != tt.start {
			t.Errorf("LineStart(%d) = %d, expected %d", tt.offset, got, tt.start)
		}
		if got := LineEnd(text, tt.offset); got != tt.end {
			t.Errorf("LineEnd(%d) = %d, expected %d", tt.offset, got, tt.end)
		}
	}
}

func TestSpacesBefore(t *testing.T) {
	text := "a   b\n  c"

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{1, 0},
		{3, 2},
		{4, 3},
		{6, 0},
		{8, 2},
	}

	for _, tt := range tests {
		if got := SpacesBefore(text, tt.offset); got != tt.want {
			t.Errorf("SpacesBefore(%d) = %d, expected %d", tt.offset, got, tt.want)
		}
	}
}

func TestRuneBeforeAndAt(t *testing.T) {
	text := "(é)"

	r, n := RuneBefore(text, 0)
	if r != utf8.RuneError || n != 0 {
		t.Errorf("expected no rune before start, got %q/%d", r, n)
	}

	r, n = RuneAt(text, 1)
	if r != 'é' || n != 2 {
		t.Errorf("expected 'é' of size 2, got %q/%d", r, n)
	}

	r, n = RuneBefore(text, 3)
	if r != 'é' || n != 2 {
		t.Errorf("expected 'é' before offset 3, got %q/%d", r, n)
	}

	r, n = RuneAt(text, len(text))
	if r != utf8.RuneError || n != 0 {
		t.Errorf("expected no rune at end, got %q/%d", r, n)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 {
		t.Error("expected clamp to lower bound")
	}
	if Clamp(9, 0, 5) != 5 {
		t.Error("expected clamp to upper bound")
	}
	if Clamp(3, 0, 5) != 3 {
		t.Error("expected value inside range unchanged")
	}
}
