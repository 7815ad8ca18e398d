// Package textutil provides offset helpers shared by the edit engine.
//
// All offsets are byte offsets into a Go string.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LeadingWhitespace returns the number of whitespace characters before the
// first non-whitespace character of s. A string made only of whitespace
// returns its character count. Multi-byte spaces such as U+3000 count once.
func LeadingWhitespace(s string) int {
	i := strings.IndexFunc(s, isNotSpace)
	if i < 0 {
		i = len(s)
	}
	return utf8.RuneCountInString(s[:i])
}

// RuneOffset returns the byte offset just past the first n characters of s.
// An n beyond the character count yields len(s).
func RuneOffset(s string, n int) int {
	off := 0
	for ; n > 0 && off < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}

// Spaces returns a string of n space characters. Non-positive n yields "".
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// LineStart returns the offset of the first byte of the line containing offset.
func LineStart(text string, offset int) int {
	offset = Clamp(offset, 0, len(text))
	return strings.LastIndexByte(text[:offset], '\n') + 1
}

// LineEnd returns the offset of the newline ending the line containing
// offset, or len(text) for the last line.
func LineEnd(text string, offset int) int {
	offset = Clamp(offset, 0, len(text))
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(text)
}

// SpacesBefore counts the run of ' ' bytes ending at offset, stopping at the
// start of the line.
func SpacesBefore(text string, offset int) int {
	offset = Clamp(offset, 0, len(text))
	n := 0
	for i := offset - 1; i >= 0 && text[i] == ' '; i-- {
		n++
	}
	return n
}

// RuneBefore returns the rune ending at offset and its size, or
// utf8.RuneError and 0 when offset is at the start of text.
func RuneBefore(text string, offset int) (rune, int) {
	offset = Clamp(offset, 0, len(text))
	if offset == 0 {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRuneInString(text[:offset])
}

// RuneAt returns the rune starting at offset and its size, or
// utf8.RuneError and 0 when offset is at the end of text.
func RuneAt(text string, offset int) (rune, int) {
	offset = Clamp(offset, 0, len(text))
	if offset == len(text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(text[offset:])
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
