package cursor

import "fmt"

// Selection represents a caret or a selected span of text.
// Offsets are byte offsets with Start <= End.
type Selection struct {
	Start int
	End   int
}

// NewSelection creates a selection between two offsets, ordering them so
// that Start <= End.
func NewSelection(a, b int) Selection {
	if a > b {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// NewCaret creates a selection with no extent at offset.
func NewCaret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsEmpty returns true if the selection is a caret.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of selected bytes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Caret returns the offset where typing occurs.
func (s Selection) Caret() int {
	return s.End
}

// MoveBy returns the selection shifted by delta bytes at both ends.
func (s Selection) MoveBy(delta int) Selection {
	return Selection{Start: s.Start + delta, End: s.End + delta}
}

// Clamp returns the selection limited to [0, maxOffset], keeping Start <= End.
func (s Selection) Clamp(maxOffset int) Selection {
	if maxOffset < 0 {
		maxOffset = 0
	}
	start, end := clamp(s.Start, maxOffset), clamp(s.End, maxOffset)
	return NewSelection(start, end)
}

// Contains returns true if offset lies within [Start, End).
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Equals returns true if both selections cover the same offsets.
func (s Selection) Equals(other Selection) bool {
	return s.Start == other.Start && s.End == other.End
}

// String returns a debug representation.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", s.Start)
	}
	return fmt.Sprintf("Selection(%d-%d)", s.Start, s.End)
}

func clamp(offset, maxOffset int) int {
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
