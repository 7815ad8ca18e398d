package buffer

import (
	"github.com/dshills/keyedit/internal/engine/cursor"
)

// Surface is the accessor contract between the engine and a host text input.
// Implementations must apply WriteBuffer and WriteSelection to the same live
// surface; the engine always calls WriteBuffer before WriteSelection.
type Surface interface {
	// ReadBuffer returns the current text.
	ReadBuffer() string
	// WriteBuffer replaces the whole text.
	WriteBuffer(text string)
	// ReadSelection returns the current selection offsets.
	ReadSelection() (start, end int)
	// WriteSelection sets the selection offsets.
	WriteSelection(start, end int)
}

// Snapshot is a copy of a surface's text and selection at one point in time.
type Snapshot struct {
	Text      string
	Selection cursor.Selection
}

// NewSnapshot creates a snapshot, clamping the selection into the text.
func NewSnapshot(text string, sel cursor.Selection) Snapshot {
	return Snapshot{Text: text, Selection: sel.Clamp(len(text))}
}

// Read takes a snapshot of a surface.
func Read(s Surface) Snapshot {
	start, end := s.ReadSelection()
	return NewSnapshot(s.ReadBuffer(), cursor.NewSelection(start, end))
}

// Write commits a snapshot to a surface, text first.
func Write(s Surface, snap Snapshot) {
	s.WriteBuffer(snap.Text)
	s.WriteSelection(snap.Selection.Start, snap.Selection.End)
}

// Len returns the text length in bytes.
func (s Snapshot) Len() int {
	return len(s.Text)
}

// Selected returns the selected text.
func (s Snapshot) Selected() string {
	return s.Text[s.Selection.Start:s.Selection.End]
}
