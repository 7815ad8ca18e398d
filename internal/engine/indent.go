package engine

import (
	"strings"

	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/engine/textutil"
)

// indent handles Tab. A caret gets width spaces inserted at its position;
// a span gets width spaces prepended to every line it touches.
func indent(snap buffer.Snapshot, width int) (buffer.Snapshot, bool) {
	text, sel := snap.Text, snap.Selection
	pad := textutil.Spaces(width)

	if sel.IsEmpty() {
		at := sel.Start
		return buffer.Snapshot{
			Text:      text[:at] + pad + text[at:],
			Selection: cursor.NewCaret(at + width),
		}, true
	}

	regionStart := textutil.LineStart(text, sel.Start)
	lines := strings.Split(text[regionStart:sel.End], "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}

	return buffer.Snapshot{
		Text:      text[:regionStart] + strings.Join(lines, "\n") + text[sel.End:],
		Selection: cursor.Selection{Start: sel.Start + width, End: sel.End + width*len(lines)},
	}, true
}

// outdent handles Shift+Tab. A caret loses up to width spaces from the run
// directly before it; each line of a span loses up to width characters of
// leading whitespace. Shift+Tab is always consumed: with nothing to remove
// the snapshot comes back unchanged.
func outdent(snap buffer.Snapshot, width int) (buffer.Snapshot, bool) {
	text, sel := snap.Text, snap.Selection

	if sel.IsEmpty() {
		at := sel.Start
		n := min(width, textutil.SpacesBefore(text, at))
		if n == 0 {
			return snap, true
		}
		return buffer.Snapshot{
			Text:      text[:at-n] + text[at:],
			Selection: cursor.NewCaret(at - n),
		}, true
	}

	regionStart := textutil.LineStart(text, sel.Start)
	lines := strings.Split(text[regionStart:sel.End], "\n")

	var total, first int
	for i, line := range lines {
		n := textutil.RuneOffset(line, min(width, textutil.LeadingWhitespace(line)))
		lines[i] = line[n:]
		total += n
		if i == 0 {
			first = n
		}
	}
	if total == 0 {
		return snap, true
	}

	// The region ends at sel.End, so every removed character lies before
	// it. The start only moves back by what was removed in front of it.
	start := sel.Start - min(first, sel.Start-regionStart)
	end := sel.End - total

	return buffer.Snapshot{
		Text:      text[:regionStart] + strings.Join(lines, "\n") + text[sel.End:],
		Selection: cursor.NewSelection(start, end),
	}, true
}
