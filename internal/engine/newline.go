package engine

import (
	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/engine/textutil"
)

// newline handles Enter. The selection is replaced by a line break followed
// by the current line's indentation. Between an open and close character of
// one pair, the pair is split onto three lines with the middle line indented
// one level deeper. Quote pairs split only when expandQuotes is set.
func newline(snap buffer.Snapshot, width int, pairs config.PairTable, expandQuotes bool) (buffer.Snapshot, bool) {
	text, sel := snap.Text, snap.Selection

	lineStart := textutil.LineStart(text, sel.Start)
	level := textutil.LeadingWhitespace(text[lineStart:sel.Start])

	insert := "\n" + textutil.Spaces(level)
	caret := sel.Start + len(insert)

	if p, ok := surroundingPair(text, sel, pairs); ok && (!p.IsQuote() || expandQuotes) {
		body := "\n" + textutil.Spaces(level+width)
		insert = body + "\n" + textutil.Spaces(level)
		caret = sel.Start + len(body)
	}

	return buffer.Snapshot{
		Text:      text[:sel.Start] + insert + text[sel.End:],
		Selection: cursor.NewCaret(caret),
	}, true
}

// surroundingPair returns the pair whose open character ends right before
// the selection and whose close character starts right after it.
func surroundingPair(text string, sel cursor.Selection, pairs config.PairTable) (config.Pair, bool) {
	prev, prevSize := textutil.RuneBefore(text, sel.Start)
	next, nextSize := textutil.RuneAt(text, sel.End)
	if prevSize == 0 || nextSize == 0 {
		return config.Pair{}, false
	}
	p, ok := pairs.ByOpen(prev)
	if !ok || p.Close != next {
		return config.Pair{}, false
	}
	return p, true
}
