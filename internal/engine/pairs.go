package engine

import (
	"unicode/utf8"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/engine/textutil"
)

// insertPair handles a key that opens or closes some pair.
func insertPair(snap buffer.Snapshot, r rune, pairs config.PairTable) (buffer.Snapshot, bool) {
	if p, ok := pairs.ByOpen(r); ok {
		if !snap.Selection.IsEmpty() {
			return wrap(snap, p), true
		}
		return openPair(snap, p), true
	}
	if p, ok := pairs.ByClose(r); ok {
		return closePair(snap, p), true
	}
	return snap, false
}

// wrap surrounds the selection with the pair and keeps the same content
// selected.
func wrap(snap buffer.Snapshot, p config.Pair) buffer.Snapshot {
	text, sel := snap.Text, snap.Selection
	open := string(p.Open)
	return buffer.Snapshot{
		Text:      text[:sel.Start] + open + text[sel.Start:sel.End] + string(p.Close) + text[sel.End:],
		Selection: sel.MoveBy(len(open)),
	}
}

// openPair handles an open key at a caret.
func openPair(snap buffer.Snapshot, p config.Pair) buffer.Snapshot {
	text, at := snap.Text, snap.Selection.Start

	if p.IsQuote() {
		if next, size := textutil.RuneAt(text, at); size > 0 && next == p.Close {
			return skip(snap, size)
		}
		if prev, size := textutil.RuneBefore(text, at); size > 0 && prev == p.Close {
			return insertLiteral(snap, p.Open)
		}
	}

	open := string(p.Open)
	return buffer.Snapshot{
		Text:      text[:at] + open + string(p.Close) + text[at:],
		Selection: cursor.NewCaret(at + len(open)),
	}
}

// closePair handles a key that only closes a pair. An overwritable pair
// steps over an identical character after the caret. A selection is
// replaced by the character.
func closePair(snap buffer.Snapshot, p config.Pair) buffer.Snapshot {
	if snap.Selection.IsEmpty() && p.Overwritable {
		if next, size := textutil.RuneAt(snap.Text, snap.Selection.Start); size > 0 && next == p.Close {
			return skip(snap, size)
		}
	}
	return insertLiteral(snap, p.Close)
}

// skip moves the caret past n bytes without changing the text.
func skip(snap buffer.Snapshot, n int) buffer.Snapshot {
	return buffer.Snapshot{
		Text:      snap.Text,
		Selection: cursor.NewCaret(snap.Selection.Start + n),
	}
}

// insertLiteral replaces the selection with r.
func insertLiteral(snap buffer.Snapshot, r rune) buffer.Snapshot {
	text, sel := snap.Text, snap.Selection
	s := string(r)
	return buffer.Snapshot{
		Text:      text[:sel.Start] + s + text[sel.End:],
		Selection: cursor.NewCaret(sel.Start + len(s)),
	}
}

// deletePair handles Backspace at a caret sitting between a pair's open and
// close characters by removing both.
func deletePair(snap buffer.Snapshot, pairs config.PairTable) (buffer.Snapshot, bool) {
	text, sel := snap.Text, snap.Selection
	if !sel.IsEmpty() {
		return snap, false
	}

	prev, prevSize := textutil.RuneBefore(text, sel.Start)
	next, nextSize := textutil.RuneAt(text, sel.Start)
	if prevSize == 0 || nextSize == 0 || prev == utf8.RuneError || next == utf8.RuneError {
		return snap, false
	}

	p, ok := pairs.ByOpen(prev)
	if !ok || p.Close != next {
		return snap, false
	}

	at := sel.Start - prevSize
	return buffer.Snapshot{
		Text:      text[:at] + text[sel.Start+nextSize:],
		Selection: cursor.NewCaret(at),
	}, true
}
