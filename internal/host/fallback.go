package host

import (
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/engine/textutil"
	"github.com/dshills/keyedit/internal/input/key"
)

// Fallback applies the behavior a plain text input gives a key the engine
// left unhandled: characters replace the selection, Backspace and Delete
// remove the selection or one character, Enter and Tab insert themselves (Shift+Tab does nothing),
// and the arrow, Home and End keys move the caret. Shortcuts and other keys
// report false.
func Fallback(ev key.Event, snap buffer.Snapshot) (buffer.Snapshot, bool) {
	if ev.IsShortcut() {
		return snap, false
	}
	snap = buffer.NewSnapshot(snap.Text, snap.Selection)
	sel := snap.Selection

	switch ev.Key {
	case key.KeyRune:
		text := ev.Text()
		if text == "" {
			return snap, false
		}
		return replace(snap, text), true
	case key.KeyEnter:
		return replace(snap, "\n"), true
	case key.KeyTab:
		if ev.IsShift() {
			return snap, false
		}
		return replace(snap, "\t"), true
	case key.KeyBackspace:
		if sel.IsEmpty() {
			_, size := textutil.RuneBefore(snap.Text, sel.Start)
			if size == 0 {
				return snap, false
			}
			sel.Start -= size
		}
		return replace(buffer.Snapshot{Text: snap.Text, Selection: sel}, ""), true
	case key.KeyDelete:
		if sel.IsEmpty() {
			_, size := textutil.RuneAt(snap.Text, sel.End)
			if size == 0 {
				return snap, false
			}
			sel.End += size
		}
		return replace(buffer.Snapshot{Text: snap.Text, Selection: sel}, ""), true
	case key.KeyLeft:
		if !sel.IsEmpty() {
			return moveTo(snap, sel.Start), true
		}
		_, size := textutil.RuneBefore(snap.Text, sel.Start)
		return moveTo(snap, sel.Start-size), true
	case key.KeyRight:
		if !sel.IsEmpty() {
			return moveTo(snap, sel.End), true
		}
		_, size := textutil.RuneAt(snap.Text, sel.End)
		return moveTo(snap, sel.End+size), true
	case key.KeyHome:
		return moveTo(snap, textutil.LineStart(snap.Text, sel.Caret())), true
	case key.KeyEnd:
		return moveTo(snap, textutil.LineEnd(snap.Text, sel.Caret())), true
	}
	return snap, false
}

func replace(snap buffer.Snapshot, s string) buffer.Snapshot {
	sel := snap.Selection
	return buffer.Snapshot{
		Text:      snap.Text[:sel.Start] + s + snap.Text[sel.End:],
		Selection: cursor.NewCaret(sel.Start + len(s)),
	}
}

func moveTo(snap buffer.Snapshot, offset int) buffer.Snapshot {
	return buffer.Snapshot{Text: snap.Text, Selection: cursor.NewCaret(offset)}
}
