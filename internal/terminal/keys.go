// Package terminal drives an edit session from a tcell screen.
//
// ConvertKey maps tcell key events to key events; Playground is a minimal
// full-screen host that shows the buffer, the caret and the selection, and
// feeds every key to the session.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyedit/internal/input/key"
)

// ConvertKey converts a tcell key event. Backtab becomes Shift+Tab and
// control characters become Ctrl+letter. Keys with no equivalent report
// false.
func ConvertKey(ev *tcell.EventKey) (key.Event, bool) {
	if ev == nil {
		return key.Event{}, false
	}
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	// Tab, Enter and Backspace share codes with Ctrl+I, Ctrl+M and Ctrl+H,
	// so they are matched before the control range.
	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case k == tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case k == tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift)), true
	case k == tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods.Without(key.ModCtrl)), true
	case k == tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case k == tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case k == tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case k == tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case k == tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case k == tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case k == tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case k == tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
