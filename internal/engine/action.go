package engine

import (
	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/input/key"
)

// Action classifies what a key event does to the buffer.
type Action uint8

const (
	// ActionNone leaves the key to the host.
	ActionNone Action = iota
	// ActionPairInsert handles an open or close delimiter key.
	ActionPairInsert
	// ActionPairDelete handles Backspace between a pair.
	ActionPairDelete
	// ActionNewline handles Enter.
	ActionNewline
	// ActionIndent handles Tab.
	ActionIndent
	// ActionOutdent handles Shift+Tab.
	ActionOutdent
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPairInsert:
		return "pair-insert"
	case ActionPairDelete:
		return "pair-delete"
	case ActionNewline:
		return "newline"
	case ActionIndent:
		return "indent"
	case ActionOutdent:
		return "outdent"
	default:
		return "unknown"
	}
}

// Classify maps a key event to an action. The first matching rule wins:
// pair character, Backspace, Enter, Tab (Shift selects outdent).
// Events carrying Ctrl, Alt or Meta are shortcuts and always map to
// ActionNone.
func Classify(ev key.Event, pairs config.PairTable) Action {
	if ev.IsShortcut() {
		return ActionNone
	}
	if ev.IsRune() && pairs.Contains(ev.Rune) {
		return ActionPairInsert
	}

	switch {
	case ev.IsBackspace():
		return ActionPairDelete
	case ev.IsEnter():
		return ActionNewline
	case ev.IsTab() && ev.IsShift():
		return ActionOutdent
	case ev.IsTab():
		return ActionIndent
	}
	return ActionNone
}
