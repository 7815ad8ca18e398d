package key

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsShortcut returns true if Ctrl, Alt or Meta is held.
// Shift alone never makes a shortcut since it changes the character itself.
func (e Event) IsShortcut() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// IsShift returns true if Shift is held.
func (e Event) IsShift() bool {
	return e.Modifiers.Has(ModShift)
}

// String returns the canonical Vim-style notation for the event,
// e.g. "a", "(", "<lt>", "<CR>", "<S-Tab>", "<C-s>".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		name = runeName(e.Rune)
		if name == "" {
			// Shift is part of the character for plain runes.
			mods := e.Modifiers.Without(ModShift)
			if mods == ModNone {
				return string(e.Rune)
			}
			return "<" + mods.ShortString() + "-" + string(e.Rune) + ">"
		}
	case KeyEnter:
		name = "CR"
	case KeyEscape:
		name = "Esc"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return "<" + name + ">"
	}
	return "<" + mods.ShortString() + "-" + name + ">"
}

// runeName returns the bracketed name for characters that cannot be
// written inline, or "" for ordinary characters.
func runeName(r rune) string {
	if r == ' ' {
		return "Space"
	}
	for name, v := range runeNameMap {
		if v == r {
			return name
		}
	}
	return ""
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// Matches returns true if the event matches a key specification.
func (e Event) Matches(spec string) bool {
	other, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(other)
}

// IsEnter returns true if this is the Enter key without shortcut modifiers.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter && !e.IsShortcut()
}

// IsBackspace returns true if this is the Backspace key without shortcut
// modifiers.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace && !e.IsShortcut()
}

// IsTab returns true if this is Tab or Shift+Tab without shortcut modifiers.
func (e Event) IsTab() bool {
	return e.Key == KeyTab && !e.IsShortcut()
}

// Text returns the text a plain character press would insert, or "".
func (e Event) Text() string {
	if !e.IsRune() || e.IsShortcut() {
		return ""
	}
	return string(e.Rune)
}
