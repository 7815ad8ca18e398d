package key

import (
	"fmt"
	"strings"
)

// Key identifies a non-character key. Character keys use KeyRune with the
// character in Event.Rune.
type Key uint8

// Keys an edit engine can receive.
const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRune
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRune:      "Rune",
}

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// keyNameMap holds the lowercase names the parser accepts inside <...>.
var keyNameMap = map[string]Key{
	"esc": KeyEscape, "escape": KeyEscape,
	"cr": KeyEnter, "enter": KeyEnter, "return": KeyEnter,
	"tab": KeyTab,
	"bs": KeyBackspace, "backspace": KeyBackspace,
	"del": KeyDelete, "delete": KeyDelete,
	"home": KeyHome, "end": KeyEnd,
	"up": KeyUp, "down": KeyDown, "left": KeyLeft, "right": KeyRight,
}

// runeNameMap names characters that cannot appear bare in key notation.
var runeNameMap = map[string]rune{
	"space":  ' ',
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
}

// KeyFromName looks up a key by name, ignoring case.
// Unknown names yield KeyNone.
func KeyFromName(name string) Key {
	return keyNameMap[strings.ToLower(strings.TrimSpace(name))]
}
