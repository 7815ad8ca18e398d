package key

import "strings"

// Modifier is a set of held modifier keys.
type Modifier uint8

// Modifier bits. Only Shift influences editing; the others mark shortcuts.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// modifierInfo lists modifiers in display order with their long and short
// names.
var modifierInfo = []struct {
	mod   Modifier
	long  string
	short string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModShift, "Shift", "S"},
	{ModMeta, "Meta", "M"},
}

// modifierAliases maps lowercase names accepted by the parser.
var modifierAliases = map[string]Modifier{
	"c": ModCtrl, "ctrl": ModCtrl, "control": ModCtrl,
	"a": ModAlt, "alt": ModAlt, "option": ModAlt,
	"s": ModShift, "shift": ModShift,
	"m": ModMeta, "d": ModMeta, "meta": ModMeta, "cmd": ModMeta, "super": ModMeta,
}

// Has reports whether any bit of mod is set in m.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m minus mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String renders the set as "Ctrl+Shift".
func (m Modifier) String() string {
	return m.join(func(long, _ string) string { return long }, "+")
}

// ShortString renders the set as "C-S", the form used inside <...>.
func (m Modifier) ShortString() string {
	return m.join(func(_, short string) string { return short }, "-")
}

func (m Modifier) join(name func(long, short string) string, sep string) string {
	var parts []string
	for _, info := range modifierInfo {
		if m.Has(info.mod) {
			parts = append(parts, name(info.long, info.short))
		}
	}
	return strings.Join(parts, sep)
}

// ModifierFromName looks up a modifier by name, ignoring case.
// Unknown names yield ModNone.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}
