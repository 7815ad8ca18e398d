// Package key provides key event types and key notation parsing.
//
// This package defines the types the edit engine classifies:
//
//   - Key: identifies a special key, or KeyRune for character keys
//   - Modifier: modifier keys (Shift, Ctrl, Alt, Meta)
//   - Event: a single key press
//   - Sequence: an ordered series of events, used by scripts and scenarios
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "(", "Enter", "Tab", "Backspace"
//   - With modifiers: "Shift+Tab", "Ctrl+S"
//   - Vim-style: "<S-Tab>", "<CR>", "<BS>", "<C-s>", "<lt>"
//
// A sequence string such as `foo(<CR><S-Tab>` is read rune by rune, with
// <...> groups parsed as a single key.
package key
