// Package engine implements the keystroke-driven edit engine.
//
// Given one key event and a snapshot of a text surface (its text and
// selection), the engine computes the replacement text and selection for:
//
//   - Tab and Shift+Tab: indent or outdent the caret or every selected line
//   - paired delimiters: insert, wrap, skip over and delete open/close pairs
//   - Enter: continue the current line's indentation, splitting an adjacent
//     pair onto three lines
//
// Keys that fall outside these behaviors produce a result with Handled set to
// false; the host then applies its own default behavior.
//
// # Usage
//
//	cfg, err := config.Build(config.Target("#editor"), registry)
//	if err != nil {
//		return err
//	}
//	e := engine.New(cfg)
//
//	// From the host's key handler:
//	if e.Dispatch(ev, cfg.Surface()) {
//		// suppress the default action for ev
//	}
//
// # Offsets
//
// Offsets are byte offsets into the Go string. Pair characters may be any
// printable rune; the engine advances by the rune's encoded length.
//
// # Thread Safety
//
// An Engine holds only its immutable configuration and may be shared between
// goroutines. Handle is a pure function of its arguments. Dispatch reads and
// writes the surface it is given; callers serialize Dispatch calls per
// surface.
package engine
