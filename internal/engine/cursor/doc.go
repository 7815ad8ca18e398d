// Package cursor provides the selection value type used by the edit engine.
//
// A Selection is a pair of byte offsets (Start, End) with Start <= End.
// When Start == End the selection is a caret with no selected span.
//
// Basic usage:
//
//	sel := cursor.NewCaret(4)          // caret at offset 4
//	sel = cursor.NewSelection(1, 6)     // span covering [1, 6)
//	sel = sel.Clamp(len(text))          // keep inside the buffer
//
// Selection is an immutable value type and is safe for concurrent use.
package cursor
