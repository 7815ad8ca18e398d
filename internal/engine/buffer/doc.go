// Package buffer defines how the edit engine reaches a host's text surface.
//
// The engine never retains host state between keystrokes. Instead a host
// exposes its live text and selection through the Surface accessors; the
// engine reads a Snapshot, computes a replacement, and writes both back.
//
// The package provides:
//
//   - Surface: the read/write accessor contract a host implements
//   - Snapshot: an immutable copy of text and selection for one keystroke
//   - Memory: a thread-safe in-memory Surface for tests, scripts and tools
//   - Registry: named surfaces, used to resolve configuration targets
//
// Basic usage:
//
//	mem := buffer.NewMemory("foo", cursor.NewCaret(3))
//	reg := buffer.NewRegistry()
//	reg.Register("#editor", mem)
//
//	surface, ok := reg.Resolve("#editor")
package buffer
