package buffer

import (
	"sync"

	"github.com/dshills/keyedit/internal/engine/cursor"
)

// Memory is an in-memory Surface.
// All methods are thread-safe.
type Memory struct {
	mu        sync.RWMutex
	text      string
	selection cursor.Selection
	revision  uint64
}

// NewMemory creates a surface holding text with the given selection.
// The selection is clamped into the text.
func NewMemory(text string, sel cursor.Selection) *Memory {
	return &Memory{
		text:      text,
		selection: sel.Clamp(len(text)),
	}
}

// ReadBuffer implements Surface.
func (m *Memory) ReadBuffer() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// WriteBuffer implements Surface.
// The selection is re-clamped so it never exceeds the new text.
func (m *Memory) WriteBuffer(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.selection = m.selection.Clamp(len(text))
	m.revision++
}

// ReadSelection implements Surface.
func (m *Memory) ReadSelection() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selection.Start, m.selection.End
}

// WriteSelection implements Surface.
func (m *Memory) WriteSelection(start, end int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = cursor.NewSelection(start, end).Clamp(len(m.text))
}

// Text returns the current text.
func (m *Memory) Text() string {
	return m.ReadBuffer()
}

// Selection returns the current selection.
func (m *Memory) Selection() cursor.Selection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selection
}

// Set replaces text and selection together.
func (m *Memory) Set(text string, sel cursor.Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.selection = sel.Clamp(len(text))
	m.revision++
}

// Revision returns the number of text replacements applied so far.
func (m *Memory) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}
