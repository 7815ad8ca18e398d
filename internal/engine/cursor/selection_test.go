package cursor

import "testing"

func TestNewSelectionOrders(t *testing.T) {
	s := NewSelection(9, 3)
	if s.Start != 3 || s.End != 9 {
		t.Errorf("expected 3-9, got %d-%d", s.Start, s.End)
	}
	if s.Len() != 6 {
		t.Errorf("expected len 6, got %d", s.Len())
	}
}

func TestNewCaret(t *testing.T) {
	s := NewCaret(4)
	if !s.IsEmpty() {
		t.Error("caret should be empty")
	}
	if s.Caret() != 4 {
		t.Errorf("expected caret 4, got %d", s.Caret())
	}
}

func TestSelectionMove(t *testing.T) {
	s := NewSelection(2, 5)

	moved := s.MoveBy(3)
	if moved.Start != 5 || moved.End != 8 {
		t.Errorf("expected 5-8, got %v", moved)
	}
	if s.Start != 2 {
		t.Error("original selection should be unchanged")
	}
}

func TestSelectionClamp(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		max  int
		want Selection
	}{
		{"inside", Selection{1, 3}, 10, Selection{1, 3}},
		{"end past buffer", Selection{2, 30}, 10, Selection{2, 10}},
		{"negative start", Selection{-4, 2}, 10, Selection{0, 2}},
		{"reversed", Selection{8, 2}, 5, Selection{2, 5}},
		{"empty buffer", Selection{3, 3}, 0, Selection{0, 0}},
		{"negative max", Selection{1, 1}, -1, Selection{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Clamp(tt.max); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSelectionContains(t *testing.T) {
	s := NewSelection(2, 4)
	if !s.Contains(2) || !s.Contains(3) {
		t.Error("expected offsets 2 and 3 inside")
	}
	if s.Contains(4) {
		t.Error("end offset should be exclusive")
	}
	if NewCaret(2).Contains(2) {
		t.Error("caret contains nothing")
	}
}

func TestSelectionString(t *testing.T) {
	if got := NewCaret(3).String(); got != "Caret(3)" {
		t.Errorf("expected Caret(3), got %s", got)
	}
	if got := NewSelection(1, 6).String(); got != "Selection(1-6)" {
		t.Errorf("expected Selection(1-6), got %s", got)
	}
}
