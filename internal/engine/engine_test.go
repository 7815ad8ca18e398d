package engine

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/input/key"
	"github.com/dshills/keyedit/internal/logging"
)

var (
	tab      = key.NewSpecialEvent(key.KeyTab, key.ModNone)
	shiftTab = key.NewSpecialEvent(key.KeyTab, key.ModShift)
	enter    = key.NewSpecialEvent(key.KeyEnter, key.ModNone)
	bs       = key.NewSpecialEvent(key.KeyBackspace, key.ModNone)
)

func press(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func newEngine(t *testing.T, o config.Options) *Engine {
	t.Helper()
	cfg, err := config.FromOptions(o)
	if err != nil {
		t.Fatalf("FromOptions() error = %v", err)
	}
	return New(cfg)
}

func snap(text string, start, end int) buffer.Snapshot {
	return buffer.Snapshot{Text: text, Selection: cursor.Selection{Start: start, End: end}}
}

func caret(text string, at int) buffer.Snapshot {
	return snap(text, at, at)
}

// editCase describes one keystroke applied to a snapshot.
type editCase struct {
	name    string
	in      buffer.Snapshot
	ev      key.Event
	want    buffer.Snapshot
	handled bool
}

func runCases(t *testing.T, e *Engine, tests []editCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Handle(tt.ev, tt.in)
			if res.Handled != tt.handled {
				t.Fatalf("expected handled=%v, got %v", tt.handled, res.Handled)
			}
			if diff := cmp.Diff(tt.want, res.Snapshot()); diff != "" {
				t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
			}
			checkInvariants(t, res)
		})
	}
}

func checkInvariants(t *testing.T, res Result) {
	t.Helper()
	sel := res.Selection
	if sel.Start < 0 || sel.Start > sel.End || sel.End > len(res.Text) {
		t.Errorf("selection %v out of range for text of length %d", sel, len(res.Text))
	}
}

// ============================================================================
// Classification
// ============================================================================

func TestClassify(t *testing.T) {
	pairs := config.MustPairTable(config.DefaultPairs()...)

	tests := []struct {
		name string
		ev   key.Event
		want Action
	}{
		{"open paren", press('('), ActionPairInsert},
		{"close paren", press(')'), ActionPairInsert},
		{"double quote", press('"'), ActionPairInsert},
		{"close bracket", press(']'), ActionPairInsert},
		{"letter", press('a'), ActionNone},
		{"space", press(' '), ActionNone},
		{"backspace", bs, ActionPairDelete},
		{"enter", enter, ActionNewline},
		{"tab", tab, ActionIndent},
		{"shift tab", shiftTab, ActionOutdent},
		{"delete", key.NewSpecialEvent(key.KeyDelete, key.ModNone), ActionNone},
		{"escape", key.NewSpecialEvent(key.KeyEscape, key.ModNone), ActionNone},
		{"ctrl paren", key.NewRuneEvent('(', key.ModCtrl), ActionNone},
		{"alt tab", key.NewSpecialEvent(key.KeyTab, key.ModAlt), ActionNone},
		{"meta enter", key.NewSpecialEvent(key.KeyEnter, key.ModMeta), ActionNone},
		{"ctrl shift tab", key.NewSpecialEvent(key.KeyTab, key.ModCtrl|key.ModShift), ActionNone},
		{"shifted brace", key.NewRuneEvent('{', key.ModShift), ActionPairInsert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev, pairs); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassifyEmptyPairTable(t *testing.T) {
	if got := Classify(press('('), config.MustPairTable()); got != ActionNone {
		t.Errorf("expected none without pairs, got %v", got)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:       "none",
		ActionPairInsert: "pair-insert",
		ActionPairDelete: "pair-delete",
		ActionNewline:    "newline",
		ActionIndent:     "indent",
		ActionOutdent:    "outdent",
		Action(42):       "unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

// ============================================================================
// NoOp
// ============================================================================

func TestNoOpIsIdempotent(t *testing.T) {
	e := New(nil)
	events := []key.Event{
		press('a'),
		press('Z'),
		press('1'),
		key.NewSpecialEvent(key.KeyDelete, key.ModNone),
		key.NewSpecialEvent(key.KeyLeft, key.ModNone),
		key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		key.NewRuneEvent('s', key.ModCtrl),
		key.NewRuneEvent('(', key.ModMeta),
	}
	snaps := []buffer.Snapshot{
		caret("", 0),
		caret("foo(bar)", 4),
		snap("  one\n  two", 2, 9),
	}

	for _, ev := range events {
		for _, s := range snaps {
			res := e.Handle(ev, s)
			if res.Handled {
				t.Errorf("%s on %q: expected NoOp", ev, s.Text)
			}
			if res.Text != s.Text || !res.Selection.Equals(s.Selection) {
				t.Errorf("%s on %q: expected unchanged snapshot, got %q %v", ev, s.Text, res.Text, res.Selection)
			}
		}
	}
}

// ============================================================================
// Indent / outdent
// ============================================================================

func TestCaretIndentOutdentInverse(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		e := newEngine(t, config.Options{IndentWidth: width})

		res := e.Handle(tab, caret("ab", 1))
		want := "a" + strings.Repeat(" ", width) + "b"
		if res.Text != want || res.Selection != cursor.NewCaret(1+width) {
			t.Fatalf("width %d: indent gave %q %v", width, res.Text, res.Selection)
		}

		res = e.Handle(shiftTab, res.Snapshot())
		if res.Text != "ab" || res.Selection != cursor.NewCaret(1) {
			t.Errorf("width %d: outdent gave %q %v", width, res.Text, res.Selection)
		}
	}
}

func TestIndent(t *testing.T) {
	e := New(nil)

	runCases(t, e, []editCase{
		{
			name:    "caret at start",
			in:      caret("foo", 0),
			ev:      tab,
			want:    caret("  foo", 2),
			handled: true,
		},
		{
			name:    "caret in empty buffer",
			in:      caret("", 0),
			ev:      tab,
			want:    caret("  ", 2),
			handled: true,
		},
		{
			name:    "span over two lines",
			in:      snap("foo\nbar", 1, 6),
			ev:      tab,
			want:    snap("  foo\n  bar", 3, 10),
			handled: true,
		},
		{
			name:    "span inside surrounding lines",
			in:      snap("x\nfoo\nbar\ny", 3, 8),
			ev:      tab,
			want:    snap("x\n  foo\n  bar\ny", 5, 12),
			handled: true,
		},
		{
			name:    "span on one line",
			in:      snap("a foo", 2, 5),
			ev:      tab,
			want:    snap("  a foo", 4, 7),
			handled: true,
		},
		{
			name:    "span over three lines",
			in:      snap("a\nb\nc", 0, 5),
			ev:      tab,
			want:    snap("  a\n  b\n  c", 2, 11),
			handled: true,
		},
	})
}

func TestOutdent(t *testing.T) {
	e := New(nil)

	runCases(t, e, []editCase{
		{
			name:    "caret after two spaces",
			in:      caret("  foo", 2),
			ev:      shiftTab,
			want:    caret("foo", 0),
			handled: true,
		},
		{
			name:    "caret removes at most width",
			in:      caret("     x", 5),
			ev:      shiftTab,
			want:    caret("   x", 3),
			handled: true,
		},
		{
			name:    "caret with one space",
			in:      caret(" x", 1),
			ev:      shiftTab,
			want:    caret("x", 0),
			handled: true,
		},
		{
			name:    "caret without spaces before it is consumed",
			in:      caret("  ab", 3),
			ev:      shiftTab,
			want:    caret("  ab", 3),
			handled: true,
		},
		{
			name:    "caret does not cross line start",
			in:      caret("  \nab", 3),
			ev:      shiftTab,
			want:    caret("  \nab", 3),
			handled: true,
		},
		{
			name:    "span partial outdent",
			in:      snap(" foo", 1, 4),
			ev:      shiftTab,
			want:    snap("foo", 0, 3),
			handled: true,
		},
		{
			name:    "span over two lines",
			in:      snap(" foo\n  bar", 2, 10),
			ev:      shiftTab,
			want:    snap("foo\nbar", 1, 7),
			handled: true,
		},
		{
			name:    "span start inside indentation",
			in:      snap("    foo", 1, 7),
			ev:      shiftTab,
			want:    snap("  foo", 0, 5),
			handled: true,
		},
		{
			name:    "span with unindented middle line",
			in:      snap("  a\nb\n    c", 2, 11),
			ev:      shiftTab,
			want:    snap("a\nb\n  c", 0, 7),
			handled: true,
		},
		{
			name:    "span with only middle line indented",
			in:      snap("a\n  b\nc", 0, 7),
			ev:      shiftTab,
			want:    snap("a\nb\nc", 0, 5),
			handled: true,
		},
		{
			name:    "blank line outdents to empty",
			in:      snap("a\n \nb", 0, 5),
			ev:      shiftTab,
			want:    snap("a\n\nb", 0, 4),
			handled: true,
		},
		{
			name:    "span without indentation is consumed",
			in:      snap("foo\nbar", 0, 7),
			ev:      shiftTab,
			want:    snap("foo\nbar", 0, 7),
			handled: true,
		},
		{
			name:    "ideographic space indentation",
			in:      snap("\u3000\u3000x\ny", 0, 9),
			ev:      shiftTab,
			want:    snap("x\ny", 0, 3),
			handled: true,
		},
		{
			name:    "no-break space indentation",
			in:      snap("\u00a0\u00a0\u00a0a\n\u00a0b", 0, 11),
			ev:      shiftTab,
			want:    snap("\u00a0a\nb", 0, 5),
			handled: true,
		},
	})
}

func TestOutdentKeepsValidUTF8(t *testing.T) {
	e := New(nil)
	inputs := []string{
		"\u3000\u3000x\ny",
		"\u3000 \u00a0z",
		" \u3000\u3000w",
		"\u00a0\n\u3000",
	}

	for _, text := range inputs {
		res := e.Handle(shiftTab, snap(text, 0, len(text)))
		if !utf8.ValidString(res.Text) {
			t.Errorf("outdent of %q produced invalid UTF-8 %q", text, res.Text)
		}
		if res.Selection.End > len(res.Text) {
			t.Errorf("outdent of %q: selection %s past end of %q", text, res.Selection, res.Text)
		}
	}
}

func TestSpanIndentThenOutdentRestores(t *testing.T) {
	e := newEngine(t, config.Options{IndentWidth: 4})
	in := snap("func f() {\nreturn\n}", 3, 17)

	res := e.Handle(tab, in)
	res = e.Handle(shiftTab, res.Snapshot())
	if diff := cmp.Diff(in, res.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Pair insertion
// ============================================================================

func TestPairInsert(t *testing.T) {
	e := New(nil)

	runCases(t, e, []editCase{
		{
			name:    "open bracket at caret",
			in:      caret("", 0),
			ev:      press('('),
			want:    caret("()", 1),
			handled: true,
		},
		{
			name:    "close skips matching close",
			in:      caret("()", 1),
			ev:      press(')'),
			want:    caret("()", 2),
			handled: true,
		},
		{
			name:    "close inserts literal",
			in:      caret("a", 1),
			ev:      press(')'),
			want:    caret("a)", 2),
			handled: true,
		},
		{
			name:    "open before a close still pairs",
			in:      caret("()", 1),
			ev:      press('('),
			want:    caret("(())", 2),
			handled: true,
		},
		{
			name:    "wrap selection",
			in:      snap("foo", 0, 3),
			ev:      press('('),
			want:    snap("(foo)", 1, 4),
			handled: true,
		},
		{
			name:    "wrap selection in quotes",
			in:      snap("a foo b", 2, 5),
			ev:      press('"'),
			want:    snap("a \"foo\" b", 3, 6),
			handled: true,
		},
		{
			name:    "close replaces selection",
			in:      snap("abc", 1, 2),
			ev:      press(']'),
			want:    caret("a]c", 2),
			handled: true,
		},
		{
			name:    "quote pair at caret",
			in:      caret("", 0),
			ev:      press('"'),
			want:    caret(`""`, 1),
			handled: true,
		},
		{
			name:    "quote skips closing quote",
			in:      caret(`""`, 1),
			ev:      press('"'),
			want:    caret(`""`, 2),
			handled: true,
		},
		{
			name:    "quote after closing quote is literal",
			in:      caret(`""`, 2),
			ev:      press('"'),
			want:    caret(`"""`, 3),
			handled: true,
		},
		{
			name:    "single quote between letters",
			in:      caret("ab", 1),
			ev:      press('\''),
			want:    caret("a''b", 2),
			handled: true,
		},
	})
}

func TestQuoteNonDuplication(t *testing.T) {
	e := New(nil)
	mem := buffer.NewMemory("", cursor.NewCaret(0))

	e.Dispatch(press('"'), mem)
	if mem.Text() != `""` || mem.Selection() != cursor.NewCaret(1) {
		t.Fatalf("expected caret between quotes, got %q %v", mem.Text(), mem.Selection())
	}

	e.Dispatch(press('"'), mem)
	if mem.Text() != `""` || mem.Selection() != cursor.NewCaret(2) {
		t.Errorf("expected skip over closing quote, got %q %v", mem.Text(), mem.Selection())
	}
}

func TestBracketPairingAndSkip(t *testing.T) {
	e := New(nil)
	mem := buffer.NewMemory("", cursor.NewCaret(0))

	for _, r := range "({[" {
		e.Dispatch(press(r), mem)
	}
	if mem.Text() != "({[]})" || mem.Selection() != cursor.NewCaret(3) {
		t.Fatalf("expected nested pairs, got %q %v", mem.Text(), mem.Selection())
	}

	for _, r := range "]})" {
		e.Dispatch(press(r), mem)
	}
	if mem.Text() != "({[]})" || mem.Selection() != cursor.NewCaret(6) {
		t.Errorf("expected skip over closers, got %q %v", mem.Text(), mem.Selection())
	}
}

func TestPairInsertCustomTable(t *testing.T) {
	e := newEngine(t, config.Options{Pairs: []config.Pair{
		{Open: '«', Close: '»', Overwritable: true},
		{Open: '<', Close: '>'},
		{Open: '*', Close: '*'},
	}})

	runCases(t, e, []editCase{
		{
			name:    "multibyte pair at caret",
			in:      caret("", 0),
			ev:      press('«'),
			want:    caret("«»", 2),
			handled: true,
		},
		{
			name:    "multibyte close skips",
			in:      caret("«»", 2),
			ev:      press('»'),
			want:    caret("«»", 4),
			handled: true,
		},
		{
			name:    "multibyte wrap",
			in:      snap("ab", 0, 2),
			ev:      press('«'),
			want:    snap("«ab»", 2, 4),
			handled: true,
		},
		{
			name:    "non-overwritable close inserts",
			in:      caret("<>", 1),
			ev:      press('>'),
			want:    caret("<>>", 2),
			handled: true,
		},
		{
			name:    "custom quote skips",
			in:      caret("**", 1),
			ev:      press('*'),
			want:    caret("**", 2),
			handled: true,
		},
		{
			name: "default pairs are replaced",
			in:   caret("", 0),
			ev:   press('('),
			want: caret("", 0),
		},
	})
}

// ============================================================================
// Pair deletion
// ============================================================================

func TestPairDelete(t *testing.T) {
	e := New(nil)

	runCases(t, e, []editCase{
		{
			name:    "between brackets",
			in:      caret("()", 1),
			ev:      bs,
			want:    caret("", 0),
			handled: true,
		},
		{
			name:    "between quotes",
			in:      caret(`a""b`, 2),
			ev:      bs,
			want:    caret("ab", 1),
			handled: true,
		},
		{
			name:    "nested pair",
			in:      caret("({})", 2),
			ev:      bs,
			want:    caret("()", 1),
			handled: true,
		},
		{
			name: "not directly between a pair",
			in:   caret("(x)", 1),
			ev:   bs,
			want: caret("(x)", 1),
		},
		{
			name: "mismatched pair",
			in:   caret("(]", 1),
			ev:   bs,
			want: caret("(]", 1),
		},
		{
			name: "reversed pair",
			in:   caret(")(", 1),
			ev:   bs,
			want: caret(")(", 1),
		},
		{
			name: "selection",
			in:   snap("()", 0, 2),
			ev:   bs,
			want: snap("()", 0, 2),
		},
		{
			name: "start of buffer",
			in:   caret("()", 0),
			ev:   bs,
			want: caret("()", 0),
		},
		{
			name: "empty buffer",
			in:   caret("", 0),
			ev:   bs,
			want: caret("", 0),
		},
	})
}

func TestPairDeleteMultibyte(t *testing.T) {
	e := newEngine(t, config.Options{Pairs: []config.Pair{{Open: '«', Close: '»'}}})

	res := e.Handle(bs, caret("x«»", 3))
	if !res.Handled || res.Text != "x" || res.Selection != cursor.NewCaret(1) {
		t.Errorf("expected pair removed, got %v %q %v", res.Handled, res.Text, res.Selection)
	}
}

// ============================================================================
// Enter
// ============================================================================

func TestNewline(t *testing.T) {
	e := New(nil)

	runCases(t, e, []editCase{
		{
			name:    "expand braces",
			in:      caret("{}", 1),
			ev:      enter,
			want:    caret("{\n  \n}", 4),
			handled: true,
		},
		{
			name:    "expand nested braces",
			in:      caret("  {}", 3),
			ev:      enter,
			want:    caret("  {\n    \n  }", 8),
			handled: true,
		},
		{
			name:    "continue indentation",
			in:      caret("  foo", 5),
			ev:      enter,
			want:    caret("  foo\n  ", 8),
			handled: true,
		},
		{
			name:    "ideographic space counts as one column",
			in:      caret("\u3000x", 4),
			ev:      enter,
			want:    caret("\u3000x\n ", 6),
			handled: true,
		},
		{
			name:    "no indentation",
			in:      caret("foo", 3),
			ev:      enter,
			want:    caret("foo\n", 4),
			handled: true,
		},
		{
			name:    "whitespace only line",
			in:      caret("    ", 4),
			ev:      enter,
			want:    caret("    \n    ", 9),
			handled: true,
		},
		{
			name:    "caret inside indentation",
			in:      caret("    x", 2),
			ev:      enter,
			want:    caret("  \n    x", 5),
			handled: true,
		},
		{
			name:    "indentation of current line only",
			in:      caret("    a\nb", 7),
			ev:      enter,
			want:    caret("    a\nb\n", 8),
			handled: true,
		},
		{
			name:    "replace selection",
			in:      snap("  ab cd", 4, 5),
			ev:      enter,
			want:    caret("  ab\n  cd", 7),
			handled: true,
		},
		{
			name:    "expand around selection",
			in:      snap("(abc)", 1, 4),
			ev:      enter,
			want:    caret("(\n  \n)", 4),
			handled: true,
		},
		{
			name:    "quotes do not expand",
			in:      caret(`""`, 1),
			ev:      enter,
			want:    caret("\"\n\"", 2),
			handled: true,
		},
		{
			name:    "mismatched pair does not expand",
			in:      caret("(]", 1),
			ev:      enter,
			want:    caret("(\n]", 2),
			handled: true,
		},
	})
}

func TestNewlineExpandQuotes(t *testing.T) {
	e := newEngine(t, config.Options{ExpandQuotes: true, IndentWidth: 4})

	res := e.Handle(enter, caret(`""`, 1))
	want := caret("\"\n    \n\"", 6)
	if diff := cmp.Diff(want, res.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Clamping and invariants
// ============================================================================

func TestHandleClampsSelection(t *testing.T) {
	e := New(nil)

	res := e.Handle(tab, snap("ab", 10, 10))
	if res.Text != "ab  " || res.Selection != cursor.NewCaret(4) {
		t.Errorf("expected caret clamped to end, got %q %v", res.Text, res.Selection)
	}

	res = e.Handle(tab, snap("ab", -3, 99))
	if res.Text != "  ab" || res.Selection != (cursor.Selection{Start: 2, End: 4}) {
		t.Errorf("expected span clamped to text, got %q %v", res.Text, res.Selection)
	}

	res = e.Handle(press('x'), snap("ab", 5, -1))
	if res.Selection != (cursor.Selection{Start: 0, End: 2}) {
		t.Errorf("expected NoOp to report clamped selection, got %v", res.Selection)
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	e := New(nil)
	texts := []string{
		"",
		"()",
		`a""b`,
		"  {\n    x\n  }",
		" \n\t\n  ",
		"(«x»)",
		"\u3000\u3000x\n\u00a0y",
	}
	events := []key.Event{tab, shiftTab, enter, bs, press('('), press(')'), press('"'), press('\'')}

	for _, text := range texts {
		for start := 0; start <= len(text); start++ {
			for end := start; end <= len(text); end++ {
				for _, ev := range events {
					res := e.Handle(ev, snap(text, start, end))
					sel := res.Selection
					if sel.Start < 0 || sel.Start > sel.End || sel.End > len(res.Text) {
						t.Fatalf("%s on %q %d-%d: selection %v out of range for %q",
							ev, text, start, end, sel, res.Text)
					}
				}
			}
		}
	}
}

// ============================================================================
// Dispatch
// ============================================================================

// recordingSurface logs accessor calls.
type recordingSurface struct {
	*buffer.Memory
	calls []string
}

func (s *recordingSurface) WriteBuffer(text string) {
	s.calls = append(s.calls, "WriteBuffer")
	s.Memory.WriteBuffer(text)
}

func (s *recordingSurface) WriteSelection(start, end int) {
	s.calls = append(s.calls, "WriteSelection")
	s.Memory.WriteSelection(start, end)
}

func TestDispatch(t *testing.T) {
	e := New(nil)
	s := &recordingSurface{Memory: buffer.NewMemory("{}", cursor.NewCaret(1))}

	if !e.Dispatch(enter, s) {
		t.Fatal("expected Enter to be handled")
	}
	if s.Text() != "{\n  \n}" || s.Selection() != cursor.NewCaret(4) {
		t.Errorf("unexpected surface state %q %v", s.Text(), s.Selection())
	}
	if diff := cmp.Diff([]string{"WriteBuffer", "WriteSelection"}, s.calls); diff != "" {
		t.Errorf("unexpected write order (-want +got):\n%s", diff)
	}

	rev := s.Revision()
	if e.Dispatch(press('a'), s) {
		t.Error("expected letter to be left to the host")
	}
	if s.Revision() != rev || len(s.calls) != 2 {
		t.Error("NoOp must not write to the surface")
	}
}

func TestDispatchNilSurface(t *testing.T) {
	if New(nil).Dispatch(tab, nil) {
		t.Error("expected false for nil surface")
	}
}

func TestDispatchBoundSurface(t *testing.T) {
	reg := buffer.NewRegistry()
	mem := buffer.NewMemory("x", cursor.NewCaret(0))
	reg.Register("#editor", mem)

	cfg, err := config.Build(config.Target("#editor"), reg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	e := New(cfg)
	if !e.Dispatch(tab, cfg.Surface()) {
		t.Fatal("expected Tab to be handled")
	}
	if mem.Text() != "  x" {
		t.Errorf("expected indented text, got %q", mem.Text())
	}
}

// ============================================================================
// Construction and logging
// ============================================================================

func TestNewDefaults(t *testing.T) {
	e := New(nil)
	if e.Config().IndentWidth() != config.DefaultIndentWidth {
		t.Errorf("expected default width, got %d", e.Config().IndentWidth())
	}
	if e.ID() == uuid.Nil {
		t.Error("expected a generated engine id")
	}
	if New(nil).ID() == e.ID() {
		t.Error("expected distinct engine ids")
	}
}

func TestHandleLogsActions(t *testing.T) {
	var out bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &out})
	id := uuid.MustParse("6f1c8a52-3d2e-4b7a-9c41-0e5d2f8a7b13")

	e := New(nil, WithLogger(logger), WithID(id))
	e.Handle(tab, caret("", 0))
	e.Handle(press('a'), caret("", 0))

	log := out.String()
	if strings.Count(log, "\n") != 1 {
		t.Fatalf("expected exactly one line for the handled key, got %q", log)
	}
	for _, want := range []string{"[DEBUG]", "action=indent", "engine_id=" + id.String(), "component=engine", "<Tab>"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected log to contain %q, got %q", want, log)
		}
	}
}
