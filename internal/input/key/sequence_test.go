package key

import (
	"errors"
	"testing"
)

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("f(é<CR><S-Tab> <lt>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Event{
		NewRuneEvent('f', ModNone),
		NewRuneEvent('(', ModNone),
		NewRuneEvent('é', ModNone),
		NewSpecialEvent(KeyEnter, ModNone),
		NewSpecialEvent(KeyTab, ModShift),
		NewRuneEvent(' ', ModNone),
		NewRuneEvent('<', ModNone),
	}

	if seq.Len() != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), seq.Len())
	}
	for i, e := range want {
		if !seq.Events[i].Equals(e) {
			t.Errorf("event %d: expected %v, got %v", i, e, seq.Events[i])
		}
	}
}

func TestParseSequenceEmpty(t *testing.T) {
	seq, err := ParseSequence("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seq.IsEmpty() {
		t.Errorf("expected empty sequence, got %d events", seq.Len())
	}
}

func TestParseSequenceUnmatchedBracket(t *testing.T) {
	_, err := ParseSequence("ab<CR")
	if !errors.Is(err, ErrUnmatchedBracket) {
		t.Errorf("expected ErrUnmatchedBracket, got %v", err)
	}
}

func TestSequenceStringRoundTrip(t *testing.T) {
	in := "if (x<CR>y<BS><S-Tab><Space>"
	seq, err := ParseSequence(in)
	if err != nil {
		t.Fatalf("ParseSequence(%q) error = %v", in, err)
	}

	out := seq.String()
	again, err := ParseSequence(out)
	if err != nil {
		t.Fatalf("ParseSequence(%q) error = %v", out, err)
	}
	if again.Len() != seq.Len() {
		t.Fatalf("expected %d events after round trip, got %d", seq.Len(), again.Len())
	}
	for i := range seq.Events {
		if !seq.Events[i].Equals(again.Events[i]) {
			t.Errorf("event %d differs after round trip: %v vs %v", i, seq.Events[i], again.Events[i])
		}
	}
}
