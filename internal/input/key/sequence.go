package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sequence represents an ordered series of key events.
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates a sequence from the given events.
func NewSequence(events ...Event) *Sequence {
	return &Sequence{Events: events}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return len(s.Events) == 0
}

// Add appends an event to the sequence.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// String returns the sequence in the notation accepted by ParseSequence.
func (s *Sequence) String() string {
	var sb strings.Builder
	for _, e := range s.Events {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// ParseSequence parses a sequence string such as `if (x<CR><S-Tab>`.
// Every rune outside angle brackets is one character key; each <...>
// group is parsed with Parse. Use <lt> for a literal '<'.
func ParseSequence(s string) (*Sequence, error) {
	seq := NewSequence()

	for i := 0; i < len(s); {
		if s[i] == '<' {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBracket, i)
			}
			event, err := Parse(s[i : i+end+1])
			if err != nil {
				return nil, err
			}
			seq.Add(event)
			i += end + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		seq.Add(NewRuneEvent(r, ModNone))
		i += size
	}

	return seq, nil
}

