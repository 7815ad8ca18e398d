package config

import (
	"fmt"
	"unicode"
)

// Pair is a paired delimiter eligible for auto-insert, skip-over and
// auto-delete.
type Pair struct {
	Open  rune
	Close rune
	// Overwritable lets typing Close step over an identical character
	// already after the caret instead of inserting a duplicate.
	Overwritable bool
}

// IsQuote reports whether the pair uses the same character to open and close.
func (p Pair) IsQuote() bool {
	return p.Open == p.Close
}

// String returns the pair as its two characters.
func (p Pair) String() string {
	return string(p.Open) + string(p.Close)
}

// DefaultPairs returns the default pair table entries: brackets are
// overwritable, quotes follow quote adjacency rules.
func DefaultPairs() []Pair {
	return []Pair{
		{Open: '(', Close: ')', Overwritable: true},
		{Open: '{', Close: '}', Overwritable: true},
		{Open: '[', Close: ']', Overwritable: true},
		{Open: '"', Close: '"'},
		{Open: '\'', Close: '\''},
	}
}

// PairTable is an ordered, read-only set of pairs with unique open characters.
type PairTable struct {
	pairs   []Pair
	byOpen  map[rune]int
	byClose map[rune]int
}

// NewPairTable validates pairs and builds a lookup table.
// Open characters must be unique; characters must be printable and not
// whitespace.
func NewPairTable(pairs ...Pair) (PairTable, error) {
	t := PairTable{
		pairs:   make([]Pair, len(pairs)),
		byOpen:  make(map[rune]int, len(pairs)),
		byClose: make(map[rune]int, len(pairs)),
	}
	copy(t.pairs, pairs)

	for i, p := range t.pairs {
		if !validDelimiter(p.Open) || !validDelimiter(p.Close) {
			return PairTable{}, optionError("pairs", p.String(), ErrInvalidPair)
		}
		if _, dup := t.byOpen[p.Open]; dup {
			return PairTable{}, optionError("pairs", string(p.Open), ErrDuplicatePair)
		}
		t.byOpen[p.Open] = i
		// The first pair closing with a character owns it.
		if _, seen := t.byClose[p.Close]; !seen {
			t.byClose[p.Close] = i
		}
	}

	return t, nil
}

// MustPairTable builds a table and panics on invalid input.
func MustPairTable(pairs ...Pair) PairTable {
	t, err := NewPairTable(pairs...)
	if err != nil {
		panic(fmt.Sprintf("invalid pair table: %v", err))
	}
	return t
}

// ByOpen returns the pair opened by r.
func (t PairTable) ByOpen(r rune) (Pair, bool) {
	i, ok := t.byOpen[r]
	if !ok {
		return Pair{}, false
	}
	return t.pairs[i], true
}

// ByClose returns the first pair closed by r.
func (t PairTable) ByClose(r rune) (Pair, bool) {
	i, ok := t.byClose[r]
	if !ok {
		return Pair{}, false
	}
	return t.pairs[i], true
}

// Contains reports whether r opens or closes some pair.
func (t PairTable) Contains(r rune) bool {
	_, opens := t.byOpen[r]
	_, closes := t.byClose[r]
	return opens || closes
}

// Len returns the number of pairs.
func (t PairTable) Len() int {
	return len(t.pairs)
}

// Pairs returns a copy of the pairs in table order.
func (t PairTable) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

func validDelimiter(r rune) bool {
	return r != 0 && r != unicode.ReplacementChar && unicode.IsPrint(r) && !unicode.IsSpace(r)
}
