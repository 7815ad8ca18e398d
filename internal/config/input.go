package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Input is the configuration handed to Build: either a Target or an Options
// record.
type Input interface {
	isInput()
}

// Target is a bare buffer-target identifier.
type Target string

func (Target) isInput() {}

// Options is a structured options record.
type Options struct {
	// Target identifies the host surface. Required by Build.
	Target string
	// IndentWidth is the indent width; zero selects the default.
	IndentWidth int
	// Pairs is the ordered pair table; nil selects the defaults.
	Pairs []Pair
	// ExpandQuotes extends Enter expansion to quote pairs.
	ExpandQuotes bool
}

func (Options) isInput() {}

// Option keys recognized in untyped input. Unknown keys are ignored.
const (
	KeyTarget       = "target"
	KeyIndentWidth  = "indent_width"
	KeyPairs        = "pairs"
	KeyExpandQuotes = "expand_quotes"
)

// keyAliases maps alternate spellings to canonical option keys.
var keyAliases = map[string]string{
	"target":        KeyTarget,
	"el":            KeyTarget,
	"indent_width":  KeyIndentWidth,
	"indentwidth":   KeyIndentWidth,
	"indent-width":  KeyIndentWidth,
	"tab_size":      KeyIndentWidth,
	"tabsize":       KeyIndentWidth,
	"pairs":         KeyPairs,
	"pair_table":    KeyPairs,
	"pairtable":     KeyPairs,
	"expand_quotes": KeyExpandQuotes,
	"expandquotes":  KeyExpandQuotes,
}

// ParseInput converts untyped configuration data into an Input.
// A string becomes a Target; a mapping becomes Options. Any other type
// fails with ErrUnsupportedArgumentType. Nil or an empty mapping fails with
// ErrMissingRequiredOption.
func ParseInput(v any) (Input, error) {
	switch val := v.(type) {
	case nil:
		return nil, optionError("target", nil, ErrMissingRequiredOption)
	case Input:
		return val, nil
	case string:
		return Target(val), nil
	case map[string]any:
		if len(val) == 0 {
			return nil, optionError("target", nil, ErrMissingRequiredOption)
		}
		o, err := decodeOptions(val)
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgumentType, v)
	}
}

// decodeOptions reads the recognized keys of m. Two spellings of the same
// option (el and target, say) are rejected rather than resolved by map order.
func decodeOptions(m map[string]any) (Options, error) {
	var o Options
	seen := make(map[string]string, len(m))
	for rawKey, value := range m {
		key, ok := keyAliases[strings.ToLower(rawKey)]
		if !ok {
			continue
		}
		if prev, dup := seen[key]; dup {
			names := []string{prev, rawKey}
			sort.Strings(names)
			return Options{}, optionError(key, strings.Join(names, ", "), ErrDuplicateOption)
		}
		seen[key] = rawKey

		switch key {
		case KeyTarget:
			s, ok := value.(string)
			if !ok {
				return Options{}, optionError(KeyTarget, value, ErrUnsupportedArgumentType)
			}
			o.Target = s
		case KeyIndentWidth:
			n, err := toInt(value)
			if err != nil || n <= 0 || n > MaxIndentWidth {
				return Options{}, optionError(KeyIndentWidth, value, ErrInvalidIndentWidth)
			}
			o.IndentWidth = n
		case KeyPairs:
			pairs, err := decodePairs(value)
			if err != nil {
				return Options{}, err
			}
			o.Pairs = pairs
		case KeyExpandQuotes:
			b, err := toBool(value)
			if err != nil {
				return Options{}, optionError(KeyExpandQuotes, value, ErrUnsupportedArgumentType)
			}
			o.ExpandQuotes = b
		}
	}
	return o, nil
}

// presentKeys reports which canonical option keys appear in m.
func presentKeys(m map[string]any) map[string]bool {
	present := make(map[string]bool, len(m))
	for rawKey := range m {
		if key, ok := keyAliases[strings.ToLower(rawKey)]; ok {
			present[key] = true
		}
	}
	return present
}

// decodePairs accepts a list whose entries are either two-character strings
// ("()") or mappings with open, close and optional overwritable keys.
func decodePairs(v any) ([]Pair, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, optionError(KeyPairs, v, ErrUnsupportedArgumentType)
	}

	pairs := make([]Pair, 0, len(list))
	for _, item := range list {
		p, err := decodePair(item)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func decodePair(item any) (Pair, error) {
	switch e := item.(type) {
	case string:
		if utf8.RuneCountInString(e) != 2 {
			return Pair{}, optionError(KeyPairs, e, ErrInvalidPair)
		}
		open, n := utf8.DecodeRuneInString(e)
		closer, _ := utf8.DecodeRuneInString(e[n:])
		// Shorthand pairs behave like brackets unless they are quotes.
		return Pair{Open: open, Close: closer, Overwritable: open != closer}, nil
	case map[string]any:
		open, err := singleRune(e["open"])
		if err != nil {
			return Pair{}, err
		}
		closer, err := singleRune(e["close"])
		if err != nil {
			return Pair{}, err
		}
		p := Pair{Open: open, Close: closer}
		if raw, ok := e["overwritable"]; ok {
			b, err := toBool(raw)
			if err != nil {
				return Pair{}, optionError(KeyPairs, raw, ErrInvalidPair)
			}
			p.Overwritable = b
		}
		return p, nil
	default:
		return Pair{}, optionError(KeyPairs, item, ErrInvalidPair)
	}
}

func singleRune(v any) (rune, error) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, optionError(KeyPairs, v, ErrInvalidPair)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// toInt accepts the integer representations produced by the TOML, YAML and
// Lua decoders and by environment strings.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("out of range: %d", n)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("out of range: %d", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("out of range: %v", n)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(b))
	default:
		return false, fmt.Errorf("not a bool: %T", v)
	}
}
