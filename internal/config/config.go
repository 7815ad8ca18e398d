package config

import (
	"fmt"

	"github.com/dshills/keyedit/internal/engine/buffer"
)

// Indent width limits.
const (
	// DefaultIndentWidth is the number of spaces in one indentation level.
	DefaultIndentWidth = 2
	// MaxIndentWidth bounds the spaces inserted per keystroke.
	MaxIndentWidth = 64
)

// Config holds validated engine settings. It is immutable once built.
type Config struct {
	target       string
	surface      buffer.Surface
	indentWidth  int
	pairs        PairTable
	expandQuotes bool
}

// Default returns a host-less configuration with default settings.
func Default() *Config {
	return &Config{
		indentWidth: DefaultIndentWidth,
		pairs:       MustPairTable(DefaultPairs()...),
	}
}

// FromOptions validates an options record without requiring or resolving a
// target. It suits tools that own their surface directly.
func FromOptions(o Options) (*Config, error) {
	width := o.IndentWidth
	if width == 0 {
		width = DefaultIndentWidth
	}
	if width < 0 || width > MaxIndentWidth {
		return nil, optionError("indent_width", o.IndentWidth, ErrInvalidIndentWidth)
	}

	entries := o.Pairs
	if entries == nil {
		entries = DefaultPairs()
	}
	pairs, err := NewPairTable(entries...)
	if err != nil {
		return nil, err
	}

	return &Config{
		target:       o.Target,
		indentWidth:  width,
		pairs:        pairs,
		expandQuotes: o.ExpandQuotes,
	}, nil
}

// Build resolves an Input into a Config bound to a host surface.
// Construction is aborted on the first error; no partial Config is returned.
func Build(in Input, res buffer.Resolver) (*Config, error) {
	var opts Options
	switch v := in.(type) {
	case nil:
		return nil, optionError("target", nil, ErrMissingRequiredOption)
	case Target:
		opts = Options{Target: string(v)}
	case Options:
		opts = v
	case *Options:
		if v == nil {
			return nil, optionError("target", nil, ErrMissingRequiredOption)
		}
		opts = *v
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgumentType, in)
	}

	if opts.Target == "" {
		return nil, optionError("target", nil, ErrMissingRequiredOption)
	}

	cfg, err := FromOptions(opts)
	if err != nil {
		return nil, err
	}

	if res == nil {
		return nil, optionError("target", opts.Target, ErrUnresolvableTarget)
	}
	surface, ok := res.Resolve(opts.Target)
	if !ok || surface == nil {
		return nil, optionError("target", opts.Target, ErrUnresolvableTarget)
	}
	cfg.surface = surface

	return cfg, nil
}

// Target returns the target identifier, or "" for host-less configs.
func (c *Config) Target() string {
	return c.target
}

// Surface returns the resolved host surface, or nil for host-less configs.
func (c *Config) Surface() buffer.Surface {
	return c.surface
}

// IndentWidth returns the number of spaces per indentation level.
func (c *Config) IndentWidth() int {
	return c.indentWidth
}

// Pairs returns the pair table.
func (c *Config) Pairs() PairTable {
	return c.pairs
}

// ExpandQuotes reports whether Enter between two identical quote characters
// also splits them onto separate lines.
func (c *Config) ExpandQuotes() bool {
	return c.expandQuotes
}

// Options returns the options record that reproduces this config.
func (c *Config) Options() Options {
	return Options{
		Target:       c.target,
		IndentWidth:  c.indentWidth,
		Pairs:        c.pairs.Pairs(),
		ExpandQuotes: c.expandQuotes,
	}
}

// Overlay returns a copy of c with the options present in data applied on
// top. Keys absent from data keep their current values. The resolved surface
// is carried over unless data names a different target, in which case the
// copy is host-less.
func (c *Config) Overlay(data map[string]any) (*Config, error) {
	if len(data) == 0 {
		return c, nil
	}
	o, err := decodeOptions(data)
	if err != nil {
		return nil, err
	}

	merged := c.Options()
	present := presentKeys(data)
	if present[KeyTarget] {
		merged.Target = o.Target
	}
	if present[KeyIndentWidth] {
		merged.IndentWidth = o.IndentWidth
	}
	if present[KeyPairs] {
		merged.Pairs = o.Pairs
	}
	if present[KeyExpandQuotes] {
		merged.ExpandQuotes = o.ExpandQuotes
	}

	next, err := FromOptions(merged)
	if err != nil {
		return nil, err
	}
	if merged.Target == c.target {
		next.surface = c.surface
	}
	return next, nil
}
