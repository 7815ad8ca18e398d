// Package scenario replays recorded keystrokes against the edit engine and
// compares the outcome with expected text and selection.
//
// Scenario files are YAML:
//
//	options:
//	  indent_width: 2
//	scenarios:
//	  - name: expand braces
//	    text: "{}"
//	    selection: [1, 1]
//	    keys: "<CR>"
//	    want_text: "{\n  \n}"
//	    want_selection: [4, 4]
//
// Keys use key notation: plain characters stand for themselves and named
// keys are written in angle brackets ("<Tab>", "<S-Tab>", "<BS>", "<lt>").
// File options apply to every scenario; a scenario's own options are layered
// on top.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/keyedit/internal/engine/cursor"
)

// Errors returned while loading scenarios.
var (
	// ErrNoScenarios indicates a file without scenarios.
	ErrNoScenarios = errors.New("no scenarios")

	// ErrInvalidSelection indicates a selection that is not [start, end].
	ErrInvalidSelection = errors.New("selection must be [start, end] or a single offset")
)

// File is a parsed scenario file.
type File struct {
	// Path is the file the scenarios were loaded from, if any.
	Path string `yaml:"-"`
	// Options are layered over the runner's base configuration.
	Options map[string]any `yaml:"options"`
	// Scenarios are run in order.
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one recorded interaction.
type Scenario struct {
	Name          string         `yaml:"name"`
	Text          string         `yaml:"text"`
	Selection     []int          `yaml:"selection"`
	Keys          string         `yaml:"keys"`
	WantText      string         `yaml:"want_text"`
	WantSelection []int          `yaml:"want_selection"`
	Options       map[string]any `yaml:"options"`
}

// Parse decodes scenario YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		if _, err := s.start(); err != nil {
			return nil, fmt.Errorf("%s: selection: %w", s.Name, err)
		}
		if _, err := s.want(); err != nil {
			return nil, fmt.Errorf("%s: want_selection: %w", s.Name, err)
		}
	}
	return &f, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// start returns the initial selection. No selection places the caret at the
// end of the text.
func (s Scenario) start() (cursor.Selection, error) {
	if len(s.Selection) == 0 {
		return cursor.NewCaret(len(s.Text)), nil
	}
	return toSelection(s.Selection)
}

// want returns the expected selection. No expectation places the caret at
// the end of the expected text.
func (s Scenario) want() (cursor.Selection, error) {
	if len(s.WantSelection) == 0 {
		return cursor.NewCaret(len(s.WantText)), nil
	}
	return toSelection(s.WantSelection)
}

func toSelection(v []int) (cursor.Selection, error) {
	switch len(v) {
	case 1:
		return cursor.NewCaret(v[0]), nil
	case 2:
		if v[0] < 0 || v[1] < v[0] {
			return cursor.Selection{}, ErrInvalidSelection
		}
		return cursor.Selection{Start: v[0], End: v[1]}, nil
	default:
		return cursor.Selection{}, ErrInvalidSelection
	}
}
