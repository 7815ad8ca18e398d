// Package host connects the edit engine to a text surface the way a text
// input widget would.
//
// A Session owns one surface. Each key goes to the engine first; keys the
// engine leaves alone get the widget's default behavior from Fallback. The
// engine can be swapped while the session is live, so a configuration reload
// takes effect on the next key.
package host

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/keyedit/internal/engine"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/input/key"
	"github.com/dshills/keyedit/internal/logging"
)

// Outcome describes how a key was applied.
type Outcome struct {
	// Action is the engine classification of the key.
	Action engine.Action
	// Handled is true when the engine edited the surface.
	Handled bool
	// Default is true when the fallback behavior edited the surface.
	Default bool
}

// Changed reports whether the key affected the surface.
func (o Outcome) Changed() bool {
	return o.Handled || o.Default
}

// Session feeds key events to one surface.
type Session struct {
	// mu serializes keys so that each is read, handled and committed
	// before the next.
	mu      sync.Mutex
	engine  atomic.Pointer[engine.Engine]
	surface buffer.Surface
	logger  *logging.Logger
	keys    atomic.Uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session applying e to surface.
func NewSession(e *engine.Engine, surface buffer.Surface, opts ...Option) *Session {
	s := &Session{surface: surface, logger: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("host")
	s.SetEngine(e)
	return s
}

// Engine returns the current engine.
func (s *Session) Engine() *engine.Engine {
	return s.engine.Load()
}

// SetEngine replaces the engine used for subsequent keys.
// A nil engine selects one with the default configuration.
func (s *Session) SetEngine(e *engine.Engine) {
	if e == nil {
		e = engine.New(nil)
	}
	s.engine.Store(e)
}

// Surface returns the session's surface.
func (s *Session) Surface() buffer.Surface {
	return s.surface
}

// Snapshot reads the surface.
func (s *Session) Snapshot() buffer.Snapshot {
	return buffer.Read(s.surface)
}

// Keys returns the number of keys pressed so far.
func (s *Session) Keys() uint64 {
	return s.keys.Load()
}

// Press applies one key event.
func (s *Session) Press(ev key.Event) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys.Add(1)
	e := s.engine.Load()
	res := e.Handle(ev, buffer.Read(s.surface))
	if res.Handled {
		buffer.Write(s.surface, res.Snapshot())
		return Outcome{Action: res.Action, Handled: true}
	}

	next, ok := Fallback(ev, res.Snapshot())
	if !ok {
		s.logger.Debug("ignored key %s", ev)
		return Outcome{Action: res.Action}
	}
	buffer.Write(s.surface, next)
	return Outcome{Action: res.Action, Default: true}
}

// PressSequence applies each event of seq in order.
func (s *Session) PressSequence(seq *key.Sequence) []Outcome {
	if seq == nil {
		return nil
	}
	out := make([]Outcome, 0, seq.Len())
	for _, ev := range seq.Events {
		out = append(out, s.Press(ev))
	}
	return out
}

// PressSpec parses a key sequence in key notation and applies it.
func (s *Session) PressSpec(spec string) ([]Outcome, error) {
	seq, err := key.ParseSequence(spec)
	if err != nil {
		return nil, err
	}
	return s.PressSequence(seq), nil
}

// Type presses each character of text as a plain key. Newlines and tabs are
// pressed as Enter and Tab.
func (s *Session) Type(text string) []Outcome {
	out := make([]Outcome, 0, len(text))
	for _, r := range text {
		out = append(out, s.Press(runeEvent(r)))
	}
	return out
}

func runeEvent(r rune) key.Event {
	switch r {
	case '\n':
		return key.NewSpecialEvent(key.KeyEnter, key.ModNone)
	case '\t':
		return key.NewSpecialEvent(key.KeyTab, key.ModNone)
	default:
		return key.NewRuneEvent(r, key.ModNone)
	}
}
