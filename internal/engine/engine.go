package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/input/key"
	"github.com/dshills/keyedit/internal/logging"
)

// Result is the outcome of handling one key event.
type Result struct {
	// Text is the buffer after the edit. Equal to the input when not handled.
	Text string
	// Selection is the selection after the edit, in post-edit offsets.
	Selection cursor.Selection
	// Action is the classification of the key.
	Action Action
	// Handled reports whether the engine replaced the key's default behavior.
	// The host must suppress its own handling of the key when true.
	Handled bool
}

// Snapshot returns the result's text and selection as a snapshot.
func (r Result) Snapshot() buffer.Snapshot {
	return buffer.Snapshot{Text: r.Text, Selection: r.Selection}
}

// Engine applies key events to text snapshots.
// It is immutable after construction.
type Engine struct {
	cfg    *config.Config
	logger *logging.Logger
	id     uuid.UUID
}

// New creates an engine for cfg. A nil cfg selects config.Default().
func New(cfg *config.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	e := &Engine{
		cfg:    cfg,
		logger: logging.Nop(),
		id:     uuid.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithFields(map[string]any{
		"component": "engine",
		"engine_id": e.id.String(),
	})
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// ID returns the engine identifier.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Classify maps a key event to an action using the engine's pair table.
func (e *Engine) Classify(ev key.Event) Action {
	return Classify(ev, e.cfg.Pairs())
}

// Handle computes the effect of ev on snap. The selection is clamped into
// the text before use. Handle never fails: keys that do not apply yield a
// result with Handled false and the clamped input unchanged.
func (e *Engine) Handle(ev key.Event, snap buffer.Snapshot) Result {
	snap = buffer.NewSnapshot(snap.Text, snap.Selection)
	action := e.Classify(ev)

	var (
		out buffer.Snapshot
		ok  bool
	)
	switch action {
	case ActionPairInsert:
		out, ok = insertPair(snap, ev.Rune, e.cfg.Pairs())
	case ActionPairDelete:
		out, ok = deletePair(snap, e.cfg.Pairs())
	case ActionNewline:
		out, ok = newline(snap, e.cfg.IndentWidth(), e.cfg.Pairs(), e.cfg.ExpandQuotes())
	case ActionIndent:
		out, ok = indent(snap, e.cfg.IndentWidth())
	case ActionOutdent:
		out, ok = outdent(snap, e.cfg.IndentWidth())
	}

	if !ok {
		return Result{Text: snap.Text, Selection: snap.Selection, Action: action}
	}

	if e.logger.Enabled(logging.LevelDebug) {
		e.logger.WithField("action", action).Debug("%s: %s -> %s", ev, snap.Selection, out.Selection)
	}
	return Result{Text: out.Text, Selection: out.Selection, Action: action, Handled: true}
}

// Dispatch reads the surface once, handles ev, and commits a handled result
// by writing the buffer and then the selection. It returns whether the host
// must suppress the key's default action.
func (e *Engine) Dispatch(ev key.Event, s buffer.Surface) bool {
	if s == nil {
		return false
	}
	res := e.Handle(ev, buffer.Read(s))
	if !res.Handled {
		return false
	}
	buffer.Write(s, res.Snapshot())
	return true
}
