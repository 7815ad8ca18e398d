package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/host"
	"github.com/dshills/keyedit/internal/logging"
)

// DefaultTimeout bounds a single DoString or DoFile call.
const DefaultTimeout = 5 * time.Second

// Host owns a Lua state bound to one edit session.
type Host struct {
	mu sync.Mutex

	L       *lua.LState
	mem     *buffer.Memory
	session *host.Session
	cfg     *config.Config

	logger  *logging.Logger
	output  io.Writer
	timeout time.Duration
	text    string

	closed bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host logger.
func WithLogger(l *logging.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithOutput sets where print writes. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(h *Host) {
		if w != nil {
			h.output = w
		}
	}
}

// WithTimeout sets the per-call execution timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		if d >= 0 {
			h.timeout = d
		}
	}
}

// WithText sets the initial buffer text. The caret starts at its end.
func WithText(text string) Option {
	return func(h *Host) {
		h.text = text
	}
}

// New creates a host editing an in-memory buffer with cfg.
// A nil cfg selects config.Default().
func New(cfg *config.Config, opts ...Option) *Host {
	if cfg == nil {
		cfg = config.Default()
	}
	h := &Host{
		cfg:     cfg,
		logger:  logging.Nop(),
		output:  io.Discard,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.WithComponent("script")

	h.mem = buffer.NewMemory(h.text, cursor.NewCaret(len(h.text)))
	h.session = host.NewSession(h.newEngine(cfg), h.mem, host.WithLogger(h.logger))

	h.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(h.L)
	h.L.SetGlobal("print", h.L.NewFunction(h.luaPrint))
	h.L.SetGlobal("editor", h.L.SetFuncs(h.L.NewTable(), map[string]lua.LGFunction{
		"press":     h.luaPress,
		"type":      h.luaType,
		"text":      h.luaText,
		"selection": h.luaSelection,
		"set_text":  h.luaSetText,
		"select":    h.luaSelect,
		"configure": h.luaConfigure,
	}))

	return h
}

// openSafeLibraries opens the libraries scripts may use. io, os, debug and
// package stay closed, and the loaders are removed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (h *Host) newEngine(cfg *config.Config) *engine.Engine {
	return engine.New(cfg, engine.WithLogger(h.logger))
}

// DoString runs Lua source.
func (h *Host) DoString(ctx context.Context, code string) error {
	return h.run(ctx, "<string>", func() error { return h.L.DoString(code) })
}

// DoFile runs a Lua file.
func (h *Host) DoFile(ctx context.Context, path string) error {
	return h.run(ctx, path, func() error { return h.L.DoFile(path) })
}

func (h *Host) run(ctx context.Context, name string, fn func() error) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	h.L.SetContext(ctx)
	defer h.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	start := time.Now()
	err = fn()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%s: %w", name, ErrTimeout)
		} else if ctx.Err() != nil {
			err = fmt.Errorf("%s: %w", name, ctx.Err())
		}
		h.logger.Warn("%s failed: %v", name, err)
		return err
	}
	h.logger.Debug("%s finished in %s after %d keys", name, time.Since(start), h.session.Keys())
	return nil
}

// Text returns the buffer text.
func (h *Host) Text() string {
	return h.mem.Text()
}

// Selection returns the buffer selection.
func (h *Host) Selection() cursor.Selection {
	return h.mem.Selection()
}

// Session returns the edit session scripts drive.
func (h *Host) Session() *host.Session {
	return h.session
}

// Config returns the configuration in effect, including script overrides.
func (h *Host) Config() *config.Config {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg
}

// Close releases the Lua state.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.L.Close()
	h.closed = true
	return nil
}

// ============================================================================
// Lua functions
// ============================================================================

func (h *Host) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	_, _ = io.WriteString(h.output, strings.Join(parts, "\t")+"\n")
	return 0
}

// luaPress presses a key sequence and returns whether the engine handled
// the last key.
func (h *Host) luaPress(L *lua.LState) int {
	spec := L.CheckString(1)
	out, err := h.session.PressSpec(spec)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LBool(len(out) > 0 && out[len(out)-1].Handled))
	return 1
}

func (h *Host) luaType(L *lua.LState) int {
	h.session.Type(L.CheckString(1))
	return 0
}

func (h *Host) luaText(L *lua.LState) int {
	L.Push(lua.LString(h.mem.Text()))
	return 1
}

func (h *Host) luaSelection(L *lua.LState) int {
	sel := h.mem.Selection()
	L.Push(lua.LNumber(sel.Start))
	L.Push(lua.LNumber(sel.End))
	return 2
}

func (h *Host) luaSetText(L *lua.LState) int {
	text := L.CheckString(1)
	h.mem.Set(text, cursor.NewCaret(len(text)))
	return 0
}

func (h *Host) luaSelect(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.OptInt(2, start)
	h.mem.WriteSelection(start, end)
	return 0
}

// luaConfigure applies option overrides and swaps in a new engine. It
// returns the resulting indent width.
func (h *Host) luaConfigure(L *lua.LState) int {
	data, ok := toGo(L.CheckTable(1)).(map[string]any)
	if !ok {
		L.ArgError(1, "options table expected")
		return 0
	}
	next, err := h.cfg.Overlay(data)
	if err != nil {
		L.RaiseError("configure: %v", err)
		return 0
	}
	h.cfg = next
	h.session.SetEngine(h.newEngine(next))
	L.Push(lua.LNumber(next.IndentWidth()))
	return 1
}
