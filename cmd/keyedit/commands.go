package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/engine/cursor"
	"github.com/dshills/keyedit/internal/host"
	"github.com/dshills/keyedit/internal/logging"
	"github.com/dshills/keyedit/internal/scenario"
	"github.com/dshills/keyedit/internal/script"
	"github.com/dshills/keyedit/internal/terminal"
)

// playTarget is the target identifier of the playground buffer.
const playTarget = "main"

// cli carries what every command needs.
type cli struct {
	opts   options
	logger *logging.Logger
	stdout io.Writer
	stderr io.Writer

	// newScreen is replaced in tests.
	newScreen func() (tcell.Screen, error)
}

func (c *cli) fail(format string, args ...any) int {
	fmt.Fprintf(c.stderr, "Error: "+format+"\n", args...)
	return exitFailure
}

// check replays scenario files and prints one line per scenario.
func (c *cli) check(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(c.stderr, "Error: check requires at least one scenario file")
		return exitUsage
	}

	base, err := c.opts.settings(c.opts.source())
	if err != nil {
		return c.fail("loading config: %v", err)
	}

	runner := scenario.NewRunner(base, c.logger)
	code := exitOK
	for _, path := range args {
		f, err := scenario.Load(path)
		if err != nil {
			code = c.fail("%v", err)
			continue
		}
		rep := runner.Run(f)
		fmt.Fprintf(c.stdout, "%s\n%s", path, rep)
		if !rep.OK() {
			code = exitFailure
		}
	}
	return code
}

// runScript executes a Lua macro and prints the resulting buffer.
func (c *cli) runScript(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "Error: run requires exactly one script")
		return exitUsage
	}

	cfg, err := c.opts.settings(c.opts.source())
	if err != nil {
		return c.fail("loading config: %v", err)
	}

	h := script.New(cfg, script.WithLogger(c.logger), script.WithOutput(c.stdout))
	defer h.Close()

	if err := h.DoFile(ctx, args[0]); err != nil {
		return c.fail("%v", err)
	}
	fmt.Fprint(c.stdout, h.Text())
	return exitOK
}

// play opens the terminal playground on an optional file. Ctrl+S writes the
// buffer back to the file, or to stdout when no file was given.
func (c *cli) play(ctx context.Context, args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(c.stderr, "Error: play takes at most one file")
		return exitUsage
	}

	var path, text string
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return c.fail("reading %s: %v", path, err)
		default:
			text = string(data)
		}
	}

	mem := buffer.NewMemory(text, cursor.NewCaret(0))
	targets := buffer.NewRegistry()
	targets.Register(playTarget, mem)

	build := func(s config.Source) (*config.Config, error) {
		return c.bind(s, targets)
	}
	cfg, err := build(c.opts.source())
	if err != nil {
		return c.fail("loading config: %v", err)
	}

	session := host.NewSession(c.newEngine(cfg), cfg.Surface(), host.WithLogger(c.logger))

	if c.opts.ConfigPath != "" {
		r, err := config.NewReloader(c.opts.source(), build, func(next *config.Config, err error) {
			if err != nil {
				c.logger.Warn("config reload failed: %v", err)
				return
			}
			session.SetEngine(c.newEngine(next))
			c.logger.Info("config reloaded: indent width %d", next.IndentWidth())
		})
		if err != nil {
			return c.fail("watching config: %v", err)
		}
		defer r.Close()
	}

	newScreen := c.newScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return c.fail("creating terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return c.fail("initializing terminal: %v", err)
	}

	title := path
	if title == "" {
		title = "[scratch]"
	}
	exit := terminal.New(screen, session, terminal.WithLogger(c.logger), terminal.WithTitle(title)).Run(ctx)
	screen.Fini()

	if exit != terminal.ExitSave {
		return exitOK
	}
	if path == "" {
		fmt.Fprint(c.stdout, mem.Text())
		return exitOK
	}
	if err := os.WriteFile(path, []byte(mem.Text()), 0o644); err != nil {
		return c.fail("writing %s: %v", path, err)
	}
	return exitOK
}

// bind loads settings and resolves them against the registry. A config
// without a target edits the playground buffer.
func (c *cli) bind(s config.Source, targets buffer.Resolver) (*config.Config, error) {
	cfg, err := c.opts.settings(s)
	if err != nil {
		return nil, err
	}
	opts := cfg.Options()
	if opts.Target == "" {
		opts.Target = playTarget
	}
	return config.Build(opts, targets)
}

func (c *cli) newEngine(cfg *config.Config) *engine.Engine {
	return engine.New(cfg, engine.WithLogger(c.logger))
}
