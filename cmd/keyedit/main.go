// Package main is the entry point for the keyedit tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// options holds the parsed global flags.
type options struct {
	ConfigPath  string
	LogLevel    string
	IndentWidth int
	Args        []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, code, ok := parseFlags(args, stdout, stderr)
	if !ok {
		return code
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(opts.LogLevel),
		Output: stderr,
		Prefix: "keyedit",
	})

	if len(opts.Args) == 0 {
		fmt.Fprintln(stderr, "Error: missing command (check, run or play)")
		return exitUsage
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli{opts: opts, logger: logger, stdout: stdout, stderr: stderr}
	cmd, rest := opts.Args[0], opts.Args[1:]
	switch cmd {
	case "check":
		return app.check(rest)
	case "run":
		return app.runScript(ctx, rest)
	case "play":
		return app.play(ctx, rest)
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", cmd)
		return exitUsage
	}
}

func parseFlags(args []string, stdout, stderr io.Writer) (options, int, bool) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("keyedit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.IntVar(&opts.IndentWidth, "width", 0, "Indent width, overrides the configuration")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "keyedit - keystroke-driven editing engine\n\n")
		fmt.Fprintf(stderr, "Usage: keyedit [options] <command> [args]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  check <scenarios.yaml>...   Replay key scenarios and report mismatches\n")
		fmt.Fprintf(stderr, "  run <script.lua>            Run a Lua key macro and print the buffer\n")
		fmt.Fprintf(stderr, "  play [file]                 Edit interactively in the terminal\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, exitOK, false
		}
		return opts, exitUsage, false
	}

	if showVersion {
		fmt.Fprintf(stdout, "keyedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, exitOK, false
	}

	if !logging.ValidLevel(opts.LogLevel) {
		fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, exitUsage, false
	}
	if opts.IndentWidth < 0 {
		fmt.Fprintf(stderr, "Error: invalid width %d\n", opts.IndentWidth)
		return opts, exitUsage, false
	}

	opts.Args = fs.Args()
	return opts, exitOK, true
}

// source returns the configuration source named by the flags.
func (o options) source() config.Source {
	return config.Source{Path: o.ConfigPath}
}

// settings loads the configuration and applies the -width flag.
func (o options) settings(s config.Source) (*config.Config, error) {
	cfg, err := config.LoadSettings(s)
	if err != nil {
		return nil, err
	}
	if o.IndentWidth > 0 {
		return cfg.Overlay(map[string]any{config.KeyIndentWidth: o.IndentWidth})
	}
	return cfg, nil
}
