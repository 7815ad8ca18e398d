package scenario

import (
	"fmt"
	"strings"

	"github.com/dshills/keyedit/internal/config"
	"github.com/dshills/keyedit/internal/engine"
	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/host"
	"github.com/dshills/keyedit/internal/logging"
)

// Outcome is the result of one scenario.
type Outcome struct {
	Name string
	// Got is the surface state after the keys were pressed.
	Got buffer.Snapshot
	// Want is the expected state.
	Want buffer.Snapshot
	// Err is set when the scenario could not run.
	Err error
}

// Passed reports whether the scenario ran and matched.
func (o Outcome) Passed() bool {
	return o.Err == nil && o.Got.Text == o.Want.Text && o.Got.Selection.Equals(o.Want.Selection)
}

// String returns a one-line summary.
func (o Outcome) String() string {
	switch {
	case o.Err != nil:
		return fmt.Sprintf("ERROR %s: %v", o.Name, o.Err)
	case o.Passed():
		return "ok    " + o.Name
	default:
		return fmt.Sprintf("FAIL  %s: expected %q %s, got %q %s",
			o.Name, o.Want.Text, o.Want.Selection, o.Got.Text, o.Got.Selection)
	}
}

// Report collects scenario outcomes.
type Report struct {
	Outcomes []Outcome
}

// Passed returns the number of passing scenarios.
func (r Report) Passed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Passed() {
			n++
		}
	}
	return n
}

// Failed returns the number of failing scenarios.
func (r Report) Failed() int {
	return len(r.Outcomes) - r.Passed()
}

// OK reports whether every scenario passed.
func (r Report) OK() bool {
	return r.Failed() == 0
}

// String renders one line per outcome followed by a total.
func (r Report) String() string {
	var sb strings.Builder
	for _, o := range r.Outcomes {
		sb.WriteString(o.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d passed, %d failed\n", r.Passed(), r.Failed())
	return sb.String()
}

// Runner replays scenarios.
type Runner struct {
	base   *config.Config
	logger *logging.Logger
}

// NewRunner creates a runner. A nil base selects config.Default(); a nil
// logger discards output.
func NewRunner(base *config.Config, logger *logging.Logger) *Runner {
	if base == nil {
		base = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{base: base, logger: logger.WithComponent("scenario")}
}

// Run executes every scenario in f.
func (r *Runner) Run(f *File) Report {
	var rep Report
	cfg, err := r.base.Overlay(f.Options)
	for _, s := range f.Scenarios {
		if err != nil {
			rep.Outcomes = append(rep.Outcomes, Outcome{Name: s.Name, Err: fmt.Errorf("file options: %w", err)})
			continue
		}
		rep.Outcomes = append(rep.Outcomes, r.runOne(cfg, s))
	}
	r.logger.WithField("file", f.Path).Info("ran %d scenarios: %d passed, %d failed",
		len(rep.Outcomes), rep.Passed(), rep.Failed())
	return rep
}

// RunScenario executes a single scenario against the runner's base config.
func (r *Runner) RunScenario(s Scenario) Outcome {
	return r.runOne(r.base, s)
}

func (r *Runner) runOne(base *config.Config, s Scenario) Outcome {
	out := Outcome{Name: s.Name}

	cfg, err := base.Overlay(s.Options)
	if err != nil {
		out.Err = fmt.Errorf("options: %w", err)
		return out
	}
	start, err := s.start()
	if err != nil {
		out.Err = err
		return out
	}
	want, err := s.want()
	if err != nil {
		out.Err = err
		return out
	}
	out.Want = buffer.Snapshot{Text: s.WantText, Selection: want}

	mem := buffer.NewMemory(s.Text, start)
	session := host.NewSession(engine.New(cfg, engine.WithLogger(r.logger)), mem, host.WithLogger(r.logger))
	if _, err := session.PressSpec(s.Keys); err != nil {
		out.Err = fmt.Errorf("keys: %w", err)
		return out
	}
	out.Got = session.Snapshot()

	if !out.Passed() {
		r.logger.WithField("scenario", s.Name).Warn("mismatch: expected %q, got %q", out.Want.Text, out.Got.Text)
	}
	return out
}
