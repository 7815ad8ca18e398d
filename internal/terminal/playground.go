package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/keyedit/internal/engine/buffer"
	"github.com/dshills/keyedit/internal/host"
	"github.com/dshills/keyedit/internal/logging"
)

// tabStop is the display width of a tab character.
const tabStop = 4

// Exit describes how the playground ended.
type Exit int

const (
	// ExitQuit means the user left without saving (Esc or Ctrl+Q).
	ExitQuit Exit = iota
	// ExitSave means the user asked to keep the buffer (Ctrl+S).
	ExitSave
	// ExitCanceled means the context was canceled.
	ExitCanceled
)

// Playground keys, in key notation.
const (
	saveKey = "<C-s>"
	quitKey = "<C-q>"
	escKey  = "<Esc>"
)

// Playground is a full-screen host for one session.
// It is not safe for concurrent use; Run owns the screen.
type Playground struct {
	screen  tcell.Screen
	session *host.Session
	logger  *logging.Logger

	title  string
	status string
	top    int
}

// Option configures a Playground.
type Option func(*Playground)

// WithLogger sets the playground logger.
func WithLogger(l *logging.Logger) Option {
	return func(p *Playground) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTitle sets the text shown at the start of the status line.
func WithTitle(title string) Option {
	return func(p *Playground) {
		p.title = title
	}
}

// New creates a playground drawing on an initialized screen.
func New(screen tcell.Screen, session *host.Session, opts ...Option) *Playground {
	p := &Playground{
		screen:  screen,
		session: session,
		logger:  logging.Nop(),
		title:   "keyedit",
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithComponent("terminal")
	return p
}

// Run draws the buffer and handles events until the user saves, quits, or
// ctx is canceled.
func (p *Playground) Run(ctx context.Context) Exit {
	stop := context.AfterFunc(ctx, func() {
		_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	p.Draw()
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return ExitQuit
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ExitCanceled
		}
		if exit, done := p.HandleEvent(ev); done {
			p.logger.Info("playground closed after %d keys", p.session.Keys())
			return exit
		}
		p.Draw()
	}
}

// HandleEvent applies one screen event. It reports true when the
// playground should close.
func (p *Playground) HandleEvent(ev tcell.Event) (Exit, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		kev, ok := ConvertKey(e)
		if !ok {
			return ExitQuit, false
		}
		switch {
		case kev.Matches(saveKey):
			return ExitSave, true
		case kev.Matches(quitKey), kev.Matches(escKey):
			return ExitQuit, true
		}

		out := p.session.Press(kev)
		p.status = fmt.Sprintf("%s %s", kev, out.Action)
		if out.Handled {
			p.status += " (engine)"
		}
	}
	return ExitQuit, false
}

// Draw renders the buffer and the status line.
func (p *Playground) Draw() {
	p.screen.Clear()
	width, height := p.screen.Size()
	if height < 2 || width < 1 {
		p.screen.Show()
		return
	}

	snap := p.session.Snapshot()
	lines := strings.Split(snap.Text, "\n")
	caretLine, caretCol := p.locate(snap)
	p.scrollTo(caretLine, height-1)

	normal := tcell.StyleDefault
	selected := normal.Reverse(true)

	lineStart := 0
	for i, line := range lines {
		y := i - p.top
		if y >= height-1 {
			break
		}
		if y >= 0 {
			drawLine(p.screen, y, width, line, lineStart, snap, normal, selected)
		}
		lineStart += len(line) + 1
	}

	p.drawStatus(width, height-1)
	if caretCol < width {
		p.screen.ShowCursor(caretCol, caretLine-p.top)
	} else {
		p.screen.HideCursor()
	}
	p.screen.Show()
}

// locate returns the caret's line and display column.
func (p *Playground) locate(snap buffer.Snapshot) (int, int) {
	at := snap.Selection.Caret()
	before := snap.Text[:at]
	line := strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	return line, displayWidth(before[start:])
}

func (p *Playground) scrollTo(line, rows int) {
	if line < p.top {
		p.top = line
	}
	if line >= p.top+rows {
		p.top = line - rows + 1
	}
}

func (p *Playground) drawStatus(width, y int) {
	cfg := p.session.Engine().Config()
	sel := p.session.Snapshot().Selection
	text := fmt.Sprintf(" %s  width=%d  %s  %s  ^S save  Esc quit", p.title, cfg.IndentWidth(), sel, p.status)
	style := tcell.StyleDefault.Reverse(true)

	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		p.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawLine renders one buffer line. offset is the byte offset of the line
// in the buffer; cells inside the selection use the selected style.
func drawLine(s tcell.Screen, y, width int, line string, offset int, snap buffer.Snapshot, normal, selected tcell.Style) {
	sel := snap.Selection
	x := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() && x < width {
		from, _ := g.Positions()
		style := normal
		if sel.Contains(offset + from) {
			style = selected
		}

		runes := g.Runes()
		if runes[0] == '\t' {
			next := x + tabStop - x%tabStop
			for ; x < next && x < width; x++ {
				s.SetContent(x, y, ' ', nil, style)
			}
			continue
		}

		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(g.Width(), 1)
	}
}

// displayWidth returns the number of cells s occupies.
func displayWidth(s string) int {
	x := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if g.Str() == "\t" {
			x += tabStop - x%tabStop
			continue
		}
		x += max(g.Width(), 1)
	}
	return x
}
