// Package termio manages the terminal as a scoped resource. Raw mode, mouse
// reporting, cursor visibility, and the alternate screen are acquired
// together before the input loop starts and put back together on every exit
// path, including signal-initiated ones.
package termio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Control sequences bracketing a TUI session. Mouse reporting uses SGR
// extended encoding (1006) with button-event tracking (1002).
const (
	enterSeq = "\x1b[?1049h\x1b[?25l\x1b[?1002h\x1b[?1006h\x1b[2J\x1b[H"
	exitSeq  = "\x1b[?1006l\x1b[?1002l\x1b[?25h\x1b[?1049l"
)

// Default terminal dimensions when the size cannot be queried.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// MinWidth is the narrowest terminal the renderer will lay frames out for.
const MinWidth = 60

// Guard holds the saved terminal state. Restore is idempotent, so it is
// safe to defer it and also call it explicitly on a signal path.
type Guard struct {
	in       *os.File
	out      *os.File
	saved    *term.State
	restored bool
}

// Enter switches the terminal to raw mode, hides the cursor, enables SGR
// mouse reporting, and switches to the alternate screen. The caller must
// arrange for Restore to run on every exit path.
func Enter(in, out *os.File) (*Guard, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	saved, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	if _, err := out.WriteString(enterSeq); err != nil {
		term.Restore(int(in.Fd()), saved)
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	return &Guard{in: in, out: out, saved: saved}, nil
}

// Restore disables mouse reporting, shows the cursor, leaves the alternate
// screen, and puts the terminal back into its prior mode.
func (g *Guard) Restore() {
	if g == nil || g.restored {
		return
	}
	g.restored = true
	g.out.WriteString(exitSeq)
	term.Restore(int(g.in.Fd()), g.saved)
}

// Size returns the terminal dimensions, clamped to a usable minimum width,
// falling back to 80x24 when the query fails.
func Size(out *os.File) (width, height int) {
	w, h, err := term.GetSize(int(out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	if w < MinWidth {
		w = MinWidth
	}
	return w, h
}
