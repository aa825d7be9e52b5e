package tui

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/duskydots/duskytune/internal/confedit"
	"github.com/duskydots/duskytune/internal/input"
	"github.com/duskydots/duskytune/internal/logging"
	"github.com/duskydots/duskytune/internal/registry"
	"github.com/duskydots/duskytune/internal/termio"
)

// DefaultWindow is the number of item rows visible at once.
const DefaultWindow = 14

// Config wires one panel into the engine. Store and Registry are required;
// Hook may be nil for panels whose target is only read at program launch.
type Config struct {
	Title    string
	Store    *confedit.Store
	Registry *registry.Registry
	// Hook runs synchronously after a batch of one or more successful
	// writes. Its failures are its own business: the engine neither
	// observes nor propagates them.
	Hook func()
	// Window overrides the visible row count; zero selects DefaultWindow.
	Window int
	// SeqTimeout overrides the escape-sequence idle timeout.
	SeqTimeout time.Duration

	// In and Out default to the process terminal.
	In  *os.File
	Out *os.File
}

// Engine is the single-threaded editor loop: one event in, state mutated,
// one full frame out.
type Engine struct {
	title  string
	store  *confedit.Store
	reg    *registry.Registry
	hook   func()
	window int

	nav    *nav
	values valueCache
	status string

	in         *os.File
	out        *os.File
	seqTimeout time.Duration

	// Mouse mapping state from the last drawn frame.
	zones   []tabZone
	itemTop int
}

// New builds an engine from cfg. The registry must declare at least one
// tab; that is a panel programming error, caught before the UI starts.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil || cfg.Registry == nil {
		return nil, fmt.Errorf("tui: store and registry are required")
	}
	if len(cfg.Registry.Tabs()) == 0 {
		return nil, fmt.Errorf("tui: registry declares no tabs")
	}
	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}
	in, out := cfg.In, cfg.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	e := &Engine{
		title:      cfg.Title,
		store:      cfg.Store,
		reg:        cfg.Registry,
		hook:       cfg.Hook,
		window:     window,
		nav:        newNav(cfg.Registry, window),
		in:         in,
		out:        out,
		seqTimeout: cfg.SeqTimeout,
	}
	e.reloadValues()
	return e, nil
}

// SignalError reports that the loop was ended by an interrupt or terminate
// signal. It is a controlled shutdown, not a failure; callers map it to the
// conventional 128+signo exit status without logging an error.
type SignalError struct {
	Sig os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("terminated by signal %v", e.Sig)
}

// ExitCode returns the conventional exit status for the signal.
func (e *SignalError) ExitCode() int {
	if s, ok := e.Sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// Run acquires the terminal and drives the loop until a quit key, input
// exhaustion, or a signal. The terminal is restored on every return path.
func (e *Engine) Run() error {
	guard, err := termio.Enter(e.in, e.out)
	if err != nil {
		return err
	}
	defer guard.Restore()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	dec := input.NewDecoder(e.in, e.seqTimeout)
	dec.Start()
	defer dec.Stop()

	logging.Info("panel started",
		zap.String("panel", e.title),
		zap.String("config", e.store.Path()))

	for {
		e.draw()
		select {
		case ev, ok := <-dec.Events():
			if !ok {
				return nil
			}
			if quit := e.handle(ev); quit {
				return nil
			}
		case sig := <-sigCh:
			logging.Info("shutting down on signal", zap.String("signal", sig.String()))
			return &SignalError{Sig: sig}
		}
	}
}

// draw composes the frame for the current state and writes it in one pass.
func (e *Engine) draw() {
	width, _ := termio.Size(e.out)
	f := e.buildFrame(width)
	e.zones = f.zones
	e.itemTop = f.itemTop

	var b strings.Builder
	b.WriteString("\x1b[H")
	for _, line := range f.lines {
		b.WriteString(line)
		b.WriteString("\x1b[K\r\n")
	}
	b.WriteString("\x1b[J")
	e.out.WriteString(b.String())
}

// handle applies one decoded event. It returns true when the loop should
// end.
func (e *Engine) handle(ev input.Event) bool {
	switch ev := ev.(type) {
	case input.KeyEvent:
		return e.handleKey(ev)
	case input.MouseEvent:
		e.handleMouse(ev)
	}
	return false
}

func (e *Engine) handleKey(ev input.KeyEvent) bool {
	switch ev.Key {
	case input.KeyUp:
		e.nav.navigate(-1)
	case input.KeyDown:
		e.nav.navigate(+1)
	case input.KeyPageUp:
		e.nav.page(-1)
	case input.KeyPageDown:
		e.nav.page(+1)
	case input.KeyHome:
		e.nav.jumpStart()
	case input.KeyEnd:
		e.nav.jumpEnd()
	case input.KeyLeft:
		e.modify(-1)
	case input.KeyRight:
		e.modify(+1)
	case input.KeyTab:
		e.switchTab(+1)
	case input.KeyBacktab:
		e.switchTab(-1)
	case input.KeyEnter:
		if e.nav.drillDown() {
			e.reloadValues()
		} else {
			e.modify(+1)
		}
	case input.KeyBackspace:
		if e.nav.drillUp() {
			e.reloadValues()
		}
	case input.KeyEscape:
		if e.nav.drillUp() {
			e.reloadValues()
			return false
		}
		return true
	case input.KeyCtrlC:
		return true
	case input.KeyRune:
		return e.handleRune(ev.Rune)
	}
	return false
}

func (e *Engine) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 'k':
		e.nav.navigate(-1)
	case 'j':
		e.nav.navigate(+1)
	case 'h':
		e.modify(-1)
	case 'l':
		e.modify(+1)
	case '[':
		e.switchTab(-1)
	case ']':
		e.switchTab(+1)
	case 'g':
		e.nav.jumpStart()
	case 'G':
		e.nav.jumpEnd()
	case 'd':
		e.resetDefaults()
	}
	return false
}

// handleMouse maps press and scroll reports onto the last drawn frame:
// clicks on the tab strip switch tabs, clicks on item rows move the
// selection, and the wheel navigates.
func (e *Engine) handleMouse(ev input.MouseEvent) {
	if !ev.Press {
		return
	}
	switch ev.Button {
	case input.ButtonScrollUp:
		e.nav.navigate(-1)
		return
	case input.ButtonScrollDown:
		e.nav.navigate(+1)
		return
	case input.ButtonLeft:
	default:
		return
	}

	// Tab strip row.
	if ev.Row == 3 {
		for _, z := range e.zones {
			if ev.Col >= z.start && ev.Col <= z.end {
				if e.nav.activateTab(z.view) {
					e.reloadValues()
				}
				return
			}
		}
		return
	}

	// Item rows.
	if ev.Row >= e.itemTop && ev.Row < e.itemTop+e.window {
		idx := e.nav.scroll + (ev.Row - e.itemTop)
		if idx < e.nav.count() {
			e.nav.row = idx
			e.nav.clampScroll()
		}
	}
}

func (e *Engine) switchTab(delta int) {
	if e.nav.switchTab(delta) {
		e.reloadValues()
	}
}

// reloadValues rebuilds the value cache for the newly active view and
// drops any stale status message.
func (e *Engine) reloadValues() {
	e.values = loadValues(e.store, e.nav.view())
	e.status = ""
}

// modify steps the selected item and writes the result through the store.
// Only a successful write updates the cache and fires the hook; a failure
// keeps the previous value and surfaces in the status line.
func (e *Engine) modify(dir int) {
	it, ok := e.nav.selected()
	if !ok {
		return
	}
	next, ok := modifyValue(it, e.values[it.Label], dir)
	if !ok {
		return
	}
	if err := e.store.Set(it.Key, it.Scope, next); err != nil {
		e.status = fmt.Sprintf("could not update %s: %v", it.Label, err)
		logging.Warn("write failed",
			zap.String("key", it.Key),
			zap.String("scope", it.Scope),
			zap.Error(err))
		return
	}
	e.values[it.Label] = Value{Text: next, Set: true}
	e.status = ""
	e.fireHook()
}

// resetDefaults writes the declared default of every item in the active
// view. Items without one are untouched. The hook fires at most once, and
// only when at least one write succeeded.
func (e *Engine) resetDefaults() {
	wrote := 0
	failed := 0
	for _, it := range e.nav.view().Items {
		if it.Kind == registry.Submenu || !it.HasDefault() {
			continue
		}
		if err := e.store.Set(it.Key, it.Scope, it.Default); err != nil {
			failed++
			logging.Warn("reset failed",
				zap.String("key", it.Key),
				zap.Error(err))
			continue
		}
		e.values[it.Label] = Value{Text: it.Default, Set: true}
		wrote++
	}
	switch {
	case failed > 0:
		e.status = fmt.Sprintf("reset: %d setting(s) could not be written", failed)
	default:
		e.status = ""
	}
	if wrote > 0 {
		e.fireHook()
	}
}

func (e *Engine) fireHook() {
	if e.hook == nil {
		return
	}
	e.hook()
}
