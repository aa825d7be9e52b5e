// Package input decodes the raw byte stream of a terminal in raw mode into
// logical events: plain keys, navigation keys, and SGR mouse reports.
//
// The decoder is a two-state machine. In the normal state each decoded rune
// is one event. Seeing the escape lead byte enters a collecting state that
// accumulates the sequence until a recognized terminator arrives or a short
// idle timeout elapses, at which point the sequence is emitted as a single
// event (a bare escape when nothing followed). Malformed sequences are
// dropped silently; they must never reach the display or kill the reader.
package input

// Key identifies a decoded non-printable key.
type Key int

const (
	// KeyRune is a printable character; the Rune field carries it.
	KeyRune Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyCtrlC
)

// Event is a decoded terminal input event: either a KeyEvent or a
// MouseEvent.
type Event interface {
	event()
}

// KeyEvent is a single keypress. Rune is meaningful only when Key is
// KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
}

func (KeyEvent) event() {}

// Mouse button codes as reported by SGR mouse mode. Scroll wheel events
// carry no release report and are treated as press-equivalent.
const (
	ButtonLeft       = 0
	ButtonMiddle     = 1
	ButtonRight      = 2
	ButtonScrollUp   = 64
	ButtonScrollDown = 65
)

// MouseEvent is one SGR mouse report. Col and Row are 1-based terminal
// coordinates. Press is true for button presses and for scroll events.
type MouseEvent struct {
	Button int
	Col    int
	Row    int
	Press  bool
}

func (MouseEvent) event() {}
