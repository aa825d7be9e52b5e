package input

import (
	"io"
	"time"

	"github.com/duskydots/duskytune/internal/logging"
	"go.uber.org/zap"
)

// DefaultSeqTimeout is the idle window within which the runes of one escape
// sequence are expected to follow each other. Terminal emulators emit
// sequences in a single burst, so a short window is enough; it only has to
// be long enough to survive a slow SSH link.
const DefaultSeqTimeout = 10 * time.Millisecond

const runeChanSize = 128

// Decoder turns a raw terminal byte stream into Events. One goroutine
// assembles UTF-8 runes from single-byte reads; a second runs the escape
// state machine and delivers events on a channel. The events channel is
// closed when the underlying reader is exhausted or fails.
type Decoder struct {
	r       io.Reader
	timeout time.Duration

	runes  chan rune
	events chan Event
	stop   chan struct{}
}

// NewDecoder creates a decoder reading from r. A timeout of zero selects
// DefaultSeqTimeout.
func NewDecoder(r io.Reader, timeout time.Duration) *Decoder {
	if timeout <= 0 {
		timeout = DefaultSeqTimeout
	}
	return &Decoder{
		r:       r,
		timeout: timeout,
		runes:   make(chan rune, runeChanSize),
		events:  make(chan Event),
		stop:    make(chan struct{}),
	}
}

// Events returns the channel the decoder delivers events on.
func (d *Decoder) Events() <-chan Event {
	return d.events
}

// Start launches the reader and decoder goroutines.
func (d *Decoder) Start() {
	go d.readRunes()
	go d.run()
}

// Stop makes the decoder drop any pending work. It does not close the
// underlying reader; a blocked read is released when the terminal is
// restored and the process exits.
func (d *Decoder) Stop() {
	close(d.stop)
}

// readRunes reads single bytes and assembles them into runes, assuming
// UTF-8. Invalid continuation bytes yield U+FFFD rather than an error.
func (d *Decoder) readRunes() {
	defer close(d.runes)
	var buf [1]byte
	for {
		n, err := d.r.Read(buf[:])
		if n != 1 {
			if err != nil {
				return
			}
			continue
		}

		lead := buf[0]
		var (
			r       rune
			pending int
		)
		switch {
		case lead>>7 == 0:
			r = rune(lead)
		case lead>>5 == 0x6:
			r = rune(lead & 0x1f)
			pending = 1
		case lead>>4 == 0xe:
			r = rune(lead & 0xf)
			pending = 2
		case lead>>3 == 0x1e:
			r = rune(lead & 0x7)
			pending = 3
		default:
			r = 0xfffd
		}
		for i := 0; i < pending; i++ {
			n, err := d.r.Read(buf[:])
			if n != 1 {
				r = 0xfffd
				if err != nil {
					d.deliver(r)
					return
				}
				break
			}
			r = r<<6 + rune(buf[0]&0x3f)
		}

		if !d.deliver(r) {
			return
		}
	}
}

func (d *Decoder) deliver(r rune) bool {
	select {
	case d.runes <- r:
		return true
	case <-d.stop:
		return false
	}
}

// run is the decoder state machine loop. It exits, closing the events
// channel, once the rune source is exhausted.
func (d *Decoder) run() {
	defer close(d.events)
	for {
		select {
		case r, ok := <-d.runes:
			if !ok {
				return
			}
			if ev, ok := d.decodeOne(r); ok {
				if !d.send(ev) {
					return
				}
			}
		case <-d.stop:
			return
		}
	}
}

func (d *Decoder) send(ev Event) bool {
	select {
	case d.events <- ev:
		return true
	case <-d.stop:
		return false
	}
}

// endOfSeq marks a timed-out or exhausted read inside a sequence.
const endOfSeq rune = -1

// nextRune reads one rune of an in-flight escape sequence, giving up after
// the idle timeout. The timeout is what distinguishes a bare Escape press
// from the lead byte of a longer sequence.
func (d *Decoder) nextRune() rune {
	select {
	case r, ok := <-d.runes:
		if !ok {
			return endOfSeq
		}
		return r
	case <-time.After(d.timeout):
		return endOfSeq
	case <-d.stop:
		return endOfSeq
	}
}

// decodeOne decodes a single event led by r. The returned bool is false
// when the input was malformed and must be discarded.
func (d *Decoder) decodeOne(r rune) (Event, bool) {
	if r != 0x1b {
		return plainKey(r)
	}

	r2 := d.nextRune()
	switch r2 {
	case endOfSeq:
		// Nothing followed within the timeout: a bare Escape press.
		return KeyEvent{Key: KeyEscape}, true
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeG3()
	default:
		// Alt-modified key; the engine binds none, so drop it.
		return nil, false
	}
}

// decodeCSI reads a CSI sequence: optional '<' (SGR mouse), then
// semicolon-separated numeric parameters, then a terminator (a letter or
// '~'; 'M'/'m' terminate a mouse report).
func (d *Decoder) decodeCSI() (Event, bool) {
	r := d.nextRune()
	if r == endOfSeq {
		return nil, false
	}

	mouse := false
	if r == '<' {
		mouse = true
		r = d.nextRune()
	}

	var nums []int
	for {
		switch {
		case r == ';':
			nums = append(nums, 0)
		case r >= '0' && r <= '9':
			if len(nums) == 0 {
				nums = append(nums, 0)
			}
			nums[len(nums)-1] = nums[len(nums)-1]*10 + int(r-'0')
		case r == endOfSeq:
			logging.Debug("incomplete CSI sequence discarded")
			return nil, false
		default:
			// Terminator reached.
			if mouse {
				return decodeMouse(nums, r)
			}
			return decodeCSIKey(nums, r)
		}
		r = d.nextRune()
	}
}

// decodeG3 reads a G3-style sequence (ESC O followed by one rune), emitted
// by some emulators for cursor and Home/End keys in application mode.
func (d *Decoder) decodeG3() (Event, bool) {
	switch d.nextRune() {
	case 'A':
		return KeyEvent{Key: KeyUp}, true
	case 'B':
		return KeyEvent{Key: KeyDown}, true
	case 'C':
		return KeyEvent{Key: KeyRight}, true
	case 'D':
		return KeyEvent{Key: KeyLeft}, true
	case 'H':
		return KeyEvent{Key: KeyHome}, true
	case 'F':
		return KeyEvent{Key: KeyEnd}, true
	default:
		return nil, false
	}
}

// decodeMouse interprets the three numeric fields of an SGR report. Scroll
// codes 64/65 never produce a release report, so they count as presses
// regardless of the terminator.
func decodeMouse(nums []int, term rune) (Event, bool) {
	if term != 'M' && term != 'm' {
		logging.Debug("bad SGR mouse terminator discarded", zap.Int32("term", int32(term)))
		return nil, false
	}
	if len(nums) != 3 {
		logging.Debug("bad SGR mouse field count discarded", zap.Int("fields", len(nums)))
		return nil, false
	}
	// Strip the modifier bits (shift 4, alt 8, ctrl 16).
	button := nums[0] &^ 28
	press := term == 'M'
	if button == ButtonScrollUp || button == ButtonScrollDown {
		press = true
	}
	return MouseEvent{Button: button, Col: nums[1], Row: nums[2], Press: press}, true
}

// decodeCSIKey maps a CSI key sequence to a navigation key.
func decodeCSIKey(nums []int, term rune) (Event, bool) {
	switch term {
	case 'A':
		return KeyEvent{Key: KeyUp}, true
	case 'B':
		return KeyEvent{Key: KeyDown}, true
	case 'C':
		return KeyEvent{Key: KeyRight}, true
	case 'D':
		return KeyEvent{Key: KeyLeft}, true
	case 'H':
		return KeyEvent{Key: KeyHome}, true
	case 'F':
		return KeyEvent{Key: KeyEnd}, true
	case 'Z':
		return KeyEvent{Key: KeyBacktab}, true
	case '~':
		if len(nums) == 0 {
			return nil, false
		}
		switch nums[0] {
		case 1, 7:
			return KeyEvent{Key: KeyHome}, true
		case 3:
			return KeyEvent{Key: KeyDelete}, true
		case 4, 8:
			return KeyEvent{Key: KeyEnd}, true
		case 5:
			return KeyEvent{Key: KeyPageUp}, true
		case 6:
			return KeyEvent{Key: KeyPageDown}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// plainKey maps a single rune outside an escape sequence.
func plainKey(r rune) (Event, bool) {
	switch r {
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, true
	case '\t':
		return KeyEvent{Key: KeyTab}, true
	case 0x7f, 0x08:
		return KeyEvent{Key: KeyBackspace}, true
	case 0x03:
		return KeyEvent{Key: KeyCtrlC}, true
	}
	if r < 0x20 {
		// Unbound control characters are dropped, never echoed.
		return nil, false
	}
	return KeyEvent{Key: KeyRune, Rune: r}, true
}
