package input

import (
	"io"
	"reflect"
	"strings"
	"testing"
	"time"
)

// decodeAll runs a decoder over input until the byte source is exhausted
// and returns every event it produced.
func decodeAll(t *testing.T, input string) []Event {
	t.Helper()
	d := NewDecoder(strings.NewReader(input), 5*time.Millisecond)
	d.Start()

	var events []Event
	for ev := range d.Events() {
		events = append(events, ev)
	}
	return events
}

func TestDecodePlainKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{"letter", "q", []Event{KeyEvent{Key: KeyRune, Rune: 'q'}}},
		{"utf8 rune", "é", []Event{KeyEvent{Key: KeyRune, Rune: 'é'}}},
		{"enter cr", "\r", []Event{KeyEvent{Key: KeyEnter}}},
		{"enter lf", "\n", []Event{KeyEvent{Key: KeyEnter}}},
		{"tab", "\t", []Event{KeyEvent{Key: KeyTab}}},
		{"backspace", "\x7f", []Event{KeyEvent{Key: KeyBackspace}}},
		{"ctrl-c", "\x03", []Event{KeyEvent{Key: KeyCtrlC}}},
		{"unbound control dropped", "\x01", nil},
		{"sequence of keys", "hj", []Event{
			KeyEvent{Key: KeyRune, Rune: 'h'},
			KeyEvent{Key: KeyRune, Rune: 'j'},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAll(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeAll(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeNavigationKeys(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"\x1b[A", KeyUp},
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
		{"\x1b[H", KeyHome},
		{"\x1b[F", KeyEnd},
		{"\x1b[1~", KeyHome},
		{"\x1b[3~", KeyDelete},
		{"\x1b[4~", KeyEnd},
		{"\x1b[5~", KeyPageUp},
		{"\x1b[6~", KeyPageDown},
		{"\x1b[Z", KeyBacktab},
		{"\x1bOA", KeyUp},
		{"\x1bOF", KeyEnd},
	}

	for _, tt := range tests {
		t.Run(tt.input[1:], func(t *testing.T) {
			got := decodeAll(t, tt.input)
			want := []Event{KeyEvent{Key: tt.want}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("decodeAll(%q) = %#v, want %#v", tt.input, got, want)
			}
		})
	}
}

func TestDecodeBareEscape(t *testing.T) {
	got := decodeAll(t, "\x1b")
	want := []Event{KeyEvent{Key: KeyEscape}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bare escape = %#v, want %#v", got, want)
	}
}

func TestDecodeBareEscapeThenKey(t *testing.T) {
	// The escape arrives alone; the next key arrives well after the idle
	// timeout and must not be swallowed into a sequence.
	r, w := newSlowPipe("\x1b", "x")
	defer w.Close()

	d := NewDecoder(r, 5*time.Millisecond)
	d.Start()

	var events []Event
	for ev := range d.Events() {
		events = append(events, ev)
	}
	want := []Event{
		KeyEvent{Key: KeyEscape},
		KeyEvent{Key: KeyRune, Rune: 'x'},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v, want %#v", events, want)
	}
}

func TestDecodeMouseReports(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  MouseEvent
	}{
		{"left press", "\x1b[<0;12;5M", MouseEvent{Button: ButtonLeft, Col: 12, Row: 5, Press: true}},
		{"left release", "\x1b[<0;12;5m", MouseEvent{Button: ButtonLeft, Col: 12, Row: 5, Press: false}},
		{"right press", "\x1b[<2;1;1M", MouseEvent{Button: ButtonRight, Col: 1, Row: 1, Press: true}},
		{"modifier stripped", "\x1b[<8;2;3M", MouseEvent{Button: ButtonLeft, Col: 2, Row: 3, Press: true}},
		{"scroll up press-equivalent", "\x1b[<64;3;4m", MouseEvent{Button: ButtonScrollUp, Col: 3, Row: 4, Press: true}},
		{"scroll down", "\x1b[<65;3;4M", MouseEvent{Button: ButtonScrollDown, Col: 3, Row: 4, Press: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAll(t, tt.input)
			want := []Event{tt.want}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("decodeAll(%q) = %#v, want %#v", tt.input, got, want)
			}
		})
	}
}

func TestDecodeMalformedSequencesDiscarded(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mouse with two fields", "\x1b[<0;1M"},
		{"mouse cut off mid-sequence", "\x1b[<0;5"},
		{"unknown CSI terminator", "\x1b[9x"},
		{"unknown tilde code", "\x1b[99~"},
		{"unknown G3", "\x1bOq"},
		{"CSI cut off", "\x1b["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeAll(t, tt.input); got != nil {
				t.Errorf("decodeAll(%q) = %#v, want no events", tt.input, got)
			}
		})
	}
}

func TestDecodeRecoversAfterMalformedSequence(t *testing.T) {
	got := decodeAll(t, "\x1b[99~q")
	want := []Event{KeyEvent{Key: KeyRune, Rune: 'q'}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events after malformed sequence = %#v, want %#v", got, want)
	}
}

// slowPipe delivers its chunks with a pause between them, longer than the
// decoder's sequence timeout.
type slowPipe struct {
	chunks []string
	idx    int
}

func newSlowPipe(chunks ...string) (*slowPipe, *slowPipe) {
	p := &slowPipe{chunks: chunks}
	return p, p
}

func (p *slowPipe) Read(b []byte) (int, error) {
	if p.idx >= len(p.chunks) {
		return 0, io.EOF
	}
	if p.idx > 0 {
		time.Sleep(20 * time.Millisecond)
	}
	n := copy(b, p.chunks[p.idx])
	if n == len(p.chunks[p.idx]) {
		p.idx++
	} else {
		p.chunks[p.idx] = p.chunks[p.idx][n:]
	}
	return n, nil
}

func (p *slowPipe) Close() error { return nil }
