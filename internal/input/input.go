// Package input turns raw terminal bytes into per-frame key and mouse state.
package input

import (
	"bufio"
	"bytes"
	"strconv"
	"time"
)

// sgrPrefix introduces an SGR-encoded mouse report.
var sgrPrefix = []byte("\x1b[<")

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Click is a mouse button press at a 1-based terminal cell.
type Click struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Space   bool
	Enter   bool
	Clicks  []Click // Left-button presses since the previous frame, oldest first
	Pressed []byte  // Raw bytes received this frame (for activity tracking)
}

// Activity reports whether the user did anything this frame.
func (in Input) Activity() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state between frames.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Incomplete escape sequence carried into the next frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets held keys, so a key that started a game does not
// also count as pressed on the first frame of play.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Decodes SGR mouse reports into clicks and accumulates all pressed keys.
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := append([]byte(nil), s.pending...)
	s.pending = s.pending[:0]
	closed := false

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var clicks []Click
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && !closed && len(buf)-i < len(sgrPrefix) && bytes.HasPrefix(sgrPrefix, buf[i:]) {
			// Sequence split across reads; finish it next frame.
			s.pending = append(s.pending, buf[i:]...)
			buf = buf[:i]
			break
		}

		if bytes.HasPrefix(buf[i:], sgrPrefix) {
			click, n, complete := parseSGRMouse(buf[i:])
			if !complete {
				s.pending = append(s.pending, buf[i:]...)
				buf = buf[:i]
				break
			}
			if click != nil {
				clicks = append(clicks, *click)
			}
			i += n - 1
			continue
		}

		applyByteToState(&s.state, b, now)
	}

	in := Input{
		Quit:    closed || now.Sub(s.state.quit) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Clicks:  clicks,
		Pressed: buf,
	}
	return in
}

// parseSGRMouse parses "ESC [ < btn ; col ; row (M|m)" at the start of seq.
// It returns the click for a left-button press (nil for releases, motion,
// wheel and other buttons), the sequence length, and whether the sequence was
// complete.
func parseSGRMouse(seq []byte) (*Click, int, bool) {
	end := bytes.IndexAny(seq[3:], "Mm")
	if end < 0 {
		// Give up on garbage that can never terminate.
		if len(seq) > 32 {
			return nil, len(seq), true
		}
		return nil, 0, false
	}
	n := 3 + end + 1
	press := seq[n-1] == 'M'

	fields := bytes.Split(seq[3:n-1], []byte{';'})
	if len(fields) != 3 {
		return nil, n, true
	}
	btn, err1 := strconv.Atoi(string(fields[0]))
	col, err2 := strconv.Atoi(string(fields[1]))
	row, err3 := strconv.Atoi(string(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, n, true
	}

	// Low two bits select the button; 32 flags motion, 64 flags the wheel.
	if !press || btn&3 != 0 || btn&(32|64) != 0 {
		return nil, n, true
	}
	return &Click{Col: col, Row: row}, n, true
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
