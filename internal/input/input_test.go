package input

import (
	"bufio"
	"strings"
	"testing"
)

// feedBuffer leaves room for bytes pushed after the first read.
const feedBuffer = 64

// feed builds a stream with the given bytes already queued.
func feed(data string) *Stream {
	s := &Stream{ch: make(chan byte, max(len(data), feedBuffer))}
	push(s, data)
	return s
}

func push(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		quit  bool
		space bool
		enter bool
	}{
		{"nothing", "", false, false, false},
		{"space", " ", false, true, false},
		{"enter cr", "\r", false, false, true},
		{"quit", "q", true, false, false},
		{"ctrl-c", "\x03", true, false, false},
		{"mixed", "x \r", false, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := ReadInput(feed(tc.data))
			if in.Quit != tc.quit || in.Space != tc.space || in.Enter != tc.enter {
				t.Fatalf("got quit=%v space=%v enter=%v, want %v %v %v",
					in.Quit, in.Space, in.Enter, tc.quit, tc.space, tc.enter)
			}
			if in.Activity() != (tc.data != "") {
				t.Fatalf("Activity = %v for %q", in.Activity(), tc.data)
			}
		})
	}
}

func TestReadInputMouseClicks(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []Click
	}{
		{"left press", "\x1b[<0;12;7M", []Click{{Col: 12, Row: 7}}},
		{"left release ignored", "\x1b[<0;12;7m", nil},
		{"right press ignored", "\x1b[<2;12;7M", nil},
		{"wheel ignored", "\x1b[<64;12;7M", nil},
		{"drag ignored", "\x1b[<32;12;7M", nil},
		{"two presses", "\x1b[<0;1;1M\x1b[<0;1;1m\x1b[<0;80;24M", []Click{{1, 1}, {80, 24}}},
		{"press then key", "\x1b[<0;3;4M ", []Click{{3, 4}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := ReadInput(feed(tc.data))
			if len(in.Clicks) != len(tc.want) {
				t.Fatalf("clicks = %v, want %v", in.Clicks, tc.want)
			}
			for i := range tc.want {
				if in.Clicks[i] != tc.want[i] {
					t.Fatalf("click %d = %v, want %v", i, in.Clicks[i], tc.want[i])
				}
			}
		})
	}
}

func TestMouseReportDoesNotTriggerKeys(t *testing.T) {
	// Bytes inside the report must not be read as key presses.
	in := ReadInput(feed("\x1b[<0;32;13M"))
	if in.Space || in.Enter || in.Quit {
		t.Fatalf("mouse report leaked into keys: %+v", in)
	}
}

func TestReadInputSplitSequence(t *testing.T) {
	s := feed("\x1b[<0;4")
	first := ReadInput(s)
	if len(first.Clicks) != 0 {
		t.Fatalf("incomplete report produced clicks: %v", first.Clicks)
	}

	push(s, "0;9M")
	second := ReadInput(s)
	if len(second.Clicks) != 1 || second.Clicks[0] != (Click{Col: 40, Row: 9}) {
		t.Fatalf("reassembled clicks = %v, want [{40 9}]", second.Clicks)
	}
}

func TestReadInputSplitPrefix(t *testing.T) {
	s := feed("\x1b[")
	if in := ReadInput(s); len(in.Clicks) != 0 {
		t.Fatalf("prefix alone produced clicks: %v", in.Clicks)
	}
	push(s, "<0;2;2M")
	if in := ReadInput(s); len(in.Clicks) != 1 {
		t.Fatalf("clicks after completing prefix = %v, want one", in.Clicks)
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	// The reader goroutine closes the channel on EOF; wait for it.
	for range s.ch {
	}
	if in := ReadInput(s); !in.Quit {
		t.Fatal("closed stream did not report Quit")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := feed(" ")
	if in := ReadInput(s); !in.Space {
		t.Fatal("space not reported")
	}
	ResetKeyInput(s)
	if in := ReadInput(s); in.Space {
		t.Fatal("space still held after ResetKeyInput")
	}
}
