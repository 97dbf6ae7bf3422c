// Package input turns a raw terminal byte stream into per-frame input
// snapshots. Capture is asynchronous (a goroutine drains the reader) but
// consumption is one snapshot per simulation tick, so every frame sees a
// consistent view of what is currently held.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as "held" after its last byte.
// Terminals report key repeats, not releases, so the window has to cover
// the gap between auto-repeat events.
const keyHoldDuration = 90 * time.Millisecond

// Snapshot is the input state for one frame: the four logical game
// controls plus the keys the outer screens care about.
type Snapshot struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
	Quit   bool
	Enter  bool
}

// keyState tracks the last time each logical control was seen.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
	fire   time.Time
	quit   time.Time
	enter  time.Time
}

// Stream delivers input bytes via a channel and tracks per-key press times
// so simultaneously held keys can be detected.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
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

// Snapshot drains all pending bytes without blocking and returns the
// resulting input state for this frame.
func (s *Stream) Snapshot() Snapshot {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return s.snapshotAt(now)
			}
			buf = append(buf, b)
		default:
			return s.parseAndSnapshot(buf, now)
		}
	}
}

// Reset clears all key state, e.g. when switching screens so a held key
// does not leak into the next one.
func (s *Stream) Reset() {
	s.state = keyState{}
}

func (s *Stream) parseAndSnapshot(buf []byte, now time.Time) Snapshot {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences for arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.thrust = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}
	return s.snapshotAt(now)
}

// applyByte updates the key state for a single non-escape byte.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		s.state.left = now
	case 'd', 'D':
		s.state.right = now
	case 'w', 'W':
		s.state.thrust = now
	case ' ':
		s.state.fire = now
	case 'q', 'Q':
		s.state.quit = now
	case '\n', '\r':
		s.state.enter = now
	}
}

// snapshotAt reports keys as held if they were seen within the hold window.
func (s *Stream) snapshotAt(now time.Time) Snapshot {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Snapshot{
		Left:   held(s.state.left),
		Right:  held(s.state.right),
		Thrust: held(s.state.thrust),
		Fire:   held(s.state.fire),
		Quit:   held(s.state.quit),
		Enter:  held(s.state.enter),
	}
}
