package input

import (
	"bufio"
	"sync"
	"time"

	"github.com/tomz197/splitfleet/internal/config"
)

// Terminals send no key-up events, so a rotate hold is a stream of
// auto-repeated bytes. The key counts as held for a window after its last
// byte. A second tap only reads as a new press once that window has lapsed,
// so the window is at most half the double press threshold. That leaves the
// later half of the threshold for the second tap of a boost.
const (
	maxHoldDuration = 120 * time.Millisecond
	minHoldDuration = 40 * time.Millisecond // above the usual auto-repeat gap
)

// holdWindow derives the rotate hold window from the double press threshold
// in seconds.
func holdWindow(doublePress float64) time.Duration {
	d := time.Duration(doublePress / 2 * float64(time.Second))
	return min(max(d, minHoldDuration), maxHoldDuration)
}

// shortHoldDuration applies to menu keys that are only ever tapped.
const shortHoldDuration = 30 * time.Millisecond

// control is something a player key is bound to.
type control int

const (
	controlRotate control = iota
	controlFire
	controlSplit
	controlSwitch
)

type binding struct {
	player  int // 0 or 1
	control control
}

// Keymap resolves key names to player controls.
type Keymap map[string]binding

// NewKeymap binds both players' keys. Letter names are matched case
// insensitively.
func NewKeymap(players [2]config.PlayerKeys) Keymap {
	km := Keymap{}
	for i, p := range players {
		km[p.Rotate] = binding{i, controlRotate}
		km[p.Fire] = binding{i, controlFire}
		km[p.Split] = binding{i, controlSplit}
		km[p.Switch] = binding{i, controlSwitch}
	}
	return km
}

// PlayerInput is one player's input for a frame.
type PlayerInput struct {
	Rotate bool // held
	Fire   int  // presses this frame
	Split  int
	Switch int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Space   bool
	Enter   bool
	Escape  bool
	Closed  bool // the byte source ended
	Players [2]PlayerInput
	Pressed []byte
}

// keyState tracks the last time each held key was seen.
type keyState struct {
	quit   time.Time
	space  time.Time
	enter  time.Time
	escape time.Time
	rotate [2]time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	done     chan struct{} // closed by Stop
	finished chan struct{} // closed when the reader goroutine returns
	stopOnce sync.Once
	keymap   Keymap
	hold     time.Duration
	state    keyState
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream until r fails or Stop is called.
func StartStream(r *bufio.Reader, settings *config.Settings) *Stream {
	s := newStream(settings)
	go func() {
		defer close(s.finished)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream(settings *config.Settings) *Stream {
	return &Stream{
		ch:       make(chan byte, 128),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		keymap:   NewKeymap(settings.Players),
		hold:     holdWindow(settings.DoublePressThreshold),
	}
}

// Stop releases the reader goroutine once nobody drains the stream. A read
// already blocked on r still has to return first.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	return s.apply(s.drain(), time.Now())
}

func (s *Stream) drain() []byte {
	var buf []byte
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
	return buf
}

// apply parses buf into the key state and builds the frame's input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf, Closed: s.closed}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if name, ok := arrowName(buf[i+2]); ok {
				s.press(&in, name, now)
				i += 2
				continue
			}
		}

		s.applyByte(&in, b, now)
	}

	in.Quit = now.Sub(s.state.quit) < shortHoldDuration
	in.Space = now.Sub(s.state.space) < shortHoldDuration
	in.Enter = now.Sub(s.state.enter) < shortHoldDuration
	in.Escape = now.Sub(s.state.escape) < shortHoldDuration
	for i := range in.Players {
		in.Players[i].Rotate = !s.state.rotate[i].IsZero() && now.Sub(s.state.rotate[i]) < s.hold
	}
	return in
}

func arrowName(code byte) (string, bool) {
	switch code {
	case 'A':
		return "up", true
	case 'B':
		return "down", true
	case 'C':
		return "right", true
	case 'D':
		return "left", true
	}
	return "", false
}

// applyByte handles a single byte: a bound player key first, then the menu
// keys.
func (s *Stream) applyByte(in *Input, b byte, now time.Time) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if s.press(in, string(b), now) {
		return
	}
	switch b {
	case 'q':
		s.state.quit = now
	case ' ':
		s.state.space = now
	case '\n', '\r':
		s.state.enter = now
	case '\x1b':
		s.state.escape = now
	}
}

// press records a bound key. It reports false for unbound names.
func (s *Stream) press(in *Input, name string, now time.Time) bool {
	bind, ok := s.keymap[name]
	if !ok {
		return false
	}
	p := &in.Players[bind.player]
	switch bind.control {
	case controlRotate:
		s.state.rotate[bind.player] = now
	case controlFire:
		p.Fire++
	case controlSplit:
		p.Split++
	case controlSwitch:
		p.Switch++
	}
	return true
}

// Reset forgets held keys, e.g. when a new match starts.
func (s *Stream) Reset() {
	s.state = keyState{}
}
