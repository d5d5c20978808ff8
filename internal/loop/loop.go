// Package loop runs a terminal session: the title screen, matches between
// two fleets and the result screen, rendered with the half-block canvas.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/fleet"
	"github.com/tomz197/splitfleet/internal/game"
	"github.com/tomz197/splitfleet/internal/input"
	loopconfig "github.com/tomz197/splitfleet/internal/loop/config"
)

// Sound plays an effect for a match event. Play must not block.
type Sound interface {
	Play(e event.Event)
}

// Options configures a session.
type Options struct {
	Settings     *config.Settings  // Defaults when nil
	TermSizeFunc draw.TermSizeFunc // Size of the output terminal
	Logger       *log.Logger
	Sound        Sound
	TwoPlayer    bool // Otherwise player 2 is the computer
	Rand         *rand.Rand
}

// Session handles rendering and input for a single terminal.
type Session struct {
	settings     *config.Settings
	state        *SessionState
	match        *game.Match
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	tracker      input.Tracker
	actions      []fleet.Action // Reused per frame
	effects      effects
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	sound        Sound
	twoPlayer    bool
	rng          *rand.Rand
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, settings.Width, settings.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Session{
		settings:     settings,
		state:        NewSessionState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r, settings),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		sound:        opts.Sound,
		twoPlayer:    opts.TwoPlayer,
		rng:          rng,
	}
}

// Run creates a session and runs it until the player quits, the input ends
// or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run(ctx)
}

// Run starts the session loop with the standard Input → Update → Draw cycle.
func (s *Session) Run(ctx context.Context) error {
	defer s.inputStream.Stop()
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	frameTime := time.Second / time.Duration(s.settings.FPS)
	tick := 1.0 / float64(s.settings.FPS)
	lastTime := time.Now()

	for s.state.Running {
		select {
		case <-ctx.Done():
			s.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()
		s.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		s.processInput()

		// ===== UPDATE PHASE =====
		s.updateScreen()

		switch s.state.GameState {
		case GameStateStart:
			s.updateStartState()
		case GameStatePlaying:
			s.updatePlayingState(tick)
		case GameStateResult:
			s.updateResultState(tick)
		}
		s.effects.update(tick)

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// processInput reads input and tracks inactivity.
func (s *Session) processInput() {
	s.state.Input = input.ReadInput(s.inputStream)

	if len(s.state.Input.Pressed) > 0 {
		s.lastInput = time.Now()
		s.state.isInactive = false
	} else if time.Since(s.lastInput).Seconds() > loopconfig.InactivityDisconnectUser {
		s.logger.Info("disconnecting inactive session")
		s.state.Running = false
	} else if time.Since(s.lastInput).Seconds() > loopconfig.InactivityWarnUser {
		s.state.isInactive = true
	}

	if s.state.Input.Quit || s.state.Input.Closed {
		s.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.writer)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, loopconfig.MaxTermWidth)
	renderHeight = min(termHeight, loopconfig.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the title screen.
func (s *Session) updateStartState() {
	if s.state.Input.Space || s.state.Input.Enter {
		s.startMatch()
	}
}

// updatePlayingState feeds the human players' actions to the match, ticks it
// and reacts to what happened.
func (s *Session) updatePlayingState(dt float64) {
	for player := 1; player <= 2; player++ {
		if s.match.Computer(player) {
			continue
		}
		s.actions = s.tracker.Actions(s.actions[:0], player, s.state.Input.Players[player-1])
		for _, a := range s.actions {
			s.match.Handle(player, a)
		}
	}

	s.match.Tick(dt)
	s.drainEvents()

	if !s.match.Running() {
		s.finishMatch()
	}
}

// drainEvents hands this frame's match events to the effects and the sound.
func (s *Session) drainEvents() {
	for {
		select {
		case e := <-s.match.Events():
			s.effects.handle(e)
			if s.sound != nil {
				s.sound.Play(e)
			}
		default:
			return
		}
	}
}

// updateResultState waits out the input delay, then restarts on SPACE.
func (s *Session) updateResultState(dt float64) {
	if s.state.resultTimer > 0 {
		s.state.resultTimer = max(s.state.resultTimer-dt, 0)
		return
	}
	if s.state.Input.Space || s.state.Input.Enter {
		s.startMatch()
	}
}

// startMatch starts a new match, replacing any previous one.
func (s *Session) startMatch() {
	s.inputStream.Reset()
	s.tracker.Reset()
	s.effects.reset()

	opts := game.Options{Rand: s.rng, Logger: s.logger}
	if !s.twoPlayer {
		opts.Strategies[1] = fleet.NewRandomStrategy(s.settings.AIDecisionInterval, s.rng)
	}
	s.match = game.New(s.settings, opts)
	s.state.GameState = GameStatePlaying
}

func (s *Session) finishMatch() {
	switch s.match.Status() {
	case game.Player1Wins:
		s.state.Wins[0]++
	case game.Player2Wins:
		s.state.Wins[1]++
	case game.Stalemate:
		s.state.Stalemates++
	}
	s.state.resultTimer = loopconfig.ResultInputDelaySeconds
	s.state.GameState = GameStateResult
}
