package loop

import (
	"time"

	"github.com/tomz197/splitfleet/internal/input"
)

// GameState represents the current screen of a session.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Match in progress
	GameStateResult                   // Match over, show the winner
)

// SessionState holds per-session state (input, screen, tallies).
type SessionState struct {
	Input         input.Input
	GameState     GameState
	Running       bool          // Session loop running
	Wins          [2]int        // Matches won by each player this session
	Stalemates    int           // Matches where both fleets died
	resultTimer   float64       // Seconds until the result screen accepts input
	delta         time.Duration // Frame delta time
	prevGameState GameState     // For detecting screen transitions
	isInactive    bool          // Whether the inactivity warning is shown
	wasInactive   bool
}

// NewSessionState creates a new initialized session state.
func NewSessionState() *SessionState {
	return &SessionState{
		GameState: GameStateStart,
		Running:   true,
	}
}
