package loop

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/fleet"
	"github.com/tomz197/splitfleet/internal/game"
	loopconfig "github.com/tomz197/splitfleet/internal/loop/config"
	"github.com/tomz197/splitfleet/internal/object"
)

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := s.state.GameState != s.state.prevGameState
	inactiveChanged := s.state.isInactive != s.state.wasInactive
	if stateChanged || inactiveChanged {
		s.chunkWriter.Clear()
		s.canvas.ForceRedraw()
		s.state.prevGameState = s.state.GameState
		s.state.wasInactive = s.state.isInactive
	}

	s.canvas.Clear()

	ctx := object.DrawContext{
		Canvas: s.canvas,
		Writer: s.chunkWriter,
	}

	// The arena stays visible behind the result screen.
	showArena := s.match != nil && s.state.GameState != GameStateStart
	if showArena {
		if err := s.drawArena(ctx); err != nil {
			return err
		}
	}

	// Render canvas to terminal
	s.canvas.Render(s.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	s.canvas.RenderBorder(s.chunkWriter)

	// Text overlays go after the canvas so it cannot paint over them.
	if showArena {
		for _, f := range s.match.Fleets() {
			for _, ship := range f.Ships() {
				ship.DrawLabel(ctx)
			}
		}
		if err := s.effects.drawLabels(ctx); err != nil {
			return err
		}
	}

	s.drawUI()

	return s.chunkWriter.Flush()
}

// drawArena draws force fields, powerups, projectiles, ships and particles.
func (s *Session) drawArena(ctx object.DrawContext) error {
	for _, f := range s.match.Forces() {
		if err := f.Draw(ctx); err != nil {
			return err
		}
	}
	for _, p := range s.match.Powerups() {
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}
	for _, f := range s.match.Fleets() {
		for _, p := range f.Projectiles() {
			if err := p.Draw(ctx); err != nil {
				return err
			}
		}
		for _, ship := range f.Ships() {
			if err := ship.Draw(ctx); err != nil {
				return err
			}
		}
	}
	return s.effects.drawParticles(ctx)
}

// drawUI draws the UI overlay for the current screen.
func (s *Session) drawUI() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.state.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	switch s.state.GameState {
	case GameStateStart:
		s.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		s.drawPlayingHUD(termWidth, termHeight)
	case GameStateResult:
		s.drawPlayingHUD(termWidth, termHeight)
		s.drawResultScreen(centerX, centerY)
	}
}

// writeCentered writes text centered on centerX. Widths count runes so box
// drawing characters center correctly.
func (s *Session) writeCentered(centerX, row int, text string) {
	s.chunkWriter.WriteAt(centerX-utf8.RuneCountInString(text)/2, row, text)
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(loopconfig.InactivityDisconnectUser-time.Since(s.lastInput).Seconds()),
	)
	s.writeCentered(centerX, centerY, msg)
	s.writeCentered(centerX, centerY+2, "Press any key to continue")
}

var titleArt = []string{
	`╔═╗╔═╗╦  ╦╔╦╗  ╔═╗╦  ╔═╗╔═╗╔╦╗`,
	`╚═╗╠═╝║  ║ ║   ╠╣ ║  ║╣ ║╣  ║ `,
	`╚═╝╩  ╩═╝╩ ╩   ╚  ╩═╝╚═╝╚═╝ ╩ `,
}

// drawStartScreen draws the title screen with both players' controls.
func (s *Session) drawStartScreen(centerX, centerY int) {
	titleStartY := centerY - 8
	for i, line := range titleArt {
		s.writeCentered(centerX, titleStartY+i, line)
	}

	mode := "~ Player 1 vs Computer ~"
	if s.twoPlayer {
		mode = "~ Player 1 vs Player 2 ~"
	}
	s.writeCentered(centerX, titleStartY+len(titleArt)+1, mode)

	controlsY := titleStartY + len(titleArt) + 3
	s.writeCentered(centerX, controlsY, "Controls")

	s.writeCentered(centerX, controlsY+1, "              Rotate  Fire    Split   Switch")
	row := controlsY + 2
	for i := 0; i < 2; i++ {
		if i == 1 && !s.twoPlayer {
			break
		}
		line := controlLine(fmt.Sprintf("Player %d", i+1), s.settings.Players[i])
		color := object.PlayerColor(i + 1)
		s.chunkWriter.WriteColorAt(centerX-utf8.RuneCountInString(line)/2, row, color, line)
		row++
	}

	lines := []string{
		"",
		"Hold rotate to turn, tap it twice to boost.",
		"Split halves a ship, same-side ships merge on contact.",
		"Powerups: yellow laser, red mine, green +1 value.",
	}
	for i, line := range lines {
		s.writeCentered(centerX, row+i, line)
	}
	row += len(lines)

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		s.writeCentered(centerX, row+1, ">>  Press SPACE to Start  <<")
	}
	s.writeCentered(centerX, row+3, "Q to quit")
}

// controlLine lays out one player's key bindings under the column headers.
func controlLine(name string, keys config.PlayerKeys) string {
	return fmt.Sprintf("%-12s  %-6s  %-6s  %-6s  %-6s",
		name, keyLabel(keys.Rotate), keyLabel(keys.Fire), keyLabel(keys.Split), keyLabel(keys.Switch))
}

func keyLabel(name string) string {
	switch name {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return strings.ToUpper(name)
}

// drawPlayingHUD draws each fleet's status in the top corners and the
// session tally at the bottom.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we no longer clear every frame).
func (s *Session) drawPlayingHUD(termWidth, termHeight int) {
	cw := s.chunkWriter
	fleets := s.match.Fleets()

	left := fleetStatus(fleets[0])
	cw.WriteColorAt(2, 1, object.PlayerColor(1), left)

	right := fleetStatus(fleets[1])
	cw.WriteColorAt(termWidth-utf8.RuneCountInString(right)-1, 1, object.PlayerColor(2), right)

	name2 := "P2"
	if s.match.Computer(2) {
		name2 = "CPU"
	}
	tally := fmt.Sprintf("P1 %d : %d %-3s  draws %d", s.state.Wins[0], s.state.Wins[1], name2, s.state.Stalemates)
	cw.WriteAt(2, termHeight, tally)

	clock := fmt.Sprintf("%4.0fs", s.match.Elapsed())
	cw.WriteAt(termWidth-len(clock)-1, termHeight, clock)
}

// fleetStatus summarizes a fleet and its active ship's weapon.
func fleetStatus(f *fleet.Fleet) string {
	weapon := "-"
	if ship := f.Active(); ship != nil {
		if ship.Weapon.Loadout == object.KindBullet {
			weapon = strings.Repeat("•", ship.Weapon.BulletAmmo) + strings.Repeat("·", ship.Weapon.MaxBulletAmmo-ship.Weapon.BulletAmmo)
		} else {
			weapon = ship.Weapon.Loadout.String()
		}
	}
	return fmt.Sprintf("P%d ships %-2d value %-3d %-8s", f.Player, f.Len(), f.TotalValue(), weapon)
}

// drawResultScreen draws the match result over the arena.
func (s *Session) drawResultScreen(centerX, centerY int) {
	var banner string
	switch s.match.Status() {
	case game.Player1Wins:
		banner = "PLAYER 1 WINS"
	case game.Player2Wins:
		banner = "PLAYER 2 WINS"
		if s.match.Computer(2) {
			banner = "THE COMPUTER WINS"
		}
	default:
		banner = "STALEMATE"
	}

	if s.state.resultTimer > 0 && !object.ShouldRenderBlink(s.state.resultTimer, loopconfig.ResultBlinkFrequency) {
		return
	}
	frame := "+" + strings.Repeat("-", len(banner)+4) + "+"
	s.writeCentered(centerX, centerY-2, frame)
	s.writeCentered(centerX, centerY-1, "|  "+banner+"  |")
	s.writeCentered(centerX, centerY, frame)

	if s.state.resultTimer <= 0 {
		s.writeCentered(centerX, centerY+2, ">>  Press SPACE for a rematch  <<")
		s.writeCentered(centerX, centerY+3, "Q to quit")
	}
}
