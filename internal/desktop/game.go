// Package desktop runs matches in a window. It drives the same match and
// action surface as the terminal session, but gets real key releases from
// the window system.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/fleet"
	"github.com/tomz197/splitfleet/internal/game"
)

// Sound plays an effect for a match event without blocking.
type Sound interface {
	Play(e event.Event)
}

// Options configures a window game.
type Options struct {
	Settings  *config.Settings // Defaults when nil
	Logger    *log.Logger
	Sound     Sound
	TwoPlayer bool // Otherwise player 2 is the computer
	Rand      *rand.Rand
}

// Game implements ebiten.Game.
type Game struct {
	settings  *config.Settings
	keys      [2]playerKeys
	match     *game.Match
	logger    *log.Logger
	sound     Sound
	twoPlayer bool
	rng       *rand.Rand
	wins      [2]int
	draws     int
}

// NewGame resolves the key bindings and prepares the title screen.
func NewGame(opts Options) (*Game, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	keys, err := resolveKeys(settings.Players)
	if err != nil {
		return nil, errors.Wrap(err, "bind keys")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		settings:  settings,
		keys:      keys,
		logger:    logger,
		sound:     opts.Sound,
		twoPlayer: opts.TwoPlayer,
		rng:       rng,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(int(g.settings.Width), int(g.settings.Height))
	ebiten.SetWindowTitle(g.settings.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(g.settings.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}

// Update advances one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (inpututil.IsKeyJustPressed(ebiten.KeyQ) && !g.bound(ebiten.KeyQ)) {
		return ebiten.Termination
	}

	if g.match == nil || !g.match.Running() {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startMatch()
		}
		return nil
	}

	for i, k := range g.keys {
		player := i + 1
		if g.match.Computer(player) {
			continue
		}
		if inpututil.IsKeyJustPressed(k.rotate) {
			g.match.Handle(player, fleet.RotateHoldOn)
		}
		if inpututil.IsKeyJustReleased(k.rotate) {
			g.match.Handle(player, fleet.RotateHoldOff)
		}
		if inpututil.IsKeyJustPressed(k.fire) {
			g.match.Handle(player, fleet.Fire)
		}
		if inpututil.IsKeyJustPressed(k.split) {
			g.match.Handle(player, fleet.Split)
		}
		if inpututil.IsKeyJustPressed(k.switchShip) {
			g.match.Handle(player, fleet.Switch)
		}
	}

	g.match.Tick(1 / float64(ebiten.TPS()))
	g.drainEvents()

	if !g.match.Running() {
		switch g.match.Status() {
		case game.Player1Wins:
			g.wins[0]++
		case game.Player2Wins:
			g.wins[1]++
		case game.Stalemate:
			g.draws++
		}
	}
	return nil
}

// bound reports whether k is one of the players' keys.
func (g *Game) bound(k ebiten.Key) bool {
	for _, p := range g.keys {
		if k == p.rotate || k == p.fire || k == p.split || k == p.switchShip {
			return true
		}
	}
	return false
}

func (g *Game) startMatch() {
	opts := game.Options{Rand: g.rng, Logger: g.logger}
	if !g.twoPlayer {
		opts.Strategies[1] = fleet.NewRandomStrategy(g.settings.AIDecisionInterval, g.rng)
	}
	g.match = game.New(g.settings, opts)
}

func (g *Game) drainEvents() {
	for {
		select {
		case e := <-g.match.Events():
			if g.sound != nil {
				g.sound.Play(e)
			}
		default:
			return
		}
	}
}

// Layout keeps the arena's logical size; the window scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.settings.Width), int(g.settings.Height)
}

// Draw renders the arena and the overlay text.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.match == nil {
		g.drawTitle(screen)
		return
	}

	drawArena(screen, g.match)
	g.drawHUD(screen)
	if !g.match.Running() {
		g.drawResult(screen)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	cx, cy := int(g.settings.Width/2), int(g.settings.Height/2)
	mode := "Player 1 vs Computer"
	if g.twoPlayer {
		mode = "Player 1 vs Player 2"
	}
	lines := []string{
		"SPLIT FLEET",
		mode,
		"",
		controlsLine("P1", g.settings.Players[0]),
	}
	if g.twoPlayer {
		lines = append(lines, controlsLine("P2", g.settings.Players[1]))
	}
	lines = append(lines, "", "Press SPACE to start, ESC to quit")
	for i, line := range lines {
		printCentered(screen, line, cx, cy-60+i*16)
	}
}

func controlsLine(name string, k config.PlayerKeys) string {
	return fmt.Sprintf("%s  rotate %s  fire %s  split %s  switch %s", name, k.Rotate, k.Fire, k.Split, k.Switch)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	for i, f := range g.match.Fleets() {
		text := fmt.Sprintf("P%d ships %d value %d", f.Player, f.Len(), f.TotalValue())
		x := 10
		if i == 1 {
			x = int(g.settings.Width) - 10 - len(text)*debugCharWidth
		}
		ebitenutil.DebugPrintAt(screen, text, x, 10)
	}
	tally := fmt.Sprintf("P1 %d : %d P2  draws %d  %.0fs", g.wins[0], g.wins[1], g.draws, g.match.Elapsed())
	ebitenutil.DebugPrintAt(screen, tally, 10, int(g.settings.Height)-20)
}

func (g *Game) drawResult(screen *ebiten.Image) {
	banner := "STALEMATE"
	switch g.match.Status() {
	case game.Player1Wins:
		banner = "PLAYER 1 WINS"
	case game.Player2Wins:
		banner = "PLAYER 2 WINS"
		if g.match.Computer(2) {
			banner = "THE COMPUTER WINS"
		}
	}
	cx, cy := int(g.settings.Width/2), int(g.settings.Height/2)
	printCentered(screen, banner, cx, cy-8)
	printCentered(screen, "Press SPACE for a rematch", cx, cy+16)
}

// debugCharWidth is the advance of the debug font in pixels.
const debugCharWidth = 6

func printCentered(screen *ebiten.Image, text string, cx, y int) {
	ebitenutil.DebugPrintAt(screen, text, cx-len(text)*debugCharWidth/2, y)
}

var _ ebiten.Game = (*Game)(nil)
