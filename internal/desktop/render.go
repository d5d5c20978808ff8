package desktop

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/game"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

// palette maps the terminal colors onto RGBA.
var palette = map[draw.Color]color.RGBA{
	draw.ColorWhite:   {235, 235, 235, 255},
	draw.ColorGray:    {120, 120, 120, 255},
	draw.ColorRed:     {230, 60, 60, 255},
	draw.ColorGreen:   {60, 220, 90, 255},
	draw.ColorYellow:  {240, 220, 60, 255},
	draw.ColorBlue:    {70, 110, 240, 255},
	draw.ColorMagenta: {220, 70, 220, 255},
	draw.ColorCyan:    {60, 220, 230, 255},
}

func rgba(c draw.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[draw.ColorWhite]
}

func drawArena(screen *ebiten.Image, m *game.Match) {
	for _, f := range m.Forces() {
		clr := rgba(draw.ColorRed)
		if f.Kind == config.Attraction {
			clr = rgba(draw.ColorBlue)
		}
		vector.StrokeCircle(screen, float32(f.Pos.X), float32(f.Pos.Y), float32(f.Radius), 1, clr, true)
	}

	for _, p := range m.Powerups() {
		drawPowerup(screen, p)
	}

	for _, f := range m.Fleets() {
		for _, p := range f.Projectiles() {
			drawProjectile(screen, p)
		}
		for _, s := range f.Ships() {
			drawShip(screen, s)
		}
	}
}

func drawPowerup(screen *ebiten.Image, p *object.Powerup) {
	clr := rgba(draw.ColorGreen)
	switch p.Kind {
	case object.KindLaserBeam:
		clr = rgba(draw.ColorYellow)
	case object.KindMine:
		clr = rgba(draw.ColorRed)
	}
	x, y, r := float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius)
	vector.StrokeCircle(screen, x, y, r, 2, clr, true)
	if p.Kind == object.KindPlus {
		vector.StrokeLine(screen, x-r/2, y, x+r/2, y, 2, clr, true)
		vector.StrokeLine(screen, x, y-r/2, x, y+r/2, 2, clr, true)
	} else {
		vector.DrawFilledCircle(screen, x, y, r/3, clr, true)
	}
}

func drawProjectile(screen *ebiten.Image, p object.Projectile) {
	clr := rgba(object.PlayerColor(p.Owner()))
	switch p := p.(type) {
	case *object.Bullet:
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), clr, true)
	case *object.LaserBeam:
		for _, seg := range p.Segments() {
			vector.StrokeLine(screen, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y),
				float32(p.Width), rgba(draw.ColorYellow), true)
		}
	case *object.Mine:
		x, y := float32(p.Pos.X), float32(p.Pos.Y)
		switch p.Phase() {
		case object.MineDormant:
			vector.DrawFilledCircle(screen, x, y, float32(p.Size/2), clr, true)
		case object.MineArmed:
			if object.ShouldRenderBlink(p.Countdown(), 8) {
				vector.DrawFilledCircle(screen, x, y, float32(p.Size/2), rgba(draw.ColorRed), true)
			}
			vector.StrokeCircle(screen, x, y, float32(p.ExplosionRadius), 1, rgba(draw.ColorGray), true)
		case object.MineExploding:
			vector.DrawFilledCircle(screen, x, y, float32(p.ExplosionRadius), color.RGBA{240, 200, 60, 160}, true)
		}
	}
}

// drawShip draws the triangle, heavier for the active ship, and its value.
func drawShip(screen *ebiten.Image, s *object.Spaceship) {
	clr := rgba(object.PlayerColor(s.Player))
	r := s.Radius()
	a := physics.DegToRad(s.Angle)
	nose := physics.Vector2{X: s.Pos.X + math.Cos(a)*r, Y: s.Pos.Y + math.Sin(a)*r}
	left := physics.Vector2{X: s.Pos.X + math.Cos(a+2.5)*r*0.8, Y: s.Pos.Y + math.Sin(a+2.5)*r*0.8}
	right := physics.Vector2{X: s.Pos.X + math.Cos(a-2.5)*r*0.8, Y: s.Pos.Y + math.Sin(a-2.5)*r*0.8}

	width := float32(1.5)
	if s.Active {
		width = 4
	}
	for _, seg := range [][2]physics.Vector2{{nose, left}, {left, right}, {right, nose}} {
		vector.StrokeLine(screen, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y), width, clr, true)
	}

	label := strconv.Itoa(s.Value)
	if s.Weapon.Loadout != object.KindBullet {
		label += string(s.Weapon.Loadout.String()[0])
	}
	ebitenutil.DebugPrintAt(screen, label, int(s.Pos.X+r), int(s.Pos.Y-r-8))
}
