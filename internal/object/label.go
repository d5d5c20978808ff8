package object

import (
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Label is a short text that floats upward from an arena position and
// disappears after its lifetime, e.g. "+1" when a ship picks up a Plus.
type Label struct {
	Pos      physics.Vector2
	Value    string
	Color    draw.Color
	Lifetime float64 // Seconds remaining
}

// labelRise is how fast labels drift upward, in arena units per second.
const labelRise = 60.0

// Update moves the label. It returns true once the label has expired.
func (l *Label) Update(dt float64) bool {
	l.Lifetime -= dt
	l.Pos.Y -= labelRise * dt
	return l.Lifetime <= 0
}

// Draw writes the text at the terminal cell under its position.
func (l *Label) Draw(ctx DrawContext) error {
	if l.Value == "" || ctx.Writer == nil {
		return nil
	}
	col, row := ctx.Canvas.LogicalToTerminal(l.Pos.X, l.Pos.Y)
	col -= len(l.Value) / 2
	if col < 1 {
		col = 1
	}
	if row < 1 || row > ctx.Canvas.TerminalHeight() || col+len(l.Value) > ctx.Canvas.TerminalWidth() {
		return nil
	}
	ctx.Writer.WriteColorAt(col, row, l.Color, l.Value)
	ctx.Canvas.MarkTextDirty(col, row, len(l.Value))
	return nil
}
