// Package draw renders game frames to ANSI terminals.
package draw

import "strconv"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a terminal foreground color. ColorNone marks an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
)

// ColorReset restores the default terminal colors.
const ColorReset = "\033[0m"

// sgrCode returns the bright foreground SGR code for c.
func (c Color) sgrCode() int {
	switch c {
	case ColorGray:
		return 90
	case ColorRed:
		return 91
	case ColorGreen:
		return 92
	case ColorYellow:
		return 93
	case ColorBlue:
		return 94
	case ColorMagenta:
		return 95
	case ColorCyan:
		return 96
	default:
		return 97
	}
}

// FG returns the escape sequence selecting c as the text color.
func (c Color) FG() string {
	if c == ColorNone {
		return ColorReset
	}
	return "\033[" + strconv.Itoa(c.sgrCode()) + "m"
}

// cellSGR returns the escape sequence for a half-block cell with fg on top of bg.
func cellSGR(fg, bg Color) string {
	s := "\033[0;" + strconv.Itoa(fg.sgrCode())
	if bg != ColorNone {
		s += ";" + strconv.Itoa(bg.sgrCode()+10)
	}
	return s + "m"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
