package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ChunkWriter collects one frame of terminal output: the canvas diff, the
// text overlays and the HUD. Flush sends it in network sized chunks, which
// keeps SSH sessions smooth. Positions are 1-based canvas cells and the
// centering offset is added to every one of them.
type ChunkWriter struct {
	frame  strings.Builder
	out    *bufio.Writer
	digits [20]byte
	offCol int
	offRow int
}

// NewChunkWriter returns a writer for w with the canvas at the given offset.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset moves the canvas, e.g. after the terminal was resized.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol, cw.offRow = offsetCol, offsetRow
}

func (cw *ChunkWriter) moveTo(col, row int) {
	cw.frame.WriteString("\033[")
	cw.frame.Write(strconv.AppendInt(cw.digits[:0], int64(row+cw.offRow), 10))
	cw.frame.WriteByte(';')
	cw.frame.Write(strconv.AppendInt(cw.digits[:0], int64(col+cw.offCol), 10))
	cw.frame.WriteByte('H')
}

// Write lets Canvas.Render append its diff to the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.frame.Write(p)
}

// Clear queues a full terminal clear ahead of the rest of the frame.
func (cw *ChunkWriter) Clear() {
	cw.frame.WriteString("\033[H\033[2J")
}

// WriteAt places s at a canvas cell in the current colors.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.moveTo(col, row)
	cw.frame.WriteString(s)
}

// WriteColorAt places s at a canvas cell in color c and restores the
// default colors after it.
func (cw *ChunkWriter) WriteColorAt(col, row int, c Color, s string) {
	cw.moveTo(col, row)
	cw.frame.WriteString(c.FG())
	cw.frame.WriteString(s)
	cw.frame.WriteString(ColorReset)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	data := cw.frame.String()
	cw.frame.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in cells. The SSH server answers
// it from window change requests.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc asks the local terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the cursor while a session runs.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor brings the cursor back when a session ends.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
