package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOnlyRepaintsChangedCells(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	c.SetColor(ColorCyan)
	c.SetFloat(2, 2)

	var first bytes.Buffer
	c.Render(&first)
	// Every cell is stale on the first frame.
	assert.Equal(t, 50, strings.Count(first.String(), "H"))
	assert.Contains(t, first.String(), string(BlockUpperHalf))
	assert.Contains(t, first.String(), "\033[0;96m")

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String(), "unchanged frame writes nothing")

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	assert.Equal(t, 1, strings.Count(third.String(), "H"), "only the erased cell is repainted")
}

func TestMarkTextDirtyAndForceRedraw(t *testing.T) {
	c := NewScaledCanvas(8, 4, 8, 8)
	c.Render(&bytes.Buffer{})

	c.MarkTextDirty(2, 1, 3)
	var buf bytes.Buffer
	c.Render(&buf)
	assert.Equal(t, 3, strings.Count(buf.String(), "H"))

	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	assert.Equal(t, 32, strings.Count(buf.String(), "H"))
}

func TestTwoColorsShareACell(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetColor(ColorRed)
	c.SetFloat(0, 0)
	c.SetColor(ColorBlue)
	c.SetFloat(0, 1)

	var buf bytes.Buffer
	c.Render(&buf)
	assert.Contains(t, buf.String(), "\033[0;91;104m"+string(BlockUpperHalf))
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(120, 45, 1200, 900)
	col, row := c.LogicalToTerminal(600, 450)
	assert.Equal(t, 61, col)
	assert.Equal(t, 23, row)
}

func TestChunkWriterFlushAppliesOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	cw.WriteAt(1, 1, "hi")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[4;3Hhi", out.String())
}

func TestChunkWriterColorText(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.WriteColorAt(5, 2, ColorRed, "P1")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;5H"+ColorRed.FG()+"P1"+ColorReset, out.String())
}

func TestChunkWriterClearAndChunking(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.Clear()
	big := strings.Repeat("x", 3*maxChunkSize+7)
	_, err := cw.Write([]byte(big))
	require.NoError(t, err)
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[H\033[2J"+big, out.String())

	// The frame is reset after a flush.
	out.Reset()
	require.NoError(t, cw.Flush())
	assert.Empty(t, out.String())
}
