package raster

import (
	"image/color"
	"testing"
	"time"

	"github.com/rasteric/zedit-canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inkIn counts the pixels in [x0,x1) x [y0,y1) that differ from white.
func inkIn(s *Surface, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if s.At(x, y) != white {
				n++
			}
		}
	}
	return n
}

// pixels returns the colors of [x0,x1) x [y0,y1) row by row.
func pixels(s *Surface, x0, y0, x1, y1 int) []color.Color {
	var out []color.Color
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			out = append(out, s.At(x, y))
		}
	}
	return out
}

func TestParagraphOnSurface(t *testing.T) {
	s := newWhiteSurface(t)
	config := zedit.NewConfig()
	config.CaretOnDuration = time.Hour
	config.CaretOffDuration = time.Hour
	config.StrokeColor = nil
	config.FillColor = color.Black
	p := zedit.StartParagraph(s, config, s.Snapshot(s.Bounds()), 20, 40)
	defer p.Close()

	p.Insert("Hi")
	assert.Positive(t, inkIn(s, 20, 27, 34, 40), "text is drawn")
	caret := p.Cursor().Rect()
	assert.Equal(t, float32(34), caret.X)
	assert.Positive(t, inkIn(s, 34, 32, 36, 40), "caret is drawn")

	p.NewLine()
	assert.Equal(t, "Hi\n", p.Text())
	p.Insert("x")
	assert.Positive(t, inkIn(s, 20, 36, 27, 48))

	p.Backspace()
	p.Backspace()
	p.Backspace()
	p.Backspace()
	assert.Equal(t, "", p.Text())
	assert.Zero(t, inkIn(s, 23, 20, 100, 60), "everything right of the caret is erased")

	p.ClearCursor()
	assert.Zero(t, inkIn(s, 0, 0, 200, 100))
}

func TestCaretInsideTextKeepsGlyphs(t *testing.T) {
	s := newWhiteSurface(t)
	config := zedit.NewConfig()
	config.CaretOnDuration = time.Hour
	config.CaretOffDuration = time.Hour
	p := zedit.StartParagraph(s, config, s.Snapshot(s.Bounds()), 20, 40)
	defer p.Close()

	// the caret sits right of the text at x=48
	p.Insert("MMMM")
	require.Equal(t, float32(48), p.Cursor().Rect().X)
	text := pixels(s, 16, 24, 48, 44)
	ink := inkIn(s, 16, 24, 48, 44)
	require.Positive(t, ink)

	p.SetCaret(zedit.CharPos{Line: 0, Column: 1})
	assert.Equal(t, float32(27), p.Cursor().Rect().X)
	p.ClearCursor()
	assert.Equal(t, ink, inkIn(s, 16, 24, 48, 44))
	assert.Equal(t, text, pixels(s, 16, 24, 48, 44))

	// a second paragraph snapshots the surface with the first one intact
	q := zedit.StartParagraph(s, config, s.Snapshot(s.Bounds()), 20, 80)
	defer q.Close()
	q.Insert("x")
	q.Backspace()
	assert.Equal(t, text, pixels(s, 16, 24, 48, 44))
}
