package zedit

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Rect is an axis-aligned rectangle in surface pixel coordinates. X and Y are the top-left corner,
// Y grows downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains returns true if the point lies in the half-open rectangle [X, X+Width) x [Y, Y+Height).
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the largest rectangle contained by both r and s, or the zero Rect if
// they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := math32.Max(r.X, s.X)
	y0 := math32.Max(r.Y, s.Y)
	x1 := math32.Min(r.X+r.Width, s.X+s.Width)
	y1 := math32.Min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Paint holds the colors text is drawn with. Both the stroke and the fill pass are drawn,
// stroke first.
type Paint struct {
	Stroke color.Color
	Fill   color.Color
}

// Surface is a captured rectangular pixel region that a Renderer can put back later.
type Surface interface {
	Bounds() Rect
}

// Renderer is the raster drawing surface the editing model paints on. All measurements use
// the renderer's current font, so they must never be cached across a font change.
type Renderer interface {
	// Bounds returns the full drawable area.
	Bounds() Rect
	// MeasureWidth returns the pixel advance of text in the current font.
	MeasureWidth(text string) float32
	// DrawText strokes and fills text left-aligned at left with its bottom at bottom.
	DrawText(text string, left, bottom float32, paint Paint)
	// FillRect composites c over the region using the given blend mode.
	FillRect(r Rect, c color.Color, mode BlendMode)
	// Snapshot captures the pixels of the region.
	Snapshot(r Rect) Surface
	// Restore copies the part of s that falls into r back onto the live surface.
	Restore(s Surface, r Rect)
}

// ReferenceGlyph is the glyph whose advance defines the height of a row and of the caret. Rows
// are measured with "W" just like the caret, not with the narrower "w", so a row is as high as
// the caret drawn in it and slightly taller than a row measured from "w" would be.
const ReferenceGlyph = "W"

// RowHeight returns the height of a text row in the renderer's current font. This is an
// approximation from the advance of ReferenceGlyph plus one sixth leading, not real font metrics.
func RowHeight(r Renderer) float32 {
	h := r.MeasureWidth(ReferenceGlyph)
	return h + h/6
}
