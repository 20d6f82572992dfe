package zedit

import "image/color"

// Cursor is the caret glyph: a filled rectangle one row high. It remembers where it was drawn
// last so it can be erased from a saved background before being drawn somewhere else.
type Cursor struct {
	left    float32
	top     float32
	width   float32
	height  float32
	color   color.Color
	blend   BlendMode
	visible bool
}

// NewCursor returns a caret of the given width and fill color.
func NewCursor(width float32, c color.Color, mode BlendMode) *Cursor {
	return &Cursor{width: width, color: c, blend: mode}
}

// Height returns the caret height, which is the row height of the current font.
func (c *Cursor) Height(r Renderer) float32 {
	return RowHeight(r)
}

// Rect returns the region covered by the most recently drawn caret.
func (c *Cursor) Rect() Rect {
	return Rect{X: c.left, Y: c.top, Width: c.width, Height: c.height}
}

// Visible returns true if the caret pixels are currently on the surface.
func (c *Cursor) Visible() bool {
	return c.visible
}

// Draw moves the caret origin to (left, bottom-Height) and fills it.
func (c *Cursor) Draw(r Renderer, left, bottom float32) {
	c.height = c.Height(r)
	c.left = left
	c.top = bottom - c.height
	r.FillRect(c.Rect(), c.color, c.blend)
	c.visible = true
}

// Erase restores the caret region from saved.
func (c *Cursor) Erase(r Renderer, saved Surface) {
	r.Restore(saved, c.Rect())
	c.visible = false
}

func (c *Cursor) bottom() float32 {
	return c.top + c.height
}
