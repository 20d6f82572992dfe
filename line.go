package zedit

import "golang.org/x/exp/slices"

// Line is one row of text anchored at a fixed left/bottom pixel position. The caret is a rune
// index into the text and marks where the next insertion lands.
type Line struct {
	text   []rune
	left   float32
	bottom float32
	caret  int
}

// NewLine returns an empty line whose text starts at left and whose bottom edge is at bottom.
func NewLine(left, bottom float32) *Line {
	return &Line{left: left, bottom: bottom}
}

// Text returns the text of the line.
func (l *Line) Text() string {
	return string(l.text)
}

// Len returns the number of runes in the line.
func (l *Line) Len() int {
	return len(l.text)
}

// Caret returns the caret column.
func (l *Line) Caret() int {
	return l.caret
}

// SetCaret moves the caret to column n, clamped to [0, Len()].
func (l *Line) SetCaret(n int) {
	l.caret = max(0, min(n, len(l.text)))
}

func (l *Line) Left() float32   { return l.left }
func (l *Line) Bottom() float32 { return l.bottom }

// Insert splices s into the text at the caret and advances the caret past it.
func (l *Line) Insert(s string) {
	if s == "" {
		return
	}
	r := []rune(s)
	l.text = slices.Insert(l.text, l.caret, r...)
	l.caret += len(r)
}

// RemoveCharacterBeforeCaret deletes the rune before the caret. It does nothing at column 0.
func (l *Line) RemoveCharacterBeforeCaret() {
	if l.caret == 0 {
		return
	}
	l.text = slices.Delete(l.text, l.caret-1, l.caret)
	l.caret--
}

// RemoveLastCharacter deletes the final rune of the text regardless of the caret.
func (l *Line) RemoveLastCharacter() {
	if len(l.text) == 0 {
		return
	}
	l.text = l.text[:len(l.text)-1]
	l.caret = min(l.caret, len(l.text))
}

// Width returns the rendered pixel width of the text.
func (l *Line) Width(r Renderer) float32 {
	return r.MeasureWidth(string(l.text))
}

// Height returns the row height, see RowHeight.
func (l *Line) Height(r Renderer) float32 {
	return RowHeight(r)
}

// inkRect returns the row box covered by the text, widened by slack on both sides. It is empty
// for an empty line.
func (l *Line) inkRect(r Renderer, slack float32) Rect {
	if len(l.text) == 0 {
		return Rect{}
	}
	h := l.Height(r)
	return Rect{X: l.left - slack, Y: l.bottom - h, Width: l.Width(r) + 2*slack, Height: h}
}

// CaretX returns the x coordinate of the caret.
func (l *Line) CaretX(r Renderer) float32 {
	return l.left + r.MeasureWidth(string(l.text[:l.caret]))
}

// Draw strokes and fills the text with its bottom at the line's bottom.
func (l *Line) Draw(r Renderer, paint Paint) {
	if len(l.text) == 0 {
		return
	}
	r.DrawText(string(l.text), l.left, l.bottom, paint)
}

// split cuts the text at the caret, keeps the part before it and returns the rest.
func (l *Line) split() string {
	after := string(l.text[l.caret:])
	l.text = slices.Clone(l.text[:l.caret])
	return after
}

// columnAt maps the x coordinate to the nearest caret column by stripping characters off the
// end of a copy of the line until the width boundaries straddle x. On an exact tie between two
// boundaries the later column wins.
func (l *Line) columnAt(r Renderer, x float32) int {
	tmp := &Line{text: slices.Clone(l.text), left: l.left, bottom: l.bottom}
	for tmp.Len() > 0 {
		before := tmp.left + tmp.Width(r)
		tmp.RemoveLastCharacter()
		after := tmp.left + tmp.Width(r)
		if after < x {
			if x-after < before-x {
				return tmp.Len()
			}
			return tmp.Len() + 1
		}
	}
	return 0
}
