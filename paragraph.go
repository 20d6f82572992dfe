package zedit

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

type CaretMovement int

const (
	CaretLeft CaretMovement = iota + 1
	CaretRight
	CaretUp
	CaretDown
	CaretLineStart
	CaretLineEnd
)

// Paragraph is a block of lines drawn on a renderer. It owns its lines and a single caret, and
// repaints itself after every edit by restoring the background it was created on and drawing
// all lines and the caret again.
//
// All methods are safe to call on a nil *Paragraph and on a paragraph without lines; edit
// commands are then ignored.
type Paragraph struct {
	Config *Config // paragraph configuration, cursor settings are read once on creation

	renderer    Renderer
	lines       []*Line
	active      *Line
	cursor      *Cursor
	left        float32
	top         float32
	background  Surface
	paint       Paint
	rows        *rowIndex
	caretShown  bool
	blinkCtx    context.Context
	blinkCancel context.CancelFunc
	mutex       sync.Mutex
}

// NewParagraph returns an empty paragraph with its top-left corner at (left, top). The
// background must have been captured before any text of this paragraph was drawn; every repaint
// restores it. If config is nil, NewConfig() is used.
func NewParagraph(r Renderer, config *Config, background Surface, left, top float32) *Paragraph {
	if config == nil {
		config = NewConfig()
	}
	return &Paragraph{
		Config:     config,
		renderer:   r,
		cursor:     NewCursor(config.CursorWidth, config.CursorColor, config.CursorBlend),
		left:       left,
		top:        top,
		background: background,
		paint:      config.Paint(),
		rows:       newRowIndex(),
	}
}

// StartParagraph creates a paragraph for a click at (x, y): the first line has its bottom at y,
// and the caret is shown at its start.
func StartParagraph(r Renderer, config *Config, background Surface, x, y float32) *Paragraph {
	p := NewParagraph(r, config, background, x, y-RowHeight(r))
	p.AddLine(NewLine(x, y))
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.moveCursor(p.active.CaretX(r), p.active.bottom)
	return p
}

// AddLine appends a line and makes it the active line. The first line keeps its position, later
// lines are placed directly below their predecessor.
func (p *Paragraph) AddLine(line *Line) {
	if p == nil || line == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.lines = append(p.lines, line)
	p.active = line
	p.reflow(len(p.lines) - 1)
}

// Lines returns the lines of the paragraph, top to bottom.
func (p *Paragraph) Lines() []*Line {
	if p == nil {
		return nil
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return slices.Clone(p.lines)
}

// ActiveLine returns the line that receives edits, or nil.
func (p *Paragraph) ActiveLine() *Line {
	if p == nil {
		return nil
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.active
}

// Text returns the text of all lines joined by newlines.
func (p *Paragraph) Text() string {
	if p == nil {
		return ""
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	texts := make([]string, len(p.lines))
	for i, line := range p.lines {
		texts[i] = line.Text()
	}
	return strings.Join(texts, "\n")
}

// Caret returns the position of the caret.
func (p *Paragraph) Caret() CharPos {
	if p == nil {
		return CharPos{}
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.active == nil {
		return CharPos{}
	}
	return CharPos{Line: slices.Index(p.lines, p.active), Column: p.active.caret}
}

// Cursor returns the caret of the paragraph.
func (p *Paragraph) Cursor() *Cursor {
	if p == nil {
		return nil
	}
	return p.cursor
}

// SetPaint sets the colors used for text from the next repaint on.
func (p *Paragraph) SetPaint(paint Paint) {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.paint = paint
}

// Bounds returns the area covered by the paragraph: as wide as its widest line and as high as
// all rows together.
func (p *Paragraph) Bounds() Rect {
	if p == nil {
		return Rect{}
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.bounds()
}

func (p *Paragraph) bounds() Rect {
	b := Rect{X: p.left, Y: p.top}
	for _, line := range p.lines {
		b.Width = max(b.Width, line.Width(p.renderer))
		b.Height += line.Height(p.renderer)
	}
	return b
}

// IsPointInside returns true if (x, y) lies within Bounds.
func (p *Paragraph) IsPointInside(x, y float32) bool {
	return p.Bounds().Contains(x, y)
}

// EDITING

// Insert inserts s at the caret of the active line.
func (p *Paragraph) Insert(s string) {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.active == nil {
		p.Config.logf("zedit: insert without active line ignored")
		return
	}
	if s == "" {
		return
	}
	p.eraseRegion()
	p.active.Insert(s)
	p.redraw()
}

// NewLine splits the active line at the caret. The text after the caret moves to a new line
// below, which becomes active with the caret at its start; all lines further down move one row
// down.
func (p *Paragraph) NewLine() {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.active == nil {
		p.Config.logf("zedit: new line without active line ignored")
		return
	}
	p.eraseRegion()
	idx := slices.Index(p.lines, p.active)
	height := p.active.Height(p.renderer)
	line := NewLine(p.active.left, p.active.bottom+height)
	line.Insert(p.active.split())
	line.caret = 0
	p.lines = slices.Insert(p.lines, idx+1, line)
	p.active = line
	p.reflow(idx + 2)
	p.redraw()
}

// Backspace deletes the character before the caret. At the start of a line the line is merged
// into the previous one and the caret is placed at the join. At the start of the first line
// nothing happens.
func (p *Paragraph) Backspace() {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.active == nil {
		p.Config.logf("zedit: backspace without active line ignored")
		return
	}
	if p.active.caret > 0 {
		p.eraseRegion()
		p.active.RemoveCharacterBeforeCaret()
		p.redraw()
		return
	}
	idx := slices.Index(p.lines, p.active)
	if idx == 0 {
		p.Config.logf("zedit: backspace at start of first line ignored")
		return
	}
	p.eraseRegion()
	prev := p.lines[idx-1]
	join := prev.Len()
	prev.text = append(prev.text, p.active.text...)
	prev.caret = join
	p.lines = slices.Delete(p.lines, idx, idx+1)
	p.active = prev
	p.reflow(idx)
	p.redraw()
}

// Refresh re-measures all lines with the renderer's current font, restores contiguous rows and
// repaints. Call it after the font changed.
func (p *Paragraph) Refresh() {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if len(p.lines) == 0 {
		return
	}
	p.top = p.lines[0].bottom - p.lines[0].Height(p.renderer)
	p.reflow(1)
	p.eraseRegion()
	p.drawLines()
	if p.caretShown {
		p.moveCursor(p.active.CaretX(p.renderer), p.active.bottom)
	}
}

// reflow places every line from index from on directly below its predecessor.
func (p *Paragraph) reflow(from int) {
	for i := max(from, 1); i < len(p.lines); i++ {
		prev := p.lines[i-1]
		p.lines[i].bottom = prev.bottom + prev.Height(p.renderer)
	}
	p.rows.invalidate()
}

// REPAINTING

// eraseRegion restores the whole background, which also removes the caret.
func (p *Paragraph) eraseRegion() {
	if p.background != nil {
		p.renderer.Restore(p.background, p.background.Bounds())
	}
	p.cursor.visible = false
}

func (p *Paragraph) drawLines() {
	for _, line := range p.lines {
		line.Draw(p.renderer, p.paint)
	}
}

// redraw draws all lines and then the caret at the active line. It must follow eraseRegion.
func (p *Paragraph) redraw() {
	p.drawLines()
	p.moveCursor(p.active.CaretX(p.renderer), p.active.bottom)
}

// hideCursor erases a visible caret. If the caret overlaps the text of a line, the background
// is restored and all lines are repainted, so no glyph pixels under the caret are lost. Text is
// widened by one caret width to cover the stroke.
func (p *Paragraph) hideCursor() {
	if !p.cursor.visible || p.background == nil {
		return
	}
	caret := p.cursor.Rect()
	for _, line := range p.lines {
		if !line.inkRect(p.renderer, p.cursor.width).Intersect(caret).Empty() {
			p.eraseRegion()
			p.drawLines()
			return
		}
	}
	p.cursor.Erase(p.renderer, p.background)
}

// moveCursor erases the caret if it is shown, draws it at (x, bottom) and starts blinking.
func (p *Paragraph) moveCursor(x, bottom float32) {
	p.hideCursor()
	p.cursor.Draw(p.renderer, x, bottom)
	p.caretShown = true
	p.startBlink()
}

// ClearCursor stops the caret from blinking and removes it, e.g. when the focus moves
// elsewhere. No blink step runs after ClearCursor returns.
func (p *Paragraph) ClearCursor() {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopBlink()
	p.hideCursor()
	p.caretShown = false
}

// Close releases the blink timer. The paragraph stays drawn.
func (p *Paragraph) Close() {
	p.ClearCursor()
}

// CARET POSITIONING

// MoveCursorCloseTo moves the caret to the column closest to (x, y). A point outside of every
// row is ignored.
func (p *Paragraph) MoveCursorCloseTo(x, y float32) {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	line, ok := p.rows.lineAt(p.renderer, p.lines, y)
	if !ok {
		p.Config.logf("zedit: point (%v, %v) is outside of all rows", x, y)
		return
	}
	line.caret = line.columnAt(p.renderer, x)
	p.active = line
	p.moveCursor(line.CaretX(p.renderer), line.bottom)
}

// MoveCaret moves the caret in the given direction. Left and right wrap around line ends, up and
// down keep the caret's x position as well as possible.
func (p *Paragraph) MoveCaret(dir CaretMovement) {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.active == nil {
		return
	}
	idx := slices.Index(p.lines, p.active)
	line := p.active
	switch dir {
	case CaretLeft:
		if line.caret > 0 {
			line.caret--
		} else if idx > 0 {
			line = p.lines[idx-1]
			line.caret = line.Len()
		}
	case CaretRight:
		if line.caret < line.Len() {
			line.caret++
		} else if idx < len(p.lines)-1 {
			line = p.lines[idx+1]
			line.caret = 0
		}
	case CaretUp, CaretDown:
		target := idx - 1
		if dir == CaretDown {
			target = idx + 1
		}
		if target < 0 || target >= len(p.lines) {
			return
		}
		x := line.CaretX(p.renderer)
		line = p.lines[target]
		line.caret = line.columnAt(p.renderer, x)
	case CaretLineStart:
		line.caret = 0
	case CaretLineEnd:
		line.caret = line.Len()
	default:
		return
	}
	p.active = line
	p.moveCursor(line.CaretX(p.renderer), line.bottom)
}

// SetCaret moves the caret to pos, clamped to the existing text.
func (p *Paragraph) SetCaret(pos CharPos) {
	if p == nil {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if len(p.lines) == 0 {
		return
	}
	last := p.lines[len(p.lines)-1]
	pos = MinPos(MaxPos(pos, CharPos{}), CharPos{Line: len(p.lines) - 1, Column: last.Len()})
	line := p.lines[pos.Line]
	line.SetCaret(pos.Column)
	p.active = line
	p.moveCursor(line.CaretX(p.renderer), line.bottom)
}
