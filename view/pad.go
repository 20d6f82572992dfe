// Package view provides Pad, a fyne widget that lets the user click anywhere on a ruled
// raster surface and type paragraphs of text there.
package view

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rasteric/zedit-canvas"
	"github.com/rasteric/zedit-canvas/raster"
)

// Pad is a writing pad widget. A click outside of the current paragraph starts a new one at
// that point; the previous paragraph stays on the surface as part of the background. A click
// inside the current paragraph moves the caret.
type Pad struct {
	widget.BaseWidget
	Config             *zedit.Config
	Grid               GridStyle     // ruled background, see DrawBackground
	MinRefreshInterval time.Duration // how often the surface is checked for changes, read by NewPad (10ms)

	surface       *raster.Surface
	para          *zedit.Paragraph
	display       *canvas.Raster
	canvas        fyne.Canvas
	width, height int
	refreshCancel context.CancelFunc
	mutex         sync.Mutex
}

// NewPad returns a pad of the given pixel size displayed in canvas c. The font named in the
// config is loaded; if config is nil, zedit.NewConfig() is used.
func NewPad(width, height int, c fyne.Canvas, config *zedit.Config) (*Pad, error) {
	if config == nil {
		config = zedit.NewConfig()
	}
	face, err := raster.LoadFace(config.Font, config.FontSize)
	if err != nil {
		return nil, fmt.Errorf("creating pad: %w", err)
	}
	z := &Pad{
		Config:             config,
		Grid:               DefaultGrid(),
		MinRefreshInterval: 10 * time.Millisecond,
		surface:            raster.New(width, height, face),
		canvas:             c,
		width:              width,
		height:             height,
	}
	z.DrawBackground()
	// the generator runs on the render goroutine and gets its own copy of the pixels
	z.display = canvas.NewRaster(func(w, h int) image.Image { return z.surface.Copy() })
	z.display.ScaleMode = canvas.ImageScalePixels
	z.ExtendBaseWidget(z)
	z.startRefresher()
	return z, nil
}

// Surface returns the raster surface the pad draws on.
func (z *Pad) Surface() *raster.Surface {
	return z.surface
}

// Paragraph returns the paragraph being edited, or nil before the first click.
func (z *Pad) Paragraph() *zedit.Paragraph {
	z.mutex.Lock()
	defer z.mutex.Unlock()
	return z.para
}

// Close stops the caret and the refresh loop.
func (z *Pad) Close() {
	z.mutex.Lock()
	defer z.mutex.Unlock()
	z.para.Close()
	if z.refreshCancel != nil {
		z.refreshCancel()
		z.refreshCancel = nil
	}
}

// Clear removes all text and repaints the background.
func (z *Pad) Clear() {
	z.mutex.Lock()
	defer z.mutex.Unlock()
	z.para.Close()
	z.para = nil
	z.DrawBackground()
}

// PointerDown handles a click at (x, y) in surface pixels.
func (z *Pad) PointerDown(x, y float32) {
	z.mutex.Lock()
	defer z.mutex.Unlock()
	z.para.ClearCursor()
	if z.para != nil && z.para.IsPointInside(x, y) {
		z.para.MoveCursorCloseTo(x, y)
		return
	}
	background := z.surface.Snapshot(z.surface.Bounds())
	z.para = zedit.StartParagraph(z.surface, z.Config, background, x, y)
}

// TypeText starts a paragraph at (x, y) and types s into it; '\n' breaks the line.
func (z *Pad) TypeText(x, y float32, s string) {
	z.PointerDown(x, y)
	p := z.Paragraph()
	for _, r := range s {
		switch {
		case r == '\n':
			p.NewLine()
		case unicode.IsControl(r):
		default:
			p.Insert(string(r))
		}
	}
}

// SetFont loads the named font at size and re-lays out the current paragraph with it.
func (z *Pad) SetFont(name string, size float64) error {
	face, err := raster.LoadFace(name, size)
	if err != nil {
		return err
	}
	z.mutex.Lock()
	defer z.mutex.Unlock()
	z.Config.Font, z.Config.FontSize = name, size
	z.surface.SetFace(face)
	z.para.Refresh()
	return nil
}

// SetTextColors changes the stroke and fill color of the text, applied from the next edit on.
func (z *Pad) SetTextColors(stroke, fill color.Color) {
	z.mutex.Lock()
	defer z.mutex.Unlock()
	z.Config.StrokeColor, z.Config.FillColor = stroke, fill
	z.para.SetPaint(z.Config.Paint())
}

// startRefresher asks fyne to redraw the raster when the surface changed, at most once per
// MinRefreshInterval.
func (z *Pad) startRefresher() {
	ctx, cancel := context.WithCancel(context.Background())
	z.refreshCancel = cancel
	interval := z.MinRefreshInterval
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, dirty := z.surface.TakeDirty(); dirty {
					canvas.Refresh(z.display)
				}
			}
		}
	}()
}

// INPUT HANDLING

// Tapped focuses the pad and handles the click.
func (z *Pad) Tapped(evt *fyne.PointEvent) {
	if z.canvas != nil {
		z.canvas.Focus(z)
	}
	z.PointerDown(evt.Position.X, evt.Position.Y)
}

// TypedRune inserts r into the paragraph. Control characters are ignored.
func (z *Pad) TypedRune(r rune) {
	if unicode.IsControl(r) {
		return
	}
	z.Paragraph().Insert(string(r))
}

// TypedKey handles return, backspace and caret movement keys.
func (z *Pad) TypedKey(evt *fyne.KeyEvent) {
	p := z.Paragraph()
	switch evt.Name {
	case fyne.KeyBackspace:
		p.Backspace()
	case fyne.KeyReturn, fyne.KeyEnter:
		p.NewLine()
	case fyne.KeyLeft:
		p.MoveCaret(zedit.CaretLeft)
	case fyne.KeyRight:
		p.MoveCaret(zedit.CaretRight)
	case fyne.KeyUp:
		p.MoveCaret(zedit.CaretUp)
	case fyne.KeyDown:
		p.MoveCaret(zedit.CaretDown)
	case fyne.KeyHome:
		p.MoveCaret(zedit.CaretLineStart)
	case fyne.KeyEnd:
		p.MoveCaret(zedit.CaretLineEnd)
	}
}

func (z *Pad) FocusGained() {}

// FocusLost hides the caret.
func (z *Pad) FocusLost() {
	z.Paragraph().ClearCursor()
}

// Cursor returns the text cursor for mouse hovering.
func (z *Pad) Cursor() desktop.Cursor {
	return desktop.TextCursor
}

// MinSize returns the pixel size of the surface.
func (z *Pad) MinSize() fyne.Size {
	return fyne.NewSize(float32(z.width), float32(z.height))
}

// CreateRenderer creates the pad renderer.
func (z *Pad) CreateRenderer() fyne.WidgetRenderer {
	return &padRenderer{pad: z}
}

type padRenderer struct {
	pad *Pad
}

func (r *padRenderer) Destroy() {}

func (r *padRenderer) Layout(size fyne.Size) {
	r.pad.display.Resize(r.pad.MinSize())
}

func (r *padRenderer) MinSize() fyne.Size {
	return r.pad.MinSize()
}

func (r *padRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.pad.display}
}

func (r *padRenderer) Refresh() {
	canvas.Refresh(r.pad.display)
}
