// Package raster implements the zedit renderer on an in-memory RGBA image using
// golang.org/x/image font faces.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/chewxy/math32"
	"github.com/rasteric/zedit-canvas"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// StrokeWidth is the outline width of stroked text in pixels.
const StrokeWidth = 1

// Surface is a drawable RGBA image with a current font face. It is safe for concurrent use;
// every method locks the surface.
type Surface struct {
	img   *image.RGBA
	face  font.Face
	dirty bitset.BitSet // scanlines changed since the last TakeDirty
	mutex sync.Mutex
}

var _ zedit.Renderer = (*Surface)(nil)

// New returns a transparent surface of the given size.
func New(width, height int, face font.Face) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height)), face: face}
}

// SetFace changes the font used for measuring and drawing.
func (s *Surface) SetFace(face font.Face) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.face = face
}

// Copy returns a copy of the current pixels.
func (s *Surface) Copy() *image.RGBA {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// At returns the color of one pixel.
func (s *Surface) At(x, y int) color.Color {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.img.At(x, y)
}

// Bounds returns the size of the surface.
func (s *Surface) Bounds() zedit.Rect {
	return toRect(s.img.Rect)
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.Color) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	s.markDirty(s.img.Rect)
}

// MeasureWidth returns the advance of text in the current face.
func (s *Surface) MeasureWidth(text string) float32 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.face == nil || text == "" {
		return 0
	}
	return fromFixed(font.MeasureString(s.face, text))
}

// DrawText draws text with its bottom edge, the baseline plus the descent, at bottom. The stroke
// is drawn as copies of the text shifted by StrokeWidth in every direction, the fill on top.
func (s *Surface) DrawText(text string, left, bottom float32, paint zedit.Paint) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.face == nil || text == "" {
		return
	}
	dot := fixed.Point26_6{X: toFixed(left), Y: toFixed(bottom) - s.face.Metrics().Descent}
	d := font.Drawer{Dst: s.img, Face: s.face}
	if paint.Stroke != nil {
		d.Src = image.NewUniform(paint.Stroke)
		for dy := -StrokeWidth; dy <= StrokeWidth; dy++ {
			for dx := -StrokeWidth; dx <= StrokeWidth; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				d.Dot = dot.Add(fixed.P(dx, dy))
				d.DrawString(text)
			}
		}
	}
	if paint.Fill != nil {
		d.Src = image.NewUniform(paint.Fill)
		d.Dot = dot
		d.DrawString(text)
	}
	bounds, _ := font.BoundString(s.face, text)
	touched := image.Rect(
		(dot.X+bounds.Min.X).Floor()-StrokeWidth, (dot.Y+bounds.Min.Y).Floor()-StrokeWidth,
		(dot.X+bounds.Max.X).Ceil()+StrokeWidth, (dot.Y+bounds.Max.Y).Ceil()+StrokeWidth)
	s.markDirty(touched)
}

// FillRect composites c over the region. With BlendNone the color is alpha-composited,
// otherwise every pixel is replaced by the blend of itself and c.
func (s *Surface) FillRect(r zedit.Rect, c color.Color, mode zedit.BlendMode) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	pr := s.pixelRect(r)
	if pr.Empty() || c == nil {
		return
	}
	if mode == zedit.BlendNone {
		draw.Draw(s.img, pr, image.NewUniform(c), image.Point{}, draw.Over)
	} else {
		for y := pr.Min.Y; y < pr.Max.Y; y++ {
			for x := pr.Min.X; x < pr.Max.X; x++ {
				s.img.Set(x, y, zedit.Blend(mode, s.img.At(x, y), c))
			}
		}
	}
	s.markDirty(pr)
}

// Snapshot is a saved copy of a region of a Surface.
type Snapshot struct {
	img *image.RGBA
}

// Bounds returns the region the snapshot covers.
func (s *Snapshot) Bounds() zedit.Rect {
	return toRect(s.img.Rect)
}

// Snapshot copies the pixels of the region, clipped to the surface.
func (s *Surface) Snapshot(r zedit.Rect) zedit.Surface {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	pr := s.pixelRect(r)
	snap := image.NewRGBA(pr)
	draw.Draw(snap, pr, s.img, pr.Min, draw.Src)
	return &Snapshot{img: snap}
}

// Restore copies the part of saved that lies in r back onto the surface. Surfaces that were not
// created by Snapshot are ignored.
func (s *Surface) Restore(saved zedit.Surface, r zedit.Rect) {
	snap, ok := saved.(*Snapshot)
	if !ok || snap == nil {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	pr := s.pixelRect(r).Intersect(snap.img.Rect)
	if pr.Empty() {
		return
	}
	draw.Draw(s.img, pr, snap.img, pr.Min, draw.Src)
	s.markDirty(pr)
}

// TakeDirty returns the band of scanlines changed since the last call, spanning the full width,
// and resets the tracking.
func (s *Surface) TakeDirty() (image.Rectangle, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	first, ok := s.dirty.NextSet(0)
	if !ok {
		return image.Rectangle{}, false
	}
	last := first
	for i, ok := s.dirty.NextSet(first + 1); ok; i, ok = s.dirty.NextSet(i + 1) {
		last = i
	}
	s.dirty.ClearAll()
	return image.Rect(s.img.Rect.Min.X, int(first), s.img.Rect.Max.X, int(last)+1), true
}

func (s *Surface) markDirty(r image.Rectangle) {
	r = r.Intersect(s.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		s.dirty.Set(uint(y))
	}
}

// pixelRect returns the pixels touched by r, clipped to the surface.
func (s *Surface) pixelRect(r zedit.Rect) image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.X)), int(math32.Floor(r.Y)),
		int(math32.Ceil(r.X+r.Width)), int(math32.Ceil(r.Y+r.Height)),
	).Intersect(s.img.Rect)
}

func toRect(r image.Rectangle) zedit.Rect {
	return zedit.Rect{X: float32(r.Min.X), Y: float32(r.Min.Y), Width: float32(r.Dx()), Height: float32(r.Dy())}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math32.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
