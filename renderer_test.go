package zedit

import (
	"image/color"
	"sync"
	"unicode/utf8"
)

type op struct {
	kind string // "text", "fill" or "restore"
	text string
	rect Rect
}

type fakeSurface struct {
	bounds Rect
}

func (s fakeSurface) Bounds() Rect { return s.bounds }

// fakeRenderer measures every rune as charWidth pixels and records drawing calls.
type fakeRenderer struct {
	mu        sync.Mutex
	charWidth float32
	bounds    Rect
	ops       []op
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{charWidth: 6, bounds: Rect{Width: 800, Height: 600}}
}

func (f *fakeRenderer) Bounds() Rect { return f.bounds }

func (f *fakeRenderer) MeasureWidth(text string) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float32(utf8.RuneCountInString(text)) * f.charWidth
}

func (f *fakeRenderer) DrawText(text string, left, bottom float32, paint Paint) {
	f.record(op{kind: "text", text: text, rect: Rect{X: left, Y: bottom}})
}

func (f *fakeRenderer) FillRect(r Rect, c color.Color, mode BlendMode) {
	f.record(op{kind: "fill", rect: r})
}

func (f *fakeRenderer) Snapshot(r Rect) Surface {
	return fakeSurface{bounds: r}
}

func (f *fakeRenderer) Restore(s Surface, r Rect) {
	f.record(op{kind: "restore", rect: r})
}

func (f *fakeRenderer) setCharWidth(w float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.charWidth = w
}

func (f *fakeRenderer) record(o op) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, o)
}

func (f *fakeRenderer) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = nil
}

func (f *fakeRenderer) recorded() []op {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]op(nil), f.ops...)
}

func (f *fakeRenderer) kinds() []string {
	var kinds []string
	for _, o := range f.recorded() {
		kinds = append(kinds, o.kind)
	}
	return kinds
}
