package view

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/rasteric/zedit-canvas"
)

// GridStyle describes the ruled background of a pad: horizontal rules every Step pixels
// from the bottom up, stopping TopRules steps short of the top, and a vertical margin rule.
type GridStyle struct {
	Enabled     bool
	Step        float32
	TopRules    int
	RuleColor   color.Color
	RuleWidth   float32
	Margin      float32
	MarginColor color.Color
	Background  color.Color
}

// DefaultGrid returns the ruled paper look: light gray rules 12px apart and a faint
// red margin at x=36.
func DefaultGrid() GridStyle {
	return GridStyle{
		Enabled:     true,
		Step:        12,
		TopRules:    4,
		RuleColor:   color.NRGBA{0xd3, 0xd3, 0xd3, 0xff},
		RuleWidth:   0.5,
		Margin:      36,
		MarginColor: color.NRGBA{100, 0, 0, 77},
		Background:  color.White,
	}
}

// DrawBackground clears the surface and paints the grid. Text drawn so far is lost.
func (z *Pad) DrawBackground() {
	bounds := z.surface.Bounds()
	g := z.Grid
	z.surface.Clear(g.Background)
	if !g.Enabled || g.Step <= 0 {
		return
	}
	ruleColor := g.RuleColor
	// sub-pixel rules are approximated by a one pixel rule with reduced alpha
	if g.RuleWidth < 1 {
		ruleColor = fade(ruleColor, g.RuleWidth)
	}
	width := math32.Max(1, math32.Round(g.RuleWidth))
	limit := float32(g.TopRules) * g.Step
	for y := bounds.Height; y > limit; y -= g.Step {
		z.surface.FillRect(zedit.Rect{X: 0, Y: y - width, Width: bounds.Width, Height: width},
			ruleColor, zedit.BlendNone)
	}
	z.surface.FillRect(zedit.Rect{X: g.Margin, Y: 0, Width: 1, Height: bounds.Height},
		g.MarginColor, zedit.BlendNone)
}

// fade scales the alpha of c by f.
func fade(c color.Color, f float32) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math32.Round(float32(n.A) * f))
	return n
}
