package zedit

import (
	"image/color"

	"github.com/phrozen/blend"
)

// BlendMode selects how the caret color is composited with the pixels underneath it.
// BlendNone is plain alpha compositing.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendColor
	BlendColorBurn
	BlendColorDodge
	BlendDarken
	BlendDifference
	BlendExclusion
	BlendHardLight
	BlendLighten
	BlendLinearBurn
	BlendMultiply
	BlendOverlay
	BlendScreen
	BlendSoftLight
)

type blendFunc func(dst, src color.Color) color.Color

var blendFuncs = map[BlendMode]blendFunc{
	BlendColor:      func(dst, src color.Color) color.Color { return blend.Color(dst, src) },
	BlendColorBurn:  func(dst, src color.Color) color.Color { return blend.ColorBurn(dst, src) },
	BlendColorDodge: func(dst, src color.Color) color.Color { return blend.ColorDodge(dst, src) },
	BlendDarken:     func(dst, src color.Color) color.Color { return blend.Darken(dst, src) },
	BlendDifference: func(dst, src color.Color) color.Color { return blend.Difference(dst, src) },
	BlendExclusion:  func(dst, src color.Color) color.Color { return blend.Exclusion(dst, src) },
	BlendHardLight:  func(dst, src color.Color) color.Color { return blend.HardLight(dst, src) },
	BlendLighten:    func(dst, src color.Color) color.Color { return blend.Lighten(dst, src) },
	BlendLinearBurn: func(dst, src color.Color) color.Color { return blend.LinearBurn(dst, src) },
	BlendMultiply:   func(dst, src color.Color) color.Color { return blend.Multiply(dst, src) },
	BlendOverlay:    func(dst, src color.Color) color.Color { return blend.Overlay(dst, src) },
	BlendScreen:     func(dst, src color.Color) color.Color { return blend.Screen(dst, src) },
	BlendSoftLight:  func(dst, src color.Color) color.Color { return blend.SoftLight(dst, src) },
}

var blendNames = map[string]BlendMode{
	"none":        BlendNone,
	"color":       BlendColor,
	"color-burn":  BlendColorBurn,
	"color-dodge": BlendColorDodge,
	"darken":      BlendDarken,
	"difference":  BlendDifference,
	"exclusion":   BlendExclusion,
	"hard-light":  BlendHardLight,
	"lighten":     BlendLighten,
	"linear-burn": BlendLinearBurn,
	"multiply":    BlendMultiply,
	"overlay":     BlendOverlay,
	"screen":      BlendScreen,
	"soft-light":  BlendSoftLight,
}

// ParseBlendMode looks up a blend mode by its config name, e.g. "multiply" or "soft-light".
// The empty string is BlendNone.
func ParseBlendMode(name string) (BlendMode, bool) {
	if name == "" {
		return BlendNone, true
	}
	mode, ok := blendNames[name]
	return mode, ok
}

// Blend composites src onto dst with the given mode. For BlendNone, and for unknown modes,
// src is returned unchanged and the caller is expected to alpha-composite it.
func Blend(mode BlendMode, dst, src color.Color) color.Color {
	fn, ok := blendFuncs[mode]
	if !ok {
		return src
	}
	return fn(dst, src)
}
