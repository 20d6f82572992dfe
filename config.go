package zedit

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config stores the configuration of a paragraph. It is read when a paragraph is created and
// when it repaints, so changes take effect on the next edit.
type Config struct {
	CursorWidth      float32       // width of the caret in pixels (default: 2)
	CursorColor      color.Color   // caret fill color (default: half-transparent black)
	CursorBlend      BlendMode     // how the caret is composited with the background (default: BlendNone)
	StrokeColor      color.Color   // outline color of text
	FillColor        color.Color   // fill color of text
	CaretOnDuration  time.Duration // how long a blinking caret stays visible
	CaretOffDuration time.Duration // how long a blinking caret stays hidden
	Font             string        // name of the font face the glue layer loads into the renderer
	FontSize         float64       // font size in points
	Logger           *log.Logger   // receives notes about ignored commands; nil means silent
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	z := &Config{}
	z.CursorWidth = 2
	z.CursorColor = color.NRGBA{R: 0, G: 0, B: 0, A: 128}
	z.CursorBlend = BlendNone
	z.StrokeColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xff}
	z.FillColor = color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}
	z.CaretOnDuration = 700 * time.Millisecond
	z.CaretOffDuration = 200 * time.Millisecond
	z.Font = "goregular"
	z.FontSize = 24
	return z
}

func (z *Config) logf(format string, args ...any) {
	if z == nil || z.Logger == nil {
		return
	}
	z.Logger.Printf(format, args...)
}

// Paint returns the text paint described by the config.
func (z *Config) Paint() Paint {
	return Paint{Stroke: z.StrokeColor, Fill: z.FillColor}
}

// fileConfig is the TOML representation of Config. Empty values keep the defaults.
type fileConfig struct {
	CursorWidth float32 `toml:"cursor_width"`
	CursorColor string  `toml:"cursor_color"`
	CursorBlend string  `toml:"cursor_blend"`
	StrokeColor string  `toml:"stroke_color"`
	FillColor   string  `toml:"fill_color"`
	CaretOnMS   int     `toml:"caret_on_ms"`
	CaretOffMS  int     `toml:"caret_off_ms"`
	Font        string  `toml:"font"`
	FontSize    float64 `toml:"font_size"`
}

// LoadConfig reads a TOML configuration and applies it on top of NewConfig. Unknown keys are
// ignored so the same file can carry settings for the glue layer.
func LoadConfig(r io.Reader) (*Config, error) {
	var fc fileConfig
	if err := toml.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	z := NewConfig()
	if fc.CursorWidth > 0 {
		z.CursorWidth = fc.CursorWidth
	}
	colors := []struct {
		key string
		src string
		dst *color.Color
	}{
		{"cursor_color", fc.CursorColor, &z.CursorColor},
		{"stroke_color", fc.StrokeColor, &z.StrokeColor},
		{"fill_color", fc.FillColor, &z.FillColor},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		col, err := ParseColor(c.src)
		if err != nil {
			return nil, fmt.Errorf("config key %s: %w", c.key, err)
		}
		*c.dst = col
	}
	mode, ok := ParseBlendMode(fc.CursorBlend)
	if !ok {
		return nil, fmt.Errorf("config key cursor_blend: unknown blend mode %q", fc.CursorBlend)
	}
	z.CursorBlend = mode
	if fc.CaretOnMS > 0 {
		z.CaretOnDuration = time.Duration(fc.CaretOnMS) * time.Millisecond
	}
	if fc.CaretOffMS > 0 {
		z.CaretOffDuration = time.Duration(fc.CaretOffMS) * time.Millisecond
	}
	if fc.Font != "" {
		z.Font = fc.Font
	}
	if fc.FontSize > 0 {
		z.FontSize = fc.FontSize
	}
	return z, nil
}

var namedColors = map[string]color.Color{
	"black":     color.Black,
	"white":     color.White,
	"red":       color.NRGBA{R: 0xff, A: 0xff},
	"green":     color.NRGBA{G: 0x80, A: 0xff},
	"blue":      color.NRGBA{B: 0xff, A: 0xff},
	"navy":      color.NRGBA{B: 0x80, A: 0xff},
	"lightgray": color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
}

// ParseColor parses a CSS-like color: "#rgb", "#rrggbb", "rgb(r,g,b)", "rgba(r,g,b,a)" with
// alpha in [0,1], or one of a few color names.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := col.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	var args string
	var withAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args, withAlpha = s[5:len(s)-1], true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[4 : len(s)-1]
	default:
		return nil, fmt.Errorf("unknown color %q", s)
	}
	parts := strings.Split(args, ",")
	if (withAlpha && len(parts) != 4) || (!withAlpha && len(parts) != 3) {
		return nil, fmt.Errorf("wrong number of components in %q", s)
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid component in %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	alpha := uint8(0xff)
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return nil, fmt.Errorf("invalid alpha in %q", s)
		}
		alpha = uint8(a*255 + 0.5)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}
