// Package style defines colors, text attributes and the theme palette
// used by the drawing context.
package style

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termview/geom"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Color is a 24-bit color.
type Color struct {
	R, G, B uint8
}

// Named colors accepted by ParseColor.
var namedColors = map[string]Color{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"yellow":  {255, 255, 0},
	"blue":    {0, 0, 255},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
}

// ParseColor converts a color name or "#rrggbb" hex string to a Color.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, &geom.ParseError{Type: "color", Value: s}
		}
		r, g, b := cf.RGB255()
		return Color{R: r, G: g, B: b}, nil
	}
	return Color{}, &geom.ParseError{Type: "color", Value: s}
}

// Blend mixes c toward other in a perceptual color space.
func (c Color) Blend(other Color, t float64) Color {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	m := a.BlendLab(b, t).Clamped()
	r, g, bl := m.RGB255()
	return Color{R: r, G: g, B: bl}
}

// Style is a resolved foreground/background pair with attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// WithAttrs returns the style with extra attributes set.
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs |= a
	return s
}

// Reversed swaps foreground and background.
func (s Style) Reversed() Style {
	s.Fg, s.Bg = s.Bg, s.Fg
	return s
}
