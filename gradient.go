package pixeldust

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is an ordered list of color stops spread evenly from 0 to 1.
// The text fill runs the gradient left to right across the text's own
// bounding box.
type Gradient []Color

// ParseGradient builds a Gradient from hex stops such as "#ff6ec7".
func ParseGradient(stops []string) (Gradient, error) {
	g := make(Gradient, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("pixeldust: bad gradient stop %q: %w", s, err)
		}
		g = append(g, Color{R: c.R, G: c.G, B: c.B, A: 1})
	}
	return g, nil
}

// ParseColor parses a single hex color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("pixeldust: bad color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// At samples the gradient at t in [0, 1]. Values outside the range clamp to
// the end stops. An empty gradient is white and a single stop is a flat fill.
func (g Gradient) At(t float64) Color {
	switch len(g) {
	case 0:
		return ColorWhite
	case 1:
		return g[0]
	}
	t = clamp01(t)
	pos := t * float64(len(g)-1)
	i := int(pos)
	if i >= len(g)-1 {
		return g[len(g)-1]
	}
	f := pos - float64(i)
	a, b := g[i], g[i+1]
	m := colorful.Color{R: a.R, G: a.G, B: a.B}.BlendRgb(colorful.Color{R: b.R, G: b.G, B: b.B}, f)
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(a.A, b.A, f)}
}

// column returns the fill color for a pixel x pixels into a box of the
// given width.
func (g Gradient) column(x, width float64) Color {
	if width <= 1 {
		return g.At(0)
	}
	return g.At(x / (width - 1))
}
