package pixeldust

import (
	"image"
	"math"
	"unicode/utf8"
)

// TextLayout is the cached geometry of the rendered text inside the canvas.
// The same box is used to rasterize the text and to map sampled pixels back
// to canvas coordinates.
type TextLayout struct {
	X, Y          float64
	Width, Height float64
	FontSize      float64

	// Unclipped pen origin the text is drawn at.
	textX, textY float64
}

// Empty reports whether the layout has no area.
func (l TextLayout) Empty() bool {
	return l.Width <= 0 || l.Height <= 0
}

// Rect returns the layout box as a Rect.
func (l TextLayout) Rect() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// Bounds returns the layout box on the pixel grid.
func (l TextLayout) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(l.X)), int(math.Floor(l.Y)),
		int(math.Ceil(l.X+l.Width)), int(math.Ceil(l.Y+l.Height)),
	)
}

// computeLayout derives the font size from the canvas width divided by the
// rune count, so longer strings render smaller and the text always fits
// horizontally, then centers the measured box. The box origin is snapped to
// whole pixels and clipped to the canvas.
func computeLayout(s Surface, text string) TextLayout {
	w, h := s.Size()
	n := utf8.RuneCountInString(text)
	if n == 0 || w <= 0 || h <= 0 {
		return TextLayout{}
	}
	size := float64(w) / float64(n)
	tw, th := s.MeasureText(text, size)
	if tw <= 0 || th <= 0 {
		return TextLayout{}
	}

	x := math.Floor((float64(w) - tw) / 2)
	y := math.Floor((float64(h) - th) / 2)
	x0, y0 := math.Max(x, 0), math.Max(y, 0)
	x1 := math.Min(x+tw, float64(w))
	y1 := math.Min(y+th, float64(h))
	if x1 <= x0 || y1 <= y0 {
		return TextLayout{}
	}
	return TextLayout{
		X:        x0,
		Y:        y0,
		Width:    x1 - x0,
		Height:   y1 - y0,
		FontSize: size,
		textX:    x,
		textY:    y,
	}
}
