package pixeldust

import (
	"errors"
	"image"
)

// ErrNoSurface is returned when a drawing surface cannot be obtained. The
// renderer treats it as a capability gap and skips sampling and drawing.
var ErrNoSurface = errors.New("pixeldust: no drawing surface")

// Surface is the drawing capability the particle field needs. Keeping it this
// small lets the whole effect run against an in-memory buffer.
type Surface interface {
	// Size returns the canvas size in pixels.
	Size() (w, h int)
	// Clear erases everything drawn on the canvas and the text scratch layer.
	Clear()
	// DrawCircle draws a filled circle centered on (x, y).
	DrawCircle(x, y, r float64, c RGB)
	// MeasureText returns the width of s and the line height at size pixels.
	MeasureText(s string, size float64) (w, h float64)
	// FillText draws s with its top-left corner at (x, y) onto the scratch
	// layer, filled left to right with g across the text's own extent.
	FillText(s string, x, y, size float64, g Gradient)
	// Pixels returns straight-alpha RGBA bytes of the scratch layer inside r,
	// row-major, 4*r.Dx()*r.Dy() long. Areas outside the canvas are
	// transparent.
	Pixels(r image.Rectangle) []byte
}

// resizer is implemented by surfaces whose canvas can change size in place.
type resizer interface {
	Resize(w, h int)
}

// snapshotter is implemented by surfaces that can produce a copy of their
// visible canvas for screenshots.
type snapshotter interface {
	Snapshot() *image.NRGBA
}

// unpremultiply converts premultiplied RGBA bytes to straight alpha in place.
func unpremultiply(pixels []byte) {
	for i := 0; i+3 < len(pixels); i += 4 {
		a := pixels[i+3]
		if a > 0 && a < 255 {
			pixels[i] = uint8(min(int(pixels[i])*255/int(a), 255))
			pixels[i+1] = uint8(min(int(pixels[i+1])*255/int(a), 255))
			pixels[i+2] = uint8(min(int(pixels[i+2])*255/int(a), 255))
		}
	}
}
