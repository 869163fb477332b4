package pixeldust

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// MemorySurface is a headless Surface backed by an in-memory NRGBA buffer.
// Text is rasterized on the CPU with the registered sfnt font.
type MemorySurface struct {
	// Background is the color Clear fills the canvas with. The zero value
	// is transparent.
	Background Color

	canvas  *image.NRGBA
	scratch *image.NRGBA
	font    *opentype.Font
	faces   map[float64]font.Face

	drawCalls int
}

// NewMemorySurface creates a w×h surface using the default font. A font that
// fails to load leaves the surface unable to measure text, so sampling on it
// yields no particles.
func NewMemorySurface(w, h int) *MemorySurface {
	s, err := NewMemorySurfaceFont(w, h, DefaultFont)
	if err != nil {
		log.Printf("pixeldust: memory surface: %v", err)
	}
	return s
}

// NewMemorySurfaceFont creates a w×h surface using the named registered font.
// The surface is returned even on error, without text support.
func NewMemorySurfaceFont(w, h int, name string) (*MemorySurface, error) {
	s := &MemorySurface{faces: make(map[float64]font.Face)}
	s.Resize(w, h)
	e, err := lookupFont(name)
	if err != nil {
		return s, err
	}
	s.font = e.sfnt
	return s, nil
}

// Size returns the canvas size.
func (s *MemorySurface) Size() (w, h int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates both layers. Negative sizes are treated as zero.
func (s *MemorySurface) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	s.canvas = image.NewNRGBA(image.Rect(0, 0, w, h))
	s.scratch = image.NewNRGBA(image.Rect(0, 0, w, h))
	s.fillBackground()
}

// Clear fills the canvas with Background and empties the scratch layer.
func (s *MemorySurface) Clear() {
	s.fillBackground()
	clear(s.scratch.Pix)
}

func (s *MemorySurface) fillBackground() {
	if s.Background.A == 0 {
		clear(s.canvas.Pix)
		return
	}
	draw.Draw(s.canvas, s.canvas.Bounds(), image.NewUniform(s.Background.toNRGBA()), image.Point{}, draw.Src)
}

// DrawCircle fills every pixel whose center lies inside the circle.
func (s *MemorySurface) DrawCircle(x, y, r float64, c RGB) {
	s.drawCalls++
	if r <= 0 {
		return
	}
	b := s.canvas.Bounds()
	x0 := max(int(math.Floor(x-r)), b.Min.X)
	y0 := max(int(math.Floor(y-r)), b.Min.Y)
	x1 := min(int(math.Ceil(x+r)), b.Max.X)
	y1 := min(int(math.Ceil(y+r)), b.Max.Y)
	r2 := r * r
	col := c.NRGBA()
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				s.canvas.SetNRGBA(px, py, col)
			}
		}
	}
}

// MeasureText returns the advance width of str and the ascent+descent line
// height at size pixels.
func (s *MemorySurface) MeasureText(str string, size float64) (w, h float64) {
	face := s.face(size)
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	adv := font.MeasureString(face, str)
	return fixedToFloat(adv), fixedToFloat(m.Ascent + m.Descent)
}

// FillText rasterizes str onto the scratch layer.
func (s *MemorySurface) FillText(str string, x, y, size float64, g Gradient) {
	face := s.face(size)
	if face == nil || str == "" {
		return
	}
	b := s.scratch.Bounds()
	if b.Empty() {
		return
	}
	mask := image.NewAlpha(b)
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(str)

	width, _ := s.MeasureText(str, size)
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			a := mask.AlphaAt(px, py).A
			if a == 0 {
				continue
			}
			c := g.column(float64(px)-x, width).toNRGBA()
			c.A = uint8(uint16(c.A) * uint16(a) / 255)
			if c.A == 0 {
				continue
			}
			s.scratch.SetNRGBA(px, py, c)
		}
	}
}

// Pixels copies the scratch layer inside r.
func (s *MemorySurface) Pixels(r image.Rectangle) []byte {
	out := make([]byte, 4*max(r.Dx(), 0)*max(r.Dy(), 0))
	in := r.Intersect(s.scratch.Bounds())
	if in.Empty() {
		return out
	}
	w := r.Dx()
	for y := in.Min.Y; y < in.Max.Y; y++ {
		src := s.scratch.PixOffset(in.Min.X, y)
		dst := ((y-r.Min.Y)*w + (in.Min.X - r.Min.X)) * 4
		copy(out[dst:dst+in.Dx()*4], s.scratch.Pix[src:src+in.Dx()*4])
	}
	return out
}

// Snapshot returns a copy of the visible canvas.
func (s *MemorySurface) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(s.canvas.Bounds())
	copy(img.Pix, s.canvas.Pix)
	return img
}

// At returns the canvas color at (x, y).
func (s *MemorySurface) At(x, y int) color.NRGBA {
	return s.canvas.NRGBAAt(x, y)
}

// DrawCalls returns the number of DrawCircle calls made since creation or
// the last ResetDrawCalls.
func (s *MemorySurface) DrawCalls() int {
	return s.drawCalls
}

// ResetDrawCalls zeroes the draw call counter.
func (s *MemorySurface) ResetDrawCalls() {
	s.drawCalls = 0
}

// face returns a cached face for size, or nil without a font.
func (s *MemorySurface) face(size float64) font.Face {
	if s.font == nil || size <= 0 {
		return nil
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Printf("pixeldust: face at size %.1f: %v", size, err)
		return nil
	}
	s.faces[size] = f
	return f
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
