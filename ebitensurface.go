package pixeldust

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an *ebiten.Image. Text is rendered in white with
// Ebitengine's text/v2 onto an offscreen scratch image; the gradient is
// applied when the scratch pixels are read back.
//
// Pixels calls ReadPixels and must only be used while the game loop runs.
type EbitenSurface struct {
	// Background is the color Clear fills the target with. The zero value
	// clears to transparent.
	Background Color

	target  *ebiten.Image
	scratch *ebiten.Image
	source  *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace

	fill    Gradient
	fillBox Rect
}

// NewEbitenSurface wraps target using the named registered font ("" for the
// default). It returns ErrNoSurface when target is nil.
func NewEbitenSurface(target *ebiten.Image, fontName string) (*EbitenSurface, error) {
	if target == nil {
		return nil, ErrNoSurface
	}
	e, err := lookupFont(fontName)
	if err != nil {
		return nil, err
	}
	src, err := e.faceSource()
	if err != nil {
		return nil, err
	}
	s := &EbitenSurface{
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}
	s.SetTarget(target)
	return s, nil
}

// SetTarget swaps the image drawn onto, typically the screen passed to Draw.
// The scratch layer is reallocated when the size changes.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	if target == nil {
		return
	}
	s.target = target
	b := target.Bounds()
	if s.scratch == nil || s.scratch.Bounds().Dx() != b.Dx() || s.scratch.Bounds().Dy() != b.Dy() {
		if s.scratch != nil {
			s.scratch.Deallocate()
		}
		s.scratch = ebiten.NewImage(max(b.Dx(), 1), max(b.Dy(), 1))
	}
}

// Size returns the target size.
func (s *EbitenSurface) Size() (w, h int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the target with Background and clears the scratch image.
func (s *EbitenSurface) Clear() {
	if s.Background.A == 0 {
		s.target.Clear()
	} else {
		s.target.Fill(s.Background.toRGBA())
	}
	s.scratch.Clear()
}

// DrawCircle draws an anti-aliased filled circle.
func (s *EbitenSurface) DrawCircle(x, y, r float64, c RGB) {
	if r <= 0 {
		return
	}
	b := s.target.Bounds()
	vector.DrawFilledCircle(s.target, float32(x)+float32(b.Min.X), float32(y)+float32(b.Min.Y), float32(r), c.NRGBA(), true)
}

// MeasureText returns the advance width and ascent+descent of str.
func (s *EbitenSurface) MeasureText(str string, size float64) (w, h float64) {
	if size <= 0 {
		return 0, 0
	}
	face := s.face(size)
	m := face.Metrics()
	w, _ = text.Measure(str, face, 0)
	return w, m.HAscent + m.HDescent
}

// FillText draws str in white on the scratch image and remembers the
// gradient and box for Pixels.
func (s *EbitenSurface) FillText(str string, x, y, size float64, g Gradient) {
	if size <= 0 || str == "" {
		return
	}
	face := s.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	text.Draw(s.scratch, str, face, op)

	w, h := s.MeasureText(str, size)
	s.fill = g
	s.fillBox = Rect{X: x, Y: y, Width: w, Height: h}
}

// Pixels reads back the scratch image inside r and tints the white glyph
// coverage with the last FillText gradient.
func (s *EbitenSurface) Pixels(r image.Rectangle) []byte {
	out := make([]byte, 4*max(r.Dx(), 0)*max(r.Dy(), 0))
	in := r.Intersect(s.scratch.Bounds())
	if in.Empty() {
		return out
	}
	buf := make([]byte, 4*in.Dx()*in.Dy())
	s.scratch.SubImage(in).(*ebiten.Image).ReadPixels(buf)
	unpremultiply(buf)

	w := r.Dx()
	for y := 0; y < in.Dy(); y++ {
		for x := 0; x < in.Dx(); x++ {
			i := (y*in.Dx() + x) * 4
			a := buf[i+3]
			if a == 0 {
				continue
			}
			px := in.Min.X + x
			c := s.fill.column(float64(px)-s.fillBox.X, s.fillBox.Width)
			o := ((in.Min.Y-r.Min.Y+y)*w + (px - r.Min.X)) * 4
			out[o] = uint8(clamp01(c.R)*float64(buf[i]) + 0.5)
			out[o+1] = uint8(clamp01(c.G)*float64(buf[i+1]) + 0.5)
			out[o+2] = uint8(clamp01(c.B)*float64(buf[i+2]) + 0.5)
			out[o+3] = uint8(clamp01(c.A)*float64(a) + 0.5)
		}
	}
	return out
}

// Snapshot reads back the target as straight-alpha NRGBA. Only valid during
// Draw.
func (s *EbitenSurface) Snapshot() *image.NRGBA {
	return captureImage(s.target)
}

// face returns a cached GoTextFace for size.
func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: size}
	s.faces[size] = f
	return f
}

// captureImage converts the premultiplied pixels of img to straight-alpha
// NRGBA.
func captureImage(img *ebiten.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.ReadPixels(out.Pix)
	unpremultiply(out.Pix)
	return out
}
