package pixeldust

// Seed is one sampled pixel of the rasterized text, in canvas coordinates.
type Seed struct {
	X, Y  float64
	Color RGB
}

// Sample rasterizes text onto s once, filled with g, and returns every opaque
// pixel of the text box whose local x and y offsets are both multiples of
// step. A step below 1 is treated as 1. Empty text, a zero-area canvas or a
// nil surface yield no seeds.
//
// Both the canvas and the scratch layer of s are cleared afterwards.
func Sample(s Surface, text string, g Gradient, step int) (TextLayout, []Seed) {
	if s == nil {
		return TextLayout{}, nil
	}
	if step < 1 {
		step = 1
	}
	l := computeLayout(s, text)
	if l.Empty() {
		return l, nil
	}

	s.Clear()
	s.FillText(text, l.textX, l.textY, l.FontSize, g)
	box := l.Bounds()
	pix := s.Pixels(box)
	s.Clear()

	bw, bh := box.Dx(), box.Dy()
	if len(pix) < 4*bw*bh {
		return l, nil
	}

	seeds := make([]Seed, 0, (bw/step+1)*(bh/step+1)/4)
	for y := 0; y < bh; y += step {
		row := y * bw * 4
		for x := 0; x < bw; x += step {
			i := row + x*4
			if pix[i+3] == 0 {
				continue
			}
			seeds = append(seeds, Seed{
				X:     float64(box.Min.X + x),
				Y:     float64(box.Min.Y + y),
				Color: RGB{R: pix[i], G: pix[i+1], B: pix[i+2]},
			})
		}
	}
	return l, seeds
}
