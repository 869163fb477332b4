package pixeldust

import (
	"image/color"
	"testing"
)

func TestColorToRGBA(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
}

func TestColorToNRGBAClamps(t *testing.T) {
	got := Color{R: 2, G: -1, B: 0.5, A: 1}.toNRGBA()
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("toNRGBA = %v, want %v", got, want)
	}
}

func TestRGBNRGBAIsOpaque(t *testing.T) {
	if got := (RGB{R: 1, G: 2, B: 3}).NRGBA(); got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 20, true},
		{9.9, 15, false},
		{15, 20.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("edge-sharing rects should intersect")
	}
	if a.Intersects(Rect{X: 0, Y: 11, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

func TestRangeRandom(t *testing.T) {
	rng := testRNG(1)
	r := Range{Min: 1, Max: 5}
	for range 1000 {
		v := r.Random(rng)
		if v < 1 || v >= 5 {
			t.Fatalf("Random = %v, want [1, 5)", v)
		}
	}
	if v := (Range{Min: 3, Max: 3}).Random(rng); v != 3 {
		t.Errorf("degenerate range Random = %v, want 3", v)
	}
	if v := r.Random(nil); v < 1 || v >= 5 {
		t.Errorf("Random(nil) = %v, want [1, 5)", v)
	}
}
