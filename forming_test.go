package pixeldust

import "testing"

func TestFormationDisabled(t *testing.T) {
	f := NewFormation(false, 0.015)
	if f.Active() || !f.Done() || f.Waiting() {
		t.Error("disabled formation should be done")
	}
	assertNear(t, "Progress", f.Progress, 1)
	if f.Advance() {
		t.Error("Advance on a disabled formation should do nothing")
	}
}

func TestFormationDefaultIncrement(t *testing.T) {
	f := NewFormation(true, 0)
	assertNear(t, "Increment", f.Increment, DefaultFormingIncrement)
}

func TestFormationWaitsForReveal(t *testing.T) {
	f := NewFormation(true, 0.015)
	if !f.Waiting() {
		t.Fatal("unrevealed formation should wait")
	}
	for range 10 {
		if f.Advance() {
			t.Fatal("Advance before reveal should do nothing")
		}
	}
	assertNear(t, "Progress", f.Progress, 0)
}

func TestFormationFrames(t *testing.T) {
	tests := []struct {
		inc  float64
		want int
	}{
		{0.015, 67},
		{0.1, 10},
		{0.2, 5},
		{0.3, 4},
		{0.05, 20},
		{0.07, 15},
		{1, 1},
	}
	for _, tt := range tests {
		f := NewFormation(true, tt.inc)
		if f.Frames() != tt.want {
			t.Errorf("inc %v: Frames = %d, want %d", tt.inc, f.Frames(), tt.want)
		}
		f.Reveal()
		n := 0
		for f.Active() {
			f.Advance()
			n++
			if n > 1000 {
				t.Fatalf("inc %v: formation never finished", tt.inc)
			}
		}
		if n != f.Frames() {
			t.Errorf("inc %v: advances = %d, want %d", tt.inc, n, f.Frames())
		}
		if f.Progress != 1 {
			t.Errorf("inc %v: Progress = %v, want exactly 1", tt.inc, f.Progress)
		}
		if f.Advance() {
			t.Errorf("inc %v: Advance after finishing should do nothing", tt.inc)
		}
	}
}

func TestFormationObserve(t *testing.T) {
	f := NewFormation(true, 0.015)
	view := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	if f.Observe(view, Rect{X: 0, Y: 700, Width: 800, Height: 600}) {
		t.Error("canvas below the viewport should not be revealed")
	}
	if f.Observe(view, Rect{X: 0, Y: 600, Width: 800, Height: 600}) {
		t.Error("canvas touching the bottom edge should not be revealed")
	}
	if f.Observe(view, Rect{X: 800, Y: 0, Width: 100, Height: 600}) {
		t.Error("canvas touching the right edge should not be revealed")
	}
	if !f.Observe(view, Rect{X: 0, Y: 500, Width: 800, Height: 600}) {
		t.Error("overlapping canvas should be revealed")
	}
	// Latched: scrolling away does not hide it again.
	if !f.Observe(view, Rect{X: 0, Y: 2000, Width: 800, Height: 600}) {
		t.Error("reveal should latch")
	}
}

func TestFormationObserveEmptyRects(t *testing.T) {
	f := NewFormation(true, 0.015)
	if f.Observe(Rect{}, Rect{Width: 10, Height: 10}) {
		t.Error("empty view should not reveal")
	}
	if f.Observe(Rect{Width: 10, Height: 10}, Rect{}) {
		t.Error("empty canvas should not reveal")
	}
}
