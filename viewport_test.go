package pixeldust

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportScrollByClamps(t *testing.T) {
	v := NewViewport(800, 600, 1200)
	v.ScrollBy(250)
	assertNear(t, "ScrollY", v.ScrollY, 250)
	v.ScrollBy(1000)
	assertNear(t, "ScrollY", v.ScrollY, 600)
	v.ScrollBy(-5000)
	assertNear(t, "ScrollY", v.ScrollY, 0)
}

func TestViewportShortPage(t *testing.T) {
	v := NewViewport(800, 600, 300)
	v.ScrollBy(100)
	assertNear(t, "ScrollY", v.ScrollY, 0)
}

func TestViewportScrollTo(t *testing.T) {
	v := NewViewport(800, 600, 1200)
	v.ScrollTo(600, 1, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("ScrollTo should start an animation")
	}
	v.Update(0.5)
	if v.ScrollY <= 0 || v.ScrollY >= 600 {
		t.Errorf("ScrollY = %v halfway, want between 0 and 600", v.ScrollY)
	}
	v.Update(0.6)
	assertNear(t, "ScrollY", v.ScrollY, 600)
	if v.Scrolling() {
		t.Error("animation should have finished")
	}
}

func TestViewportScrollByCancelsAnimation(t *testing.T) {
	v := NewViewport(800, 600, 1200)
	v.ScrollTo(600, 1, ease.Linear)
	v.ScrollBy(10)
	if v.Scrolling() {
		t.Error("ScrollBy should cancel the animation")
	}
}

func TestViewportCoordinates(t *testing.T) {
	v := NewViewport(800, 600, 1200)
	v.ScrollBy(200)
	x, y := v.ScreenToPage(10, 20)
	assertNear(t, "page x", x, 10)
	assertNear(t, "page y", y, 220)
	x, y = v.PageToScreen(x, y)
	assertNear(t, "screen x", x, 10)
	assertNear(t, "screen y", y, 20)
}

func TestViewportAdjacentCanvasStaysHidden(t *testing.T) {
	// Same geometry as a window whose canvas starts one screen down.
	v := NewViewport(960, 540, 1080)
	f := NewFormation(true, DefaultFormingIncrement)
	if f.Observe(v.VisibleBounds(), Rect{Y: 540, Width: 960, Height: 540}) {
		t.Error("canvas fully below the viewport was revealed")
	}
	v.ScrollBy(1)
	if !f.Observe(v.VisibleBounds(), Rect{Y: 540, Width: 960, Height: 540}) {
		t.Error("canvas scrolled one pixel into view should be revealed")
	}
}

func TestViewportRevealsCanvas(t *testing.T) {
	cfg := testConfig("dust")
	cfg.Forming = true
	pt, _ := newTestText(t, cfg, 320, 120)

	v := NewViewport(320, 120, 360)
	canvas := Rect{Y: 240, Width: 320, Height: 120}
	pt.Observe(v.VisibleBounds(), canvas)
	pt.Frame()
	if pt.Formation().Progress != 0 {
		t.Fatal("forming started while the canvas was off screen")
	}

	// One screen down the canvas only touches the viewport edge.
	v.ScrollBy(120)
	pt.Observe(v.VisibleBounds(), canvas)
	pt.Frame()
	if pt.Formation().Revealed() {
		t.Fatal("canvas sharing only an edge with the viewport was revealed")
	}

	v.ScrollBy(-120)

	v.ScrollBy(240)
	pt.Observe(v.VisibleBounds(), canvas)
	pt.Frame()
	if pt.Formation().Progress == 0 {
		t.Error("forming should start once the canvas is scrolled into view")
	}
}
