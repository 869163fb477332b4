package pixeldust

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the visible window onto a vertically scrollable page. The
// canvas sits somewhere on the page; the entrance animation waits until the
// viewport's visible bounds reach it.
type Viewport struct {
	// ScrollY is the page offset of the top edge of the viewport.
	ScrollY float64
	// Width and Height are the visible size.
	Width, Height float64
	// PageHeight is the total scrollable height. Values below Height
	// disable scrolling.
	PageHeight float64

	scroll *gween.Tween
}

// NewViewport creates a viewport of the given size over a page.
func NewViewport(w, h, pageHeight float64) *Viewport {
	return &Viewport{Width: w, Height: h, PageHeight: pageHeight}
}

// VisibleBounds returns the page-space rectangle currently visible.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// ScrollBy moves the viewport by dy, cancelling any scroll animation.
func (v *Viewport) ScrollBy(dy float64) {
	v.scroll = nil
	v.ScrollY += dy
	v.clamp()
}

// ScrollTo animates the viewport to page offset y over duration seconds.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	v.scroll = gween.New(float32(v.ScrollY), float32(y), duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scroll != nil
}

// Update advances the scroll animation by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.scroll == nil {
		return
	}
	y, done := v.scroll.Update(dt)
	v.ScrollY = float64(y)
	if done {
		v.scroll = nil
	}
	v.clamp()
}

// ScreenToPage converts a screen position to page coordinates.
func (v *Viewport) ScreenToPage(sx, sy float64) (x, y float64) {
	return sx, sy + v.ScrollY
}

// PageToScreen converts a page position to screen coordinates.
func (v *Viewport) PageToScreen(px, py float64) (x, y float64) {
	return px, py - v.ScrollY
}

func (v *Viewport) clamp() {
	maxY := v.PageHeight - v.Height
	if maxY < 0 {
		maxY = 0
	}
	if v.ScrollY > maxY {
		v.ScrollY = maxY
	}
	if v.ScrollY < 0 {
		v.ScrollY = 0
	}
}
