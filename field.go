package pixeldust

import (
	"math"
	"math/rand/v2"
)

const (
	minInteractionRadius = 50  // interaction radius floor in pixels
	interactionScale     = 1.5 // interaction radius per pixel of text height
	settleDistance       = 1   // restoration stops within this distance

	formingRestoreRate = 0.08
	formingRestoreCap  = 8
	steadyRestoreRate  = 0.1
	steadyRestoreCap   = 3
)

// Field is one batch of particles sampled from a single layout. A batch is
// replaced whole on every re-sampling pass and never grows or shrinks.
//
// Particles do not interact, so the update order is irrelevant.
type Field struct {
	particles []Particle
	layout    TextLayout
	radius    float64
}

// NewField builds a batch from seeds. Scattered particles start at random
// points of the w×h canvas.
func NewField(seeds []Seed, layout TextLayout, force float64, radius Range, rng *rand.Rand, w, h int, scatter bool) *Field {
	f := &Field{
		particles: make([]Particle, len(seeds)),
		layout:    layout,
		radius:    interactionRadius(layout.Height),
	}
	for i, s := range seeds {
		f.particles[i] = newParticle(s, force, radius, rng, w, h, scatter)
	}
	return f
}

// interactionRadius is max(50, 1.5 × text height).
func interactionRadius(textHeight float64) float64 {
	return math.Max(minInteractionRadius, textHeight*interactionScale)
}

// restoreRates returns the origin restoration rate and per-frame cap.
func restoreRates(forming bool) (rate, limit float64) {
	if forming {
		return formingRestoreRate, formingRestoreCap
	}
	return steadyRestoreRate, steadyRestoreCap
}

// Len returns the number of particles. Safe on a nil Field.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.particles)
}

// Particles returns the batch. The returned slice MUST NOT be resized.
func (f *Field) Particles() []Particle {
	if f == nil {
		return nil
	}
	return f.particles
}

// Layout returns the layout the batch was sampled from.
func (f *Field) Layout() TextLayout {
	if f == nil {
		return TextLayout{}
	}
	return f.layout
}

// InteractionRadius returns the pointer interaction radius.
func (f *Field) InteractionRadius() float64 {
	if f == nil {
		return minInteractionRadius
	}
	return f.radius
}

// Step advances every particle by one frame: pointer repulsion, then
// restoration toward the origin at forming or steady rates. It reports
// whether any particle moved.
func (f *Field) Step(ptr Pointer, forming bool) bool {
	if f == nil {
		return false
	}
	rate, limit := restoreRates(forming)
	moved := false
	for i := range f.particles {
		p := &f.particles[i]
		if p.repel(ptr, f.radius) > 0 {
			moved = true
		}
		if p.restore(rate, limit) > 0 {
			moved = true
		}
	}
	return moved
}

// Draw draws every particle as a filled circle.
func (f *Field) Draw(s Surface) {
	if f == nil || s == nil {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		s.DrawCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}
}

// Frame steps and draws in one pass.
func (f *Field) Frame(s Surface, ptr Pointer, forming bool) bool {
	moved := f.Step(ptr, forming)
	f.Draw(s)
	return moved
}

// MaxDistance returns the largest particle distance from its origin.
func (f *Field) MaxDistance() float64 {
	var d float64
	for i := range f.Particles() {
		d = math.Max(d, f.particles[i].distance())
	}
	return d
}
