package pixeldust

import (
	"math"
	"math/rand/v2"
)

const (
	forceSpread = 15 // force bias is baseForce ± forceSpread
	colorJitter = 13 // per-channel color jitter bound
)

// Particle is one sampled point of the rendered text.
type Particle struct {
	// Origin is the canvas pixel the particle represents. Never changes.
	Origin Vec2
	// Pos is the current position.
	Pos Vec2
	// Radius is the current draw radius; BaseRadius the radius at creation.
	Radius     float64
	BaseRadius float64
	// Force caps how far pointer repulsion can push the particle per frame.
	Force float64
	// Color is the sampled pixel color with per-channel jitter.
	Color RGB
}

// newParticle builds a particle for seed. When scatter is set the particle
// starts at a uniformly random point of the w×h canvas instead of its origin.
func newParticle(seed Seed, force float64, radius Range, rng *rand.Rand, w, h int, scatter bool) Particle {
	p := Particle{Origin: Vec2{X: seed.X, Y: seed.Y}}
	p.Pos = p.Origin
	if scatter {
		p.Pos = Vec2{X: rng.Float64() * float64(w), Y: rng.Float64() * float64(h)}
	}
	p.BaseRadius = radius.Random(rng)
	p.Radius = p.BaseRadius
	p.Force = (force + forceSpread) - rng.Float64()*2*forceSpread
	p.Color = RGB{
		R: jitterChannel(seed.Color.R, rng),
		G: jitterChannel(seed.Color.G, rng),
		B: jitterChannel(seed.Color.B, rng),
	}
	return p
}

// jitterChannel offsets c by a uniform integer in [-colorJitter, colorJitter]
// and clamps to a valid channel. Channels are jittered independently, so the
// hue can drift slightly.
func jitterChannel(c uint8, rng *rand.Rand) uint8 {
	return clampChannel(int(c) + rng.IntN(2*colorJitter+1) - colorJitter)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// repel pushes the particle away from ptr when it lies within radius and
// returns the displacement applied. The magnitude is
// min(Force, (radius-d)/d*2) and never negative.
func (p *Particle) repel(ptr Pointer, radius float64) float64 {
	if !ptr.Present {
		return 0
	}
	dx := p.Pos.X - ptr.X
	dy := p.Pos.Y - ptr.Y
	d := math.Hypot(dx, dy)
	if d == 0 || d > radius {
		return 0
	}
	f := math.Min(p.Force, (radius-d)/d*2)
	if f <= 0 {
		return 0
	}
	p.Pos.X += dx / d * f
	p.Pos.Y += dy / d * f
	return f
}

// restore moves the particle toward its origin by min(d*rate, limit) when it
// is more than settleDistance away, returning the displacement applied.
func (p *Particle) restore(rate, limit float64) float64 {
	dx := p.Origin.X - p.Pos.X
	dy := p.Origin.Y - p.Pos.Y
	d := math.Hypot(dx, dy)
	if d <= settleDistance {
		return 0
	}
	step := math.Min(d*rate, limit)
	p.Pos.X += dx / d * step
	p.Pos.Y += dy / d * step
	return step
}

// distance returns how far the particle is from its origin.
func (p *Particle) distance() float64 {
	return math.Hypot(p.Origin.X-p.Pos.X, p.Origin.Y-p.Pos.Y)
}
