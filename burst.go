package pixeldust

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// burstDrag is the per-frame velocity retention of burst particles.
const burstDrag = 0.92

// BurstConfig controls the one-shot burst spawned when the canvas is pressed.
type BurstConfig struct {
	// Count is the number of particles per burst. Zero disables bursts.
	Count int `yaml:"count"`
	// Speed is the initial speed range in pixels per second.
	Speed Range `yaml:"speed"`
	// Lifetime is the lifetime range in seconds.
	Lifetime Range `yaml:"lifetime"`
	// Radius is the starting radius range. Radii ease to zero over the
	// lifetime.
	Radius Range `yaml:"radius"`
}

type burstParticle struct {
	Particle
	vel   Vec2
	tween *gween.Tween
	dead  bool
}

// Burst is a short-lived group of particles flung out from a point. Each
// particle's radius shrinks with its remaining lifetime; the burst is done
// once every particle has expired.
type Burst struct {
	particles []burstParticle
	alive     int
}

// NewBurst spawns cfg.Count particles at (x, y) colored from g.
func NewBurst(x, y float64, cfg BurstConfig, g Gradient, rng *rand.Rand) *Burst {
	b := &Burst{particles: make([]burstParticle, max(cfg.Count, 0))}
	for i := range b.particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.Speed.Random(rng)
		life := cfg.Lifetime.Random(rng)
		if life <= 0 {
			life = 0.5
		}
		r := cfg.Radius.Random(rng)
		c := g.At(rng.Float64()).toNRGBA()

		bp := &b.particles[i]
		bp.Origin = Vec2{X: x, Y: y}
		bp.Pos = bp.Origin
		bp.BaseRadius = r
		bp.Radius = r
		bp.Color = RGB{R: c.R, G: c.G, B: c.B}
		bp.vel = Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		bp.tween = gween.New(float32(r), 0, float32(life), ease.OutQuad)
	}
	b.alive = len(b.particles)
	return b
}

// Update advances the burst by dt seconds and returns the number of
// particles still alive.
func (b *Burst) Update(dt float64) int {
	if b == nil {
		return 0
	}
	for i := range b.particles {
		p := &b.particles[i]
		if p.dead {
			continue
		}
		r, finished := p.tween.Update(float32(dt))
		p.Radius = math.Max(float64(r), 0)
		p.Pos.X += p.vel.X * dt
		p.Pos.Y += p.vel.Y * dt
		p.vel.X *= burstDrag
		p.vel.Y *= burstDrag
		if finished || p.Radius <= 0 {
			p.dead = true
			b.alive--
		}
	}
	return b.alive
}

// Alive returns the number of live particles.
func (b *Burst) Alive() int {
	if b == nil {
		return 0
	}
	return b.alive
}

// Done reports whether every particle has expired.
func (b *Burst) Done() bool {
	return b.Alive() == 0
}

// Draw draws the live particles.
func (b *Burst) Draw(s Surface) {
	if b == nil || s == nil {
		return
	}
	for i := range b.particles {
		p := &b.particles[i]
		if p.dead {
			continue
		}
		s.DrawCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}
}
