package pixeldust

import (
	"math"
	"testing"
)

func TestNewParticleAtOrigin(t *testing.T) {
	rng := testRNG(7)
	seed := Seed{X: 12, Y: 34, Color: RGB{R: 100, G: 100, B: 100}}
	for range 200 {
		p := newParticle(seed, 20, Range{Min: 1, Max: 5}, rng, 100, 100, false)
		if p.Pos != p.Origin || p.Origin != (Vec2{X: 12, Y: 34}) {
			t.Fatalf("Pos = %v, Origin = %v, want both (12, 34)", p.Pos, p.Origin)
		}
		if p.BaseRadius < 1 || p.BaseRadius >= 5 || p.Radius != p.BaseRadius {
			t.Fatalf("radius = %v/%v, want [1, 5)", p.Radius, p.BaseRadius)
		}
		if p.Force < 5 || p.Force > 35 {
			t.Fatalf("Force = %v, want within 20±15", p.Force)
		}
		for _, c := range []uint8{p.Color.R, p.Color.G, p.Color.B} {
			if c < 100-colorJitter || c > 100+colorJitter {
				t.Fatalf("channel %d outside jitter bound", c)
			}
		}
	}
}

func TestNewParticleScatter(t *testing.T) {
	rng := testRNG(3)
	seed := Seed{X: 50, Y: 50}
	moved := 0
	for range 100 {
		p := newParticle(seed, 20, Range{Min: 1, Max: 5}, rng, 200, 80, true)
		if p.Pos.X < 0 || p.Pos.X >= 200 || p.Pos.Y < 0 || p.Pos.Y >= 80 {
			t.Fatalf("scattered Pos = %v, outside 200x80", p.Pos)
		}
		if p.Pos != p.Origin {
			moved++
		}
	}
	if moved == 0 {
		t.Error("scatter left every particle at its origin")
	}
}

func TestJitterChannelClamps(t *testing.T) {
	rng := testRNG(11)
	for range 500 {
		if c := jitterChannel(250, rng); c < 250-colorJitter {
			t.Fatalf("jitterChannel(250) = %d, below bound", c)
		}
		if c := jitterChannel(3, rng); c > 3+colorJitter {
			t.Fatalf("jitterChannel(3) = %d, above bound", c)
		}
	}
	if clampChannel(-5) != 0 || clampChannel(300) != 255 || clampChannel(77) != 77 {
		t.Error("clampChannel does not clamp to [0, 255]")
	}
}

func TestRepelBoundedByForce(t *testing.T) {
	p := Particle{Origin: Vec2{X: 10, Y: 10}, Pos: Vec2{X: 10, Y: 10}, Force: 4}
	// Very close: (R-d)/d*2 is huge, so Force caps it.
	f := p.repel(PointerAt(10.5, 10), 50)
	assertNear(t, "displacement", f, 4)
	assertNear(t, "Pos.X", p.Pos.X, 6)
	assertNear(t, "Pos.Y", p.Pos.Y, 10)
}

func TestRepelFalloff(t *testing.T) {
	p := Particle{Pos: Vec2{X: 40, Y: 0}, Force: 100}
	// d = 40, R = 50: (50-40)/40*2 = 0.5.
	f := p.repel(PointerAt(0, 0), 50)
	assertNear(t, "displacement", f, 0.5)
	assertNear(t, "Pos.X", p.Pos.X, 40.5)
}

func TestRepelOutsideRadius(t *testing.T) {
	p := Particle{Pos: Vec2{X: 60, Y: 0}, Force: 10}
	if f := p.repel(PointerAt(0, 0), 50); f != 0 {
		t.Errorf("displacement = %v, want 0 outside radius", f)
	}
	if f := p.repel(NoPointer, 50); f != 0 {
		t.Errorf("displacement = %v, want 0 with no pointer", f)
	}
	q := Particle{Pos: Vec2{X: 5, Y: 5}, Force: 10}
	if f := q.repel(PointerAt(5, 5), 50); f != 0 {
		t.Errorf("displacement = %v, want 0 at zero distance", f)
	}
}

func TestRepelNegativeForce(t *testing.T) {
	p := Particle{Pos: Vec2{X: 10, Y: 0}, Force: -3}
	if f := p.repel(PointerAt(0, 0), 50); f != 0 {
		t.Errorf("displacement = %v, want 0 for negative force", f)
	}
	if p.Pos != (Vec2{X: 10, Y: 0}) {
		t.Errorf("Pos = %v, want unchanged", p.Pos)
	}
}

func TestRestore(t *testing.T) {
	p := Particle{Origin: Vec2{}, Pos: Vec2{X: 100, Y: 0}}
	step := p.restore(0.1, 3)
	assertNear(t, "capped step", step, 3)
	assertNear(t, "Pos.X", p.Pos.X, 97)

	p.Pos = Vec2{X: 10, Y: 0}
	step = p.restore(0.1, 3)
	assertNear(t, "proportional step", step, 1)

	p.Pos = Vec2{X: 0.6, Y: 0.6}
	if step := p.restore(0.1, 3); step != 0 {
		t.Errorf("step within settle distance = %v, want 0", step)
	}
}

func TestDistance(t *testing.T) {
	p := Particle{Origin: Vec2{X: 1, Y: 1}, Pos: Vec2{X: 4, Y: 5}}
	if d := p.distance(); math.Abs(d-5) > epsilon {
		t.Errorf("distance = %v, want 5", d)
	}
}
