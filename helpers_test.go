package pixeldust

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// testConfig returns a deterministic config with forming and bursts off.
func testConfig(text string) Config {
	cfg := DefaultConfig()
	cfg.Text = text
	cfg.Seed = 42
	cfg.Forming = false
	cfg.Burst.Count = 0
	cfg.Background = ""
	return cfg
}

// newTestText builds a ParticleText on a w×h MemorySurface.
func newTestText(t *testing.T, cfg Config, w, h int) (*ParticleText, *MemorySurface) {
	t.Helper()
	pt, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := NewMemorySurface(w, h)
	pt.SetSurface(s)
	return pt, s
}
