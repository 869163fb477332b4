package pixeldust

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

// frameDelta is the simulated time per frame for headless hosts and bursts.
const frameDelta = 1.0 / 60

// ParticleText renders a string as a field of particles sampled from its
// rasterized glyphs. Particles are repelled by the pointer and pulled back to
// their origins. Hosts drive it one frame at a time with Update and Draw, or
// Frame for headless use.
//
// A ParticleText is not safe for concurrent use; all calls belong to the
// host's frame loop.
type ParticleText struct {
	// ScreenshotDir is the directory Screenshot writes PNG files to.
	ScreenshotDir string

	cfg        Config
	gradient   Gradient
	background Color
	rng        *rand.Rand
	surface    Surface

	width, height int
	dirty         bool
	field         *Field
	forming       Formation
	state         InteractionState
	focused       bool
	pointer       Pointer
	pressed       bool
	moved         bool
	fresh         bool // a new batch was sampled this frame
	bursts        []*Burst

	injectQueue     []pointerSample
	screenshotQueue []string
	script          *Script

	frame    int
	disposed bool
	stats    debugStats
}

// New creates a ParticleText from cfg. It has no surface until SetSurface is
// called; until then every frame is a no-op.
func New(cfg Config) (*ParticleText, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pixeldust: invalid config: %w", err)
	}
	g, err := ParseGradient(cfg.Palette)
	if err != nil {
		return nil, err
	}
	var bg Color
	if cfg.Background != "" {
		if bg, err = ParseColor(cfg.Background); err != nil {
			return nil, err
		}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &ParticleText{
		ScreenshotDir: "screenshots",
		cfg:           cfg,
		gradient:      g,
		background:    bg,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		dirty:         true,
		forming:       NewFormation(cfg.Forming, cfg.FormingIncrement),
	}, nil
}

// SetSurface attaches the canvas the text is sampled from and drawn onto. A
// nil surface detaches it and empties the field.
func (pt *ParticleText) SetSurface(s Surface) {
	if pt.disposed {
		return
	}
	pt.surface = s
	pt.dirty = true
}

// Surface returns the attached surface, or nil.
func (pt *ParticleText) Surface() Surface {
	return pt.surface
}

// Resize changes the canvas size of a resizable surface. Any size change
// triggers a full re-sampling pass on the next frame; existing particles are
// never rescaled in place.
func (pt *ParticleText) Resize(w, h int) {
	if pt.disposed || pt.surface == nil {
		return
	}
	if cw, ch := pt.surface.Size(); cw == w && ch == h {
		return
	}
	if r, ok := pt.surface.(resizer); ok {
		r.Resize(w, h)
	}
	pt.dirty = true
}

// SetText replaces the rendered string.
func (pt *ParticleText) SetText(text string) {
	if pt.cfg.Text == text {
		return
	}
	pt.cfg.Text = text
	pt.dirty = true
}

// SetPalette replaces the gradient.
func (pt *ParticleText) SetPalette(stops []string) error {
	g, err := ParseGradient(stops)
	if err != nil {
		return err
	}
	if len(g) == 0 {
		return fmt.Errorf("pixeldust: palette is empty")
	}
	pt.cfg.Palette = append([]string(nil), stops...)
	pt.gradient = g
	pt.dirty = true
	return nil
}

// SetDensity changes the sampling step.
func (pt *ParticleText) SetDensity(step int) {
	if step < 1 {
		step = 1
	}
	if pt.cfg.Density == step {
		return
	}
	pt.cfg.Density = step
	pt.dirty = true
}

// SetFocused records whether the host window has input focus.
func (pt *ParticleText) SetFocused(focused bool) {
	pt.focused = focused
}

// Reveal marks the canvas as visible, letting the entrance animation start.
func (pt *ParticleText) Reveal() {
	pt.forming.Reveal()
}

// Observe starts the entrance animation the first time bounds (the canvas in
// host coordinates) intersects view.
func (pt *ParticleText) Observe(view, bounds Rect) {
	pt.forming.Observe(view, bounds)
}

// Update runs one frame of simulation with the host's pointer sample.
// Injected pointer samples take precedence over p. It re-samples first when
// the text, palette, density or canvas size changed, and reports whether any
// particle moved.
func (pt *ParticleText) Update(p Pointer, pressed bool) bool {
	if pt.disposed {
		return false
	}
	if pt.script != nil {
		pt.script.step(pt)
	}
	if s, ok := pt.popInjected(); ok {
		p, pressed = s.pointer, s.pressed
	}
	pt.pointer, pt.pressed = p, pressed
	pt.fresh = false

	if pt.surface != nil {
		if w, h := pt.surface.Size(); w != pt.width || h != pt.height {
			pt.dirty = true
		}
	}
	if pt.dirty {
		pt.resample()
	}

	prev := pt.state
	pt.state = nextState(p.Present, pressed, pt.focused)
	if pt.state == StateActive && prev != StateActive && pt.cfg.Burst.Count > 0 {
		pt.bursts = append(pt.bursts, NewBurst(p.X, p.Y, pt.cfg.Burst, pt.gradient, pt.rng))
	}

	var t0 time.Time
	if pt.cfg.Debug {
		t0 = time.Now()
	}

	pt.moved = false
	if !pt.forming.Waiting() {
		pt.moved = pt.field.Step(p, pt.forming.Active())
		pt.forming.Advance()
	}
	pt.updateBursts(frameDelta)
	pt.frame++

	if pt.cfg.Debug {
		pt.stats.stepTime = time.Since(t0)
		pt.stats.particles = pt.field.Len()
		pt.stats.moved = pt.moved
		pt.debugLog()
	}
	return pt.moved
}

// Draw clears s and draws the field and any live bursts onto it, then writes
// queued screenshots.
func (pt *ParticleText) Draw(s Surface) {
	if pt.disposed || s == nil {
		return
	}
	s.Clear()
	pt.field.Draw(s)
	for _, b := range pt.bursts {
		b.Draw(s)
	}
	pt.flushScreenshots(s)
}

// Frame runs Update with the last pointer sample and draws onto the attached
// surface. Headless hosts feed input through InjectPointer or a Script.
func (pt *ParticleText) Frame() bool {
	moved := pt.Update(pt.pointer, pt.pressed)
	pt.Draw(pt.surface)
	return moved
}

// Settled reports whether the last frame sampled no new batch, moved
// nothing, left no burst alive and forming has finished. Hosts may stop
// scheduling frames while settled and the pointer is absent.
func (pt *ParticleText) Settled() bool {
	return !pt.fresh && !pt.moved && len(pt.bursts) == 0 && pt.forming.Done() && !pt.dirty
}

// Dispose drops the particle batch and detaches the surface. Every later
// call is a no-op.
func (pt *ParticleText) Dispose() {
	pt.disposed = true
	pt.field = nil
	pt.bursts = nil
	pt.surface = nil
	pt.script = nil
	pt.injectQueue = nil
	pt.screenshotQueue = nil
}

// Disposed reports whether Dispose was called.
func (pt *ParticleText) Disposed() bool {
	return pt.disposed
}

// Config returns the current configuration, including runtime changes.
func (pt *ParticleText) Config() Config {
	return pt.cfg
}

// Background returns the configured canvas clear color.
func (pt *ParticleText) Background() Color {
	return pt.background
}

// Field returns the current particle batch, or nil.
func (pt *ParticleText) Field() *Field {
	return pt.field
}

// Layout returns the current text layout.
func (pt *ParticleText) Layout() TextLayout {
	return pt.field.Layout()
}

// Formation returns the entrance animation state.
func (pt *ParticleText) Formation() *Formation {
	return &pt.forming
}

// State returns the interaction state computed by the last Update.
func (pt *ParticleText) State() InteractionState {
	return pt.state
}

// Pointer returns the pointer sample used by the last Update.
func (pt *ParticleText) Pointer() Pointer {
	return pt.pointer
}

// Frames returns the number of frames simulated.
func (pt *ParticleText) Frames() int {
	return pt.frame
}

// Bursts returns the number of live bursts.
func (pt *ParticleText) Bursts() int {
	return len(pt.bursts)
}

// resample builds a fresh batch from the current text and canvas. While the
// entrance animation is still pending the new batch starts scattered.
func (pt *ParticleText) resample() {
	pt.dirty = false
	pt.fresh = true
	if pt.surface == nil {
		pt.field = nil
		pt.width, pt.height = 0, 0
		return
	}

	t0 := time.Now()
	pt.width, pt.height = pt.surface.Size()
	layout, seeds := Sample(pt.surface, pt.cfg.Text, pt.gradient, pt.cfg.Density)
	scatter := pt.cfg.Scatter || pt.forming.Active()
	pt.field = NewField(seeds, layout, pt.cfg.Force, pt.cfg.Radius, pt.rng, pt.width, pt.height, scatter)
	pt.stats.sampleTime = time.Since(t0)

	if pt.cfg.Debug {
		pt.debugLogSample(layout)
	}
	if len(seeds) == 0 && pt.cfg.Text != "" && pt.width > 0 && pt.height > 0 {
		log.Printf("pixeldust: %q sampled no particles on a %dx%d canvas", pt.cfg.Text, pt.width, pt.height)
	}
}

// updateBursts advances live bursts and drops finished ones.
func (pt *ParticleText) updateBursts(dt float64) {
	live := pt.bursts[:0]
	for _, b := range pt.bursts {
		if b.Update(dt) > 0 {
			live = append(live, b)
		}
	}
	clear(pt.bursts[len(live):])
	pt.bursts = live
}
