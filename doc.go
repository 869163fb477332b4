// Package pixeldust renders a string as an interactive field of particles for
// [Ebitengine], with a headless in-memory backend and a terminal frontend in
// pixeldust/term.
//
// The text is rasterized once, filled with a color gradient, and sampled on a
// regular grid. Every opaque sample becomes a particle that remembers its
// origin. Each frame the pointer pushes nearby particles away and every
// particle drifts back toward its origin, so the text scatters under the
// cursor and re-forms when it leaves.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := pixeldust.DefaultConfig()
//	cfg.Text = "hello"
//	pt, err := pixeldust.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pixeldust.Run(pt, pixeldust.RunConfig{Title: "hello", Width: 800, Height: 400})
//
// For full control, attach a [Surface] yourself and call
// [ParticleText.Update] and [ParticleText.Draw] from your own loop. Headless
// hosts use a [MemorySurface], call [ParticleText.Reveal] and drive frames
// with [ParticleText.Frame]:
//
//	s := pixeldust.NewMemorySurface(640, 240)
//	pt.SetSurface(s)
//	pt.Reveal()
//	for !pt.Settled() {
//		pt.Frame()
//	}
//
// # Sampling
//
// The font size is the canvas width divided by the number of runes, and the
// measured text box is centered in the canvas. [Config.Density] is the grid
// step in pixels; smaller steps give more particles. Any change to the text,
// palette, density or canvas size replaces the whole batch on the next frame.
//
// # Forming
//
// With [Config.Forming] set, particles start at random canvas positions and
// assemble over ceil(1/[Config.FormingIncrement]) frames, using stronger
// restoration rates. The animation waits until the canvas has been inside
// the viewport once; see [ParticleText.Observe] and [ParticleText.Reveal].
//
// # Interaction
//
// The pointer and window focus collapse into one [InteractionState]. A press
// over the canvas fires a short-lived [Burst] whose particle radii are eased
// to zero with [gween].
//
// # Configuration
//
// [LoadConfig] reads YAML over [DefaultConfig]. [SettingsStore] remembers the
// text, palette and density between runs in the platform data directory.
//
// # Scripting
//
// [LoadScript] parses a JSON list of pointer moves, presses, waits, resizes
// and screenshots that a [ParticleText] replays frame by frame, for
// automated captures without a display.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pixeldust
