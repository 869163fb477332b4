package pixeldust

import "math"

// DefaultFormingIncrement is the progress added per frame while forming.
const DefaultFormingIncrement = 0.015

// Formation tracks the entrance animation in which scattered particles
// assemble into the text. Progress only advances once the canvas has been
// seen inside the viewport.
type Formation struct {
	// Progress runs from 0 to exactly 1.
	Progress float64
	// Increment is added to Progress each frame.
	Increment float64

	enabled  bool
	revealed bool
	steps    int
}

// NewFormation returns a formation with the given per-frame increment. A
// non-positive increment uses DefaultFormingIncrement. A disabled formation
// is complete from the start.
func NewFormation(enabled bool, increment float64) Formation {
	if increment <= 0 {
		increment = DefaultFormingIncrement
	}
	f := Formation{Increment: increment, enabled: enabled}
	if !enabled {
		f.Progress = 1
	}
	return f
}

// Active reports whether forming rates apply this frame.
func (f *Formation) Active() bool {
	return f.enabled && f.Progress < 1
}

// Done reports whether the formation has finished (or was never enabled).
func (f *Formation) Done() bool {
	return !f.Active()
}

// Reveal marks the canvas as visible.
func (f *Formation) Reveal() {
	f.revealed = true
}

// Revealed reports whether the canvas has been visible at least once.
func (f *Formation) Revealed() bool {
	return f.revealed
}

// Observe latches visibility when bounds overlap view. A canvas that only
// touches the viewport edge is not visible.
func (f *Formation) Observe(view, bounds Rect) bool {
	if !f.revealed && !view.Empty() && !bounds.Empty() && overlaps(view, bounds) {
		f.revealed = true
	}
	return f.revealed
}

// overlaps reports whether a and b share a region of positive area.
func overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// Waiting reports whether the formation is held back by visibility.
func (f *Formation) Waiting() bool {
	return f.Active() && !f.revealed
}

// Advance adds one increment. It does nothing before the canvas is revealed
// or after forming ended, and reports whether progress changed. Progress is
// derived from the step count, so forming ends after exactly Frames steps.
func (f *Formation) Advance() bool {
	if !f.Active() || !f.revealed {
		return false
	}
	f.steps++
	if f.steps >= f.Frames() {
		f.Progress = 1
	} else {
		// Stays below 1 until the last step.
		f.Progress = math.Min(math.Nextafter(1, 0), float64(f.steps)*f.Increment)
	}
	return true
}

// Frames returns how many advances take progress from 0 to 1.
func (f *Formation) Frames() int {
	return int(math.Ceil(1 / f.Increment))
}
