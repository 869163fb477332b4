package pixeldust

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is how many frames pass between per-frame stat lines.
const debugLogInterval = 60

// debugStats holds timing and count metrics. Only populated in debug mode.
type debugStats struct {
	sampleTime time.Duration
	stepTime   time.Duration
	particles  int
	moved      bool
}

// debugLog prints frame stats to stderr every debugLogInterval frames.
func (pt *ParticleText) debugLog() {
	if pt.frame%debugLogInterval != 0 {
		return
	}
	burstParticles := 0
	for _, b := range pt.bursts {
		burstParticles += b.Alive()
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[pixeldust] frame %d | step: %v | particles: %d | burst particles: %d | moved: %v | state: %s | forming: %.3f\n",
		pt.frame, pt.stats.stepTime, pt.stats.particles, burstParticles, pt.stats.moved, pt.state, pt.forming.Progress)
}

// debugLogSample prints the result of a re-sampling pass.
func (pt *ParticleText) debugLogSample(l TextLayout) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[pixeldust] resample %dx%d | font: %.1f | box: %.0f,%.0f %.0fx%.0f | step: %d | particles: %d | took: %v\n",
		pt.width, pt.height, l.FontSize, l.X, l.Y, l.Width, l.Height, pt.cfg.Density, pt.field.Len(), pt.stats.sampleTime)
}
