package pixeldust

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay displays FPS, TPS and renderer counters in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newStatsOverlay() *statsOverlay {
	// 160x80 fits five short lines of debug font.
	return &statsOverlay{img: ebiten.NewImage(160, 80), lastUpdate: 0.5}
}

func (o *statsOverlay) update(dt float64, pt *ParticleText) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nParticles: %d\nState: %s\nForming: %.2f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), pt.Field().Len(), pt.State(), pt.Formation().Progress))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
