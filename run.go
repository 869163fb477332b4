package pixeldust

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// wheelStep is the page scroll per wheel notch in pixels.
const wheelStep = 40

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// CanvasTop is the page offset of the canvas. With a positive value the
	// window starts scrolled above the canvas and the entrance animation
	// waits until it is scrolled into view (mouse wheel, Page Down or End).
	CanvasTop float64
	// ShowFPS draws an FPS and particle counter overlay.
	ShowFPS bool
	// Settings, when set, captures and saves the final text, palette and
	// density on exit.
	Settings *SettingsStore
}

// Run opens a window and drives pt until the window closes, Escape is
// pressed or pt is disposed. The canvas fills the window and is re-sampled
// whenever the window is resized. pt is disposed on return.
func Run(pt *ParticleText, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "pixeldust"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{
		pt:   pt,
		cfg:  cfg,
		view: NewViewport(float64(cfg.Width), float64(cfg.Height), cfg.CanvasTop+float64(cfg.Height)),
	}
	if cfg.ShowFPS {
		g.overlay = newStatsOverlay()
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}

	if cfg.Settings != nil {
		cfg.Settings.Capture(pt.Config())
		if serr := cfg.Settings.Save(); serr != nil {
			log.Printf("pixeldust: %v", serr)
		}
	}
	pt.Dispose()
	return err
}

// game adapts a ParticleText to ebiten.Game.
type game struct {
	pt       *ParticleText
	cfg      RunConfig
	view     *Viewport
	canvas   *ebiten.Image
	surface  *EbitenSurface
	overlay  *statsOverlay
	touches  []ebiten.TouchID
	noCanvas bool
	drawn    bool
	idle     bool
}

// canvasRect returns the canvas in page coordinates.
func (g *game) canvasRect() Rect {
	return Rect{X: 0, Y: g.cfg.CanvasTop, Width: g.view.Width, Height: g.view.Height}
}

func (g *game) Update() error {
	if g.pt.Disposed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.view.ScrollBy(-wy * wheelStep)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.view.ScrollTo(g.cfg.CanvasTop, 0.8, ease.InOutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp), inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.view.ScrollTo(0, 0.8, ease.InOutCubic)
	}
	g.view.Update(dt)

	canvas := g.canvasRect()
	g.pt.Observe(g.view.VisibleBounds(), canvas)
	g.pt.SetFocused(ebiten.IsFocused())

	var x, y float64
	var pressed bool
	x, y, pressed, g.touches = readPointer(g.touches)
	px, py := g.view.ScreenToPage(x, y)
	g.pt.Update(canvasPointer(px, py, canvas), pressed)
	// A settled field with no pointer draws the same frame again; reuse the
	// canvas instead.
	g.idle = g.drawn && g.pt.Settled() && !g.pt.Pointer().Present

	if g.overlay != nil {
		g.overlay.update(float64(dt), g.pt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	bg := g.pt.Background()
	if bg.A > 0 {
		screen.Fill(bg.toRGBA())
	}
	if g.surface != nil {
		if !g.idle {
			g.pt.Draw(g.surface)
			g.drawn = true
		}
		_, sy := g.view.PageToScreen(0, g.cfg.CanvasTop)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, sy)
		screen.DrawImage(g.canvas, op)
	}
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

// Layout resizes the canvas to the window. A size change makes the next
// Update re-sample from scratch.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		g.resizeCanvas(w, h)
	}
	return w, h
}

func (g *game) resizeCanvas(w, h int) {
	g.view.Width, g.view.Height = float64(w), float64(h)
	g.view.PageHeight = g.cfg.CanvasTop + float64(h)
	g.view.ScrollBy(0)

	if g.canvas != nil {
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
	g.drawn = false

	if g.noCanvas {
		return
	}
	if g.surface == nil {
		s, err := NewEbitenSurface(g.canvas, g.pt.Config().Font)
		if err != nil {
			// The renderer stays detached and every frame is a no-op.
			log.Printf("pixeldust: %v", err)
			g.noCanvas = true
			return
		}
		s.Background = g.pt.Background()
		g.surface = s
		g.pt.SetSurface(s)
		return
	}
	g.surface.SetTarget(g.canvas)
}
