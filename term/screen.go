// Package term renders a pixeldust.ParticleText in a terminal. Each cell
// shows two vertically stacked canvas pixels with the upper half block
// glyph: the foreground is the top pixel and the background the bottom one.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/pixeldust"
)

// upperHalf is the glyph drawn in every cell.
const upperHalf = '▀'

// Screen pairs a tcell screen with the in-memory canvas drawn onto it. The
// canvas is cols×(rows*2) pixels.
type Screen struct {
	screen  tcell.Screen
	surface *pixeldust.MemorySurface
	cols    int
	rows    int
}

// New initializes s and enables mouse reporting. The canvas is sized to the
// terminal.
func New(s tcell.Screen) (*Screen, error) {
	if s == nil {
		return nil, pixeldust.ErrNoSurface
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("pixeldust: terminal init: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()

	cols, rows := s.Size()
	return &Screen{
		screen:  s,
		surface: pixeldust.NewMemorySurface(cols, rows*2),
		cols:    cols,
		rows:    rows,
	}, nil
}

// Surface returns the canvas the renderer draws onto.
func (sc *Screen) Surface() *pixeldust.MemorySurface {
	return sc.surface
}

// Size returns the terminal size in cells.
func (sc *Screen) Size() (cols, rows int) {
	return sc.cols, sc.rows
}

// Resize matches the canvas to the current terminal size and reports
// whether it changed.
func (sc *Screen) Resize() bool {
	cols, rows := sc.screen.Size()
	if cols == sc.cols && rows == sc.rows {
		return false
	}
	sc.cols, sc.rows = cols, rows
	sc.surface.Resize(cols, rows*2)
	sc.screen.Sync()
	return true
}

// CellToPixel returns the canvas position of the center of a cell's top half.
func (sc *Screen) CellToPixel(x, y int) (px, py float64) {
	return float64(x) + 0.5, float64(y*2) + 0.5
}

// Present copies the canvas to the terminal and shows it.
func (sc *Screen) Present() {
	for y := 0; y < sc.rows; y++ {
		for x := 0; x < sc.cols; x++ {
			top := sc.surface.At(x, y*2)
			bottom := sc.surface.At(x, y*2+1)
			sc.screen.SetContent(x, y, upperHalf, nil, cellStyle(top, bottom))
		}
	}
	sc.screen.Show()
}

// Fini restores the terminal.
func (sc *Screen) Fini() {
	sc.screen.Fini()
}

// cellStyle builds the style for one cell from its two pixels. Pixels are
// composited over black since terminal cells have no alpha.
func cellStyle(top, bottom color.NRGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(cellColor(top)).
		Background(cellColor(bottom))
}

func cellColor(c color.NRGBA) tcell.Color {
	r, g, b := overBlack(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func overBlack(c color.NRGBA) (r, g, b uint8) {
	a := uint32(c.A)
	return uint8((uint32(c.R)*a + 127) / 255),
		uint8((uint32(c.G)*a + 127) / 255),
		uint8((uint32(c.B)*a + 127) / 255)
}
