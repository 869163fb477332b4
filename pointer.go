package pixeldust

import "github.com/hajimehoshi/ebiten/v2"

// Pointer is the latest known pointer position in canvas space.
type Pointer struct {
	X, Y    float64
	Present bool
}

// NoPointer is the absent pointer.
var NoPointer = Pointer{}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// canvasPointer maps a host-space position into canvas space. Positions
// outside the canvas rectangle are absent.
func canvasPointer(x, y float64, canvas Rect) Pointer {
	if canvas.Empty() || !canvas.Contains(x, y) {
		return NoPointer
	}
	return PointerAt(x-canvas.X, y-canvas.Y)
}

// readPointer polls Ebitengine for the primary pointer: the first touch if
// any, otherwise the mouse cursor with the left button.
func readPointer(touches []ebiten.TouchID) (x, y float64, pressed bool, buf []ebiten.TouchID) {
	touches = ebiten.AppendTouchIDs(touches[:0])
	if len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		return float64(tx), float64(ty), true, touches
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), touches
}
