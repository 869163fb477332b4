package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/pixeldust"
)

// frameInterval is the tick of the terminal frame loop (~60 FPS).
const frameInterval = 16 * time.Millisecond

// Run attaches pt to the terminal canvas and drives it until ctx is done or
// the user presses Escape, q or Ctrl-C. The terminal is restored and pt is
// disposed on return.
func Run(ctx context.Context, sc *Screen, pt *pixeldust.ParticleText) error {
	defer pt.Dispose()
	defer sc.Fini()

	pt.SetSurface(sc.Surface())
	pt.SetFocused(true)
	// A terminal shows the whole canvas from the first frame.
	pt.Reveal()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(sc.screen, events, done)

	in := input{pointer: pixeldust.NoPointer}
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !in.handle(sc, ev) {
				return nil
			}

		case <-ticker.C:
			if pt.Disposed() {
				return nil
			}
			pt.Update(in.pointer, in.pressed)
			pt.Draw(sc.Surface())
			sc.Present()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or done
// is closed.
func pollEvents(s tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// input is the latest pointer state reported by the terminal. Terminals do
// not report the mouse leaving the window, so the pointer stays present at
// its last cell.
type input struct {
	pointer pixeldust.Pointer
	pressed bool
}

// handle applies one terminal event and reports whether the loop should
// continue.
func (in *input) handle(sc *Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		px, py := sc.CellToPixel(x, y)
		in.pointer = pixeldust.PointerAt(px, py)
		in.pressed = ev.Buttons()&tcell.Button1 != 0

	case *tcell.EventResize:
		if sc.Resize() {
			// The canvas is now a different size; keep the pointer only if it
			// still lands on it.
			if w, h := sc.Surface().Size(); in.pointer.X >= float64(w) || in.pointer.Y >= float64(h) {
				in.pointer = pixeldust.NoPointer
				in.pressed = false
			}
		}
	}
	return true
}
