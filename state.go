package pixeldust

// InteractionState is the pointer/focus state of the canvas. One value
// replaces separate hover, focus and touch flags so impossible combinations
// cannot be represented.
type InteractionState uint8

const (
	StateIdle    InteractionState = iota // no pointer, no focus
	StateHovered                         // pointer over the canvas, not pressed
	StateFocused                         // host window focused, pointer elsewhere
	StateActive                          // pointer pressed over the canvas
)

// String returns the state name.
func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StateFocused:
		return "focused"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// nextState computes the state from this frame's inputs. A press only
// counts while the pointer is over the canvas.
func nextState(inside, pressed, focused bool) InteractionState {
	switch {
	case inside && pressed:
		return StateActive
	case inside:
		return StateHovered
	case focused:
		return StateFocused
	default:
		return StateIdle
	}
}
