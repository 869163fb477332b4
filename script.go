package pixeldust

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer samples, resizes and screenshots across
// frames so a ParticleText can be exercised without a display. Attach it with
// SetScript.
//
// Actions: move (x, y, optional toX/toY/frames sweep), press, release,
// leave, wait (frames), resize (width, height), text (text), reveal and
// screenshot (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("pixeldust: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("pixeldust: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "press", "release", "leave", "wait", "resize", "text", "reveal", "screenshot":
		default:
			return nil, fmt.Errorf("pixeldust: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script. Its step method runs at the start of every
// Update.
func (pt *ParticleText) SetScript(s *Script) {
	pt.script = s
}

// Done reports whether every step has executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(pt *ParticleText) {
	if r.done {
		return
	}
	// Wait for queued samples to drain before advancing.
	if len(pt.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		pt.Screenshot(st.Label)
	case "move":
		if st.Frames >= 2 {
			pt.InjectMove(st.X, st.Y, st.ToX, st.ToY, st.Frames)
		} else {
			pt.InjectPointer(st.X, st.Y, false)
		}
	case "press":
		pt.InjectPointer(st.X, st.Y, true)
	case "release":
		pt.InjectPointer(st.X, st.Y, false)
	case "leave":
		pt.InjectLeave()
	case "resize":
		pt.Resize(st.Width, st.Height)
	case "text":
		pt.SetText(st.Text)
	case "reveal":
		pt.Reveal()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(pt.injectQueue) == 0 {
		r.done = true
	}
}
