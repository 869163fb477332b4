package pixeldust

// pointerSample is one injected pointer reading.
type pointerSample struct {
	pointer Pointer
	pressed bool
}

// InjectPointer queues a pointer sample at canvas coordinates (x, y). Each
// queued sample replaces the host's pointer for one Update.
func (pt *ParticleText) InjectPointer(x, y float64, pressed bool) {
	pt.injectQueue = append(pt.injectQueue, pointerSample{
		pointer: PointerAt(x, y),
		pressed: pressed,
	})
}

// InjectLeave queues an absent pointer, as if it left the canvas.
func (pt *ParticleText) InjectLeave() {
	pt.injectQueue = append(pt.injectQueue, pointerSample{pointer: NoPointer})
}

// InjectMove queues a linear pointer sweep from (fromX, fromY) to (toX, toY)
// over frames samples. Minimum frames is 2 (start and end).
func (pt *ParticleText) InjectMove(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		pt.InjectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, false)
	}
}

// popInjected removes and returns the oldest queued sample.
func (pt *ParticleText) popInjected() (pointerSample, bool) {
	if len(pt.injectQueue) == 0 {
		return pointerSample{}, false
	}
	s := pt.injectQueue[0]
	copy(pt.injectQueue, pt.injectQueue[1:])
	pt.injectQueue = pt.injectQueue[:len(pt.injectQueue)-1]
	return s, true
}
