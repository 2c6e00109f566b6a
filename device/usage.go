package device

// Usage is the per-frame verdict of a detector.
type Usage struct {
	// Raw is true while any qualifying control is held, heuristics aside.
	Raw bool
	// Used is true when the device should become the selected device.
	Used bool
}

// usageTracker runs the two timing heuristics shared by every device
// category: continuous use for MinUsedDuration, and MinPressCount new
// presses inside a MinPressInterval window.
type usageTracker struct {
	usedTime    float64
	pressCount  int
	pressWindow float64
	windowOpen  bool
}

func (t *usageTracker) reset() {
	*t = usageTracker{}
}

func (t *usageTracker) resetPresses() {
	t.pressCount = 0
	t.pressWindow = 0
	t.windowOpen = false
}

func (t *usageTracker) step(dt float64, held bool, presses int, s DetectionSettings) bool {
	if s.MinUsedDuration > 0 {
		if held {
			t.usedTime += dt
		} else {
			t.usedTime = 0
		}
		if t.usedTime >= s.MinUsedDuration {
			t.usedTime -= s.MinUsedDuration
			t.resetPresses()
			return true
		}
	}

	if s.MinPressCount <= 0 || s.MinPressInterval <= 0 {
		return false
	}

	if t.windowOpen {
		t.pressWindow += dt
		if t.pressWindow >= s.MinPressInterval {
			t.resetPresses()
		}
	}

	if presses > 0 {
		if !t.windowOpen {
			t.windowOpen = true
			t.pressWindow = 0
		}
		t.pressCount += presses
	}

	if t.pressCount >= s.MinPressCount {
		t.reset()
		return true
	}
	return false
}

// edgeSet remembers which qualifying controls were held last frame so
// detectors can count new presses.
type edgeSet struct {
	prev []bool
	cur  []bool
}

func newEdgeSet(n int) edgeSet {
	return edgeSet{prev: make([]bool, n), cur: make([]bool, n)}
}

// mark records control i as held this frame and reports whether it is a
// new press.
func (e *edgeSet) mark(i int, held bool) bool {
	e.cur[i] = held
	return held && !e.prev[i]
}

func (e *edgeSet) commit() {
	e.prev, e.cur = e.cur, e.prev
	clear(e.cur)
}

func (e *edgeSet) reset() {
	clear(e.prev)
	clear(e.cur)
}
