package device

import "math"

// KeyboardDetector decides when the keyboard becomes the used device.
type KeyboardDetector struct {
	Settings KeyboardSettings
	// Locked disables the keyboard entirely; it then never reports use.
	Locked bool

	tracker usageTracker
	edges   edgeSet
	// latched keeps the keyboard selected while any key stays held after
	// it was selected.
	latched bool
}

func NewKeyboardDetector(settings KeyboardSettings) *KeyboardDetector {
	return &KeyboardDetector{Settings: settings, edges: newEdgeSet(int(keyCount))}
}

func (d *KeyboardDetector) Reset() {
	d.tracker.reset()
	d.edges.reset()
	d.latched = false
}

// Update samples the keyboard. otherUsed reports whether a device earlier
// in the detection order already claimed this frame.
func (d *KeyboardDetector) Update(dt float64, s Sampler, otherUsed bool) Usage {
	if d.Locked || s == nil {
		d.Reset()
		return Usage{}
	}
	if d.edges.prev == nil {
		d.edges = newEdgeSet(int(keyCount))
	}

	held, presses := 0, 0
	for k := KeyA; k < keyCount; k++ {
		down := s.KeyDown(k)
		if d.edges.mark(int(k), down) {
			presses++
		}
		if down {
			held++
		}
	}
	d.edges.commit()

	u := Usage{Raw: held > 0}
	if otherUsed {
		d.tracker.reset()
		d.latched = false
		return u
	}
	if !d.Settings.Enabled {
		d.latched = false
		return u
	}
	if d.Settings.UseSelectionButtons && len(d.Settings.SelectionKeys) > 0 {
		for _, k := range d.Settings.SelectionKeys {
			if s.KeyDown(k) {
				u.Used = true
				break
			}
		}
		return u
	}

	if d.latched {
		if held > 0 {
			u.Used = true
			return u
		}
		d.latched = false
	}

	if d.tracker.step(dt, held > 0, presses, d.Settings.DetectionSettings) {
		u.Used = true
		d.latched = held > 0
	}
	return u
}

// mouse pseudo-controls tracked next to the real buttons
const (
	mouseEdgeWheel = int(mouseButtonCount) + iota
	mouseEdgeMove
	mouseEdgeCount
)

// MouseDetector decides when the mouse becomes the used device.
type MouseDetector struct {
	Settings MouseSettings
	Locked   bool

	tracker usageTracker
	edges   edgeSet
}

func NewMouseDetector(settings MouseSettings) *MouseDetector {
	return &MouseDetector{Settings: settings, edges: newEdgeSet(mouseEdgeCount)}
}

func (d *MouseDetector) Reset() {
	d.tracker.reset()
	d.edges.reset()
}

func (d *MouseDetector) Update(dt float64, s Sampler, otherUsed bool) Usage {
	if d.Locked || s == nil {
		d.Reset()
		return Usage{}
	}
	if d.edges.prev == nil {
		d.edges = newEdgeSet(mouseEdgeCount)
	}

	held, presses := 0, 0
	count := func(i int, down bool) {
		if d.edges.mark(i, down) {
			presses++
		}
		if down {
			held++
		}
	}
	for _, b := range MouseButtons() {
		count(int(b), s.MouseButtonDown(b))
	}
	if d.Settings.Wheel {
		count(mouseEdgeWheel, s.MouseAxis(MouseWheelX) != 0 || s.MouseAxis(MouseWheelY) != 0)
	}
	if d.Settings.MoveThreshold > 0 {
		dist := math.Hypot(s.MouseAxis(MouseAxisX), s.MouseAxis(MouseAxisY))
		count(mouseEdgeMove, dist > d.Settings.MoveThreshold)
	}
	d.edges.commit()

	u := Usage{Raw: held > 0}
	if otherUsed {
		d.tracker.reset()
		return u
	}
	if !d.Settings.Enabled {
		return u
	}
	if d.Settings.UseSelectionButtons && len(d.Settings.SelectionButtons) > 0 {
		for _, b := range d.Settings.SelectionButtons {
			if s.MouseButtonDown(b) {
				u.Used = true
				break
			}
		}
		return u
	}

	u.Used = d.tracker.step(dt, held > 0, presses, d.Settings.DetectionSettings)
	return u
}

// GamepadUsage is the verdict for one connected gamepad.
type GamepadUsage struct {
	Index int
	Usage
}

// GamepadDetector tracks every connected gamepad independently.
type GamepadDetector struct {
	Settings GamepadSettings
	Locked   bool

	pads map[int]*padTracker
}

type padTracker struct {
	tracker usageTracker
	edges   edgeSet
}

// stick and trigger pseudo-controls, one per direction
const (
	padEdgeLeftStick = int(gamepadButtonCount) + iota
	padEdgeRightStick
	padEdgeLeftTrigger
	padEdgeRightTrigger
	padEdgeCount
)

func NewGamepadDetector(settings GamepadSettings) *GamepadDetector {
	return &GamepadDetector{Settings: settings, pads: map[int]*padTracker{}}
}

func (d *GamepadDetector) Reset() {
	clear(d.pads)
}

// Update samples every connected gamepad in ascending index order. A pad
// that reports Used marks the frame as claimed for the pads after it.
func (d *GamepadDetector) Update(dt float64, s Sampler, otherUsed bool) []GamepadUsage {
	if d.Locked || s == nil {
		d.Reset()
		return nil
	}
	if d.pads == nil {
		d.pads = map[int]*padTracker{}
	}

	ids := s.Gamepads()
	seen := make(map[int]bool, len(ids))
	out := make([]GamepadUsage, 0, len(ids))
	for _, id := range ids {
		seen[id] = true
		p, ok := d.pads[id]
		if !ok {
			p = &padTracker{edges: newEdgeSet(padEdgeCount)}
			d.pads[id] = p
		}
		u := d.updatePad(dt, s, id, p, otherUsed)
		otherUsed = otherUsed || u.Used
		out = append(out, GamepadUsage{Index: id, Usage: u})
	}
	for id := range d.pads {
		if !seen[id] {
			delete(d.pads, id)
		}
	}
	return out
}

func (d *GamepadDetector) updatePad(dt float64, s Sampler, id int, p *padTracker, otherUsed bool) Usage {
	held, presses := 0, 0
	count := func(i int, down bool) {
		if p.edges.mark(i, down) {
			presses++
		}
		if down {
			held++
		}
	}
	for _, b := range GamepadButtons() {
		count(int(b), s.GamepadButtonDown(id, b))
	}
	if t := d.Settings.StickThreshold; t > 0 {
		count(padEdgeLeftStick, math.Hypot(s.GamepadAxis(id, GamepadAxisLeftX), s.GamepadAxis(id, GamepadAxisLeftY)) > t)
		count(padEdgeRightStick, math.Hypot(s.GamepadAxis(id, GamepadAxisRightX), s.GamepadAxis(id, GamepadAxisRightY)) > t)
	}
	if t := d.Settings.TriggerThreshold; t > 0 {
		count(padEdgeLeftTrigger, s.GamepadAxis(id, GamepadAxisLeftTrigger) > t)
		count(padEdgeRightTrigger, s.GamepadAxis(id, GamepadAxisRightTrigger) > t)
	}
	p.edges.commit()

	u := Usage{Raw: held > 0}
	if otherUsed {
		p.tracker.reset()
		return u
	}
	if !d.Settings.Enabled {
		return u
	}
	if d.Settings.UseSelectionButtons && len(d.Settings.SelectionButtons) > 0 {
		for _, b := range d.Settings.SelectionButtons {
			if s.GamepadButtonDown(id, b) {
				u.Used = true
				break
			}
		}
		return u
	}

	u.Used = p.tracker.step(dt, held > 0, presses, d.Settings.DetectionSettings)
	return u
}
