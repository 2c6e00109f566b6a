package device

import "sort"

// Snapshot is an in-memory Sampler. Hosts that receive input as events
// (and tests) write into it and hand it to the orchestrator.
type Snapshot struct {
	keys         map[Key]bool
	mouseButtons map[MouseButton]bool
	mouseAxes    map[MouseAxis]float64
	pads         map[int]*padState
}

type padState struct {
	buttons map[GamepadButton]bool
	axes    map[GamepadAxis]float64
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		keys:         map[Key]bool{},
		mouseButtons: map[MouseButton]bool{},
		mouseAxes:    map[MouseAxis]float64{},
		pads:         map[int]*padState{},
	}
}

func (s *Snapshot) SetKey(k Key, down bool) {
	s.keys[k] = down
}

func (s *Snapshot) SetMouseButton(b MouseButton, down bool) {
	s.mouseButtons[b] = down
}

func (s *Snapshot) SetMouseAxis(a MouseAxis, v float64) {
	s.mouseAxes[a] = v
}

// ConnectGamepad registers a gamepad at index. Connecting an already
// connected index is a no-op.
func (s *Snapshot) ConnectGamepad(index int) {
	if index < 0 {
		return
	}
	if _, ok := s.pads[index]; ok {
		return
	}
	s.pads[index] = &padState{
		buttons: map[GamepadButton]bool{},
		axes:    map[GamepadAxis]float64{},
	}
}

func (s *Snapshot) DisconnectGamepad(index int) {
	delete(s.pads, index)
}

// SetGamepadButton connects the gamepad if needed.
func (s *Snapshot) SetGamepadButton(index int, b GamepadButton, down bool) {
	s.ConnectGamepad(index)
	if p, ok := s.pads[index]; ok {
		p.buttons[b] = down
	}
}

func (s *Snapshot) SetGamepadAxis(index int, a GamepadAxis, v float64) {
	s.ConnectGamepad(index)
	if p, ok := s.pads[index]; ok {
		p.axes[a] = clamp(v, -1, 1)
	}
}

// Set writes a control generically, buttons are down when v != 0.
func (s *Snapshot) Set(c Control, index int, v float64) {
	switch c.Device {
	case Keyboard:
		s.SetKey(Key(c.Code), v != 0)
	case Mouse:
		if c.Axis {
			s.SetMouseAxis(MouseAxis(c.Code), v)
		} else {
			s.SetMouseButton(MouseButton(c.Code), v != 0)
		}
	case Gamepad:
		if c.Axis {
			s.SetGamepadAxis(index, GamepadAxis(c.Code), v)
		} else {
			s.SetGamepadButton(index, GamepadButton(c.Code), v != 0)
		}
	}
}

// Release clears every key, button and axis but keeps gamepads connected.
func (s *Snapshot) Release() {
	clear(s.keys)
	clear(s.mouseButtons)
	clear(s.mouseAxes)
	for _, p := range s.pads {
		clear(p.buttons)
		clear(p.axes)
	}
}

func (s *Snapshot) KeyDown(k Key) bool {
	return s.keys[k]
}

func (s *Snapshot) MouseButtonDown(b MouseButton) bool {
	return s.mouseButtons[b]
}

func (s *Snapshot) MouseAxis(a MouseAxis) float64 {
	return s.mouseAxes[a]
}

func (s *Snapshot) Gamepads() []int {
	ids := make([]int, 0, len(s.pads))
	for id := range s.pads {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *Snapshot) GamepadButtonDown(index int, b GamepadButton) bool {
	p, ok := s.pads[index]
	return ok && p.buttons[b]
}

func (s *Snapshot) GamepadAxis(index int, a GamepadAxis) float64 {
	p, ok := s.pads[index]
	if !ok {
		return 0
	}
	return p.axes[a]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
