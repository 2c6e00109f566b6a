package input

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/milk9111/actioninput/device"
)

// Selection names one physical device.
type Selection struct {
	Type  device.Type
	Index int
}

// Frame summarises one Manager update.
type Frame struct {
	// Driving is the device the first action with input came from.
	Driving Selection
	// Current is the selected device after this frame's arbitration.
	Current Selection
	// Changed is true when Current changed this frame.
	Changed bool
	// Raw lists every device with a qualifying control held, in detection order.
	Raw []Selection
}

// Manager drives one frame: poll the sampler, run device detection, pick
// the current device, then run groups and trees in registration order.
type Manager struct {
	rt      *Runtime
	sampler device.Sampler
	log     zerolog.Logger

	Keyboard *device.KeyboardDetector
	Mouse    *device.MouseDetector
	Gamepads *device.GamepadDetector

	groups []*Group
	trees  []*Tree

	current  Selection
	cooldown float64
	pads     []int
}

type ManagerOption func(*Manager)

func WithLogger(l zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = l
	}
}

func WithSettings(s device.Settings) ManagerOption {
	return func(m *Manager) {
		m.ApplySettings(s)
	}
}

func NewManager(rt *Runtime, s device.Sampler, opts ...ManagerOption) *Manager {
	if rt == nil {
		rt = NewRuntime()
	}
	defaults := device.DefaultSettings()
	m := &Manager{
		rt:       rt,
		sampler:  s,
		log:      zerolog.Nop(),
		Keyboard: device.NewKeyboardDetector(defaults.Keyboard),
		Mouse:    device.NewMouseDetector(defaults.Mouse),
		Gamepads: device.NewGamepadDetector(defaults.Gamepad),
	}
	for _, opt := range opts {
		opt(m)
	}
	rt.RecordEvents(true)
	return m
}

// ApplySettings replaces the detection settings of every category. Timers
// already running keep their progress.
func (m *Manager) ApplySettings(s device.Settings) {
	m.Keyboard.Settings = s.Keyboard
	m.Mouse.Settings = s.Mouse
	m.Gamepads.Settings = s.Gamepad
}

func (m *Manager) Runtime() *Runtime {
	return m.rt
}

func (m *Manager) Sampler() device.Sampler {
	return m.sampler
}

func (m *Manager) SetSampler(s device.Sampler) {
	m.sampler = s
}

// Current is the device that has control.
func (m *Manager) Current() Selection {
	return m.current
}

// Cooldown is the time left before another device may take over.
func (m *Manager) Cooldown() float64 {
	return m.cooldown
}

// Events drains the events produced by the last update.
func (m *Manager) Events() []Event {
	return m.rt.events.Drain()
}

func (m *Manager) AddGroup(g *Group) {
	if g == nil || slices.Contains(m.groups, g) {
		return
	}
	m.groups = append(m.groups, g)
}

func (m *Manager) RemoveGroup(g *Group) bool {
	i := slices.Index(m.groups, g)
	if i < 0 {
		return false
	}
	m.groups = slices.Delete(m.groups, i, i+1)
	return true
}

// AddTree registers a tree that is not in a group.
func (m *Manager) AddTree(t *Tree) {
	if t == nil || slices.Contains(m.trees, t) {
		return
	}
	m.trees = append(m.trees, t)
}

func (m *Manager) RemoveTree(t *Tree) bool {
	i := slices.Index(m.trees, t)
	if i < 0 {
		return false
	}
	m.trees = slices.Delete(m.trees, i, i+1)
	return true
}

// Clear unregisters every group and tree.
func (m *Manager) Clear() {
	m.groups = nil
	m.trees = nil
}

func (m *Manager) Update(dt float64) Frame {
	m.rt.BeginFrame()
	if p, ok := m.sampler.(device.Poller); ok {
		p.Poll()
	}
	lost := m.trackGamepads()

	if m.cooldown > 0 {
		m.cooldown -= dt
		if m.cooldown <= timerEpsilon {
			m.cooldown = 0
		}
	}

	var frame Frame
	var used *Selection
	claim := func(sel Selection, u device.Usage) {
		if u.Raw {
			frame.Raw = append(frame.Raw, sel)
		}
		if u.Used && used == nil {
			used = &sel
		}
	}

	claim(Selection{Type: device.Keyboard}, m.Keyboard.Update(dt, m.sampler, used != nil))
	claim(Selection{Type: device.Mouse}, m.Mouse.Update(dt, m.sampler, used != nil))
	for _, pu := range m.Gamepads.Update(dt, m.sampler, used != nil) {
		claim(Selection{Type: device.Gamepad, Index: pu.Index}, pu.Usage)
	}

	frame.Changed = lost
	if used != nil && *used != m.current && m.cooldown <= 0 {
		m.selectDevice(*used)
		frame.Changed = true
	}
	frame.Current = m.current

	for _, g := range m.groups {
		d := g.Update(dt, m.sampler)
		if frame.Driving.Type == device.None && d != device.None {
			frame.Driving.Type, frame.Driving.Index = g.Device()
		}
	}
	for _, t := range m.trees {
		d := t.Update(dt, m.sampler)
		if frame.Driving.Type == device.None && d != device.None {
			frame.Driving.Type, frame.Driving.Index = t.Device()
		}
	}
	return frame
}

func (m *Manager) selectDevice(sel Selection) {
	prev := m.current
	m.current = sel
	switch sel.Type {
	case device.Keyboard:
		m.cooldown = m.Keyboard.Settings.SelectionCooldown
	case device.Mouse:
		m.cooldown = m.Mouse.Settings.SelectionCooldown
	case device.Gamepad:
		m.cooldown = m.Gamepads.Settings.SelectionCooldown
	default:
		m.cooldown = 0
	}
	if m.cooldown < 0 {
		m.cooldown = 0
	}
	m.rt.push(Event{Kind: EventDeviceChanged, Device: sel.Type, DeviceIndex: sel.Index})
	m.log.Debug().
		Str("from", prev.Type.String()).
		Int("from_index", prev.Index).
		Str("to", sel.Type.String()).
		Int("to_index", sel.Index).
		Msg("input device changed")
}

// trackGamepads turns changes in the connected set into events. Losing the
// current gamepad clears the selection and reports true.
func (m *Manager) trackGamepads() bool {
	if m.sampler == nil {
		return false
	}
	lost := false
	ids := m.sampler.Gamepads()
	for _, id := range ids {
		if !slices.Contains(m.pads, id) {
			m.rt.push(Event{Kind: EventGamepadConnected, Device: device.Gamepad, DeviceIndex: id})
			m.log.Info().Int("gamepad", id).Msg("gamepad connected")
		}
	}
	for _, id := range m.pads {
		if slices.Contains(ids, id) {
			continue
		}
		m.rt.push(Event{Kind: EventGamepadDisconnected, Device: device.Gamepad, DeviceIndex: id})
		m.log.Info().Int("gamepad", id).Msg("gamepad disconnected")
		if m.current.Type == device.Gamepad && m.current.Index == id {
			m.current = Selection{}
			m.cooldown = 0
			m.rt.push(Event{Kind: EventDeviceChanged})
			lost = true
		}
	}
	m.pads = append(m.pads[:0], ids...)
	return lost
}
