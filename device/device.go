// Package device describes physical input controls, the raw sampling
// capability a platform backend provides, and the heuristics that decide
// which device the player is currently using.
package device

// Type is the category of a physical device.
type Type uint8

const (
	None Type = iota
	Keyboard
	Mouse
	Gamepad
)

func (t Type) String() string {
	switch t {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	case Gamepad:
		return "gamepad"
	default:
		return "none"
	}
}

// AnyGamepad binds a probe or tree to whichever connected gamepad has input.
const AnyGamepad = -1

// Control identifies one physical button or axis.
type Control struct {
	Device Type
	// Axis is true for analog controls, false for digital buttons.
	Axis bool
	Code int
}

func KeyControl(k Key) Control {
	return Control{Device: Keyboard, Code: int(k)}
}

func MouseButtonControl(b MouseButton) Control {
	return Control{Device: Mouse, Code: int(b)}
}

func MouseAxisControl(a MouseAxis) Control {
	return Control{Device: Mouse, Axis: true, Code: int(a)}
}

func GamepadButtonControl(b GamepadButton) Control {
	return Control{Device: Gamepad, Code: int(b)}
}

func GamepadAxisControl(a GamepadAxis) Control {
	return Control{Device: Gamepad, Axis: true, Code: int(a)}
}

// IsZero reports whether c is the unset control.
func (c Control) IsZero() bool {
	return c.Device == None
}

// Sampler is the raw per-frame capability a platform backend provides.
// Every method returns the neutral value for unknown or disconnected
// controls.
type Sampler interface {
	KeyDown(k Key) bool
	MouseButtonDown(b MouseButton) bool
	// MouseAxis returns the movement or wheel delta accumulated this frame.
	MouseAxis(a MouseAxis) float64
	// Gamepads returns the indices of connected gamepads in ascending order.
	Gamepads() []int
	GamepadButtonDown(index int, b GamepadButton) bool
	// GamepadAxis returns a calibrated value in [-1, 1] (triggers in [0, 1]).
	GamepadAxis(index int, a GamepadAxis) float64
}

// Poller is implemented by samplers that must refresh their cached
// values once per frame before anything reads them.
type Poller interface {
	Poll()
}

// Value samples c on the given gamepad index. Buttons read 1 when down.
// index is ignored for keyboard and mouse controls.
func Value(s Sampler, c Control, index int) float64 {
	if s == nil {
		return 0
	}
	switch c.Device {
	case Keyboard:
		return boolValue(s.KeyDown(Key(c.Code)))
	case Mouse:
		if c.Axis {
			return s.MouseAxis(MouseAxis(c.Code))
		}
		return boolValue(s.MouseButtonDown(MouseButton(c.Code)))
	case Gamepad:
		if index < 0 || !connected(s, index) {
			return 0
		}
		if c.Axis {
			return s.GamepadAxis(index, GamepadAxis(c.Code))
		}
		return boolValue(s.GamepadButtonDown(index, GamepadButton(c.Code)))
	default:
		return 0
	}
}

func connected(s Sampler, index int) bool {
	for _, id := range s.Gamepads() {
		if id == index {
			return true
		}
	}
	return false
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
