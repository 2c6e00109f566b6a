package device

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownControl is returned when a control name cannot be resolved.
var ErrUnknownControl = errors.New("device: unknown control")

var keyNames = map[string]Key{
	"A": KeyA, "B": KeyB, "C": KeyC, "D": KeyD, "E": KeyE, "F": KeyF, "G": KeyG,
	"H": KeyH, "I": KeyI, "J": KeyJ, "K": KeyK, "L": KeyL, "M": KeyM, "N": KeyN,
	"O": KeyO, "P": KeyP, "Q": KeyQ, "R": KeyR, "S": KeyS, "T": KeyT, "U": KeyU,
	"V": KeyV, "W": KeyW, "X": KeyX, "Y": KeyY, "Z": KeyZ,
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"Space":        KeySpace,
	"Enter":        KeyEnter,
	"Escape":       KeyEscape,
	"Backspace":    KeyBackspace,
	"Tab":          KeyTab,
	"ShiftLeft":    KeyShiftLeft,
	"ShiftRight":   KeyShiftRight,
	"ControlLeft":  KeyControlLeft,
	"ControlRight": KeyControlRight,
	"AltLeft":      KeyAltLeft,
	"AltRight":     KeyAltRight,
	"ArrowUp":      KeyArrowUp,
	"ArrowDown":    KeyArrowDown,
	"ArrowLeft":    KeyArrowLeft,
	"ArrowRight":   KeyArrowRight,
	"-":            KeyMinus,
	"=":            KeyEqual,
	",":            KeyComma,
	".":            KeyPeriod,
	"/":            KeySlash,
	";":            KeySemicolon,
	"'":            KeyApostrophe,
	"[":            KeyLeftBracket,
	"]":            KeyRightBracket,
	"`":            KeyBackquote,
	"F1":           KeyF1,
	"F2":           KeyF2,
	"F3":           KeyF3,
	"F4":           KeyF4,
	"F5":           KeyF5,
	"F6":           KeyF6,
	"F7":           KeyF7,
	"F8":           KeyF8,
	"F9":           KeyF9,
	"F10":          KeyF10,
	"F11":          KeyF11,
	"F12":          KeyF12,
}

// keyAliases are accepted when parsing but never produced by String.
var keyAliases = map[string]Key{
	"Shift":   KeyShiftLeft,
	"Control": KeyControlLeft,
	"Ctrl":    KeyControlLeft,
	"Alt":     KeyAltLeft,
	"Up":      KeyArrowUp,
	"Down":    KeyArrowDown,
	"Left":    KeyArrowLeft,
	"Right":   KeyArrowRight,
	"Esc":     KeyEscape,
	"Return":  KeyEnter,
}

var mouseButtonNames = map[string]MouseButton{
	"Left":    MouseButtonLeft,
	"Right":   MouseButtonRight,
	"Middle":  MouseButtonMiddle,
	"Back":    MouseButtonBack,
	"Forward": MouseButtonForward,
}

var mouseAxisNames = map[string]MouseAxis{
	"X":      MouseAxisX,
	"Y":      MouseAxisY,
	"WheelX": MouseWheelX,
	"WheelY": MouseWheelY,
}

var gamepadButtonNames = map[string]GamepadButton{
	"South":         GamepadButtonSouth,
	"East":          GamepadButtonEast,
	"West":          GamepadButtonWest,
	"North":         GamepadButtonNorth,
	"LeftShoulder":  GamepadButtonLeftShoulder,
	"RightShoulder": GamepadButtonRightShoulder,
	"LeftTrigger":   GamepadButtonLeftTrigger,
	"RightTrigger":  GamepadButtonRightTrigger,
	"Select":        GamepadButtonSelect,
	"Start":         GamepadButtonStart,
	"LeftStick":     GamepadButtonLeftStick,
	"RightStick":    GamepadButtonRightStick,
	"DpadUp":        GamepadButtonDpadUp,
	"DpadDown":      GamepadButtonDpadDown,
	"DpadLeft":      GamepadButtonDpadLeft,
	"DpadRight":     GamepadButtonDpadRight,
	"Home":          GamepadButtonHome,
}

// Xbox style face-button aliases.
var gamepadButtonAliases = map[string]GamepadButton{
	"A":  GamepadButtonSouth,
	"B":  GamepadButtonEast,
	"X":  GamepadButtonWest,
	"Y":  GamepadButtonNorth,
	"LB": GamepadButtonLeftShoulder,
	"RB": GamepadButtonRightShoulder,
	"LT": GamepadButtonLeftTrigger,
	"RT": GamepadButtonRightTrigger,
	"L3": GamepadButtonLeftStick,
	"R3": GamepadButtonRightStick,
}

var gamepadAxisNames = map[string]GamepadAxis{
	"LeftX":        GamepadAxisLeftX,
	"LeftY":        GamepadAxisLeftY,
	"RightX":       GamepadAxisRightX,
	"RightY":       GamepadAxisRightY,
	"LeftTrigger":  GamepadAxisLeftTrigger,
	"RightTrigger": GamepadAxisRightTrigger,
}

func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	if k, ok := keyAliases[name]; ok {
		return k, nil
	}
	// single letters are accepted in either case
	if len(name) == 1 {
		if k, ok := keyNames[strings.ToUpper(name)]; ok {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("%w: key %q", ErrUnknownControl, name)
}

func ParseMouseButton(name string) (MouseButton, error) {
	if b, ok := mouseButtonNames[strings.TrimSpace(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: mouse button %q", ErrUnknownControl, name)
}

func ParseMouseAxis(name string) (MouseAxis, error) {
	if a, ok := mouseAxisNames[strings.TrimSpace(name)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: mouse axis %q", ErrUnknownControl, name)
}

func ParseGamepadButton(name string) (GamepadButton, error) {
	name = strings.TrimSpace(name)
	if b, ok := gamepadButtonNames[name]; ok {
		return b, nil
	}
	if b, ok := gamepadButtonAliases[name]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: gamepad button %q", ErrUnknownControl, name)
}

func ParseGamepadAxis(name string) (GamepadAxis, error) {
	if a, ok := gamepadAxisNames[strings.TrimSpace(name)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: gamepad axis %q", ErrUnknownControl, name)
}

func (k Key) String() string {
	return nameOf(keyNames, k, "Unknown")
}

func (b MouseButton) String() string {
	return nameOf(mouseButtonNames, b, "Unknown")
}

func (a MouseAxis) String() string {
	return nameOf(mouseAxisNames, a, "Unknown")
}

func (b GamepadButton) String() string {
	return nameOf(gamepadButtonNames, b, "Unknown")
}

func (a GamepadAxis) String() string {
	return nameOf(gamepadAxisNames, a, "Unknown")
}

func nameOf[T comparable](names map[string]T, v T, fallback string) string {
	for name, candidate := range names {
		if candidate == v {
			return name
		}
	}
	return fallback
}

// ParseControl resolves a "kind:name" control reference. Kinds are key,
// mouse, mouse_axis, pad and pad_axis, e.g. "key:Space" or "pad_axis:LeftX".
func ParseControl(ref string) (Control, error) {
	kind, name, ok := strings.Cut(strings.TrimSpace(ref), ":")
	if !ok {
		return Control{}, fmt.Errorf("%w: control %q has no kind prefix", ErrUnknownControl, ref)
	}
	switch strings.ToLower(kind) {
	case "key":
		k, err := ParseKey(name)
		return KeyControl(k), err
	case "mouse":
		b, err := ParseMouseButton(name)
		return MouseButtonControl(b), err
	case "mouse_axis":
		a, err := ParseMouseAxis(name)
		return MouseAxisControl(a), err
	case "pad":
		b, err := ParseGamepadButton(name)
		return GamepadButtonControl(b), err
	case "pad_axis":
		a, err := ParseGamepadAxis(name)
		return GamepadAxisControl(a), err
	default:
		return Control{}, fmt.Errorf("%w: control kind %q", ErrUnknownControl, kind)
	}
}

// String formats c the way ParseControl reads it.
func (c Control) String() string {
	switch c.Device {
	case Keyboard:
		return "key:" + Key(c.Code).String()
	case Mouse:
		if c.Axis {
			return "mouse_axis:" + MouseAxis(c.Code).String()
		}
		return "mouse:" + MouseButton(c.Code).String()
	case Gamepad:
		if c.Axis {
			return "pad_axis:" + GamepadAxis(c.Code).String()
		}
		return "pad:" + GamepadButton(c.Code).String()
	default:
		return "none"
	}
}
