package device

// Key is a keyboard key in a platform independent layout.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyApostrophe
	KeyLeftBracket
	KeyRightBracket
	KeyBackquote
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

// Keys returns every known key, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// MouseButton is a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward

	mouseButtonCount
)

func MouseButtons() []MouseButton {
	return []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle, MouseButtonBack, MouseButtonForward}
}

// MouseAxis is a relative mouse axis. Values are per-frame deltas.
type MouseAxis int

const (
	MouseAxisX MouseAxis = iota
	MouseAxisY
	MouseWheelX
	MouseWheelY
)

// GamepadButton follows the W3C standard gamepad layout.
type GamepadButton int

const (
	GamepadButtonSouth GamepadButton = iota
	GamepadButtonEast
	GamepadButtonWest
	GamepadButtonNorth
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger
	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonDpadUp
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	GamepadButtonDpadRight
	GamepadButtonHome

	gamepadButtonCount
)

func GamepadButtons() []GamepadButton {
	buttons := make([]GamepadButton, 0, gamepadButtonCount)
	for b := GamepadButtonSouth; b < gamepadButtonCount; b++ {
		buttons = append(buttons, b)
	}
	return buttons
}

// GamepadAxis is an analog gamepad axis. Triggers range over [0, 1].
type GamepadAxis int

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

func (a GamepadAxis) IsTrigger() bool {
	return a == GamepadAxisLeftTrigger || a == GamepadAxisRightTrigger
}
