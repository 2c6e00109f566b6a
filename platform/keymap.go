package platform

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/actioninput/device"
)

var keyMap = map[device.Key]ebiten.Key{
	device.KeyA:            ebiten.KeyA,
	device.KeyB:            ebiten.KeyB,
	device.KeyC:            ebiten.KeyC,
	device.KeyD:            ebiten.KeyD,
	device.KeyE:            ebiten.KeyE,
	device.KeyF:            ebiten.KeyF,
	device.KeyG:            ebiten.KeyG,
	device.KeyH:            ebiten.KeyH,
	device.KeyI:            ebiten.KeyI,
	device.KeyJ:            ebiten.KeyJ,
	device.KeyK:            ebiten.KeyK,
	device.KeyL:            ebiten.KeyL,
	device.KeyM:            ebiten.KeyM,
	device.KeyN:            ebiten.KeyN,
	device.KeyO:            ebiten.KeyO,
	device.KeyP:            ebiten.KeyP,
	device.KeyQ:            ebiten.KeyQ,
	device.KeyR:            ebiten.KeyR,
	device.KeyS:            ebiten.KeyS,
	device.KeyT:            ebiten.KeyT,
	device.KeyU:            ebiten.KeyU,
	device.KeyV:            ebiten.KeyV,
	device.KeyW:            ebiten.KeyW,
	device.KeyX:            ebiten.KeyX,
	device.KeyY:            ebiten.KeyY,
	device.KeyZ:            ebiten.KeyZ,
	device.Key0:            ebiten.KeyDigit0,
	device.Key1:            ebiten.KeyDigit1,
	device.Key2:            ebiten.KeyDigit2,
	device.Key3:            ebiten.KeyDigit3,
	device.Key4:            ebiten.KeyDigit4,
	device.Key5:            ebiten.KeyDigit5,
	device.Key6:            ebiten.KeyDigit6,
	device.Key7:            ebiten.KeyDigit7,
	device.Key8:            ebiten.KeyDigit8,
	device.Key9:            ebiten.KeyDigit9,
	device.KeySpace:        ebiten.KeySpace,
	device.KeyEnter:        ebiten.KeyEnter,
	device.KeyEscape:       ebiten.KeyEscape,
	device.KeyBackspace:    ebiten.KeyBackspace,
	device.KeyTab:          ebiten.KeyTab,
	device.KeyShiftLeft:    ebiten.KeyShiftLeft,
	device.KeyShiftRight:   ebiten.KeyShiftRight,
	device.KeyControlLeft:  ebiten.KeyControlLeft,
	device.KeyControlRight: ebiten.KeyControlRight,
	device.KeyAltLeft:      ebiten.KeyAltLeft,
	device.KeyAltRight:     ebiten.KeyAltRight,
	device.KeyArrowUp:      ebiten.KeyArrowUp,
	device.KeyArrowDown:    ebiten.KeyArrowDown,
	device.KeyArrowLeft:    ebiten.KeyArrowLeft,
	device.KeyArrowRight:   ebiten.KeyArrowRight,
	device.KeyMinus:        ebiten.KeyMinus,
	device.KeyEqual:        ebiten.KeyEqual,
	device.KeyComma:        ebiten.KeyComma,
	device.KeyPeriod:       ebiten.KeyPeriod,
	device.KeySlash:        ebiten.KeySlash,
	device.KeySemicolon:    ebiten.KeySemicolon,
	device.KeyApostrophe:   ebiten.KeyQuote,
	device.KeyLeftBracket:  ebiten.KeyBracketLeft,
	device.KeyRightBracket: ebiten.KeyBracketRight,
	device.KeyBackquote:    ebiten.KeyBackquote,
	device.KeyF1:           ebiten.KeyF1,
	device.KeyF2:           ebiten.KeyF2,
	device.KeyF3:           ebiten.KeyF3,
	device.KeyF4:           ebiten.KeyF4,
	device.KeyF5:           ebiten.KeyF5,
	device.KeyF6:           ebiten.KeyF6,
	device.KeyF7:           ebiten.KeyF7,
	device.KeyF8:           ebiten.KeyF8,
	device.KeyF9:           ebiten.KeyF9,
	device.KeyF10:          ebiten.KeyF10,
	device.KeyF11:          ebiten.KeyF11,
	device.KeyF12:          ebiten.KeyF12,
}

var mouseButtonMap = map[device.MouseButton]ebiten.MouseButton{
	device.MouseButtonLeft:    ebiten.MouseButtonLeft,
	device.MouseButtonRight:   ebiten.MouseButtonRight,
	device.MouseButtonMiddle:  ebiten.MouseButtonMiddle,
	device.MouseButtonBack:    ebiten.MouseButton3,
	device.MouseButtonForward: ebiten.MouseButton4,
}

var standardButtonMap = map[device.GamepadButton]ebiten.StandardGamepadButton{
	device.GamepadButtonSouth:         ebiten.StandardGamepadButtonRightBottom,
	device.GamepadButtonEast:          ebiten.StandardGamepadButtonRightRight,
	device.GamepadButtonWest:          ebiten.StandardGamepadButtonRightLeft,
	device.GamepadButtonNorth:         ebiten.StandardGamepadButtonRightTop,
	device.GamepadButtonLeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	device.GamepadButtonRightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
	device.GamepadButtonLeftTrigger:   ebiten.StandardGamepadButtonFrontBottomLeft,
	device.GamepadButtonRightTrigger:  ebiten.StandardGamepadButtonFrontBottomRight,
	device.GamepadButtonSelect:        ebiten.StandardGamepadButtonCenterLeft,
	device.GamepadButtonStart:         ebiten.StandardGamepadButtonCenterRight,
	device.GamepadButtonLeftStick:     ebiten.StandardGamepadButtonLeftStick,
	device.GamepadButtonRightStick:    ebiten.StandardGamepadButtonRightStick,
	device.GamepadButtonDpadUp:        ebiten.StandardGamepadButtonLeftTop,
	device.GamepadButtonDpadDown:      ebiten.StandardGamepadButtonLeftBottom,
	device.GamepadButtonDpadLeft:      ebiten.StandardGamepadButtonLeftLeft,
	device.GamepadButtonDpadRight:     ebiten.StandardGamepadButtonLeftRight,
	device.GamepadButtonHome:          ebiten.StandardGamepadButtonCenterCenter,
}

var standardAxisMap = map[device.GamepadAxis]ebiten.StandardGamepadAxis{
	device.GamepadAxisLeftX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	device.GamepadAxisLeftY:  ebiten.StandardGamepadAxisLeftStickVertical,
	device.GamepadAxisRightX: ebiten.StandardGamepadAxisRightStickHorizontal,
	device.GamepadAxisRightY: ebiten.StandardGamepadAxisRightStickVertical,
}
