// Package platform samples real devices through ebiten.
package platform

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/milk9111/actioninput/device"
)

// Ebiten implements device.Sampler over ebiten's polled input. Poll must
// run once per tick before anything samples it; input.Manager does that.
type Ebiten struct {
	log zerolog.Logger

	mouseX, mouseY   int
	mouseDX, mouseDY float64
	wheelX, wheelY   float64
	primed           bool

	ids     []ebiten.GamepadID
	offsets map[axisSlot]float64
}

type axisSlot struct {
	index int
	axis  device.GamepadAxis
}

func NewEbiten(log zerolog.Logger) *Ebiten {
	return &Ebiten{log: log, offsets: map[axisSlot]float64{}}
}

// SetAxisOffset records a calibration offset subtracted from a gamepad
// axis before it is reported.
func (e *Ebiten) SetAxisOffset(index int, a device.GamepadAxis, offset float64) {
	e.offsets[axisSlot{index, a}] = offset
}

func (e *Ebiten) Poll() {
	x, y := ebiten.CursorPosition()
	if e.primed {
		e.mouseDX = float64(x - e.mouseX)
		e.mouseDY = float64(y - e.mouseY)
	}
	e.mouseX, e.mouseY, e.primed = x, y, true
	e.wheelX, e.wheelY = ebiten.Wheel()

	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		e.log.Info().
			Int("gamepad", int(id)).
			Str("name", ebiten.GamepadName(id)).
			Bool("standard", ebiten.IsStandardGamepadLayoutAvailable(id)).
			Msg("gamepad connected")
	}
	for _, id := range e.ids {
		if inpututil.IsGamepadJustDisconnected(id) {
			e.log.Info().Int("gamepad", int(id)).Msg("gamepad disconnected")
		}
	}
	e.ids = ebiten.AppendGamepadIDs(e.ids[:0])
	sort.Slice(e.ids, func(i, j int) bool { return e.ids[i] < e.ids[j] })
}

func (e *Ebiten) KeyDown(k device.Key) bool {
	ek, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (e *Ebiten) MouseButtonDown(b device.MouseButton) bool {
	eb, ok := mouseButtonMap[b]
	return ok && ebiten.IsMouseButtonPressed(eb)
}

func (e *Ebiten) MouseAxis(a device.MouseAxis) float64 {
	switch a {
	case device.MouseAxisX:
		return e.mouseDX
	case device.MouseAxisY:
		return e.mouseDY
	case device.MouseWheelX:
		return e.wheelX
	case device.MouseWheelY:
		return e.wheelY
	default:
		return 0
	}
}

func (e *Ebiten) Gamepads() []int {
	out := make([]int, 0, len(e.ids))
	for _, id := range e.ids {
		out = append(out, int(id))
	}
	return out
}

func (e *Ebiten) GamepadButtonDown(index int, b device.GamepadButton) bool {
	id := ebiten.GamepadID(index)
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		sb, ok := standardButtonMap[b]
		return ok && ebiten.IsStandardGamepadButtonPressed(id, sb)
	}
	// without a standard mapping fall back to raw button order
	if int(b) >= ebiten.GamepadButtonCount(id) {
		return false
	}
	return ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b))
}

func (e *Ebiten) GamepadAxis(index int, a device.GamepadAxis) float64 {
	id := ebiten.GamepadID(index)
	var v float64
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		switch a {
		case device.GamepadAxisLeftTrigger:
			v = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		case device.GamepadAxisRightTrigger:
			v = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
		default:
			if sa, ok := standardAxisMap[a]; ok {
				v = ebiten.StandardGamepadAxisValue(id, sa)
			}
		}
	} else if int(a) < ebiten.GamepadAxisCount(id) {
		v = ebiten.GamepadAxisValue(id, int(a))
	}

	v -= e.offsets[axisSlot{index, a}]
	lo := -1.0
	if a.IsTrigger() {
		lo = 0
	}
	if v < lo {
		return lo
	}
	if v > 1 {
		return 1
	}
	return v
}
