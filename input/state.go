// Package input turns sampled device controls into actions: edge
// triggered states, hold and multi-tap timing, toggles, smoothed axes,
// and ordered trees of actions that block each other.
package input

import (
	"math"

	"github.com/milk9111/actioninput/device"
)

// State is the value a probe or an action exposes for one frame.
// Up is always !Down; Pressed and Released are never both set.
type State struct {
	Down     bool
	Up       bool
	Pressed  bool
	Released bool
	Axis     float64
	AxisRaw  float64
	Consumed bool

	// Hold and MultiTap are completion fractions in [0, 1]. Probe states
	// leave them at zero.
	Hold     float64
	MultiTap float64

	DeviceType  device.Type
	DeviceIndex int
}

// UpState is the neutral state every failure path resolves to.
func UpState() State {
	return State{Up: true}
}

// sample builds a current-frame state before edges are known.
func sample(down bool, axis float64, dt device.Type, index int) State {
	return State{Down: down, Up: !down, Axis: axis, AxisRaw: axis, DeviceType: dt, DeviceIndex: index}
}

// Combine derives the next state from the previous frame's state and the
// current sample. Edges come from the two Down values only.
func Combine(previous, current State) State {
	return State{
		Down:        current.Down,
		Up:          !current.Down,
		Pressed:     !previous.Down && current.Down,
		Released:    previous.Down && !current.Down,
		Axis:        current.Axis,
		AxisRaw:     current.AxisRaw,
		Hold:        current.Hold,
		MultiTap:    current.MultiTap,
		DeviceType:  current.DeviceType,
		DeviceIndex: current.DeviceIndex,
	}
}

// Accumulate merges two simultaneous contributions to one action.
// Down is the logical or. Axis values use max magnitude wins, with ties
// going to the positive value; that is a max over a total order, so the
// merge is exactly associative and commutative. The device comes from the
// first operand that is down, or failing that the first with a non-zero
// axis.
func Accumulate(a, b State) State {
	out := State{
		Down:    a.Down || b.Down,
		Axis:    maxMagnitude(a.Axis, b.Axis),
		AxisRaw: maxMagnitude(a.AxisRaw, b.AxisRaw),
	}
	out.Up = !out.Down

	switch {
	case a.Down:
		out.DeviceType, out.DeviceIndex = a.DeviceType, a.DeviceIndex
	case b.Down:
		out.DeviceType, out.DeviceIndex = b.DeviceType, b.DeviceIndex
	case a.AxisRaw != 0:
		out.DeviceType, out.DeviceIndex = a.DeviceType, a.DeviceIndex
	case b.AxisRaw != 0:
		out.DeviceType, out.DeviceIndex = b.DeviceType, b.DeviceIndex
	default:
		out.DeviceType, out.DeviceIndex = a.DeviceType, a.DeviceIndex
	}
	return out
}

func maxMagnitude(a, b float64) float64 {
	ma, mb := math.Abs(a), math.Abs(b)
	switch {
	case ma > mb:
		return a
	case mb > ma:
		return b
	case a >= b:
		return a
	default:
		return b
	}
}

// Consume marks the state as read. Down and Up survive, edges do not, so a
// second reader in the same frame sees no press or release.
func (s State) Consume() State {
	s.Consumed = true
	s.Pressed = false
	s.Released = false
	return s
}
