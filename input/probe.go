package input

import (
	"math"

	"github.com/milk9111/actioninput/device"
)

// ProbeKind is the closed set of binding shapes.
type ProbeKind uint8

const (
	// ProbeButton reads one digital control.
	ProbeButton ProbeKind = iota
	// ProbeAxis reads one analog control through a deadzone.
	ProbeAxis
	// ProbeButtonPair builds an axis from a negative and a positive button.
	ProbeButtonPair
)

func (k ProbeKind) String() string {
	switch k {
	case ProbeButton:
		return "button"
	case ProbeAxis:
		return "axis"
	case ProbeButtonPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Probe binds one physical control (or a pair) to an action and keeps the
// state it produced last frame.
type Probe struct {
	kind      ProbeKind
	control   device.Control
	negative  device.Control
	modifiers []device.Control
	deadzone  float64
	scale     float64
	invert    bool

	owner *Action
	last  State
}

// ProbeOption configures a probe at construction.
type ProbeOption func(*Probe)

// WithDeadzone sets the magnitude below which an axis reads zero.
func WithDeadzone(dz float64) ProbeOption {
	return func(p *Probe) {
		p.deadzone = math.Max(0, math.Min(dz, 0.99))
	}
}

// WithModifiers gates the probe on every modifier control being held.
func WithModifiers(controls ...device.Control) ProbeOption {
	return func(p *Probe) {
		p.modifiers = append([]device.Control(nil), controls...)
	}
}

// WithScale multiplies an analog reading before the deadzone is applied.
// Mouse deltas are in pixels, so a mouse axis probe typically uses a scale
// well below one.
func WithScale(f float64) ProbeOption {
	return func(p *Probe) {
		p.scale = f
	}
}

// Inverted flips the sign of the probe's axis.
func Inverted() ProbeOption {
	return func(p *Probe) {
		p.invert = true
	}
}

func NewButtonProbe(c device.Control, opts ...ProbeOption) *Probe {
	return newProbe(ProbeButton, c, device.Control{}, opts)
}

func NewAxisProbe(c device.Control, opts ...ProbeOption) *Probe {
	return newProbe(ProbeAxis, c, device.Control{}, opts)
}

// NewButtonPairProbe reads -1 while negative is held, +1 while positive is
// held, and 0 when both or neither are.
func NewButtonPairProbe(negative, positive device.Control, opts ...ProbeOption) *Probe {
	return newProbe(ProbeButtonPair, positive, negative, opts)
}

func newProbe(kind ProbeKind, c, negative device.Control, opts []ProbeOption) *Probe {
	p := &Probe{kind: kind, control: c, negative: negative, scale: 1, last: UpState()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Probe) Kind() ProbeKind {
	return p.kind
}

func (p *Probe) Control() device.Control {
	return p.control
}

// Negative is the negative control of a button pair, zero otherwise.
func (p *Probe) Negative() device.Control {
	return p.negative
}

func (p *Probe) Modifiers() []device.Control {
	return append([]device.Control(nil), p.modifiers...)
}

func (p *Probe) Deadzone() float64 {
	return p.deadzone
}

// State returns what the probe produced on its last update.
func (p *Probe) State() State {
	return p.last
}

// Copy returns an independent probe with the same binding and a reset state.
func (p *Probe) Copy() *Probe {
	c := *p
	c.modifiers = append([]device.Control(nil), p.modifiers...)
	c.owner = nil
	c.last = UpState()
	return &c
}

func (p *Probe) reset() {
	p.last = UpState()
}

// probeKey identifies what a probe reads on which gamepad, so that two
// probes owned by different actions but bound to the same control block
// each other.
type probeKey struct {
	kind     ProbeKind
	control  device.Control
	negative device.Control
	pad      int
}

func (p *Probe) key(pad int) probeKey {
	k := probeKey{kind: p.kind, control: p.control, negative: p.negative}
	if p.control.Device == device.Gamepad || p.negative.Device == device.Gamepad {
		k.pad = pad
	}
	return k
}

// update samples the probe and combines it with last frame's state. pad is
// the gamepad index to read, or device.AnyGamepad. It returns the combined
// state and the gamepad that was actually read.
func (p *Probe) update(s device.Sampler, pad int) (State, int) {
	cur, read := p.sample(s, pad)
	p.last = Combine(p.last, cur)
	return p.last, read
}

func (p *Probe) sample(s device.Sampler, pad int) (State, int) {
	if s == nil {
		return UpState(), pad
	}
	if p.needsPad() && pad == device.AnyGamepad {
		ids := s.Gamepads()
		var best State
		bestPad := device.AnyGamepad
		for _, id := range ids {
			st := p.read(s, id)
			if bestPad == device.AnyGamepad || (!best.Down && st.Down) || (st.Down == best.Down && math.Abs(st.AxisRaw) > math.Abs(best.AxisRaw)) {
				best, bestPad = st, id
			}
		}
		if bestPad == device.AnyGamepad {
			return UpState(), pad
		}
		return best, bestPad
	}
	return p.read(s, pad), pad
}

func (p *Probe) needsPad() bool {
	if p.control.Device == device.Gamepad || p.negative.Device == device.Gamepad {
		return true
	}
	for _, m := range p.modifiers {
		if m.Device == device.Gamepad {
			return true
		}
	}
	return false
}

func (p *Probe) read(s device.Sampler, pad int) State {
	for _, m := range p.modifiers {
		if device.Value(s, m, pad) == 0 {
			return UpState()
		}
	}

	var v float64
	switch p.kind {
	case ProbeButton:
		if device.Value(s, p.control, pad) != 0 {
			v = 1
		}
	case ProbeAxis:
		raw := math.Max(-1, math.Min(1, device.Value(s, p.control, pad)*p.scale))
		v = applyDeadzone(raw, p.deadzone)
	case ProbeButtonPair:
		if device.Value(s, p.control, pad) != 0 {
			v++
		}
		if device.Value(s, p.negative, pad) != 0 {
			v--
		}
	}
	if p.invert {
		v = -v
	}

	dt := p.control.Device
	index := 0
	if dt == device.Gamepad {
		index = pad
	}
	return sample(v != 0, v, dt, index)
}

// applyDeadzone zeroes values inside the deadzone and rescales the rest so
// the output still spans [-1, 1].
func applyDeadzone(v, dz float64) float64 {
	mag := math.Abs(v)
	if mag <= dz {
		return 0
	}
	if dz <= 0 {
		return v
	}
	return math.Copysign((mag-dz)/(1-dz), v)
}
