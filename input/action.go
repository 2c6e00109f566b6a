package input

import (
	"math"

	"github.com/milk9111/actioninput/device"
)

// timerEpsilon treats a countdown this close to zero as expired, so that
// summing float frame times never leaves a fraction at 0.999...
const timerEpsilon = 1e-9

// Action is a logical command fed by one or more probes. It exposes an
// edge-triggered State, hold and multi-tap progress, a toggle flipped on
// every press, and an axis that eases toward its raw value.
type Action struct {
	rt    *Runtime
	id    uint64
	order int
	name  string

	probes      []*Probe
	state       State
	active      bool
	tag         AccessTag
	blocksInput bool
	gamepad     int

	holdDuration float64
	holdTimer    float64
	holding      bool
	holdFraction float64

	multiTapDuration float64
	multiTapTarget   int
	tapTimer         float64
	tapCount         int
	multiTapFraction float64

	toggle bool

	sensitivity float64
	gravity     float64

	used []probeKey
	tree *Tree
}

// ActionOption configures an action at construction.
type ActionOption func(*Action)

// WithHold makes the action report hold progress over d seconds.
func WithHold(d float64) ActionOption {
	return func(a *Action) {
		a.holdDuration = d
	}
}

// WithMultiTap completes after count presses, each inside window seconds
// of the one before.
func WithMultiTap(count int, window float64) ActionOption {
	return func(a *Action) {
		a.multiTapTarget = count
		a.multiTapDuration = window
	}
}

// WithAxisSmoothing sets how many seconds the axis takes to travel one
// unit toward a non-zero raw value (sensitivity) and back to rest (gravity).
// Zero snaps.
func WithAxisSmoothing(sensitivity, gravity float64) ActionOption {
	return func(a *Action) {
		a.sensitivity = sensitivity
		a.gravity = gravity
	}
}

func WithAccessTag(tag AccessTag) ActionOption {
	return func(a *Action) {
		a.tag = tag
	}
}

// BlocksInput makes the action claim its held controls for the rest of
// the frame; actions that run after it in the same tree ignore them.
func BlocksInput() ActionOption {
	return func(a *Action) {
		a.blocksInput = true
	}
}

func WithExecutionOrder(order int) ActionOption {
	return func(a *Action) {
		a.order = order
	}
}

// WithProbes attaches probes at construction.
func WithProbes(probes ...*Probe) ActionOption {
	return func(a *Action) {
		for _, p := range probes {
			a.AddProbe(p)
		}
	}
}

// NewAction creates an active action. Its execution order is the next
// value of the runtime's counter unless WithExecutionOrder overrides it.
func (r *Runtime) NewAction(name string, opts ...ActionOption) *Action {
	a := &Action{
		rt:      r,
		id:      r.newID(),
		order:   r.newOrder(),
		name:    name,
		state:   UpState(),
		active:  true,
		tag:     DefaultTag,
		gamepad: device.AnyGamepad,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Action) ID() uint64 {
	return a.id
}

func (a *Action) Name() string {
	return a.name
}

func (a *Action) ExecutionOrder() int {
	return a.order
}

// SetExecutionOrder moves the action; its tree re-sorts before its next
// update.
func (a *Action) SetExecutionOrder(order int) {
	if a.order == order {
		return
	}
	a.order = order
	if a.tree != nil {
		a.tree.dirty = true
	}
}

func (a *Action) AccessTag() AccessTag {
	return a.tag
}

func (a *Action) SetAccessTag(tag AccessTag) {
	a.tag = tag
}

func (a *Action) BlocksInput() bool {
	return a.blocksInput
}

func (a *Action) SetBlocksInput(b bool) {
	a.blocksInput = b
}

// AddProbe takes ownership of p and returns the probe the action now
// owns. A probe that already belongs to an action is copied first.
func (a *Action) AddProbe(p *Probe) *Probe {
	if p == nil {
		return nil
	}
	if p.owner != nil {
		p = p.Copy()
	}
	p.owner = a
	a.probes = append(a.probes, p)
	return p
}

func (a *Action) RemoveProbe(p *Probe) bool {
	for i, own := range a.probes {
		if own == p {
			a.probes = append(a.probes[:i], a.probes[i+1:]...)
			p.owner = nil
			return true
		}
	}
	return false
}

func (a *Action) Probes() []*Probe {
	return append([]*Probe(nil), a.probes...)
}

// Tree is the tree the action is attached to, if any.
func (a *Action) Tree() *Tree {
	return a.tree
}

func (a *Action) Active() bool {
	return a.active
}

// SetActive(false) resets the action fully; it does not pause it.
func (a *Action) SetActive(active bool) {
	if a.active == active {
		return
	}
	a.active = active
	if !active {
		a.Reset()
	}
}

// Reset clears the state, every timer and counter, and the toggle.
func (a *Action) Reset() {
	a.state = UpState()
	a.holdTimer = 0
	a.holding = false
	a.holdFraction = 0
	a.tapTimer = 0
	a.tapCount = 0
	a.multiTapFraction = 0
	a.toggle = false
	a.used = a.used[:0]
	for _, p := range a.probes {
		p.reset()
	}
}

// State returns the action's state for this frame without consuming it.
func (a *Action) State() State {
	return a.state
}

func (a *Action) Down() bool     { return a.state.Down }
func (a *Action) Pressed() bool  { return a.state.Pressed }
func (a *Action) Released() bool { return a.state.Released }
func (a *Action) Axis() float64  { return a.state.Axis }

// Consume hands the frame's state to one reader. Later callers in the same
// frame get false and a neutral state.
func (a *Action) Consume() (State, bool) {
	if a.state.Consumed {
		return UpState(), false
	}
	out := a.state
	a.state = a.state.Consume()
	return out, true
}

func (a *Action) Toggle() bool {
	return a.toggle
}

func (a *Action) SetToggle(on bool) {
	a.toggle = on
}

// Holding reports whether a hold is in progress and not yet complete.
func (a *Action) Holding() bool {
	return a.holding
}

func (a *Action) HoldFraction() float64 {
	return a.holdFraction
}

func (a *Action) MultiTapFraction() float64 {
	return a.multiTapFraction
}

func (a *Action) MultiTapCount() int {
	return a.tapCount
}

// Copy returns an unattached action with the same configuration, copies of
// every probe, a fresh id and a reset state.
func (a *Action) Copy() *Action {
	c := *a
	c.id = a.rt.newID()
	c.tree = nil
	c.used = nil
	c.probes = make([]*Probe, 0, len(a.probes))
	for _, p := range a.probes {
		cp := p.Copy()
		cp.owner = &c
		c.probes = append(c.probes, cp)
	}
	c.Reset()
	return &c
}

// Update runs one frame for an action that is not in a tree. It samples
// the action's own gamepad binding and blocks nothing.
func (a *Action) Update(dt float64, s device.Sampler) {
	a.update(dt, s, a.gamepad, nil)
}

func (a *Action) SetGamepad(index int) {
	a.gamepad = index
}

func (a *Action) Gamepad() int {
	return a.gamepad
}

func (a *Action) update(dt float64, s device.Sampler, pad int, blocked map[probeKey]struct{}) {
	if !a.active {
		return
	}
	if !a.rt.IsInputAvailable(a.tag) {
		a.Reset()
		return
	}

	a.used = a.used[:0]
	cur := UpState()
	for _, p := range a.probes {
		st, read := p.update(s, pad)
		key := p.key(read)
		if st.Down {
			// A control claimed by an earlier blocking action is hidden from
			// every later action, blocking or not.
			if _, ok := blocked[key]; ok {
				continue
			}
			if a.blocksInput && blocked != nil {
				blocked[key] = struct{}{}
			}
			a.used = append(a.used, key)
		}
		cur = Accumulate(cur, st)
	}

	if a.tapTimer > 0 {
		a.tapTimer -= dt
		if a.tapTimer <= timerEpsilon {
			a.tapTimer = 0
			a.tapCount = 0
		}
	}

	switch {
	case !a.state.Down && cur.Down:
		if a.holdDuration > 0 {
			a.holdTimer = a.holdDuration
			a.holding = true
			a.holdFraction = 0
		}
		if a.multiTapDuration > 0 && a.multiTapTarget > 1 {
			a.tapTimer = a.multiTapDuration
			a.tapCount++
		}
	case a.state.Down && !cur.Down:
		a.cancelHold()
	}

	holdDone := false
	if a.holding {
		a.holdTimer -= dt
		if a.holdTimer <= timerEpsilon {
			a.holdTimer = 0
			a.holding = false
			a.holdFraction = 1
			holdDone = true
		} else {
			a.holdFraction = 1 - a.holdTimer/a.holdDuration
		}
	}

	tapDone := false
	switch {
	case a.multiTapTarget > 1 && a.tapTimer > 0 && a.tapCount >= a.multiTapTarget:
		a.multiTapFraction = 1
		tapDone = true
		// multi-tap preempts hold
		if a.holding || holdDone {
			a.cancelHold()
			holdDone = false
		}
	case a.multiTapTarget > 1:
		a.multiTapFraction = float64(a.tapCount) / float64(a.multiTapTarget)
	default:
		a.multiTapFraction = 0
	}

	cur.Hold = a.holdFraction
	cur.MultiTap = a.multiTapFraction
	prevAxis := a.state.Axis
	next := Combine(a.state, cur)
	next.Axis = a.smoothAxis(prevAxis, next.AxisRaw, dt)
	a.state = next

	if next.Pressed {
		a.toggle = !a.toggle
	}
	if tapDone {
		a.tapCount = 0
	}

	a.emit(next, holdDone, tapDone)
}

func (a *Action) cancelHold() {
	a.holding = false
	a.holdTimer = 0
	a.holdFraction = 0
}

// smoothAxis moves the displayed axis toward raw without overshooting. A
// gap wider than one unit means raw flipped sign, so the axis snaps to
// rest before moving on at the sensitivity rate.
func (a *Action) smoothAxis(cur, raw, dt float64) float64 {
	gap := raw - cur
	if gap > 1 || gap < -1 {
		cur = 0
		gap = raw
	}
	rate := a.gravity
	if raw != 0 {
		rate = a.sensitivity
	}
	if rate <= 0 {
		return raw
	}
	step := dt / rate
	if math.Abs(gap) <= step {
		return raw
	}
	return cur + math.Copysign(step, gap)
}

func (a *Action) emit(st State, holdDone, tapDone bool) {
	evt := Event{Action: a, Device: st.DeviceType, DeviceIndex: st.DeviceIndex}
	if st.Pressed {
		evt.Kind = EventActionPressed
		a.rt.push(evt)
		toggled := evt
		toggled.Kind = EventToggleChanged
		toggled.Toggle = a.toggle
		a.rt.push(toggled)
	}
	if st.Released {
		evt.Kind = EventActionReleased
		a.rt.push(evt)
	}
	if holdDone {
		evt.Kind = EventHoldCompleted
		a.rt.push(evt)
	}
	if tapDone {
		evt.Kind = EventMultiTapCompleted
		a.rt.push(evt)
	}
}
