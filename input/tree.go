package input

import (
	"cmp"
	"slices"

	"github.com/milk9111/actioninput/device"
)

// Tree runs a set of actions in ascending (ExecutionOrder, ID) order. The
// actions share a blocked set, so an action that blocks input hides its
// held controls from every action after it in the same frame.
type Tree struct {
	rt    *Runtime
	id    uint64
	order int
	name  string

	actions []*Action
	dirty   bool

	blocked map[probeKey]struct{}
	used    map[probeKey]struct{}

	active  bool
	group   *Group
	gamepad int

	device      device.Type
	deviceIndex int
}

func (r *Runtime) NewTree(name string) *Tree {
	return &Tree{
		rt:      r,
		id:      r.newID(),
		order:   r.newOrder(),
		name:    name,
		blocked: map[probeKey]struct{}{},
		used:    map[probeKey]struct{}{},
		active:  true,
		gamepad: device.AnyGamepad,
	}
}

func (t *Tree) ID() uint64 {
	return t.id
}

func (t *Tree) Name() string {
	return t.name
}

func (t *Tree) ExecutionOrder() int {
	return t.order
}

func (t *Tree) SetExecutionOrder(order int) {
	if t.order == order {
		return
	}
	t.order = order
	if t.group != nil {
		t.group.dirty = true
	}
}

// Add attaches actions, detaching each from any tree it was in.
func (t *Tree) Add(actions ...*Action) {
	for _, a := range actions {
		if a == nil || a.tree == t {
			continue
		}
		if a.tree != nil {
			a.tree.Remove(a)
		}
		a.tree = t
		t.actions = append(t.actions, a)
		t.dirty = true
	}
}

func (t *Tree) Remove(a *Action) bool {
	for i, own := range t.actions {
		if own == a {
			t.actions = append(t.actions[:i], t.actions[i+1:]...)
			a.tree = nil
			return true
		}
	}
	return false
}

// Actions returns the actions in execution order.
func (t *Tree) Actions() []*Action {
	t.sort()
	return append([]*Action(nil), t.actions...)
}

// Find returns the first action with the given name.
func (t *Tree) Find(name string) *Action {
	for _, a := range t.actions {
		if a.name == name {
			return a
		}
	}
	return nil
}

func (t *Tree) Active() bool {
	return t.active
}

// SetActive(false) resets every action so that no hold or multi-tap
// survives reactivation.
func (t *Tree) SetActive(active bool) {
	if t.active == active {
		return
	}
	t.active = active
	if !active {
		for _, a := range t.actions {
			a.Reset()
		}
		clear(t.blocked)
		clear(t.used)
		t.device, t.deviceIndex = device.None, 0
	}
}

// SetGamepad binds every action of the tree to one gamepad index, or to
// device.AnyGamepad.
func (t *Tree) SetGamepad(index int) {
	t.gamepad = index
}

func (t *Tree) Gamepad() int {
	return t.gamepad
}

// Group is the group the tree belongs to, if any.
func (t *Tree) Group() *Group {
	return t.group
}

// SetGroup moves the tree into g, leaving its previous group. nil leaves.
func (t *Tree) SetGroup(g *Group) {
	if g == nil {
		if t.group != nil {
			t.group.Remove(t)
		}
		return
	}
	g.Add(t)
}

// Device reports the device that drove the tree on its last update.
func (t *Tree) Device() (device.Type, int) {
	return t.device, t.deviceIndex
}

// UsedControls lists the controls that fed an action on the last update.
func (t *Tree) UsedControls() []device.Control {
	out := make([]device.Control, 0, len(t.used))
	seen := map[device.Control]bool{}
	for k := range t.used {
		for _, c := range []device.Control{k.control, k.negative} {
			if c.IsZero() || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b device.Control) int {
		if c := cmp.Compare(a.Device, b.Device); c != 0 {
			return c
		}
		if a.Axis != b.Axis {
			if a.Axis {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}

// Update runs the tree for one frame and returns the device type the first
// action with input came from. A tree inside a group is driven by the
// group, so calling Update on it directly does nothing.
func (t *Tree) Update(dt float64, s device.Sampler) device.Type {
	if t.group != nil {
		return device.None
	}
	return t.update(dt, s)
}

func (t *Tree) update(dt float64, s device.Sampler) device.Type {
	if !t.active {
		return device.None
	}
	t.sort()
	clear(t.blocked)
	clear(t.used)
	t.device, t.deviceIndex = device.None, 0

	for _, a := range t.actions {
		a.gamepad = t.gamepad
		a.update(dt, s, t.gamepad, t.blocked)
		for _, k := range a.used {
			t.used[k] = struct{}{}
		}
		if t.device == device.None && a.state.Down && a.state.DeviceType != device.None {
			t.device, t.deviceIndex = a.state.DeviceType, a.state.DeviceIndex
		}
	}
	return t.device
}

func (t *Tree) sort() {
	if !t.dirty {
		return
	}
	slices.SortStableFunc(t.actions, func(a, b *Action) int {
		return compareOrder(a.order, a.id, b.order, b.id)
	})
	t.dirty = false
}

// Copy returns a tree with copies of every action, outside any group.
func (t *Tree) Copy() *Tree {
	c := t.rt.NewTree(t.name)
	c.order = t.order
	c.active = t.active
	c.gamepad = t.gamepad
	for _, a := range t.Actions() {
		c.Add(a.Copy())
	}
	return c
}

func compareOrder(orderA int, idA uint64, orderB int, idB uint64) int {
	if c := cmp.Compare(orderA, orderB); c != 0 {
		return c
	}
	return cmp.Compare(idA, idB)
}
