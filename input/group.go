package input

import (
	"slices"

	"github.com/milk9111/actioninput/device"
)

// Group runs its trees in ascending (ExecutionOrder, ID) order and reports
// which device drove input this frame.
type Group struct {
	rt    *Runtime
	id    uint64
	order int
	name  string

	trees []*Tree
	dirty bool

	device      device.Type
	deviceIndex int
}

func (r *Runtime) NewGroup(name string) *Group {
	return &Group{rt: r, id: r.newID(), order: r.newOrder(), name: name}
}

func (g *Group) ID() uint64 {
	return g.id
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) ExecutionOrder() int {
	return g.order
}

func (g *Group) SetExecutionOrder(order int) {
	g.order = order
}

// Add moves trees into the group; a tree belongs to one group at a time.
func (g *Group) Add(trees ...*Tree) {
	for _, t := range trees {
		if t == nil || t.group == g {
			continue
		}
		if t.group != nil {
			t.group.Remove(t)
		}
		t.group = g
		g.trees = append(g.trees, t)
		g.dirty = true
	}
}

func (g *Group) Remove(t *Tree) bool {
	for i, own := range g.trees {
		if own == t {
			g.trees = append(g.trees[:i], g.trees[i+1:]...)
			t.group = nil
			return true
		}
	}
	return false
}

// Trees returns the member trees in execution order.
func (g *Group) Trees() []*Tree {
	g.sort()
	return append([]*Tree(nil), g.trees...)
}

func (g *Group) Find(name string) *Tree {
	for _, t := range g.trees {
		if t.name == name {
			return t
		}
	}
	return nil
}

// FindAction searches every member tree in execution order.
func (g *Group) FindAction(name string) *Action {
	for _, t := range g.Trees() {
		if a := t.Find(name); a != nil {
			return a
		}
	}
	return nil
}

// SetActive applies to every member tree.
func (g *Group) SetActive(active bool) {
	for _, t := range g.trees {
		t.SetActive(active)
	}
}

// Device reports the device that drove the group on its last update.
func (g *Group) Device() (device.Type, int) {
	return g.device, g.deviceIndex
}

// Update runs every member tree, whatever earlier trees reported, and
// returns the first non-none device type among them.
func (g *Group) Update(dt float64, s device.Sampler) device.Type {
	g.sort()
	g.device, g.deviceIndex = device.None, 0
	for _, t := range g.trees {
		d := t.update(dt, s)
		if g.device == device.None && d != device.None {
			g.device, g.deviceIndex = t.Device()
		}
	}
	return g.device
}

func (g *Group) sort() {
	if !g.dirty {
		return
	}
	slices.SortStableFunc(g.trees, func(a, b *Tree) int {
		return compareOrder(a.order, a.id, b.order, b.id)
	})
	g.dirty = false
}
