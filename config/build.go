package config

import (
	"errors"
	"fmt"

	"github.com/milk9111/actioninput/device"
	"github.com/milk9111/actioninput/input"
)

// Bindings is a built config: detection settings plus the trees and
// groups that run its actions.
type Bindings struct {
	Settings device.Settings
	Tags     map[string]input.AccessTag
	Groups   []*input.Group
	Trees    []*input.Tree
}

// Action returns the first action called name, searching groups before
// loose trees.
func (b *Bindings) Action(name string) *input.Action {
	for _, g := range b.Groups {
		if a := g.FindAction(name); a != nil {
			return a
		}
	}
	for _, t := range b.Trees {
		if a := t.Find(name); a != nil {
			return a
		}
	}
	return nil
}

// Install replaces everything registered on m with b.
func (b *Bindings) Install(m *input.Manager) {
	m.Clear()
	m.ApplySettings(b.Settings)
	for _, g := range b.Groups {
		m.AddGroup(g)
	}
	for _, t := range b.Trees {
		m.AddTree(t)
	}
}

// Builder turns files into bindings on one runtime. Access tags are
// allocated once per name, so rebuilding after a reload keeps them stable.
type Builder struct {
	rt   *input.Runtime
	tags map[string]input.AccessTag
}

func NewBuilder(rt *input.Runtime) *Builder {
	return &Builder{
		rt: rt,
		tags: map[string]input.AccessTag{
			"all":     input.AllAccessTag,
			"default": input.DefaultTag,
		},
	}
}

// Tag returns the tag allocated for name, if any.
func (b *Builder) Tag(name string) (input.AccessTag, bool) {
	t, ok := b.tags[name]
	return t, ok
}

func (b *Builder) Build(f *File) (*Bindings, error) {
	settings, err := f.Detection.Settings()
	if err != nil {
		return nil, err
	}
	out := &Bindings{Settings: settings, Tags: map[string]input.AccessTag{}}

	for _, name := range f.AccessTags {
		tag, ok := b.tags[name]
		if !ok {
			tag, err = b.rt.NewAccessTag()
			if err != nil {
				return nil, fmt.Errorf("config: access tag %q: %w", name, err)
			}
			b.tags[name] = tag
		}
		out.Tags[name] = tag
	}

	for _, gs := range f.Groups {
		g := b.rt.NewGroup(gs.Name)
		for _, ts := range gs.Trees {
			t, err := b.tree(ts, out.Tags)
			if err != nil {
				return nil, fmt.Errorf("config: group %q: %w", gs.Name, err)
			}
			g.Add(t)
		}
		out.Groups = append(out.Groups, g)
	}
	for _, ts := range f.Trees {
		t, err := b.tree(ts, out.Tags)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out.Trees = append(out.Trees, t)
	}
	return out, nil
}

func (b *Builder) tree(ts TreeSpec, tags map[string]input.AccessTag) (*input.Tree, error) {
	t := b.rt.NewTree(ts.Name)
	if ts.Gamepad != nil {
		t.SetGamepad(*ts.Gamepad)
	}
	for _, as := range ts.Actions {
		if t.Find(as.Name) != nil {
			return nil, fmt.Errorf("tree %q: duplicate action %q", ts.Name, as.Name)
		}
		a, err := b.action(as, tags)
		if err != nil {
			return nil, fmt.Errorf("tree %q: action %q: %w", ts.Name, as.Name, err)
		}
		t.Add(a)
	}
	return t, nil
}

func (b *Builder) action(as ActionSpec, tags map[string]input.AccessTag) (*input.Action, error) {
	var opts []input.ActionOption
	if as.Hold > 0 {
		opts = append(opts, input.WithHold(as.Hold))
	}
	if as.MultiTap != nil {
		opts = append(opts, input.WithMultiTap(as.MultiTap.Count, as.MultiTap.Window))
	}
	if as.Smoothing != nil {
		opts = append(opts, input.WithAxisSmoothing(as.Smoothing.Sensitivity, as.Smoothing.Gravity))
	}
	if as.BlocksInput {
		opts = append(opts, input.BlocksInput())
	}
	if as.ExecutionOrder != nil {
		opts = append(opts, input.WithExecutionOrder(*as.ExecutionOrder))
	}
	if as.AccessTag != "" {
		tag, ok := tags[as.AccessTag]
		if !ok {
			tag, ok = b.tags[as.AccessTag]
		}
		if !ok {
			return nil, fmt.Errorf("unknown access tag %q", as.AccessTag)
		}
		opts = append(opts, input.WithAccessTag(tag))
	}

	probes := make([]*input.Probe, 0, len(as.Bindings))
	for i, bs := range as.Bindings {
		p, err := probe(bs)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		probes = append(probes, p)
	}
	opts = append(opts, input.WithProbes(probes...))

	return b.rt.NewAction(as.Name, opts...), nil
}

var errBindingShape = errors.New("exactly one of button, axis or pair must be set")

func probe(bs BindingSpec) (*input.Probe, error) {
	set := 0
	for _, ok := range []bool{bs.Button != "", bs.Axis != "", len(bs.Pair) > 0} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, errBindingShape
	}

	var opts []input.ProbeOption
	if bs.Deadzone > 0 {
		opts = append(opts, input.WithDeadzone(bs.Deadzone))
	}
	if bs.Scale != 0 {
		opts = append(opts, input.WithScale(bs.Scale))
	}
	if bs.Invert {
		opts = append(opts, input.Inverted())
	}
	if len(bs.Modifiers) > 0 {
		mods := make([]device.Control, 0, len(bs.Modifiers))
		for _, ref := range bs.Modifiers {
			c, err := device.ParseControl(ref)
			if err != nil {
				return nil, err
			}
			mods = append(mods, c)
		}
		opts = append(opts, input.WithModifiers(mods...))
	}

	switch {
	case bs.Button != "":
		c, err := device.ParseControl(bs.Button)
		if err != nil {
			return nil, err
		}
		return input.NewButtonProbe(c, opts...), nil
	case bs.Axis != "":
		c, err := device.ParseControl(bs.Axis)
		if err != nil {
			return nil, err
		}
		return input.NewAxisProbe(c, opts...), nil
	default:
		if len(bs.Pair) != 2 {
			return nil, fmt.Errorf("pair needs two controls, got %d", len(bs.Pair))
		}
		neg, err := device.ParseControl(bs.Pair[0])
		if err != nil {
			return nil, err
		}
		pos, err := device.ParseControl(bs.Pair[1])
		if err != nil {
			return nil, err
		}
		return input.NewButtonPairProbe(neg, pos, opts...), nil
	}
}
