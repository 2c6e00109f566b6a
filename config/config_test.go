package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/actioninput/device"
	"github.com/milk9111/actioninput/input"
)

const dt = 0.1

func TestDefaultsDecodeAlike(t *testing.T) {
	fromYAML, err := Load("bindings.yaml")
	require.NoError(t, err)
	fromTOML, err := Load("bindings.toml")
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromTOML)

	byDefault, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, fromYAML, byDefault)
}

func TestBuildDefaults(t *testing.T) {
	f, err := Load(DefaultName)
	require.NoError(t, err)

	rt := input.NewRuntime()
	b, err := NewBuilder(rt).Build(f)
	require.NoError(t, err)

	assert.Equal(t, device.DefaultSettings(), b.Settings)
	require.Len(t, b.Groups, 1)
	require.Len(t, b.Trees, 1)
	assert.Equal(t, "gameplay", b.Groups[0].Name())
	assert.Equal(t, "menu", b.Trees[0].Name())

	for _, name := range []string{"pause", "move", "jump", "dash", "aim", "fire", "confirm", "quit"} {
		assert.NotNil(t, b.Action(name), name)
	}
	assert.Nil(t, b.Action("crouch"))

	menu, ok := b.Tags["menu"]
	require.True(t, ok)
	assert.True(t, menu.IsSingle())
	assert.Equal(t, input.AllAccessTag, b.Action("pause").AccessTag())
	assert.Equal(t, menu, b.Action("quit").AccessTag())
	assert.Equal(t, -1, b.Action("pause").ExecutionOrder())
	assert.True(t, b.Action("pause").BlocksInput())
}

func TestBuiltBindingsDrive(t *testing.T) {
	f, err := Load(DefaultName)
	require.NoError(t, err)
	rt := input.NewRuntime()
	b, err := NewBuilder(rt).Build(f)
	require.NoError(t, err)

	s := device.NewSnapshot()
	m := input.NewManager(rt, s)
	b.Install(m)

	move := b.Action("move")
	s.SetKey(device.KeyD, true)
	m.Update(dt)
	assert.InDelta(t, 0.5, move.Axis(), 1e-9, "0.2s sensitivity covers half the range in 0.1s")
	m.Update(dt)
	assert.InDelta(t, 1.0, move.Axis(), 1e-9)
	s.SetKey(device.KeyD, false)

	quit := b.Action("quit")
	s.SetKey(device.KeyQ, true)
	m.Update(dt)
	assert.False(t, quit.Down(), "quit needs control held")
	s.SetKey(device.KeyControlLeft, true)
	m.Update(dt)
	assert.True(t, quit.Pressed())
	s.Release()
	m.Update(dt)

	rt.LockWhitelist(b.Tags["menu"])
	s.SetKey(device.KeySpace, true)
	s.SetKey(device.KeyEnter, true)
	s.SetKey(device.KeyEscape, true)
	m.Update(dt)
	assert.False(t, b.Action("jump").Down(), "gameplay is locked out")
	assert.True(t, b.Action("confirm").Pressed())
	assert.True(t, b.Action("pause").Pressed(), "pause carries the all-access tag")
}

func TestBuilderKeepsTagsAcrossRebuilds(t *testing.T) {
	f, err := Load(DefaultName)
	require.NoError(t, err)
	builder := NewBuilder(input.NewRuntime())

	first, err := builder.Build(f)
	require.NoError(t, err)
	second, err := builder.Build(f)
	require.NoError(t, err)
	assert.Equal(t, first.Tags["menu"], second.Tags["menu"])

	tag, ok := builder.Tag("default")
	assert.True(t, ok)
	assert.Equal(t, input.DefaultTag, tag)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown_control",
			doc:  "trees: [{name: t, actions: [{name: a, bindings: [{button: 'key:Hyper'}]}]}]",
			want: device.ErrUnknownControl,
		},
		{
			name: "two_shapes",
			doc:  "trees: [{name: t, actions: [{name: a, bindings: [{button: 'key:A', axis: 'pad_axis:LeftX'}]}]}]",
			want: errBindingShape,
		},
		{
			name: "bad_selection_button",
			doc:  "detection: {gamepad: {selection_buttons: [Turbo]}}",
			want: device.ErrUnknownControl,
		},
		{name: "short_pair", doc: "trees: [{name: t, actions: [{name: a, bindings: [{pair: ['key:A']}]}]}]"},
		{name: "unknown_tag", doc: "trees: [{name: t, actions: [{name: a, access_tag: cheats}]}]"},
		{name: "duplicate_action", doc: "trees: [{name: t, actions: [{name: a}, {name: a}]}]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Decode([]byte(c.doc), YAML)
			require.NoError(t, err)
			_, err = NewBuilder(input.NewRuntime()).Build(f)
			require.Error(t, err)
			if c.want != nil {
				assert.ErrorIs(t, err, c.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("detection: {keyboard: {min_presses: 3}}"), YAML)
	assert.Error(t, err, "unknown yaml fields are rejected")

	_, err = Decode([]byte("access_tags = ["), TOML)
	assert.Error(t, err)

	_, err = Decode([]byte("[detection.keyboard]\nmin_presses = 3\n"), TOML)
	assert.ErrorIs(t, err, errUnknownField, "unknown toml fields are rejected too")
	assert.Contains(t, err.Error(), "detection.keyboard.min_presses")

	_, err = Decode([]byte("[[trees]]\nname = \"t\"\n[[trees.actions]]\nname = \"a\"\nhold_time = 1.0\n"), TOML)
	assert.ErrorIs(t, err, errUnknownField)

	_, err = Load("bindings.json")
	assert.Error(t, err)

	f, err := Decode(nil, YAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultDetection(), f.Detection)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "custom.toml")
	doc := "[detection.keyboard]\nenabled = false\n\n[[trees]]\nname = \"solo\"\n"
	require.NoError(t, os.WriteFile(name, []byte(doc), 0o644))

	f, err := Load(name)
	require.NoError(t, err)
	assert.False(t, f.Detection.Keyboard.Enabled)
	assert.True(t, f.Detection.Mouse.Enabled, "untouched sections keep defaults")
	require.Len(t, f.Trees, 1)
	assert.Equal(t, "solo", f.Trees[0].Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcherReportsConfigFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(target, []byte("trees: []\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for bindings.yaml")
	}

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
