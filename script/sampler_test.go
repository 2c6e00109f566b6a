package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/actioninput/device"
	"github.com/milk9111/actioninput/input"
)

const frameStep = 0.1

func TestScheduledPresses(t *testing.T) {
	src := `
step := func(input, state, frame, time) {
	if frame == 2 { input.press("key:A") }
	if frame == 4 { input.release("key:A") }
	if time > 0.45 && time < 0.55 { input.press("mouse:Left") }
}`
	s, err := New([]byte(src), frameStep)
	require.NoError(t, err)

	var down []bool
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Advance())
		down = append(down, s.KeyDown(device.KeyA))
	}
	assert.Equal(t, []bool{false, true, true, false, false}, down)
	assert.Equal(t, 5, s.Frame())
	assert.True(t, s.MouseButtonDown(device.MouseButtonLeft), "frame 5 is at 0.5s")
}

func TestStatePersistsAcrossFrames(t *testing.T) {
	src := `
step := func(input, state, frame, time) {
	if is_undefined(state.n) { state.n = 0 }
	state.n += 1
	if state.n == 3 { input.press("key:B") }
}`
	s, err := New([]byte(src), frameStep)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, s.Advance())
	}
	assert.False(t, s.KeyDown(device.KeyB))
	require.NoError(t, s.Advance())
	assert.True(t, s.KeyDown(device.KeyB))
}

func TestGamepadFunctions(t *testing.T) {
	src := `
step := func(input, state, frame, time) {
	if frame == 1 {
		input.connect(3)
		input.set("pad_axis:LeftX", -0.75, 3)
		input.press("pad:A", 3)
	}
	if frame == 2 && input.down("pad:South", 3) {
		input.disconnect(3)
	}
}`
	s, err := New([]byte(src), frameStep)
	require.NoError(t, err)

	require.NoError(t, s.Advance())
	assert.Equal(t, []int{3}, s.Gamepads())
	assert.InDelta(t, -0.75, s.GamepadAxis(3, device.GamepadAxisLeftX), 1e-9)
	assert.True(t, s.GamepadButtonDown(3, device.GamepadButtonSouth))

	require.NoError(t, s.Advance())
	assert.Empty(t, s.Gamepads())
}

func TestDrivesManager(t *testing.T) {
	src := `
step := func(input, state, frame, time) {
	if frame == 3 { input.press("key:Space") }
	if frame == 5 { input.release_all() }
}`
	s, err := New([]byte(src), frameStep)
	require.NoError(t, err)

	rt := input.NewRuntime()
	jump := rt.NewAction("jump", input.WithProbes(input.NewButtonProbe(device.KeyControl(device.KeySpace))))
	tree := rt.NewTree("t")
	tree.Add(jump)
	m := input.NewManager(rt, s)
	m.AddTree(tree)

	pressedAt, releasedAt := 0, 0
	for frame := 1; frame <= 6; frame++ {
		m.Update(frameStep)
		if jump.Pressed() {
			pressedAt = frame
		}
		if jump.Released() {
			releasedAt = frame
		}
	}
	assert.Equal(t, 3, pressedAt)
	assert.Equal(t, 5, releasedAt)
	assert.Equal(t, 6, s.Frame())
}

func TestScriptErrors(t *testing.T) {
	_, err := New([]byte(`x := 1`), frameStep)
	assert.Error(t, err, "a script without step does not compile")

	s, err := New([]byte(`
step := func(input, state, frame, time) {
	if frame == 2 { input.press("key:Hyper") }
	if frame == 1 { input.press("key:A") }
}`), frameStep)
	require.NoError(t, err)

	s.Poll()
	require.NoError(t, s.Err())
	s.Poll()
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "frame 2")

	s.Poll()
	assert.Equal(t, 2, s.Frame(), "a failed script stops")
	assert.True(t, s.KeyDown(device.KeyA), "values written before the failure stay")
}

func TestEmbeddedDemo(t *testing.T) {
	s, err := Load("demo", 1.0/60)
	require.NoError(t, err)
	for i := 0; i < 160; i++ {
		s.Poll()
	}
	require.NoError(t, s.Err())
	assert.False(t, s.KeyDown(device.KeyD), "the loop ends with everything released")

	_, err = Load("missing", 1.0/60)
	assert.Error(t, err)
}
