package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"A", KeyA},
		{"a", KeyA},
		{" Space ", KeySpace},
		{"Ctrl", KeyControlLeft},
		{"Esc", KeyEscape},
		{"F12", KeyF12},
		{"[", KeyLeftBracket},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseKey(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	_, err := ParseKey("Hyper")
	assert.ErrorIs(t, err, ErrUnknownControl)
	_, err = ParseKey("space")
	assert.ErrorIs(t, err, ErrUnknownControl, "only single letters fold case")
}

func TestControlNamesRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		got, err := ParseKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)
	}
	for _, b := range MouseButtons() {
		got, err := ParseMouseButton(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	for _, b := range GamepadButtons() {
		got, err := ParseGamepadButton(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	for _, a := range []GamepadAxis{GamepadAxisLeftX, GamepadAxisRightY, GamepadAxisRightTrigger} {
		got, err := ParseGamepadAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "Unknown", KeyUnknown.String())
}

func TestParseAliasesAndErrors(t *testing.T) {
	b, err := ParseGamepadButton("A")
	require.NoError(t, err)
	assert.Equal(t, GamepadButtonSouth, b)
	assert.Equal(t, "South", b.String(), "aliases never come back out of String")

	a, err := ParseMouseAxis("WheelY")
	require.NoError(t, err)
	assert.Equal(t, MouseWheelY, a)

	_, err = ParseMouseButton("Side")
	assert.ErrorIs(t, err, ErrUnknownControl)
	_, err = ParseGamepadAxis("Twist")
	assert.ErrorIs(t, err, ErrUnknownControl)
	assert.Contains(t, err.Error(), `"Twist"`)
}

func TestParseControl(t *testing.T) {
	cases := []struct {
		in   string
		want Control
	}{
		{"key:Space", KeyControl(KeySpace)},
		{"KEY:w", KeyControl(KeyW)},
		{"mouse:Right", MouseButtonControl(MouseButtonRight)},
		{"mouse_axis:WheelY", MouseAxisControl(MouseWheelY)},
		{"pad:A", GamepadButtonControl(GamepadButtonSouth)},
		{"pad_axis:LeftTrigger", GamepadAxisControl(GamepadAxisLeftTrigger)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseControl(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)

			again, err := ParseControl(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}

	for _, bad := range []string{"Space", "joystick:A", "pad:Turbo", ""} {
		_, err := ParseControl(bad)
		assert.ErrorIs(t, err, ErrUnknownControl, bad)
	}
	assert.Equal(t, "none", Control{}.String())
}
