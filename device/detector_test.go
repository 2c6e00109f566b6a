package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 0.1

func pressOnly(count int, interval float64) DetectionSettings {
	return DetectionSettings{Enabled: true, MinPressCount: count, MinPressInterval: interval}
}

func durationOnly(d float64) DetectionSettings {
	return DetectionSettings{Enabled: true, MinUsedDuration: d}
}

func TestKeyboardPressCount(t *testing.T) {
	cases := []struct {
		name  string
		steps []bool // key A held per frame
		want  []bool // Used per frame
	}{
		{
			name:  "two_presses_inside_window",
			steps: []bool{true, false, true},
			want:  []bool{false, false, true},
		},
		{
			name:  "window_expires_between_presses",
			steps: []bool{true, false, false, false, false, false, true},
			want:  []bool{false, false, false, false, false, false, false},
		},
		{
			name:  "holding_is_one_press",
			steps: []bool{true, true, true},
			want:  []bool{false, false, false},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSnapshot()
			d := NewKeyboardDetector(KeyboardSettings{DetectionSettings: pressOnly(2, 0.5)})
			for i, held := range c.steps {
				s.SetKey(KeyA, held)
				u := d.Update(frame, s, false)
				assert.Equal(t, held, u.Raw, "frame %d raw", i)
				assert.Equal(t, c.want[i], u.Used, "frame %d used", i)
			}
		})
	}
}

func TestKeyboardDurationAndLatch(t *testing.T) {
	s := NewSnapshot()
	d := NewKeyboardDetector(KeyboardSettings{DetectionSettings: durationOnly(0.25)})

	s.SetKey(KeyW, true)
	require.False(t, d.Update(frame, s, false).Used)
	require.False(t, d.Update(frame, s, false).Used)
	require.True(t, d.Update(frame, s, false).Used, "0.3s held exceeds 0.25s")

	// latched while the key stays held
	require.True(t, d.Update(frame, s, false).Used)
	require.True(t, d.Update(frame, s, false).Used)

	s.SetKey(KeyW, false)
	require.False(t, d.Update(frame, s, false).Used)

	s.SetKey(KeyW, true)
	require.False(t, d.Update(frame, s, false).Used, "latch must clear once nothing is held")
}

func TestKeyboardOtherDeviceUsed(t *testing.T) {
	s := NewSnapshot()
	d := NewKeyboardDetector(KeyboardSettings{DetectionSettings: pressOnly(2, 1)})

	s.SetKey(KeyA, true)
	d.Update(frame, s, false)
	s.SetKey(KeyA, false)
	d.Update(frame, s, false)

	s.SetKey(KeyA, true)
	u := d.Update(frame, s, true)
	assert.True(t, u.Raw)
	assert.False(t, u.Used)

	// the press count was cleared, so one more press is not enough
	s.SetKey(KeyA, false)
	d.Update(frame, s, false)
	s.SetKey(KeyA, true)
	assert.False(t, d.Update(frame, s, false).Used)
}

func TestKeyboardDisabledAndLocked(t *testing.T) {
	s := NewSnapshot()
	s.SetKey(KeyA, true)

	disabled := NewKeyboardDetector(KeyboardSettings{DetectionSettings: DetectionSettings{MinPressCount: 1, MinPressInterval: 1}})
	u := disabled.Update(frame, s, false)
	assert.True(t, u.Raw)
	assert.False(t, u.Used)

	locked := NewKeyboardDetector(KeyboardSettings{DetectionSettings: pressOnly(1, 1)})
	locked.Locked = true
	assert.Equal(t, Usage{}, locked.Update(frame, s, false))
}

func TestKeyboardSelectionKeys(t *testing.T) {
	s := NewSnapshot()
	settings := KeyboardSettings{
		DetectionSettings: pressOnly(1, 1),
		SelectionKeys:     []Key{KeyEnter},
	}
	settings.UseSelectionButtons = true
	d := NewKeyboardDetector(settings)

	s.SetKey(KeyA, true)
	u := d.Update(frame, s, false)
	assert.True(t, u.Raw)
	assert.False(t, u.Used, "heuristics are off in selection mode")

	s.SetKey(KeyEnter, true)
	assert.True(t, d.Update(frame, s, false).Used)
}

func TestNonPositiveThresholdsDisableHeuristics(t *testing.T) {
	s := NewSnapshot()
	d := NewKeyboardDetector(KeyboardSettings{DetectionSettings: DetectionSettings{Enabled: true}})
	for i := 0; i < 20; i++ {
		s.SetKey(KeyA, i%2 == 0)
		require.False(t, d.Update(frame, s, false).Used)
	}
}

func TestMouseMovementAndWheel(t *testing.T) {
	s := NewSnapshot()
	settings := MouseSettings{DetectionSettings: pressOnly(1, 1), MoveThreshold: 5, Wheel: true}
	d := NewMouseDetector(settings)

	s.SetMouseAxis(MouseAxisX, 3)
	u := d.Update(frame, s, false)
	assert.False(t, u.Raw, "movement below threshold")
	assert.False(t, u.Used)

	s.SetMouseAxis(MouseAxisX, 4)
	s.SetMouseAxis(MouseAxisY, 4)
	u = d.Update(frame, s, false)
	assert.True(t, u.Raw)
	assert.True(t, u.Used)

	s.Release()
	d.Update(frame, s, false)
	s.SetMouseAxis(MouseWheelY, -1)
	assert.True(t, d.Update(frame, s, false).Used)
}

func TestGamepadOrderAndDisconnect(t *testing.T) {
	s := NewSnapshot()
	d := NewGamepadDetector(GamepadSettings{DetectionSettings: pressOnly(1, 1), StickThreshold: 0.5})

	s.SetGamepadButton(0, GamepadButtonSouth, true)
	s.SetGamepadAxis(2, GamepadAxisLeftX, 0.9)

	out := d.Update(frame, s, false)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Index)
	assert.True(t, out[0].Used)
	assert.Equal(t, 2, out[1].Index)
	assert.True(t, out[1].Raw)
	assert.False(t, out[1].Used, "pad 0 already claimed the frame")

	s.DisconnectGamepad(0)
	out = d.Update(frame, s, false)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Index)

	d.Locked = true
	assert.Empty(t, d.Update(frame, s, false))
}

func TestUsedDurationCarriesRemainder(t *testing.T) {
	s := NewSnapshot()
	d := NewMouseDetector(MouseSettings{DetectionSettings: durationOnly(0.625)})
	const step = 0.25

	s.SetMouseButton(MouseButtonLeft, true)
	var fired []int
	for i := 1; i <= 7; i++ {
		if d.Update(step, s, false).Used {
			fired = append(fired, i)
		}
	}
	// 0.75s at frame 3 leaves 0.125s, so the next 0.625s is reached two
	// frames later instead of three.
	assert.Equal(t, []int{3, 5}, fired)
}
