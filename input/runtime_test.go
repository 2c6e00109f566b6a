package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/actioninput/device"
)

func TestAccessTags(t *testing.T) {
	rt := NewRuntime()

	first, err := rt.NewAccessTag()
	require.NoError(t, err)
	second, err := rt.NewAccessTag()
	require.NoError(t, err)

	for _, tag := range []AccessTag{first, second} {
		assert.True(t, tag.IsSingle())
		assert.NotEqual(t, AllAccessTag, tag)
		assert.NotEqual(t, DefaultTag, tag)
	}
	assert.NotEqual(t, first, second)

	for i := 0; i < 64-2-2; i++ {
		_, err = rt.NewAccessTag()
		require.NoError(t, err)
	}
	_, err = rt.NewAccessTag()
	assert.ErrorIs(t, err, ErrAccessTagsExhausted)
}

func TestLock(t *testing.T) {
	rt := NewRuntime()
	menu, _ := rt.NewAccessTag()
	cheat, _ := rt.NewAccessTag()

	cases := []struct {
		name  string
		lock  func()
		tag   AccessTag
		want  bool
		avail bool
	}{
		{"unlocked", func() {}, menu, true, true},
		{"all_access_whitelisted_out", func() { rt.LockWhitelist(menu) }, AllAccessTag, true, true},
		{"whitelisted", func() { rt.LockWhitelist(menu) }, menu, true, true},
		{"not_whitelisted", func() { rt.LockWhitelist(menu) }, DefaultTag, false, false},
		{"blacklisted", func() { rt.LockBlacklist(cheat) }, cheat, false, false},
		{"not_blacklisted", func() { rt.LockBlacklist(cheat) }, menu, true, true},
		{"lock_everything", func() { rt.Lock() }, DefaultTag, false, false},
		{"lock_everything_all_access", func() { rt.Lock() }, AllAccessTag, true, true},
		{"empty_lists", func() { rt.LockWith(0, 0) }, DefaultTag, true, true},
		{"both_lists", func() { rt.LockWith(menu|cheat, cheat) }, cheat, false, false},
		{"all_access_blacklisted", func() { rt.LockBlacklist(AllAccessTag) }, AllAccessTag, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rt.Unlock()
			c.lock()
			assert.Equal(t, c.want, rt.HasAccess(c.tag))
			assert.Equal(t, c.avail, rt.IsInputAvailable(c.tag))
		})
	}

	rt.LockWhitelist(menu)
	rt.Unlock()
	assert.False(t, rt.Locked())
	for _, tag := range []AccessTag{menu, cheat, DefaultTag, AllAccessTag} {
		assert.True(t, rt.HasAccess(tag))
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	assert.Nil(t, q.Drain())

	q.Push(Event{Kind: EventActionPressed})
	q.Push(Event{Kind: EventActionReleased})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, EventActionPressed, got[0].Kind)
	assert.Equal(t, 0, q.Len())

	q.Push(Event{Kind: EventDeviceChanged})
	q.flush()
	assert.Nil(t, q.Drain())
}

func TestEventRecordingStaysBounded(t *testing.T) {
	rt := NewRuntime()
	s := device.NewSnapshot()
	tree := rt.NewTree("hand")
	tree.Add(keyAction(rt, "jump", device.KeySpace))

	for i := 0; i < 10000; i++ {
		s.SetKey(device.KeySpace, i%2 == 0)
		tree.Update(dt, s)
	}
	assert.False(t, rt.Recording())
	assert.Equal(t, 0, rt.Events().Len(), "nothing queues until recording is on")

	rt.RecordEvents(true)
	most := 0
	for i := 0; i < 10000; i++ {
		rt.BeginFrame()
		s.SetKey(device.KeySpace, i%2 == 0)
		tree.Update(dt, s)
		most = max(most, rt.Events().Len())
	}
	assert.Equal(t, 2, most, "a press frame queues pressed and toggle_changed")

	rt.RecordEvents(false)
	assert.Equal(t, 0, rt.Events().Len())
}

func TestManagerRecordsAndFlushesPerFrame(t *testing.T) {
	rt := NewRuntime()
	s := device.NewSnapshot()
	m := NewManager(rt, s)
	require.True(t, rt.Recording())

	tree := rt.NewTree("play")
	tree.Add(keyAction(rt, "jump", device.KeySpace))
	m.AddTree(tree)

	for i := 0; i < 1000; i++ {
		s.SetKey(device.KeySpace, i%2 == 0)
		m.Update(dt)
		assert.LessOrEqual(t, rt.Events().Len(), 3, "frame %d", i)
	}
}
