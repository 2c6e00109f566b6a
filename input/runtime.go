package input

import (
	"errors"
	"math/bits"
)

// AccessTag is a single-bit capability that lets an action process input
// while the runtime is locked. Tag sets are ORed tags.
type AccessTag uint64

const (
	// AllAccessTag always has access, locked or not.
	AllAccessTag AccessTag = 1 << iota
	// DefaultTag is what actions carry unless told otherwise.
	DefaultTag

	reservedTags = iota
)

// ErrAccessTagsExhausted is returned once all 64 tag bits are allocated.
var ErrAccessTagsExhausted = errors.New("input: access tags exhausted")

// Runtime owns the state every action and tree of one input context
// shares: id and execution-order counters, access tags, the lock, and the
// frame's event queue.
type Runtime struct {
	nextID    uint64
	nextOrder int
	nextTag   uint

	locked    bool
	whitelist AccessTag
	blacklist AccessTag

	events EventQueue
	record bool
}

func NewRuntime() *Runtime {
	return &Runtime{nextTag: reservedTags}
}

func (r *Runtime) newID() uint64 {
	r.nextID++
	return r.nextID
}

func (r *Runtime) newOrder() int {
	o := r.nextOrder
	r.nextOrder++
	return o
}

// NewAccessTag allocates the next free tag bit.
func (r *Runtime) NewAccessTag() (AccessTag, error) {
	if r.nextTag >= 64 {
		return 0, ErrAccessTagsExhausted
	}
	t := AccessTag(1) << r.nextTag
	r.nextTag++
	return t, nil
}

// Lock blocks every action that does not carry AllAccessTag.
func (r *Runtime) Lock() {
	r.LockWith(AllAccessTag, 0)
}

// LockWith locks with explicit lists. An empty whitelist admits every tag
// not on the blacklist.
func (r *Runtime) LockWith(whitelist, blacklist AccessTag) {
	r.locked = true
	r.whitelist = whitelist
	r.blacklist = blacklist
}

func (r *Runtime) LockWhitelist(tags AccessTag) {
	r.LockWith(tags, 0)
}

func (r *Runtime) LockBlacklist(tags AccessTag) {
	r.LockWith(0, tags)
}

func (r *Runtime) Unlock() {
	r.locked = false
	r.whitelist = 0
	r.blacklist = 0
}

func (r *Runtime) Locked() bool {
	return r.locked
}

// HasAccess reports whether tag passes the current lists. It does not look
// at whether the runtime is locked.
func (r *Runtime) HasAccess(tag AccessTag) bool {
	if tag == AllAccessTag {
		return true
	}
	return (r.whitelist == 0 || r.whitelist&tag != 0) && r.blacklist&tag == 0
}

// IsInputAvailable reports whether an action carrying tag may run.
func (r *Runtime) IsInputAvailable(tag AccessTag) bool {
	return !r.locked || r.HasAccess(tag)
}

// Events returns the queue the runtime's actions push to.
func (r *Runtime) Events() *EventQueue {
	return &r.events
}

// RecordEvents turns event recording on or off. It is off until a Manager
// takes the runtime, so trees driven by hand do not queue events nobody
// drains. Turning it off drops anything queued.
func (r *Runtime) RecordEvents(on bool) {
	r.record = on
	if !on {
		r.events.flush()
	}
}

func (r *Runtime) Recording() bool {
	return r.record
}

// BeginFrame drops the previous frame's events. Hosts that record events
// and drive trees without a Manager call it once per frame.
func (r *Runtime) BeginFrame() {
	r.events.flush()
}

func (r *Runtime) push(evt Event) {
	if r.record {
		r.events.Push(evt)
	}
}

// IsSingle reports whether t is exactly one tag bit.
func (t AccessTag) IsSingle() bool {
	return bits.OnesCount64(uint64(t)) == 1
}
