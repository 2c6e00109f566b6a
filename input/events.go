package input

import "github.com/milk9111/actioninput/device"

// EventKind identifies what happened during an update.
type EventKind uint8

const (
	EventActionPressed EventKind = iota + 1
	EventActionReleased
	EventHoldCompleted
	EventMultiTapCompleted
	EventToggleChanged
	EventDeviceChanged
	EventGamepadConnected
	EventGamepadDisconnected
)

func (k EventKind) String() string {
	switch k {
	case EventActionPressed:
		return "action_pressed"
	case EventActionReleased:
		return "action_released"
	case EventHoldCompleted:
		return "hold_completed"
	case EventMultiTapCompleted:
		return "multi_tap_completed"
	case EventToggleChanged:
		return "toggle_changed"
	case EventDeviceChanged:
		return "device_changed"
	case EventGamepadConnected:
		return "gamepad_connected"
	case EventGamepadDisconnected:
		return "gamepad_disconnected"
	default:
		return "unknown"
	}
}

// Event is produced during an update and polled by the host afterwards.
type Event struct {
	Kind EventKind
	// Action is set for action events.
	Action *Action
	// Device and DeviceIndex describe the device involved, if any.
	Device      device.Type
	DeviceIndex int
	// Toggle carries the new toggle value for EventToggleChanged.
	Toggle bool
}

// EventQueue holds the action and device events of the current frame in
// the order they happened.
type EventQueue struct {
	items []Event
}

// Push appends evt to the frame.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain hands the frame's events to the caller and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len is the number of events recorded so far this frame.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
