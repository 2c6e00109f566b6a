package device

// DetectionSettings tunes the heuristics that decide when a device
// becomes the one the player is using. Non-positive thresholds disable
// the heuristic they belong to.
type DetectionSettings struct {
	Enabled bool
	// MinPressCount new presses inside MinPressInterval seconds select the device.
	MinPressCount    int
	MinPressInterval float64
	// MinUsedDuration seconds of continuous use select the device.
	MinUsedDuration float64
	// UseSelectionButtons replaces the heuristics with the category's
	// designated selection controls.
	UseSelectionButtons bool
	// SelectionCooldown blocks other devices from taking over for this many
	// seconds after this device was selected.
	SelectionCooldown float64
}

type KeyboardSettings struct {
	DetectionSettings
	SelectionKeys []Key
}

type MouseSettings struct {
	DetectionSettings
	SelectionButtons []MouseButton
	// MoveThreshold is the per-frame movement (in pixels) that counts as use.
	// Zero ignores movement entirely.
	MoveThreshold float64
	// Wheel reports whether wheel ticks count as use.
	Wheel bool
}

type GamepadSettings struct {
	DetectionSettings
	SelectionButtons []GamepadButton
	StickThreshold   float64
	TriggerThreshold float64
}

type Settings struct {
	Keyboard KeyboardSettings
	Mouse    MouseSettings
	Gamepad  GamepadSettings
}

// DefaultSettings returns the settings the demo and the embedded config use.
func DefaultSettings() Settings {
	base := DetectionSettings{
		Enabled:           true,
		MinPressCount:     2,
		MinPressInterval:  0.5,
		MinUsedDuration:   0.25,
		SelectionCooldown: 0.5,
	}
	return Settings{
		Keyboard: KeyboardSettings{DetectionSettings: base},
		Mouse: MouseSettings{
			DetectionSettings: base,
			MoveThreshold:     4,
			Wheel:             true,
		},
		Gamepad: GamepadSettings{
			DetectionSettings: base,
			StickThreshold:    0.5,
			TriggerThreshold:  0.5,
		},
	}
}
