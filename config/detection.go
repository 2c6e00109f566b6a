package config

import (
	"fmt"

	"github.com/milk9111/actioninput/device"
)

// DefaultDetection mirrors device.DefaultSettings.
func DefaultDetection() DetectionSpec {
	d := device.DefaultSettings()
	return DetectionSpec{
		Keyboard: KeyboardSpec{DetectorSpec: detectorSpec(d.Keyboard.DetectionSettings)},
		Mouse: MouseSpec{
			DetectorSpec:  detectorSpec(d.Mouse.DetectionSettings),
			MoveThreshold: d.Mouse.MoveThreshold,
			Wheel:         d.Mouse.Wheel,
		},
		Gamepad: GamepadSpec{
			DetectorSpec:     detectorSpec(d.Gamepad.DetectionSettings),
			StickThreshold:   d.Gamepad.StickThreshold,
			TriggerThreshold: d.Gamepad.TriggerThreshold,
		},
	}
}

func detectorSpec(s device.DetectionSettings) DetectorSpec {
	return DetectorSpec{
		Enabled:             s.Enabled,
		MinPressCount:       s.MinPressCount,
		MinPressInterval:    s.MinPressInterval,
		MinUsedDuration:     s.MinUsedDuration,
		UseSelectionButtons: s.UseSelectionButtons,
		SelectionCooldown:   s.SelectionCooldown,
	}
}

func (d DetectorSpec) settings() device.DetectionSettings {
	return device.DetectionSettings{
		Enabled:             d.Enabled,
		MinPressCount:       d.MinPressCount,
		MinPressInterval:    d.MinPressInterval,
		MinUsedDuration:     d.MinUsedDuration,
		UseSelectionButtons: d.UseSelectionButtons,
		SelectionCooldown:   d.SelectionCooldown,
	}
}

// Settings converts to device settings, resolving selection button names.
func (d DetectionSpec) Settings() (device.Settings, error) {
	out := device.Settings{
		Keyboard: device.KeyboardSettings{DetectionSettings: d.Keyboard.settings()},
		Mouse: device.MouseSettings{
			DetectionSettings: d.Mouse.settings(),
			MoveThreshold:     d.Mouse.MoveThreshold,
			Wheel:             d.Mouse.Wheel,
		},
		Gamepad: device.GamepadSettings{
			DetectionSettings: d.Gamepad.settings(),
			StickThreshold:    d.Gamepad.StickThreshold,
			TriggerThreshold:  d.Gamepad.TriggerThreshold,
		},
	}

	for _, name := range d.Keyboard.SelectionButtons {
		k, err := device.ParseKey(name)
		if err != nil {
			return device.Settings{}, fmt.Errorf("config: keyboard selection: %w", err)
		}
		out.Keyboard.SelectionKeys = append(out.Keyboard.SelectionKeys, k)
	}
	for _, name := range d.Mouse.SelectionButtons {
		b, err := device.ParseMouseButton(name)
		if err != nil {
			return device.Settings{}, fmt.Errorf("config: mouse selection: %w", err)
		}
		out.Mouse.SelectionButtons = append(out.Mouse.SelectionButtons, b)
	}
	for _, name := range d.Gamepad.SelectionButtons {
		b, err := device.ParseGamepadButton(name)
		if err != nil {
			return device.Settings{}, fmt.Errorf("config: gamepad selection: %w", err)
		}
		out.Gamepad.SelectionButtons = append(out.Gamepad.SelectionButtons, b)
	}
	return out, nil
}
