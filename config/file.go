// Package config loads action bindings and device detection settings from
// YAML or TOML files and builds input trees and groups from them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type File struct {
	Detection DetectionSpec `yaml:"detection" toml:"detection"`
	// AccessTags names the tags actions may refer to. "all" and "default"
	// are always defined.
	AccessTags []string    `yaml:"access_tags" toml:"access_tags"`
	Groups     []GroupSpec `yaml:"groups" toml:"groups"`
	// Trees outside any group are run by the manager on their own.
	Trees []TreeSpec `yaml:"trees" toml:"trees"`
}

type DetectionSpec struct {
	Keyboard KeyboardSpec `yaml:"keyboard" toml:"keyboard"`
	Mouse    MouseSpec    `yaml:"mouse" toml:"mouse"`
	Gamepad  GamepadSpec  `yaml:"gamepad" toml:"gamepad"`
}

type DetectorSpec struct {
	Enabled             bool     `yaml:"enabled" toml:"enabled"`
	MinPressCount       int      `yaml:"min_press_count" toml:"min_press_count"`
	MinPressInterval    float64  `yaml:"min_press_interval" toml:"min_press_interval"`
	MinUsedDuration     float64  `yaml:"min_used_duration" toml:"min_used_duration"`
	UseSelectionButtons bool     `yaml:"use_selection_buttons" toml:"use_selection_buttons"`
	SelectionButtons    []string `yaml:"selection_buttons" toml:"selection_buttons"`
	SelectionCooldown   float64  `yaml:"selection_cooldown" toml:"selection_cooldown"`
}

type KeyboardSpec struct {
	DetectorSpec `yaml:",inline"`
}

type MouseSpec struct {
	DetectorSpec  `yaml:",inline"`
	MoveThreshold float64 `yaml:"move_threshold" toml:"move_threshold"`
	Wheel         bool    `yaml:"wheel" toml:"wheel"`
}

type GamepadSpec struct {
	DetectorSpec     `yaml:",inline"`
	StickThreshold   float64 `yaml:"stick_threshold" toml:"stick_threshold"`
	TriggerThreshold float64 `yaml:"trigger_threshold" toml:"trigger_threshold"`
}

type GroupSpec struct {
	Name  string     `yaml:"name" toml:"name"`
	Trees []TreeSpec `yaml:"trees" toml:"trees"`
}

type TreeSpec struct {
	Name string `yaml:"name" toml:"name"`
	// Gamepad binds the tree to one pad index. Unset means any pad.
	Gamepad *int         `yaml:"gamepad" toml:"gamepad"`
	Actions []ActionSpec `yaml:"actions" toml:"actions"`
}

type ActionSpec struct {
	Name           string         `yaml:"name" toml:"name"`
	Bindings       []BindingSpec  `yaml:"bindings" toml:"bindings"`
	Hold           float64        `yaml:"hold" toml:"hold"`
	MultiTap       *MultiTapSpec  `yaml:"multi_tap" toml:"multi_tap"`
	Smoothing      *SmoothingSpec `yaml:"smoothing" toml:"smoothing"`
	BlocksInput    bool           `yaml:"blocks_input" toml:"blocks_input"`
	ExecutionOrder *int           `yaml:"execution_order" toml:"execution_order"`
	AccessTag      string         `yaml:"access_tag" toml:"access_tag"`
}

type MultiTapSpec struct {
	Count  int     `yaml:"count" toml:"count"`
	Window float64 `yaml:"window" toml:"window"`
}

type SmoothingSpec struct {
	Sensitivity float64 `yaml:"sensitivity" toml:"sensitivity"`
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
}

// BindingSpec is one probe. Exactly one of Button, Axis or Pair is set;
// controls use device.ParseControl syntax ("key:Space", "pad_axis:LeftX").
type BindingSpec struct {
	Button    string   `yaml:"button" toml:"button"`
	Axis      string   `yaml:"axis" toml:"axis"`
	Pair      []string `yaml:"pair" toml:"pair"`
	Modifiers []string `yaml:"modifiers" toml:"modifiers"`
	Deadzone  float64  `yaml:"deadzone" toml:"deadzone"`
	Scale     float64  `yaml:"scale" toml:"scale"`
	Invert    bool     `yaml:"invert" toml:"invert"`
}

var errUnknownField = errors.New("unknown field")

// Format is a config file encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatOf picks the format from the file extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("config: unsupported file type %q", filepath.Ext(name))
	}
}

// Decode parses data on top of the default detection settings, so a file
// only needs to name the values it changes.
func Decode(data []byte, format Format) (*File, error) {
	f := &File{Detection: DefaultDetection()}
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, fmt.Errorf("config: decode toml: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			keys := make([]string, len(extra))
			for i, k := range extra {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config: decode toml: %w: %s", errUnknownField, strings.Join(keys, ", "))
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	}
	return f, nil
}

// Load reads name from disk, falling back to the embedded defaults, and
// decodes it by extension. An empty name loads DefaultName.
func Load(name string) (*File, error) {
	if name == "" {
		name = DefaultName
	}
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	data, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	return f, nil
}
