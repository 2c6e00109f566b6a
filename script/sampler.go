// Package script drives a device.Snapshot from a tengo script, one call
// per frame. It stands in for real devices in demos and replays.
//
// A script defines
//
//	step := func(input, state, frame, time) { ... }
//
// where input exposes press, release, set, down, connect, disconnect and
// release_all, state is a map that survives between frames, frame counts
// from 1 and time is frame*step in seconds.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rs/zerolog"

	"github.com/milk9111/actioninput/device"
)

const dispatch = `
step(__input, __state, __frame, __time)
`

// Sampler is a device.Sampler whose values a script writes each Poll.
type Sampler struct {
	*device.Snapshot

	name     string
	step     float64
	compiled *tengo.Compiled
	input    *tengo.ImmutableMap
	state    *tengo.Map
	log      zerolog.Logger

	frame int
	err   error
}

type Option func(*Sampler)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Sampler) {
		s.log = l
	}
}

// WithName labels the script in errors and log lines.
func WithName(name string) Option {
	return func(s *Sampler) {
		s.name = name
	}
}

// New compiles src. step is the frame duration reported to the script.
func New(src []byte, step float64, opts ...Option) (*Sampler, error) {
	s := &Sampler{
		Snapshot: device.NewSnapshot(),
		name:     "script",
		step:     step,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.input = s.buildInput()

	script := tengo.NewScript([]byte(string(src) + "\n" + dispatch))
	_ = script.Add("__input", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__frame", 0)
	_ = script.Add("__time", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", s.name, err)
	}
	s.compiled = compiled
	return s, nil
}

// Load compiles the named script from disk or the embedded scripts.
func Load(name string, step float64, opts ...Option) (*Sampler, error) {
	src, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return New(src, step, append([]Option{WithName(name)}, opts...)...)
}

// Frame is the number of frames the script has run.
func (s *Sampler) Frame() int {
	return s.frame
}

// Err returns the error that stopped the script, if any.
func (s *Sampler) Err() error {
	return s.err
}

// Poll runs one frame of the script. After an error the script stops and
// the snapshot keeps its last values.
func (s *Sampler) Poll() {
	if s.err != nil {
		return
	}
	if err := s.Advance(); err != nil {
		s.err = err
		s.log.Error().Err(err).Str("script", s.name).Int("frame", s.frame).Msg("script stopped")
	}
}

// Advance runs the next frame and reports any script error.
func (s *Sampler) Advance() error {
	s.frame++
	if err := s.compiled.Set("__input", s.input); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Set("__frame", s.frame); err != nil {
		return err
	}
	if err := s.compiled.Set("__time", float64(s.frame)*s.step); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script: %s frame %d: %w", s.name, s.frame, err)
	}
	return nil
}

func (s *Sampler) buildInput() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["press"] = &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return s.write(args, 1)
	}}
	values["release"] = &tengo.UserFunction{Name: "release", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return s.write(args, 0)
	}}

	values["set"] = &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		v, ok := tengo.ToFloat64(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "value", Expected: "float", Found: args[1].TypeName()}
		}
		return s.write(append([]tengo.Object{args[0]}, args[2:]...), v)
	}}

	values["down"] = &tengo.UserFunction{Name: "down", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, pad, err := controlArgs(args)
		if err != nil {
			return nil, err
		}
		if device.Value(s.Snapshot, c, pad) != 0 {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["connect"] = &tengo.UserFunction{Name: "connect", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pad, err := padArg(args)
		if err != nil {
			return nil, err
		}
		s.ConnectGamepad(pad)
		return tengo.TrueValue, nil
	}}

	values["disconnect"] = &tengo.UserFunction{Name: "disconnect", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pad, err := padArg(args)
		if err != nil {
			return nil, err
		}
		s.DisconnectGamepad(pad)
		return tengo.TrueValue, nil
	}}

	values["release_all"] = &tengo.UserFunction{Name: "release_all", Value: func(args ...tengo.Object) (tengo.Object, error) {
		s.Release()
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (s *Sampler) write(args []tengo.Object, v float64) (tengo.Object, error) {
	c, pad, err := controlArgs(args)
	if err != nil {
		return nil, err
	}
	s.Set(c, pad, v)
	return tengo.TrueValue, nil
}

// controlArgs reads (control [, pad]). The pad defaults to 0.
func controlArgs(args []tengo.Object) (device.Control, int, error) {
	if len(args) < 1 || len(args) > 2 {
		return device.Control{}, 0, tengo.ErrWrongNumArguments
	}
	c, err := device.ParseControl(objectAsString(args[0]))
	if err != nil {
		return device.Control{}, 0, err
	}
	pad := 0
	if len(args) == 2 {
		p, ok := tengo.ToInt(args[1])
		if !ok {
			return device.Control{}, 0, tengo.ErrInvalidArgumentType{Name: "pad", Expected: "int", Found: args[1].TypeName()}
		}
		pad = p
	}
	return c, pad, nil
}

func padArg(args []tengo.Object) (int, error) {
	if len(args) != 1 {
		return 0, tengo.ErrWrongNumArguments
	}
	p, ok := tengo.ToInt(args[0])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: "pad", Expected: "int", Found: args[0].TypeName()}
	}
	return p, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
