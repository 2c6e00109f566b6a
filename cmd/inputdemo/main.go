// Command inputdemo runs the action input stack in an ebiten window and
// prints every action's state each frame.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/milk9111/actioninput/config"
	"github.com/milk9111/actioninput/device"
	"github.com/milk9111/actioninput/input"
	"github.com/milk9111/actioninput/platform"
	"github.com/milk9111/actioninput/script"
)

type options struct {
	Config string `short:"c" long:"config" description:"binding file (.yaml, .yml or .toml), the embedded defaults when empty" value-name:"<file>"`
	Script string `short:"s" long:"script" description:"drive input from a tengo script instead of real devices" value-name:"<name>"`
	Watch  bool   `short:"w" long:"watch" description:"reload the binding file when it changes on disk"`
	Debug  bool   `short:"d" long:"debug" description:"log every input event"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Caller().Logger()

	file, err := config.Load(opts.Config)
	if err != nil {
		logger.Fatal().Err(err).Str("config", opts.Config).Msg("could not load bindings")
	}

	rt := input.NewRuntime()
	builder := config.NewBuilder(rt)
	bindings, err := builder.Build(file)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not build bindings")
	}

	var sampler device.Sampler
	if opts.Script != "" {
		s, err := script.Load(opts.Script, 1/float64(ebiten.TPS()), script.WithLogger(logger))
		if err != nil {
			logger.Fatal().Err(err).Str("script", opts.Script).Msg("could not load script")
		}
		sampler = s
	} else {
		sampler = platform.NewEbiten(logger)
	}

	manager := input.NewManager(rt, sampler, input.WithLogger(logger))
	bindings.Install(manager)

	game := NewGame(manager, builder, bindings, opts.Config, logger)
	if opts.Watch && opts.Config != "" {
		w, err := config.NewWatcher(filepath.Dir(opts.Config))
		if err != nil {
			logger.Error().Err(err).Msg("config watcher disabled")
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("inputdemo")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game stopped")
	}
}
