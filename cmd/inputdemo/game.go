package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/milk9111/actioninput/config"
	"github.com/milk9111/actioninput/input"
)

const (
	screenWidth  = 800
	screenHeight = 480
)

type Game struct {
	frames int

	manager  *input.Manager
	builder  *config.Builder
	bindings *config.Bindings
	watcher  *config.Watcher
	path     string
	log      zerolog.Logger

	last input.Frame
}

func NewGame(m *input.Manager, b *config.Builder, bindings *config.Bindings, path string, log zerolog.Logger) *Game {
	return &Game{
		manager:  m,
		builder:  b,
		bindings: bindings,
		path:     path,
		log:      log,
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	g.last = g.manager.Update(1 / float64(ebiten.TPS()))
	for _, e := range g.manager.Events() {
		evt := g.log.Debug().Str("event", e.Kind.String()).Stringer("device", e.Device).Int("index", e.DeviceIndex)
		if e.Action != nil {
			evt = evt.Str("action", e.Action.Name())
		}
		evt.Msg("input")
	}

	rt := g.manager.Runtime()
	if a := g.bindings.Action("pause"); a != nil && a.Pressed() {
		if rt.Locked() {
			rt.Unlock()
		} else if tag, ok := g.bindings.Tags["menu"]; ok {
			rt.LockWhitelist(tag)
		} else {
			rt.Lock()
		}
		g.log.Info().Bool("locked", rt.Locked()).Msg("pause toggled")
	}
	if a := g.bindings.Action("quit"); a != nil && a.Pressed() {
		return ebiten.Termination
	}
	return nil
}

// reload rebuilds the bindings after the watched file changed. A bad file
// keeps the previous bindings.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(name) != filepath.Clean(g.path) {
				continue
			}
			file, err := config.Load(g.path)
			if err != nil {
				g.log.Error().Err(err).Msg("reload failed")
				continue
			}
			bindings, err := g.builder.Build(file)
			if err != nil {
				g.log.Error().Err(err).Msg("reload failed")
				continue
			}
			bindings.Install(g.manager)
			g.bindings = bindings
			g.log.Info().Str("config", g.path).Msg("bindings reloaded")
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn().Err(err).Msg("config watcher")
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f\n", g.frames, ebiten.ActualFPS())
	fmt.Fprintf(&b, "device: %s #%d    driving: %s    cooldown: %.2f    locked: %t\n\n",
		g.last.Current.Type, g.last.Current.Index, g.last.Driving.Type, g.manager.Cooldown(), g.manager.Runtime().Locked())

	for _, group := range g.bindings.Groups {
		fmt.Fprintf(&b, "[%s]\n", group.Name())
		for _, t := range group.Trees() {
			g.drawTree(&b, t)
		}
	}
	for _, t := range g.bindings.Trees {
		g.drawTree(&b, t)
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) drawTree(b *strings.Builder, t *input.Tree) {
	fmt.Fprintf(b, "  %s\n", t.Name())
	for _, a := range t.Actions() {
		st := a.State()
		fmt.Fprintf(b, "    %-8s down:%-5t axis:%+.2f raw:%+.2f hold:%3.0f%% tap:%3.0f%% toggle:%t\n",
			a.Name(), st.Down, st.Axis, st.AxisRaw, st.Hold*100, st.MultiTap*100, a.Toggle())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
