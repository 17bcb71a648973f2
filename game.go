package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fishtown/common"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/ecs/entity"
	"github.com/milk9111/fishtown/ecs/system"
	"github.com/milk9111/fishtown/economy"
	"github.com/milk9111/fishtown/prefabs"
)

type Options struct {
	Debug      bool
	Seed       uint64
	SellPolicy string
	Watch      bool
}

type Game struct {
	frames int
	paused bool
	latch  system.InputLatch

	world     *ecs.World
	scheduler *ecs.Scheduler
	telemetry *system.TelemetrySystem
	render    *system.RenderSystem
	menu      *PlayerMenu
	watcher   *prefabs.Watcher
}

// NewGame loads the prefabs and wires the simulation. Any malformed prefab is
// reported here, before the first frame.
func NewGame(opts Options) (*Game, error) {
	policy, err := economy.ParseSellPolicy(opts.SellPolicy)
	if err != nil {
		return nil, err
	}

	world, err := entity.NewWorld()
	if err != nil {
		return nil, err
	}

	telemetry := system.NewTelemetrySystem(opts.Debug)
	if src, err := prefabs.LoadScript(prefabs.TelemetryScript); err != nil {
		log.Printf("telemetry: no script: %v", err)
	} else if err := telemetry.LoadScript(prefabs.TelemetryScript, src); err != nil {
		return nil, err
	}

	var resolver system.CatchResolver
	if opts.Seed != 0 {
		resolver = economy.NewSeededResolver(opts.Seed)
	}

	g := &Game{
		world:     world,
		telemetry: telemetry,
		render:    system.NewRenderSystem(opts.Debug),
	}
	g.scheduler = system.Install(world, system.Config{
		Resolver:   resolver,
		SellPolicy: policy,
		Telemetry:  telemetry,
	})
	g.menu = NewPlayerMenu(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	input := system.SampleInput()
	if input.QuitPressed {
		if g.paused {
			g.paused = false
			return nil
		}
		g.Close()
		return ebiten.Termination
	}
	if input.MenuPressed {
		g.paused = !g.paused
	}

	g.reloadChanged()

	if g.paused {
		g.latch.Hold(input)
		g.menu.Refresh(g.player())
		g.menu.UI.Update()
		return nil
	}

	input = g.latch.Release(input)
	g.scheduler.Update(g.world, ecs.Tick{Dt: 1 / float64(ebiten.TPS()), Input: input})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.paused {
		g.menu.UI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) player() *component.Player {
	e, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return nil
	}
	p, ok := ecs.Get(g.world, e, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	return p
}

// reloadChanged applies prefab edits picked up by the watcher. Only
// animation timings and the telemetry script reload live.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}

	for _, name := range g.watcher.Drain() {
		if err := g.reload(name); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", name)
	}
}

func (g *Game) reload(name string) error {
	switch name {
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		return entity.ReloadAnimations(g.world, spec.Animations)
	case prefabs.TelemetryScript:
		src, err := prefabs.LoadScript(name)
		if err != nil {
			return err
		}
		return g.telemetry.LoadScript(name, src)
	default:
		return fmt.Errorf("changes to %s apply on restart", name)
	}
}
