package system

import (
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/economy"
)

type Config struct {
	Resolver   CatchResolver
	SellPolicy economy.SellPolicy
	Telemetry  *TelemetrySystem
}

// Install registers the event handlers on w and returns the per-tick system
// order: movement, zone detection, player actions, animation, then the
// cosmetic sun and parallax updates.
func Install(w *ecs.World, cfg Config) *ecs.Scheduler {
	anim := NewAnimationSystem()

	bus := w.Events()
	bus.Register(anim)
	bus.Register(NewPlayerStateSystem())
	bus.Register(NewEconomySystem(cfg.Resolver, cfg.SellPolicy))
	if cfg.Telemetry != nil {
		cfg.Telemetry.Attach(w)
	}

	return ecs.NewScheduler(
		NewPlayerControllerSystem(),
		NewZoneSystem(),
		NewPlayerActionSystem(),
		anim,
		NewSunSystem(),
		NewParallaxSystem(),
	)
}
