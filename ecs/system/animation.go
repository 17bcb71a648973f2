package system

import (
	"log"
	"math"

	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// AnimationSystem advances every animation by the tick's dt and answers
// SwitchSprite events by restarting the requested config.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) EventTypes() []ecs.EventType {
	return []ecs.EventType{ecs.EventSwitchSprite}
}

func (a *AnimationSystem) HandleEvent(w *ecs.World, evt ecs.Event) {
	anim, ok := ecs.Get(w, evt.Entity, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	if !selectAnimation(anim, evt.Index) {
		log.Printf("animation: entity=%s has no config %d", evt.Entity, evt.Index)
	}
}

func (a *AnimationSystem) Update(w *ecs.World, tick ecs.Tick) {
	var finished []ecs.Event
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if advanceAnimation(anim, tick.Dt) {
			finished = append(finished, ecs.Event{Type: ecs.EventAnimationFinished, Entity: e, Index: anim.Active})
		}
	})
	for _, evt := range finished {
		if err := w.Raise(evt); err != nil {
			log.Printf("animation: entity=%s finish: %v", evt.Entity, err)
		}
	}
}

// selectAnimation discards the running timer and starts config index from
// its first frame.
func selectAnimation(anim *component.Animation, index int) bool {
	if anim == nil || index < 0 || index >= len(anim.Configs) {
		return false
	}
	anim.Active = index
	anim.Frame = anim.Configs[index].First
	anim.Elapsed = 0
	anim.Playing = true
	return true
}

// advanceAnimation moves the timer forward by dt and reports whether a Once
// animation elapsed on this call. The frame stays within [First, Last].
func advanceAnimation(anim *component.Animation, dt float64) bool {
	cfg, ok := anim.Current()
	if !ok {
		return false
	}
	if !anim.Playing {
		anim.Frame = cfg.First
		return false
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	anim.Elapsed += dt
	if anim.Elapsed < cfg.Duration() {
		step := int(math.Floor(anim.Elapsed / cfg.FrameDuration))
		anim.Frame = clampFrame(cfg.First+step, cfg)
		return false
	}

	anim.Frame = cfg.First
	anim.Elapsed = 0
	if cfg.Mode == component.LoopRepeating {
		return false
	}
	anim.Playing = false
	return true
}

func clampFrame(frame int, cfg component.AnimationConfig) int {
	if frame < cfg.First {
		return cfg.First
	}
	if frame > cfg.Last {
		return cfg.Last
	}
	return frame
}
