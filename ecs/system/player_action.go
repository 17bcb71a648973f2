package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// PlayerActionSystem turns the tick's input edges into player events.
type PlayerActionSystem struct{}

func NewPlayerActionSystem() *PlayerActionSystem {
	return &PlayerActionSystem{}
}

func (s *PlayerActionSystem) Update(w *ecs.World, tick ecs.Tick) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	raise := func(typ ecs.EventType) {
		evt := ecs.Event{Type: typ, Entity: player, Position: cp.Vector{X: t.X, Y: t.Y}}
		if err := w.Raise(evt); err != nil {
			log.Printf("player: raise %s: %v", typ, err)
		}
	}

	if tick.Input.ActPressed {
		raise(ecs.EventAction)
	}
	if tick.Input.ActReleased {
		raise(ecs.EventEndAction)
	}
	if tick.Input.SecondaryPressed {
		raise(ecs.EventHook)
	}
}

// PlayerStateSystem runs the player state machine. It has no per-tick work;
// every transition is driven by an event.
type PlayerStateSystem struct{}

func NewPlayerStateSystem() *PlayerStateSystem {
	return &PlayerStateSystem{}
}

func (s *PlayerStateSystem) EventTypes() []ecs.EventType {
	return []ecs.EventType{
		ecs.EventAction,
		ecs.EventEndAction,
		ecs.EventHook,
		ecs.EventAnimationFinished,
		ecs.EventZoneEnter,
	}
}

func (s *PlayerStateSystem) HandleEvent(w *ecs.World, evt ecs.Event) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if evt.Type == ecs.EventAnimationFinished && evt.Entity != e {
		return
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	state := playerStateFor(player.State)
	if state == nil {
		log.Printf("player: unknown state %v", player.State)
		return
	}

	changed := false
	ctx := &playerStateContext{
		Player:   player,
		Position: cp.Vector{X: t.X, Y: t.Y},
		InOcean: func() bool {
			kind, _ := ZoneAt(w, t.X)
			return kind == component.ZoneOcean
		},
		ChangeState: func(next component.PlayerStateID) {
			if changed {
				return
			}
			changed = true
			player.State = next
			if err := w.Raise(ecs.Event{Type: ecs.EventSwitchSprite, Entity: e, Index: next.SpriteIndex()}); err != nil {
				log.Printf("player: switch sprite: %v", err)
			}
		},
		Raise: func(next ecs.Event) {
			if err := w.Raise(next); err != nil {
				log.Printf("player: raise %s: %v", next.Type, err)
			}
		},
		AttachBoat: func() bool {
			boat, bt, ok := findBoat(w)
			if !ok {
				return false
			}
			boat.Attached = true
			bt.X = t.X
			return true
		},
		DockBoat: func() bool {
			boat, bt, ok := findBoat(w)
			if !ok {
				return false
			}
			boat.Attached = false
			bt.X = boat.DockX
			return true
		},
		AnimationIndex: func() int {
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				return anim.Active
			}
			return player.State.SpriteIndex()
		},
	}
	state.HandleEvent(ctx, evt)
}

func findBoat(w *ecs.World) (*component.Boat, *component.Transform, bool) {
	e, ok := ecs.First(w, component.BoatComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	boat, ok := ecs.Get(w, e, component.BoatComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return boat, t, true
}
