package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// PlayerControllerSystem moves the player along x. Only walking and rowing
// players move; an attached boat follows.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, tick ecs.Tick) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
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

	moveX := tick.Input.MoveX
	if math.IsNaN(moveX) {
		moveX = 0
	}
	moveX = math.Max(-1, math.Min(1, moveX))

	if moveX > 0 {
		player.FacingLeft = false
	} else if moveX < 0 {
		player.FacingLeft = true
	}

	switch player.State {
	case component.PlayerWalk, component.PlayerRow:
		player.Velocity = cp.Vector{X: moveX * player.MoveSpeed}
	default:
		player.Velocity = cp.Vector{}
	}

	dt := tick.Dt
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	t.X += player.Velocity.X * dt

	if boat, bt, ok := findBoat(w); ok && boat.Attached {
		bt.X = t.X
	}
}
