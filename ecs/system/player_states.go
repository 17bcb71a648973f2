package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// playerState owns the transitions out of one discrete player state.
type playerState interface {
	ID() component.PlayerStateID
	HandleEvent(ctx *playerStateContext, evt ecs.Event)
}

// playerStateContext gives a state controlled access to the world. A state
// may apply at most one transition per event. InOcean reports whether the
// player stands inside an ocean zone; AttachBoat and DockBoat report false
// when there is no boat to move.
type playerStateContext struct {
	Player         *component.Player
	Position       cp.Vector
	InOcean        func() bool
	ChangeState    func(next component.PlayerStateID)
	Raise          func(evt ecs.Event)
	AttachBoat     func() bool
	DockBoat       func() bool
	AnimationIndex func() int
}

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle   playerState = &playerIdleState{}
	playerStateWalk   playerState = &playerWalkState{}
	playerStateRow    playerState = &playerRowState{}
	playerStateFish   playerState = &playerFishState{}
	playerStateHook   playerState = &playerHookState{}
	playerStateAttack playerState = &playerAttackState{}
)

func playerStateFor(id component.PlayerStateID) playerState {
	switch id {
	case component.PlayerIdle:
		return playerStateIdle
	case component.PlayerWalk:
		return playerStateWalk
	case component.PlayerRow:
		return playerStateRow
	case component.PlayerFish:
		return playerStateFish
	case component.PlayerHook:
		return playerStateHook
	case component.PlayerAttack:
		return playerStateAttack
	}
	return nil
}

type playerIdleState struct{}

type playerWalkState struct{}

type playerRowState struct{}

type playerFishState struct{}

type playerHookState struct{}

type playerAttackState struct{}

func (playerIdleState) ID() component.PlayerStateID { return component.PlayerIdle }
func (playerIdleState) HandleEvent(ctx *playerStateContext, evt ecs.Event) {
	switch evt.Type {
	case ecs.EventHook:
		ctx.ChangeState(component.PlayerAttack)
	case ecs.EventEndAction:
		endAction(ctx, evt)
	}
}

func (playerWalkState) ID() component.PlayerStateID { return component.PlayerWalk }
func (playerWalkState) HandleEvent(ctx *playerStateContext, evt ecs.Event) {
	switch evt.Type {
	case ecs.EventAction:
		startAction(ctx, evt)
	case ecs.EventZoneEnter:
		if evt.Zone != component.ZoneOcean {
			return
		}
		if ctx.AttachBoat() {
			ctx.ChangeState(component.PlayerRow)
		}
	case ecs.EventEndAction:
		endAction(ctx, evt)
	}
}

func (playerRowState) ID() component.PlayerStateID { return component.PlayerRow }
func (playerRowState) HandleEvent(ctx *playerStateContext, evt ecs.Event) {
	switch evt.Type {
	case ecs.EventAction:
		startAction(ctx, evt)
	case ecs.EventZoneEnter:
		if evt.Zone != component.ZoneLand {
			return
		}
		if ctx.DockBoat() {
			ctx.ChangeState(component.PlayerWalk)
		}
	case ecs.EventEndAction:
		endAction(ctx, evt)
	}
}

func (playerFishState) ID() component.PlayerStateID { return component.PlayerFish }
func (playerFishState) HandleEvent(ctx *playerStateContext, evt ecs.Event) {
	switch evt.Type {
	case ecs.EventHook:
		ctx.ChangeState(component.PlayerHook)
	case ecs.EventEndAction:
		endAction(ctx, evt)
	}
}

func (playerHookState) ID() component.PlayerStateID { return component.PlayerHook }
func (playerHookState) HandleEvent(ctx *playerStateContext, evt ecs.Event) {
	switch evt.Type {
	case ecs.EventAnimationFinished:
		if evt.Index != ctx.AnimationIndex() {
			return
		}
		ctx.ChangeState(component.PlayerFish)
		ctx.Raise(ecs.Event{Type: ecs.EventCatch, Entity: evt.Entity})
	case ecs.EventEndAction:
		endAction(ctx, evt)
	}
}

func (playerAttackState) ID() component.PlayerStateID { return component.PlayerAttack }
func (playerAttackState) HandleEvent(ctx *playerStateContext, evt ecs.Event) {
	switch evt.Type {
	case ecs.EventAnimationFinished:
		if evt.Index != ctx.AnimationIndex() {
			return
		}
		ctx.ChangeState(component.PlayerIdle)
		ctx.Raise(ecs.Event{Type: ecs.EventHit, Entity: evt.Entity})
	case ecs.EventEndAction:
		endAction(ctx, evt)
	}
}

// startAction is shared by the states the player can act from: fishing over
// water, otherwise standing still and offering a sale.
func startAction(ctx *playerStateContext, evt ecs.Event) {
	if ctx.InOcean() {
		ctx.ChangeState(component.PlayerFish)
		return
	}
	ctx.ChangeState(component.PlayerIdle)
	ctx.Raise(ecs.Event{Type: ecs.EventSell, Entity: evt.Entity, Position: ctx.Position})
}

// endAction returns to the movement state for the player's zone. Rowing
// needs the boat attached; walking leaves it at its dock. Without a boat the
// player walks even over water.
func endAction(ctx *playerStateContext, _ ecs.Event) {
	if ctx.InOcean() && ctx.AttachBoat() {
		ctx.ChangeState(component.PlayerRow)
		return
	}
	ctx.DockBoat()
	ctx.ChangeState(component.PlayerWalk)
}
