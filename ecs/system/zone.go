package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// ZoneSystem detects when the player crosses into or out of a zone and
// raises ZoneExit/ZoneEnter only on a change of membership.
type ZoneSystem struct{}

func NewZoneSystem() *ZoneSystem {
	return &ZoneSystem{}
}

func (z *ZoneSystem) Update(w *ecs.World, _ ecs.Tick) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	membership, ok := ecs.Get(w, e, component.ZoneMembershipComponent.Kind())
	if !ok {
		membership = &component.ZoneMembership{}
		if err := ecs.Add(w, e, component.ZoneMembershipComponent.Kind(), membership); err != nil {
			return
		}
	}

	kind, name := ZoneAt(w, t.X)
	if kind == membership.Kind && name == membership.Name {
		return
	}

	prev := *membership
	membership.Kind = kind
	membership.Name = name

	pos := cp.Vector{X: t.X, Y: t.Y}
	if prev.Kind != component.ZoneNone {
		if err := w.Raise(ecs.Event{Type: ecs.EventZoneExit, Entity: e, Position: pos, Zone: prev.Kind}); err != nil {
			log.Printf("zone: exit %s: %v", prev.Kind, err)
		}
	}
	if kind != component.ZoneNone {
		if err := w.Raise(ecs.Event{Type: ecs.EventZoneEnter, Entity: e, Position: pos, Zone: kind}); err != nil {
			log.Printf("zone: enter %s: %v", kind, err)
		}
	}
}

// ZoneAt returns the zone containing world x. Zones are validated not to
// overlap at setup, so the first match is the only one.
func ZoneAt(w *ecs.World, x float64) (component.ZoneKind, string) {
	kind, name := component.ZoneNone, ""
	found := false
	ecs.ForEach2(w, component.ZoneComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, zone *component.Zone, t *component.Transform) {
		if found || !zone.Contains(t.X, x) {
			return
		}
		found = true
		kind, name = zone.Kind, zone.Name
	})
	return kind, name
}
