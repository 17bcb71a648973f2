package system

import (
	"log"

	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/economy"
)

// CatchResolver rolls the outcome of one catch.
type CatchResolver interface {
	Catch() (economy.Item, bool)
}

// EconomySystem resolves Catch and Sell events against the player's ledger.
type EconomySystem struct {
	resolver CatchResolver
	policy   economy.SellPolicy
}

func NewEconomySystem(resolver CatchResolver, policy economy.SellPolicy) *EconomySystem {
	if resolver == nil {
		resolver = economy.NewResolver(nil)
	}
	return &EconomySystem{resolver: resolver, policy: policy}
}

func (s *EconomySystem) EventTypes() []ecs.EventType {
	return []ecs.EventType{ecs.EventCatch, ecs.EventSell}
}

func (s *EconomySystem) HandleEvent(w *ecs.World, evt ecs.Event) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	switch evt.Type {
	case ecs.EventCatch:
		item, ok := s.resolver.Catch()
		if !ok {
			log.Printf("economy: nothing caught this time")
			return
		}
		player.Store(item)
		log.Printf("economy: caught %s weighing %.2f", item.Name(), item.Mass())
	case ecs.EventSell:
		building, ok := s.buildingInRange(w, evt.Position.X)
		if !ok {
			return
		}
		item, ok := player.Sell()
		if !ok {
			return
		}
		log.Printf("economy: sold %s to %s for %.2f", item.Name(), building, item.Value())
	}
}

// buildingInRange returns the name of the building chosen by the sell policy
// for a sale made at x.
func (s *EconomySystem) buildingInRange(w *ecs.World, x float64) (string, bool) {
	var names []string
	var counters []economy.Counter
	ecs.ForEach2(w, component.BuildingComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Building, t *component.Transform) {
		names = append(names, b.Name)
		counters = append(counters, economy.Counter{Center: t.X, Range: b.ActionRange})
	})
	idx, ok := s.policy.Select(x, counters)
	if !ok {
		return "", false
	}
	return names[idx], true
}
