package system

import (
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// ParallaxSystem drags background layers along with the camera, which
// follows the player. Layers with a higher Parallax appear farther away.
type ParallaxSystem struct{}

func NewParallaxSystem() *ParallaxSystem {
	return &ParallaxSystem{}
}

func (p *ParallaxSystem) Update(w *ecs.World, _ ecs.Tick) {
	camX := CameraX(w)
	ecs.ForEach(w, component.LayerComponent.Kind(), func(_ ecs.Entity, layer *component.Layer) {
		layer.ScrollX = camX * layer.Parallax
	})
}

// CameraX is the world x the camera centers on.
func CameraX(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0
	}
	return t.X
}
