package system

import (
	"math"

	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// SunSystem moves the sun through the day. It only advances while the
// simulation ticks, so pausing the game pauses the day.
type SunSystem struct{}

func NewSunSystem() *SunSystem {
	return &SunSystem{}
}

func (s *SunSystem) Update(w *ecs.World, tick ecs.Tick) {
	dt := tick.Dt
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	ecs.ForEach2(w, component.SunComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, sun *component.Sun, t *component.Transform) {
		sun.Elapsed += dt
		height := math.Sin(sun.Speed * sun.Elapsed)
		t.Y = height * sun.Amplitude
		sun.Daylight = (height + 1) / 2
	})
}

// Daylight returns the first sun's daylight, or full daylight without a sun.
func Daylight(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.SunComponent.Kind())
	if !ok {
		return 1
	}
	sun, ok := ecs.Get(w, e, component.SunComponent.Kind())
	if !ok {
		return 1
	}
	return sun.Daylight
}
