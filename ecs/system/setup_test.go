package system

import (
	"math"
	"testing"

	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/prefabs"
)

func TestInstallWiresHandlersAndOrder(t *testing.T) {
	w := ecs.NewWorld()
	tel := NewTelemetrySystem(false)
	scheduler := Install(w, Config{Telemetry: tel})

	for _, typ := range []ecs.EventType{ecs.EventAction, ecs.EventEndAction, ecs.EventHook, ecs.EventAnimationFinished, ecs.EventZoneEnter, ecs.EventSwitchSprite, ecs.EventCatch, ecs.EventSell} {
		if w.Events().HandlerCount(typ) != 1 {
			t.Errorf("expected one handler for %s, got %d", typ, w.Events().HandlerCount(typ))
		}
	}

	systems := scheduler.Systems()
	if len(systems) != 6 {
		t.Fatalf("expected 6 systems, got %d", len(systems))
	}
	if _, ok := systems[0].(*PlayerControllerSystem); !ok {
		t.Errorf("expected movement first, got %T", systems[0])
	}
	if _, ok := systems[1].(*ZoneSystem); !ok {
		t.Errorf("expected zone detection second, got %T", systems[1])
	}
	if _, ok := systems[2].(*PlayerActionSystem); !ok {
		t.Errorf("expected player actions third, got %T", systems[2])
	}
	if _, ok := systems[3].(*AnimationSystem); !ok {
		t.Errorf("expected animation fourth, got %T", systems[3])
	}

	if err := w.Raise(ecs.Event{Type: ecs.EventHit}); err != nil {
		t.Fatal(err)
	}
	if tel.Count(ecs.EventHit) != 1 {
		t.Fatal("expected telemetry to observe events")
	}
}

func TestPlayerControllerMovesOnlyWhenWalkingOrRowing(t *testing.T) {
	tests := []struct {
		state component.PlayerStateID
		moveX float64
		wantX float64
	}{
		{component.PlayerWalk, 1, -190},
		{component.PlayerWalk, -1, -210},
		{component.PlayerWalk, 5, -190},
		{component.PlayerRow, 0.5, -195},
		{component.PlayerIdle, 1, -200},
		{component.PlayerFish, 1, -200},
		{component.PlayerHook, -1, -200},
		{component.PlayerAttack, 1, -200},
		{component.PlayerWalk, math.NaN(), -200},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			player := &component.Player{State: tt.state, MoveSpeed: 100}
			tr := &component.Transform{X: -200}
			_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
			_ = ecs.Add(w, e, component.PlayerComponent.Kind(), player)
			_ = ecs.Add(w, e, component.TransformComponent.Kind(), tr)

			NewPlayerControllerSystem().Update(w, ecs.Tick{Dt: 0.1, Input: component.Input{MoveX: tt.moveX}})
			if math.Abs(tr.X-tt.wantX) > 1e-9 {
				t.Fatalf("expected x=%v, got %v", tt.wantX, tr.X)
			}
			if tt.moveX < 0 && !player.FacingLeft {
				t.Fatal("expected facing left")
			}
		})
	}
}

func TestSunAndParallax(t *testing.T) {
	level := &prefabs.LevelSpec{
		Sun: &prefabs.SunSpec{Amplitude: 100, Speed: math.Pi / 2},
		Scenery: []prefabs.ShapeSpec{
			{Name: "hills", Width: 10, Height: 10, Layer: prefabs.LayerSpec{Parallax: 0.5}},
		},
	}
	tw := newTestWorld(t, level, 80, component.PlayerWalk)
	w := tw.w

	if Daylight(w) != 1 {
		t.Fatalf("expected full daylight before the first tick, got %v", Daylight(w))
	}
	NewSunSystem().Update(w, ecs.Tick{Dt: 1})
	sunEntity, _ := ecs.First(w, component.SunComponent.Kind())
	sunT, _ := ecs.Get(w, sunEntity, component.TransformComponent.Kind())
	if math.Abs(sunT.Y-100) > 1e-9 || math.Abs(Daylight(w)-1) > 1e-9 {
		t.Fatalf("expected noon, got y=%v daylight=%v", sunT.Y, Daylight(w))
	}
	NewSunSystem().Update(w, ecs.Tick{Dt: 2})
	if math.Abs(Daylight(w)) > 1e-9 {
		t.Fatalf("expected midnight, got daylight=%v", Daylight(w))
	}

	NewParallaxSystem().Update(w, ecs.Tick{})
	var scroll []float64
	ecs.ForEach(w, component.LayerComponent.Kind(), func(e ecs.Entity, layer *component.Layer) {
		if e != tw.player && !ecs.Has(w, e, component.SunComponent.Kind()) {
			scroll = append(scroll, layer.ScrollX)
		}
	})
	if len(scroll) != 1 || scroll[0] != 40 {
		t.Fatalf("expected hills scrolled by 40, got %v", scroll)
	}
}

func TestDaylightWithoutSun(t *testing.T) {
	if Daylight(ecs.NewWorld()) != 1 {
		t.Fatal("expected full daylight without a sun")
	}
	if CameraX(ecs.NewWorld()) != 0 {
		t.Fatal("expected camera at origin without a player")
	}
}
