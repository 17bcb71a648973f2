package system

import (
	"testing"

	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/ecs/entity"
	"github.com/milk9111/fishtown/economy"
	"github.com/milk9111/fishtown/prefabs"
)

type fixedResolver struct {
	items []economy.Item
	calls int
}

func (r *fixedResolver) Catch() (economy.Item, bool) {
	r.calls++
	if len(r.items) == 0 {
		return nil, false
	}
	item := r.items[0]
	r.items = r.items[1:]
	return item, true
}

func testAnimations() map[string]prefabs.AnimationFrameSpec {
	return map[string]prefabs.AnimationFrameSpec{
		"idle":   {First: 0, Last: 0, FrameDuration: 0.2, Mode: "repeating"},
		"walk":   {First: 1, Last: 4, FrameDuration: 0.1, Mode: "repeating"},
		"row":    {First: 5, Last: 8, FrameDuration: 0.15, Mode: "repeating"},
		"fish":   {First: 9, Last: 10, FrameDuration: 0.4, Mode: "repeating"},
		"hook":   {First: 11, Last: 14, FrameDuration: 0.1, Mode: "once"},
		"attack": {First: 15, Last: 17, FrameDuration: 0.08, Mode: "once"},
	}
}

// harborLevel has land on x<0, ocean on x>0, two buildings on land and a
// boat docked at x=40.
func harborLevel() *prefabs.LevelSpec {
	return &prefabs.LevelSpec{
		Name: "test",
		Zones: []prefabs.ZoneSpec{
			{Name: "town", Kind: "land", X: -400, HalfWidth: 400},
			{Name: "bay", Kind: "ocean", X: 400, HalfWidth: 400},
		},
		Buildings: []prefabs.BuildingSpec{
			{Name: "Red Building", ActionRange: 64, Shape: prefabs.ShapeSpec{X: -300}},
			{Name: "Green Building", ActionRange: 32, Shape: prefabs.ShapeSpec{X: -100}},
		},
		Boat: &prefabs.BoatSpec{DockX: 40},
	}
}

type testWorld struct {
	w         *ecs.World
	player    ecs.Entity
	scheduler *ecs.Scheduler
	resolver  *fixedResolver
}

func newTestWorld(t *testing.T, level *prefabs.LevelSpec, x float64, state component.PlayerStateID) *testWorld {
	t.Helper()
	w := ecs.NewWorld()
	if level != nil {
		if err := entity.BuildLevel(w, level); err != nil {
			t.Fatalf("BuildLevel: %v", err)
		}
	}
	e, err := entity.BuildPlayer(w, &prefabs.PlayerSpec{
		InitialState: state.String(),
		Transform:    prefabs.TransformSpec{X: x},
		Animations:   testAnimations(),
	})
	if err != nil {
		t.Fatalf("BuildPlayer: %v", err)
	}
	resolver := &fixedResolver{}
	scheduler := Install(w, Config{Resolver: resolver})
	return &testWorld{w: w, player: e, scheduler: scheduler, resolver: resolver}
}

func (tw *testWorld) raise(t *testing.T, typ ecs.EventType) {
	t.Helper()
	if err := tw.w.Raise(ecs.Event{Type: typ, Entity: tw.player}); err != nil {
		t.Fatalf("raise %s: %v", typ, err)
	}
}

func (tw *testWorld) tick(dt float64, input component.Input) {
	tw.scheduler.Update(tw.w, ecs.Tick{Dt: dt, Input: input})
}

func (tw *testWorld) state(t *testing.T) component.PlayerStateID {
	t.Helper()
	return tw.playerComponent(t).State
}

func (tw *testWorld) playerComponent(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(tw.w, tw.player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatal("missing player component")
	}
	return p
}

func (tw *testWorld) animation(t *testing.T) *component.Animation {
	t.Helper()
	a, ok := ecs.Get(tw.w, tw.player, component.AnimationComponent.Kind())
	if !ok {
		t.Fatal("missing animation component")
	}
	return a
}

func (tw *testWorld) setX(t *testing.T, x float64) {
	t.Helper()
	tr, ok := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("missing transform")
	}
	tr.X = x
}

func (tw *testWorld) boat(t *testing.T) (*component.Boat, *component.Transform) {
	t.Helper()
	boat, bt, ok := findBoat(tw.w)
	if !ok {
		t.Fatal("missing boat")
	}
	return boat, bt
}
