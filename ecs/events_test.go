package ecs

import (
	"errors"
	"reflect"
	"testing"
)

type recordingHandler struct {
	name  string
	types []EventType
	log   *[]string
}

func (h recordingHandler) EventTypes() []EventType { return h.types }

func (h recordingHandler) HandleEvent(_ *World, evt Event) {
	*h.log = append(*h.log, h.name+":"+evt.Type.String())
}

func TestEventBusRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var got []string
	w.Events().Register(recordingHandler{name: "a", types: []EventType{EventAction}, log: &got})
	w.Events().Register(recordingHandler{name: "b", types: []EventType{EventAction, EventHook}, log: &got})
	w.Events().Observe(func(_ *World, evt Event) { got = append(got, "observer:"+evt.Type.String()) })

	if err := w.Raise(Event{Type: EventAction}); err != nil {
		t.Fatal(err)
	}
	if err := w.Raise(Event{Type: EventHook}); err != nil {
		t.Fatal(err)
	}

	want := []string{"a:action", "b:action", "observer:action", "b:hook", "observer:hook"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if w.Events().HandlerCount(EventAction) != 2 || w.Events().HandlerCount(EventCatch) != 0 {
		t.Fatal("unexpected handler counts")
	}
}

func TestEventBusCascadeIsDepthFirst(t *testing.T) {
	w := NewWorld()
	bus := w.Events()
	var got []string
	depths := map[EventType]int{}

	bus.Subscribe(EventAction, func(w *World, _ Event) {
		_ = w.Raise(Event{Type: EventHook})
		_ = w.Raise(Event{Type: EventSell})
		got = append(got, "action done")
	})
	bus.Subscribe(EventHook, func(w *World, _ Event) {
		_ = w.Raise(Event{Type: EventCatch})
	})
	bus.Observe(func(_ *World, evt Event) {
		got = append(got, evt.Type.String())
		depths[evt.Type] = evt.Depth()
	})

	if err := w.Raise(Event{Type: EventAction}); err != nil {
		t.Fatal(err)
	}

	want := []string{"action done", "action", "hook", "catch", "sell"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if depths[EventAction] != 0 || depths[EventHook] != 1 || depths[EventCatch] != 2 || depths[EventSell] != 1 {
		t.Fatalf("unexpected depths %v", depths)
	}
	if bus.Delivered() != 4 {
		t.Fatalf("expected 4 deliveries, got %d", bus.Delivered())
	}
}

func TestEventBusCascadeLimit(t *testing.T) {
	w := NewWorld()
	bus := w.Events()
	bus.SetMaxDepth(3)

	calls := 0
	bus.Subscribe(EventHit, func(w *World, evt Event) {
		calls++
		_ = w.Raise(Event{Type: EventHit})
	})

	err := w.Raise(Event{Type: EventHit})
	if !errors.Is(err, ErrCascadeLimit) {
		t.Fatalf("expected ErrCascadeLimit, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected depths 0..3 to be delivered, got %d calls", calls)
	}
	if bus.Rejected() != 1 {
		t.Fatalf("expected one rejected event, got %d", bus.Rejected())
	}

	bus.Subscribe(EventSell, func(*World, Event) {})
	if err := w.Raise(Event{Type: EventSell}); err != nil {
		t.Fatalf("expected bus to recover after a refused cascade, got %v", err)
	}
}

func TestEventBusRejectsUnknownType(t *testing.T) {
	w := NewWorld()
	if err := w.Raise(Event{Type: EventType(99)}); err == nil {
		t.Fatal("expected error for unknown event type")
	}
	if w.Events().Delivered() != 0 {
		t.Fatal("unknown event should not be delivered")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventAction, "action"},
		{EventAnimationFinished, "animation_finished"},
		{EventZoneExit, "zone_exit"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
