package ecs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fishtown/ecs/component"
)

// EventType identifies a game event.
type EventType int

const (
	// EventAction is raised when the act input is pressed. Position is where
	// the player stood.
	EventAction EventType = iota
	// EventEndAction is raised when the act input is released.
	EventEndAction
	// EventHook is raised when the secondary act input is pressed.
	EventHook
	// EventCatch is raised when a hook animation lands.
	EventCatch
	// EventHit is raised when an attack animation lands.
	EventHit
	// EventSell asks the nearest building to buy the top inventory item.
	EventSell
	// EventSwitchSprite selects animation Index on Entity.
	EventSwitchSprite
	// EventAnimationFinished is raised once when a Once animation elapses.
	EventAnimationFinished
	// EventZoneEnter and EventZoneExit carry the zone kind in Zone.
	EventZoneEnter
	EventZoneExit

	eventTypeCount
)

var eventTypeNames = [...]string{
	EventAction:            "action",
	EventEndAction:         "end_action",
	EventHook:              "hook",
	EventCatch:             "catch",
	EventHit:               "hit",
	EventSell:              "sell",
	EventSwitchSprite:      "switch_sprite",
	EventAnimationFinished: "animation_finished",
	EventZoneEnter:         "zone_enter",
	EventZoneExit:          "zone_exit",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is a short-lived message. Only the fields relevant to Type are set.
type Event struct {
	Type     EventType
	Entity   Entity
	Position cp.Vector
	Index    int
	Zone     component.ZoneKind

	depth int
}

// Depth is how many events deep in a cascade this event was raised; events
// raised outside any handler have depth 0.
func (e Event) Depth() int {
	return e.depth
}

// EventHandler receives routed events. Handlers for the same type run in
// registration order.
type EventHandler interface {
	HandleEvent(w *World, evt Event)
	EventTypes() []EventType
}

type HandlerFunc func(w *World, evt Event)

const DefaultMaxCascadeDepth = 16

var ErrCascadeLimit = errors.New("ecs: event cascade limit exceeded")

// EventBus delivers events synchronously. The outermost Raise drains a queue
// to a fixed point before returning, so every event raised by a handler is
// delivered within the same call. Events raised by a handler are delivered
// before the events that were already waiting, which keeps cascades
// depth-first.
type EventBus struct {
	handlers  [eventTypeCount][]HandlerFunc
	observers []HandlerFunc
	maxDepth  int

	queue       []Event
	pending     []Event
	dispatching bool
	depth       int
	err         error

	delivered uint64
	rejected  uint64
}

func NewEventBus() *EventBus {
	return &EventBus{maxDepth: DefaultMaxCascadeDepth}
}

// SetMaxDepth caps cascade depth. Values below 1 restore the default.
func (b *EventBus) SetMaxDepth(depth int) {
	if b == nil {
		return
	}
	if depth < 1 {
		depth = DefaultMaxCascadeDepth
	}
	b.maxDepth = depth
}

// Register subscribes h to every type it declares.
func (b *EventBus) Register(h EventHandler) {
	if b == nil || h == nil {
		return
	}
	for _, t := range h.EventTypes() {
		b.Subscribe(t, h.HandleEvent)
	}
}

func (b *EventBus) Subscribe(t EventType, fn HandlerFunc) {
	if b == nil || fn == nil || t < 0 || t >= eventTypeCount {
		return
	}
	b.handlers[t] = append(b.handlers[t], fn)
}

// Observe registers fn for every event type. Observers run after the typed
// handlers of each event.
func (b *EventBus) Observe(fn HandlerFunc) {
	if b == nil || fn == nil {
		return
	}
	b.observers = append(b.observers, fn)
}

// HandlerCount returns the number of typed handlers for t.
func (b *EventBus) HandlerCount(t EventType) int {
	if b == nil || t < 0 || t >= eventTypeCount {
		return 0
	}
	return len(b.handlers[t])
}

// Delivered returns how many events have been delivered so far.
func (b *EventBus) Delivered() uint64 {
	if b == nil {
		return 0
	}
	return b.delivered
}

// Rejected returns how many events were refused by the cascade limit.
func (b *EventBus) Rejected() uint64 {
	if b == nil {
		return 0
	}
	return b.rejected
}

// Raise delivers evt and everything it triggers. When called from inside a
// handler the event is queued and delivered before the outermost Raise
// returns. The returned error wraps ErrCascadeLimit when any event in the
// cascade was refused.
func (b *EventBus) Raise(w *World, evt Event) error {
	if b == nil {
		return nil
	}
	if evt.Type < 0 || evt.Type >= eventTypeCount {
		return fmt.Errorf("ecs: unknown event type %d", int(evt.Type))
	}
	if b.dispatching {
		evt.depth = b.depth + 1
		if evt.depth > b.maxDepth {
			b.rejected++
			err := fmt.Errorf("%w: %s at depth %d", ErrCascadeLimit, evt.Type, evt.depth)
			if b.err == nil {
				b.err = err
			}
			return err
		}
		b.pending = append(b.pending, evt)
		return nil
	}

	evt.depth = 0
	b.queue = append(b.queue[:0], evt)
	b.dispatching = true
	b.err = nil
	defer func() {
		b.dispatching = false
		b.queue = b.queue[:0]
		b.pending = b.pending[:0]
		b.depth = 0
	}()

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		b.depth = next.depth
		b.pending = b.pending[:0]
		b.deliver(w, next)
		if len(b.pending) > 0 {
			merged := make([]Event, 0, len(b.pending)+len(b.queue))
			merged = append(merged, b.pending...)
			b.queue = append(merged, b.queue...)
		}
	}
	return b.err
}

func (b *EventBus) deliver(w *World, evt Event) {
	b.delivered++
	for _, h := range b.handlers[evt.Type] {
		h(w, evt)
	}
	for _, o := range b.observers {
		o(w, evt)
	}
}
