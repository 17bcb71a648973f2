package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
)

// TelemetrySystem observes every delivered event. It keeps per-type counts,
// optionally logs each event, and can run a tengo script that turns events
// into log messages.
type TelemetrySystem struct {
	Verbose bool

	counts map[ecs.EventType]int
	script *telemetryScript
	logf   func(format string, args ...any)
}

func NewTelemetrySystem(verbose bool) *TelemetrySystem {
	return &TelemetrySystem{
		Verbose: verbose,
		counts:  map[ecs.EventType]int{},
		logf:    log.Printf,
	}
}

// Attach subscribes the telemetry observer to w's event bus.
func (t *TelemetrySystem) Attach(w *ecs.World) {
	w.Events().Observe(t.observe)
}

// Count returns how many events of typ have been observed.
func (t *TelemetrySystem) Count(typ ecs.EventType) int {
	return t.counts[typ]
}

// LoadScript compiles src and uses it for every following event. An empty
// source removes the script.
func (t *TelemetrySystem) LoadScript(name string, src []byte) error {
	if len(strings.TrimSpace(string(src))) == 0 {
		t.script = nil
		return nil
	}
	script, err := compileTelemetryScript(name, src)
	if err != nil {
		return err
	}
	t.script = script
	return nil
}

func (t *TelemetrySystem) observe(w *ecs.World, evt ecs.Event) {
	t.counts[evt.Type]++

	if t.Verbose {
		t.logf("event: %s entity=%s x=%.1f index=%d zone=%s depth=%d",
			evt.Type, evt.Entity, evt.Position.X, evt.Index, evt.Zone, evt.Depth())
	}
	if t.script == nil {
		return
	}
	msg, err := t.script.run(eventObject(w, evt), t.countsObject())
	if err != nil {
		t.logf("telemetry: script %s: %v", t.script.name, err)
		return
	}
	if msg != "" {
		t.logf("telemetry: %s", msg)
	}
}

func (t *TelemetrySystem) countsObject() map[string]any {
	counts := make(map[string]any, len(t.counts))
	for typ, n := range t.counts {
		counts[typ.String()] = n
	}
	return counts
}

func eventObject(w *ecs.World, evt ecs.Event) map[string]any {
	obj := map[string]any{
		"type":  evt.Type.String(),
		"x":     evt.Position.X,
		"index": evt.Index,
		"zone":  evt.Zone.String(),
		"depth": evt.Depth(),
	}
	if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			obj["money"] = p.Money
			obj["items"] = len(p.Inventory)
			obj["state"] = p.State.String()
		}
	}
	return obj
}

type telemetryScript struct {
	name     string
	compiled *tengo.Compiled
}

func compileTelemetryScript(name string, src []byte) (*telemetryScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("event", map[string]any{})
	_ = script.Add("counts", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("telemetry: compile %s: %w", name, err)
	}
	return &telemetryScript{name: name, compiled: compiled}, nil
}

func (s *telemetryScript) run(evt map[string]any, counts map[string]any) (string, error) {
	if err := s.compiled.Set("event", evt); err != nil {
		return "", err
	}
	if err := s.compiled.Set("counts", counts); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", err
	}
	if !s.compiled.IsDefined("message") {
		return "", nil
	}
	return s.compiled.Get("message").String(), nil
}
