package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/fishtown/common"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/prefabs"
)

var (
	ErrInvalidZone      = errors.New("invalid zone")
	ErrOverlappingZones = errors.New("zones overlap")
	ErrInvalidBuilding  = errors.New("invalid building")
)

// NewLevel builds the static world from the level prefab.
func NewLevel(w *ecs.World) error {
	spec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return err
	}
	return BuildLevel(w, spec)
}

// BuildLevel validates the level layout and creates its zones, buildings,
// boat, sun and scenery. Nothing is created when validation fails.
func BuildLevel(w *ecs.World, spec *prefabs.LevelSpec) error {
	if w == nil {
		return fmt.Errorf("level: %w", ErrNilWorld)
	}
	if spec == nil {
		return fmt.Errorf("level: nil spec")
	}
	kinds, err := ValidateZones(spec.Zones)
	if err != nil {
		return fmt.Errorf("level %q: %w", spec.Name, err)
	}
	for _, b := range spec.Buildings {
		if !(b.ActionRange > 0) {
			return fmt.Errorf("level %q: %w %q: action_range %v", spec.Name, ErrInvalidBuilding, b.Name, b.ActionRange)
		}
	}

	for i, z := range spec.Zones {
		zone := &component.Zone{Name: z.Name, Kind: kinds[i], HalfWidth: z.HalfWidth}
		if _, err := buildEntity(w, z.Name,
			withComponent(component.ZoneComponent.Kind(), zone),
			withTransform(z.X, 0),
		); err != nil {
			return fmt.Errorf("level %q: %w", spec.Name, err)
		}
	}

	for _, b := range spec.Buildings {
		building := &component.Building{Name: b.Name, ActionRange: b.ActionRange}
		if _, err := buildEntity(w, b.Name,
			withComponent(component.BuildingComponent.Kind(), building),
			withTransform(b.Shape.X, b.Shape.Y),
			withShape(b.Shape),
		); err != nil {
			return fmt.Errorf("level %q: %w", spec.Name, err)
		}
	}

	if spec.Boat != nil {
		boat := &component.Boat{DockX: spec.Boat.DockX}
		if _, err := buildEntity(w, "boat",
			withComponent(component.BoatComponent.Kind(), boat),
			withTransform(spec.Boat.DockX, spec.Boat.Shape.Y),
			withShape(spec.Boat.Shape),
		); err != nil {
			return fmt.Errorf("level %q: %w", spec.Name, err)
		}
	}

	if spec.Sun != nil {
		sun := &component.Sun{Amplitude: spec.Sun.Amplitude, Speed: spec.Sun.Speed, Daylight: 1}
		if _, err := buildEntity(w, "sun",
			withComponent(component.SunComponent.Kind(), sun),
			withTransform(spec.Sun.Shape.X, spec.Sun.Shape.Y),
			withShape(spec.Sun.Shape),
		); err != nil {
			return fmt.Errorf("level %q: %w", spec.Name, err)
		}
	}

	for _, s := range spec.Scenery {
		if _, err := buildEntity(w, s.Name,
			withTransform(s.X, s.Y),
			withShape(s),
		); err != nil {
			return fmt.Errorf("level %q: %w", spec.Name, err)
		}
	}
	return nil
}

// ValidateZones parses every zone kind and rejects empty or overlapping
// intervals. Zones that only touch at an edge are allowed since the
// containment test is strict.
func ValidateZones(zones []prefabs.ZoneSpec) ([]component.ZoneKind, error) {
	kinds := make([]component.ZoneKind, len(zones))
	for i, z := range zones {
		kind, err := component.ParseZoneKind(z.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidZone, z.Name, err)
		}
		if !(z.HalfWidth > 0) {
			return nil, fmt.Errorf("%w %q: half_width %v", ErrInvalidZone, z.Name, z.HalfWidth)
		}
		kinds[i] = kind
	}

	order := make([]int, len(zones))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return zones[order[a]].X < zones[order[b]].X
	})
	for i := 1; i < len(order); i++ {
		prev, cur := zones[order[i-1]], zones[order[i]]
		if common.IntervalsOverlap(prev.X, prev.HalfWidth, cur.X, cur.HalfWidth) {
			return nil, fmt.Errorf("%w: %q and %q", ErrOverlappingZones, prev.Name, cur.Name)
		}
	}
	return kinds, nil
}

// NewWorld builds a world holding the level and the player.
func NewWorld() (*ecs.World, error) {
	w := ecs.NewWorld()
	if err := NewLevel(w); err != nil {
		return nil, err
	}
	if _, err := NewPlayer(w); err != nil {
		return nil, err
	}
	return w, nil
}
