package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/prefabs"
	"golang.org/x/image/colornames"
)

var (
	ErrNilWorld      = errors.New("world is nil")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrInvalidPlayer = errors.New("invalid player")
)

type buildStep func(w *ecs.World, e ecs.Entity) error

// buildEntity creates one entity and applies every step to it. A failing
// step destroys the entity so no half-built entity stays in the world.
func buildEntity(w *ecs.World, name string, steps ...buildStep) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity %q: %w", name, ErrNilWorld)
	}
	e := ecs.CreateEntity(w)
	for _, step := range steps {
		if err := step(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity %q: %w", name, err)
		}
	}
	return e, nil
}

func withComponent[T any](kind component.ComponentKind[T], value *T) buildStep {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}
}

func withTransform(x, y float64) buildStep {
	return withComponent(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
}

// withShape adds the drawable shape and its layer.
func withShape(spec prefabs.ShapeSpec) buildStep {
	return func(w *ecs.World, e ecs.Entity) error {
		shape, err := shapeFromSpec(spec)
		if err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.ShapeComponent.Kind(), shape); err != nil {
			return err
		}
		return ecs.Add(w, e, component.LayerComponent.Kind(), &component.Layer{
			Depth:    spec.Layer.Depth,
			Parallax: spec.Layer.Parallax,
		})
	}
}

func shapeFromSpec(spec prefabs.ShapeSpec) (*component.Shape, error) {
	if spec.Width < 0 || spec.Height < 0 {
		return nil, fmt.Errorf("%w %q: negative size %vx%v", ErrInvalidShape, spec.Name, spec.Width, spec.Height)
	}
	if spec.Layer.Parallax < 0 || spec.Layer.Parallax > 1 {
		return nil, fmt.Errorf("%w %q: parallax %v outside [0, 1]", ErrInvalidShape, spec.Name, spec.Layer.Parallax)
	}
	shape := &component.Shape{
		Name:   spec.Name,
		Width:  spec.Width,
		Height: spec.Height,
		Color:  colornames.White,
	}
	if spec.Color != nil && spec.Color.Color != nil {
		shape.Color = spec.Color.Color
	}
	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "", "rect", "rectangle":
		shape.Kind = component.ShapeRect
	case "circle":
		shape.Kind = component.ShapeCircle
	default:
		return nil, fmt.Errorf("%w %q: unknown kind %q", ErrInvalidShape, spec.Name, spec.Kind)
	}
	return shape, nil
}
