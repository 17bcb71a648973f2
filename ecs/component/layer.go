package component

import "image/color"

// Layer places an entity at a draw depth. Parallax is the fraction of the
// camera motion the layer follows: 0 is fixed to the world, 1 to the screen.
type Layer struct {
	Depth    float64
	Parallax float64
	ScrollX  float64
}

var LayerComponent = NewComponent[Layer]()

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

type Shape struct {
	Name   string
	Kind   ShapeKind
	Width  float64
	Height float64
	Color  color.Color
}

var ShapeComponent = NewComponent[Shape]()
