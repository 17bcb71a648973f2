package component

// Transform is a world position. x grows to the right, y grows up, and the
// origin is the screen center at startup.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
