package component

// Building buys items from a player standing within ActionRange of it.
type Building struct {
	Name        string
	ActionRange float64
}

var BuildingComponent = NewComponent[Building]()

// Boat carries the player across the ocean. While Attached it follows the
// player; otherwise it waits at DockX.
type Boat struct {
	DockX    float64
	Attached bool
}

var BoatComponent = NewComponent[Boat]()
