// Package economy holds the sellable items a player can carry and the rules
// that produce and value them.
package economy

import "fmt"

// Item is anything that can sit in an inventory and be sold.
type Item interface {
	Name() string
	Value() float64
	Mass() float64
}

type FishType int

const (
	FishSilver FishType = iota
	FishGolden
)

func (t FishType) String() string {
	switch t {
	case FishSilver:
		return "Silver"
	case FishGolden:
		return "Golden"
	default:
		return fmt.Sprintf("FishType(%d)", int(t))
	}
}

// UnitValue is the price of one unit of weight.
func (t FishType) UnitValue() float64 {
	switch t {
	case FishGolden:
		return 100.0
	default:
		return 1.0
	}
}

type Fish struct {
	Type   FishType
	Weight float64
}

func (f Fish) Name() string {
	return "Fish - " + f.Type.String()
}

func (f Fish) Value() float64 {
	return f.Weight * f.Type.UnitValue()
}

func (f Fish) Mass() float64 {
	return f.Weight
}
