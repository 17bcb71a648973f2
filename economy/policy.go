package economy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/fishtown/common"
)

var ErrUnknownSellPolicy = errors.New("economy: unknown sell policy")

// SellPolicy decides which building takes a sale when several are in range.
type SellPolicy int

const (
	// SellNearest picks the building closest to the seller; ties go to the
	// earlier candidate.
	SellNearest SellPolicy = iota
	// SellFirst picks the first candidate in range.
	SellFirst
)

// sellPolicies lists every policy in hint order.
var sellPolicies = []SellPolicy{SellNearest, SellFirst}

func (p SellPolicy) String() string {
	switch p {
	case SellNearest:
		return "nearest"
	case SellFirst:
		return "first"
	default:
		return fmt.Sprintf("SellPolicy(%d)", int(p))
	}
}

func ParseSellPolicy(s string) (SellPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return SellNearest, nil
	}
	names := make([]string, 0, len(sellPolicies))
	for _, p := range sellPolicies {
		if p.String() == key {
			return p, nil
		}
		names = append(names, p.String())
	}
	return SellNearest, fmt.Errorf("%w %q%s", ErrUnknownSellPolicy, s, common.Suggest(key, names))
}

// Counter is a building as seen by a sell policy.
type Counter struct {
	Center float64
	Range  float64
}

// Select returns the index of the counter that takes a sale made at x.
func (p SellPolicy) Select(x float64, counters []Counter) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range counters {
		if !common.WithinHalfWidth(x, c.Center, c.Range) {
			continue
		}
		if p == SellFirst {
			return i, true
		}
		if d := math.Abs(x - c.Center); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}
