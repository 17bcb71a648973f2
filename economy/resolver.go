package economy

import "math/rand/v2"

const (
	// GoldenChance and SilverChance are cumulative thresholds on one uniform
	// roll in [0,1). Anything at or above SilverChance catches nothing.
	GoldenChance = 0.10
	SilverChance = 0.50

	MinFishWeight = 0.1
	MaxFishWeight = 20.0
)

// Resolver rolls catch outcomes.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver uses rng for every roll. A nil rng falls back to a randomly
// seeded generator.
func NewResolver(rng *rand.Rand) *Resolver {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Resolver{rng: rng}
}

// NewSeededResolver returns a resolver whose rolls are reproducible.
func NewSeededResolver(seed uint64) *Resolver {
	return NewResolver(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Catch draws one outcome. The weight is only drawn when a fish is caught.
func (r *Resolver) Catch() (Item, bool) {
	if r == nil || r.rng == nil {
		return nil, false
	}
	roll := r.rng.Float64()
	if roll >= SilverChance {
		return nil, false
	}
	return CatchFromRoll(roll, r.rng.Float64())
}

// CatchFromRoll maps a chance roll and a weight sample, both in [0,1), to a
// catch outcome.
func CatchFromRoll(roll, weightSample float64) (Item, bool) {
	var t FishType
	switch {
	case roll < GoldenChance:
		t = FishGolden
	case roll < SilverChance:
		t = FishSilver
	default:
		return nil, false
	}
	return Fish{Type: t, Weight: fishWeight(weightSample)}, true
}

func fishWeight(sample float64) float64 {
	if sample < 0 {
		sample = 0
	}
	w := MinFishWeight + sample*(MaxFishWeight-MinFishWeight)
	if w >= MaxFishWeight {
		// keep the half-open upper bound even for samples rounding up to 1
		w = MaxFishWeight - 1e-9
	}
	return w
}
