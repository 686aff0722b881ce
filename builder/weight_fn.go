// Edge weights for fixtures without coordinates. Geographic constructors
// ignore WeightFn and store haversine metres instead.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is stored on every edge when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight. Given the same seeded source it must
// return the same sequence, so fixtures stay reproducible.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always yields DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn yields w for every edge. Panics if w < 0.
func ConstantWeightFn(w float64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: negative weight %g", w))
	}

	return func(*rand.Rand) float64 { return w }
}

// UniformWeightFn draws road lengths uniformly from [lo, hi). A nil source
// yields DefaultEdgeWeight; lo == hi yields lo. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: need 0 <= lo <= hi, got [%g, %g)", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		switch {
		case rng == nil:
			return DefaultEdgeWeight
		case lo == hi:
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// WithConstantWeight stores w on every generated edge.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws every generated edge weight from [lo, hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
