// SPDX-License-Identifier: MIT
// Package: lvtsp/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng       = nil              (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn  (constant DefaultEdgeWeight)
//   • idOffset  = 0                (IDs 0..n-1)
//   • labelFn   = decimalLabel     ("v0","v1",...)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for non-geographic constructors.
	weightFn WeightFn
	// First vertex ID; vertex i gets idOffset+i.
	idOffset int
	// Vertex label strategy: index -> label.
	labelFn func(int) string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		labelFn:  decimalLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.idOffset + i }

// decimalLabel renders an index as "v0", "v1", ...
func decimalLabel(i int) string {
	return "v" + strconv.Itoa(i)
}
