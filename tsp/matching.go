package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// Pair is one matched couple of vertex IDs.
type Pair struct{ U, V int }

// Matcher pairs the odd-degree vertices of a spanning tree.
//
// g is the original graph (pair costs come from g.Cost), tree is the spanning
// tree materialised as a graph, odd lists the vertices to pair in ascending ID
// order. Implementations must pair every vertex of odd exactly once.
type Matcher interface {
	Match(g, tree *core.Graph, odd []int) ([]Pair, error)
}

// GreedyMatcher pairs each unpaired odd vertex, in order, with its cheapest
// unpaired partner that is not already its neighbour in the tree. When every
// remaining partner is a tree neighbour, the cheapest one is taken anyway.
//
// This is not a minimum-weight perfect matching and gives no 3/2 bound.
// Complexity: O(k²·deg) for k odd vertices.
type GreedyMatcher struct{}

// Match implements Matcher.
func (GreedyMatcher) Match(g, tree *core.Graph, odd []int) ([]Pair, error) {
	if len(odd)%2 != 0 {
		return nil, fmt.Errorf("greedy matching of %d vertices: %w", len(odd), ErrOddMatchingSet)
	}

	paired := make([]bool, len(odd))
	pairs := make([]Pair, 0, len(odd)/2)
	for i, u := range odd {
		if paired[i] {
			continue
		}

		best, bestCost := -1, math.Inf(1)
		fallback, fallbackCost := -1, math.Inf(1)
		for j := i + 1; j < len(odd); j++ {
			if paired[j] {
				continue
			}
			v := odd[j]
			c := g.Cost(u, v)
			if c < fallbackCost {
				fallback, fallbackCost = j, c
			}
			if c < bestCost && !tree.HasEdge(u, v) {
				best, bestCost = j, c
			}
		}
		if best < 0 {
			best = fallback
		}

		paired[i], paired[best] = true, true
		pairs = append(pairs, Pair{U: u, V: odd[best]})
	}

	return pairs, nil
}

// ExactMatcher computes a minimum-weight perfect matching by dynamic
// programming over subsets of the odd vertices.
//
// dp[mask] is the cheapest way to pair every vertex in mask; the lowest
// vertex of mask is always paired first, so each matching is built once.
//
// Limit caps the number of odd vertices (0 means DefaultMaxExactMatching);
// larger sets return ErrTooLarge.
// Complexity: O(2^k · k) time, O(2^k) space.
type ExactMatcher struct {
	Limit int
}

// Match implements Matcher.
func (m ExactMatcher) Match(g, _ *core.Graph, odd []int) ([]Pair, error) {
	k := len(odd)
	if k%2 != 0 {
		return nil, fmt.Errorf("exact matching of %d vertices: %w", k, ErrOddMatchingSet)
	}
	limit := m.Limit
	if limit <= 0 {
		limit = DefaultMaxExactMatching
	}
	if k > limit {
		return nil, fmt.Errorf("exact matching of %d vertices, limit %d: %w", k, limit, ErrTooLarge)
	}
	if k == 0 {
		return nil, nil
	}

	cost := make([][]float64, k)
	for i := range cost {
		cost[i] = make([]float64, k)
		for j := range cost[i] {
			if i != j {
				cost[i][j] = g.Cost(odd[i], odd[j])
			}
		}
	}

	full := 1<<k - 1
	dp := make([]float64, full+1)
	choice := make([]int, full+1)
	for mask := 1; mask <= full; mask++ {
		dp[mask] = math.Inf(1)
		choice[mask] = -1
	}

	for mask := 1; mask <= full; mask++ {
		i := lowestBit(mask)
		rest := mask &^ (1 << i)
		for j := i + 1; j < k; j++ {
			if rest&(1<<j) == 0 {
				continue
			}
			prev := rest &^ (1 << j)
			if c := dp[prev] + cost[i][j]; c < dp[mask] {
				dp[mask] = c
				choice[mask] = j
			}
		}
	}

	pairs := make([]Pair, 0, k/2)
	for mask := full; mask != 0; {
		i := lowestBit(mask)
		j := choice[mask]
		pairs = append(pairs, Pair{U: odd[i], V: odd[j]})
		mask &^= 1<<i | 1<<j
	}

	return pairs, nil
}

// MatcherFor maps "greedy" or "exact" to a Matcher.
func MatcherFor(name string) (Matcher, error) {
	switch name {
	case "", "greedy":
		return GreedyMatcher{}, nil
	case "exact":
		return ExactMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}

func lowestBit(mask int) int {
	i := 0
	for mask&1 == 0 {
		mask >>= 1
		i++
	}

	return i
}
