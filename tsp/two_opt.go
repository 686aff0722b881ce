// Package tsp - 2-opt local search post-pass.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour of an
// undirected graph: for cut positions 1 ≤ i < k ≤ n−1 with
// a=T[i−1], b=T[i], c=T[k], d=T[k+1] it reverses T[i..k] whenever
//
//	Δ = cost(a,c) + cost(b,d) − cost(a,b) − cost(c,d) < −eps
//
// and restarts the scan. Hop costs come from (*core.Graph).Cost, the same
// model TourCost uses, so the reported cost always equals TourCost(g, tour).
//
// Complexity: O(n²) per scan plus O(n) per accepted move; O(n²) for the
// prefetched cost table.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

// twoOptEps is the minimum gain for a move to count as an improvement.
const twoOptEps = 1e-9

// TwoOpt returns an improved copy of the closed tour and its cost; the input
// is not modified. maxMoves caps accepted moves; 0 runs to a local optimum.
//
// Errors: ErrDirectedGraph, ErrInvalidTour (from ValidateTour).
func TwoOpt(g *core.Graph, tour []int, maxMoves int) ([]int, float64, error) {
	if err := validateUndirected(g); err != nil {
		return nil, 0, err
	}
	if len(tour) == 0 {
		return nil, 0, fmt.Errorf("empty tour: %w", ErrInvalidTour)
	}
	if err := ValidateTour(g, tour, tour[0]); err != nil {
		return nil, 0, err
	}

	n := len(tour) - 1
	cur := make([]int, n+1)
	copy(cur, tour)
	if n < 4 {
		return cur, TourCost(g, cur), nil
	}

	// Dense table keyed by vertex position in the initial tour.
	slot := make(map[int]int, n)
	for p, v := range cur[:n] {
		slot[v] = p
	}
	w := make([]float64, n*n)
	for p, u := range cur[:n] {
		for q, v := range cur[:n] {
			if p != q {
				w[p*n+q] = g.Cost(u, v)
			}
		}
	}
	at := func(u, v int) float64 { return w[slot[u]*n+slot[v]] }

	accepted := 0
	for {
		improved := false
		for i := 1; i <= n-2 && !improved; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]
				delta := at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -twoOptEps {
					continue
				}

				reverseArcInPlace(cur, i, k)
				accepted++
				improved = true
				break
			}
		}
		if !improved || (maxMoves > 0 && accepted >= maxMoves) {
			break
		}
	}

	return cur, TourCost(g, cur), nil
}
