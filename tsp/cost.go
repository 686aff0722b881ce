// Package tsp - cost utilities shared by exact/heuristic solvers.
package tsp

import "github.com/katalvlaran/lvtsp/core"

// TourCost sums consecutive hop costs along tour. Each hop uses the stored
// edge weight when present and the haversine distance otherwise
// (see (*core.Graph).Cost). A closed tour therefore includes its closing hop;
// an open walk does not.
//
// Complexity: O(Σ deg) over the visited vertices.
func TourCost(g *core.Graph, tour []int) float64 {
	var total float64
	for i := 0; i+1 < len(tour); i++ {
		total += g.Cost(tour[i], tour[i+1])
	}

	return total
}

// closeTour appends start to an open walk, returning a fresh slice.
func closeTour(walk []int, start int) []int {
	out := make([]int, len(walk), len(walk)+1)
	copy(out, walk)

	return append(out, start)
}
