// Package tsp - tour utilities shared by exact/heuristic solvers.
//
// Provided helpers:
//   - ValidateTour: Hamiltonian-cycle invariants against a graph.
//   - Shortcut: keep first occurrences of an Eulerian walk and close it.
//   - reverseArcInPlace: the 2-opt primitive.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == |V|+1, tour[0] == tour[|V|] == start,
//	every vertex of g appears exactly once in tour[0:|V|].
//
// Complexity: O(V) time and space.
func ValidateTour(g *core.Graph, tour []int, start int) error {
	n := g.VertexCount()
	if len(tour) != n+1 {
		return fmt.Errorf("length %d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("tour must start and end at %d: %w", start, ErrInvalidTour)
	}

	seen := make(map[int]struct{}, n)
	for _, v := range tour[:n] {
		if !g.HasVertex(v) {
			return fmt.Errorf("unknown vertex %d: %w", v, ErrInvalidTour)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("vertex %d repeated: %w", v, ErrInvalidTour)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// Shortcut converts an Eulerian vertex sequence (with revisits) into a
// Hamiltonian cycle: it keeps the first occurrence of every vertex, drops
// repeats, and appends the first vertex again to close the cycle.
//
// Complexity: O(len(circuit)) time, O(V) space.
func Shortcut(circuit []int) []int {
	if len(circuit) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(circuit))
	tour := make([]int, 0, len(circuit)+1)
	for _, v := range circuit {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		tour = append(tour, v)
	}

	return append(tour, circuit[0])
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping the closing vertex intact. Requires 1 ≤ i < k ≤ len(tour)-2.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
