// Package tsp - validation utilities shared by exact/heuristic solvers.
//
// The helpers here run before any algorithm touches the graph so that every
// solver reports the same sentinel for the same malformed input.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

// validateGraph checks g is usable and, when needStart is set, that start exists.
// Complexity: O(1).
func validateGraph(g *core.Graph, start int, needStart bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if needStart && !g.HasVertex(start) {
		return fmt.Errorf("start %d: %w", start, ErrStartNotFound)
	}

	return nil
}

// validateUndirected rejects directed graphs for tree-based heuristics.
func validateUndirected(g *core.Graph) error {
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}
