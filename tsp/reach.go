package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

// reachItem pairs a vertex with its hop distance from the start.
type reachItem struct {
	id    int
	depth int
}

// Reachable returns the vertices reachable from start along stored edges in
// breadth-first order, together with their hop distance. Neighbours are
// expanded in adjacency insertion order, so the order is deterministic.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrStartNotFound.
// Complexity: O(V + E).
func Reachable(g *core.Graph, start int) ([]int, map[int]int, error) {
	if err := validateGraph(g, start, true); err != nil {
		return nil, nil, err
	}

	n := g.VertexCount()
	order := make([]int, 0, n)
	depth := make(map[int]int, n)
	queue := make([]reachItem, 0, n)

	depth[start] = 0
	queue = append(queue, reachItem{id: start})
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		order = append(order, item.id)

		adj, err := g.Neighbors(item.id)
		if err != nil {
			return nil, nil, fmt.Errorf("reachable from %d: %w", start, err)
		}
		for _, a := range adj {
			if _, seen := depth[a.To]; seen {
				continue
			}
			depth[a.To] = item.depth + 1
			queue = append(queue, reachItem{id: a.To, depth: item.depth + 1})
		}
	}

	return order, depth, nil
}
