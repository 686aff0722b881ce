// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter is O(1) except Stats (O(V)).

package core

// Directed reports whether AddEdge stores one direction only.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edge directions. It is maintained
// incrementally by AddEdge/RemoveEdge; an undirected insertion counts twice.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// GraphStats is a read-only snapshot of flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	VertexCount int
	EdgeCount   int

	// UnknownPositions counts vertices whose coordinates are (0,0).
	UnknownPositions int

	// Isolated counts vertices with an empty adjacency list.
	Isolated int
}

// Stats produces a snapshot for diagnostics and admission checks.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.vertices),
		EdgeCount:   g.numEdges,
	}
	for _, n := range g.vertices {
		if !n.Point().Known() {
			s.UnknownPositions++
		}
		if len(n.adj) == 0 {
			s.Isolated++
		}
	}

	return s
}
