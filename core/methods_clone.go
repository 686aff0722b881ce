// File: methods_clone.go
// Role: Private copies of a graph for solvers that need to mutate topology.
// Concurrency:
//   - Read lock on the source only; the copy is a fresh instance.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed), WithLogger(g.log))
	for id, n := range g.vertices {
		clone.vertices[id] = &vertexNode{Vertex: n.Vertex}
	}

	return clone
}

// Clone returns a deep copy: configuration, vertices, adjacency and edge counter.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()
	for id, n := range g.vertices {
		clone.vertices[id].adj = append([]Adjacent(nil), n.adj...)
	}
	clone.numEdges = g.numEdges

	return clone
}
