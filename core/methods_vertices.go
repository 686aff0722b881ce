// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency share g.mu.
package core

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// AddVertex inserts the vertex id, or overwrites the data fields of an existing one.
//
// Behavior highlights:
//   - id < 0 is rejected with ErrNegativeVertexID and nothing changes.
//   - Overwriting keeps the adjacency accumulated so far.
//
// Returns nil iff the insertion was accepted.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int, lat, long float64, label string) error {
	if id < 0 {
		g.log.Debug("vertex rejected", zap.Int("id", id), zap.Error(ErrNegativeVertexID))
		return fmt.Errorf("AddVertex(%d): %w", id, ErrNegativeVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.vertices[id]; ok {
		n.Lat, n.Long, n.Label = lat, long, label
		return nil
	}
	g.vertices[id] = &vertexNode{Vertex: Vertex{ID: id, Lat: lat, Long: long, Label: label}}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record and whether it exists.
func (g *Graph) Vertex(id int) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}

	return n.Vertex, true
}

// SetVertexInfo updates the coordinates of an existing vertex.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) SetVertexInfo(id int, lat, long float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetVertexInfo(%d): %w", id, ErrVertexNotFound)
	}
	n.Lat, n.Long = lat, long

	return nil
}

// SetLabel updates the label of an existing vertex.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) SetLabel(id int, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetLabel(%d): %w", id, ErrVertexNotFound)
	}
	n.Label = label

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDsLocked()
}

// sortedIDsLocked collects vertex IDs in ascending order. Caller holds g.mu.
func (g *Graph) sortedIDsLocked() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Degree returns the number of adjacency entries stored for id
// (out-degree in directed graphs).
//
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(n.adj), nil
}
