// File: methods_edges.go
// Role: Edge lifecycle & distance queries.
//
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() orders by From ascending, then insertion order.
//
// Concurrency:
//   - All methods take g.mu (write lock for mutation, read lock for queries).
package core

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/geo"
)

// AddEdge inserts the ordered edge from→to with the given weight.
//
// Implementation:
//   - Stage 1: Validate endpoints (non-negative, present) and weight.
//   - Stage 2: Reject a duplicate ordered pair.
//   - Stage 3: Append to from's adjacency; for undirected graphs also append
//     the mirror entry to to's adjacency.
//
// The edge counter grows by one per direction actually stored.
//
// Errors (no mutation on any of them):
//   - ErrNegativeVertexID, ErrVertexNotFound: bad endpoint.
//   - ErrBadWeight: negative or NaN weight.
//   - ErrEdgeExists: the ordered pair is already stored.
//
// Complexity: O(deg(from) + deg(to)) for the duplicate scans.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if err := g.addEdge(from, to, weight); err != nil {
		g.log.Debug("edge rejected",
			zap.Int("from", from), zap.Int("to", to), zap.Float64("weight", weight), zap.Error(err))
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}

	return nil
}

func (g *Graph) addEdge(from, to int, weight float64) error {
	if from < 0 || to < 0 {
		return ErrNegativeVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.vertices[from]
	if !ok {
		return ErrVertexNotFound
	}
	dst, ok := g.vertices[to]
	if !ok {
		return ErrVertexNotFound
	}
	if indexOf(src.adj, to) >= 0 {
		return ErrEdgeExists
	}

	src.adj = append(src.adj, Adjacent{To: to, Weight: weight})
	g.numEdges++

	// Mirror for undirected graphs; a self-loop has no distinct mirror.
	if !g.directed && from != to && indexOf(dst.adj, from) < 0 {
		dst.adj = append(dst.adj, Adjacent{To: from, Weight: weight})
		g.numEdges++
	}

	return nil
}

// RemoveEdge deletes the ordered edge from→to, and its mirror in undirected graphs.
// The edge counter shrinks by one per direction removed.
//
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrVertexNotFound)
	}
	i := indexOf(src.adj, to)
	if i < 0 {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	src.adj = append(src.adj[:i], src.adj[i+1:]...)
	g.numEdges--

	if !g.directed && from != to {
		if dst, ok := g.vertices[to]; ok {
			if j := indexOf(dst.adj, from); j >= 0 {
				dst.adj = append(dst.adj[:j], dst.adj[j+1:]...)
				g.numEdges--
			}
		}
	}

	return nil
}

// HasEdge reports whether the ordered edge from→to is stored.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.vertices[from]

	return ok && indexOf(n.adj, to) >= 0
}

// Distance returns the stored weight of from→to by a linear scan of from's
// adjacency, or NoEdge when no such edge is stored (including unknown from).
// Complexity: O(deg(from)).
func (g *Graph) Distance(from, to int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, _ := g.weightLocked(from, to)

	return w
}

// Cost returns the stored weight of from→to when the edge exists, otherwise
// the haversine distance between the two vertex positions. Unknown vertices
// contribute (0,0), so two unknown vertices cost 0.
// Complexity: O(deg(from)).
func (g *Graph) Cost(from, to int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if w, ok := g.weightLocked(from, to); ok {
		return w
	}
	var a, b Vertex
	if n, ok := g.vertices[from]; ok {
		a = n.Vertex
	}
	if n, ok := g.vertices[to]; ok {
		b = n.Vertex
	}

	return geo.Haversine(a.Lat, a.Long, b.Lat, b.Long)
}

// weightLocked scans from's adjacency for to. Caller holds g.mu.
func (g *Graph) weightLocked(from, to int) (float64, bool) {
	n, ok := g.vertices[from]
	if !ok {
		return NoEdge, false
	}
	if i := indexOf(n.adj, to); i >= 0 {
		return n.adj[i].Weight, true
	}

	return NoEdge, false
}

// Neighbors returns a copy of id's adjacency in insertion order.
//
// Errors: ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Adjacent, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]Adjacent, len(n.adj))
	copy(out, n.adj)

	return out, nil
}

// Edges returns every stored direction as an Edge, ordered by From ascending
// and then by insertion order. Undirected graphs therefore list each logical
// edge twice (u→v and v→u).
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.numEdges)
	for _, id := range g.sortedIDsLocked() {
		for _, a := range g.vertices[id].adj {
			out = append(out, Edge{From: id, To: a.To, Weight: a.Weight})
		}
	}

	return out
}

// indexOf returns the position of to in adj, or -1.
func indexOf(adj []Adjacent, to int) int {
	for i := range adj {
		if adj[i].To == to {
			return i
		}
	}

	return -1
}
