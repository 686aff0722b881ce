package tsp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/core"
)

// TSPChristofides builds a tour from the minimum spanning tree, a matching of
// its odd-degree vertices, an Eulerian circuit and a shortcut pass.
//
// Steps:
//  1. MinimumSpanningTree rooted at opts.Start.
//  2. The tree as its own undirected graph (TreeGraph), weights from g.Cost.
//  3. Odd-degree vertices of the tree, ascending.
//  4. opts.Matcher pairs them (GreedyMatcher when nil).
//  5. Tree edges and matched pairs go into a private Multigraph; a matched
//     pair may duplicate a tree edge there.
//  6. EulerianCircuit from the start, then Shortcut.
//
// With ExactMatcher and a metric graph the cost is at most 3/2 · OPT.
// The default greedy matching carries no such bound.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrStartNotFound, ErrDirectedGraph,
// ErrDisconnected, and matcher errors (ErrTooLarge, ErrOddMatchingSet).
func TSPChristofides(g *core.Graph, opts Options) (Result, error) {
	if err := validateGraph(g, opts.Start, true); err != nil {
		return Result{Cost: NoTour}, err
	}
	if err := validateUndirected(g); err != nil {
		return Result{Cost: NoTour}, err
	}
	log := opts.logger()

	mst, err := MinimumSpanningTree(g, opts.Start)
	if err != nil {
		return Result{Cost: NoTour}, err
	}
	tree, err := TreeGraph(g, mst)
	if err != nil {
		return Result{Cost: NoTour}, err
	}

	odd, err := oddVertices(tree)
	if err != nil {
		return Result{Cost: NoTour}, err
	}
	pairs, err := opts.matcher().Match(g, tree, odd)
	if err != nil {
		return Result{Cost: NoTour}, fmt.Errorf("christofides: %w", err)
	}
	log.Debug("odd vertices matched",
		zap.Int("odd", len(odd)), zap.Int("pairs", len(pairs)), zap.Float64("mst_weight", mst.Weight))

	arena := NewMultigraph()
	for _, e := range tree.Edges() {
		if e.From < e.To {
			arena.AddEdge(e.From, e.To)
		}
	}
	for _, p := range pairs {
		arena.AddEdge(p.U, p.V)
	}

	circuit := EulerianCircuit(arena, opts.Start)
	tour := Shortcut(circuit)

	return Result{Tour: tour, Cost: TourCost(g, tour)}, nil
}

// TreeGraph materialises t as an undirected graph holding every vertex of g
// and one edge per parent link, weighted by g.Cost.
func TreeGraph(g *core.Graph, t *SpanningTree) (*core.Graph, error) {
	tree := g.CloneEmpty()
	if tree.Directed() {
		tree = core.NewGraph()
		for _, id := range g.Vertices() {
			v, _ := g.Vertex(id)
			if err := tree.AddVertex(id, v.Lat, v.Long, v.Label); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range t.Edges(g) {
		if err := tree.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// oddVertices returns the ascending IDs of odd-degree vertices of g.
func oddVertices(g *core.Graph) ([]int, error) {
	var odd []int
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		if d%2 == 1 {
			odd = append(odd, id)
		}
	}

	return odd, nil
}
