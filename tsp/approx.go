// Package tsp - MST-based triangular 2-approximation.
//
// TSPApprox builds a Hamiltonian cycle by:
//
//  1. Prim's minimum spanning tree rooted at opts.Start.
//  2. A stack preorder walk of the tree (PreorderWalk).
//  3. Closing the walk back to the root.
//
// Mathematical guarantee:
//   - When hop costs satisfy the triangle inequality, cost ≤ 2 · OPT: the MST
//     weighs no more than an optimal tour, and shortcutting a doubled tree
//     walk never costs more than twice the tree.
//
// Complexity: O(E log E) for Prim + O(V²) for the walk + O(Σ deg) for the cost.
package tsp

import "github.com/katalvlaran/lvtsp/core"

// TSPApprox runs the MST preorder 2-approximation on an undirected graph.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrStartNotFound, ErrDirectedGraph, ErrDisconnected.
func TSPApprox(g *core.Graph, opts Options) (Result, error) {
	if err := validateGraph(g, opts.Start, true); err != nil {
		return Result{Cost: NoTour}, err
	}
	if err := validateUndirected(g); err != nil {
		return Result{Cost: NoTour}, err
	}

	tree, err := MinimumSpanningTree(g, opts.Start)
	if err != nil {
		return Result{Cost: NoTour}, err
	}

	tour := closeTour(PreorderWalk(tree), opts.Start)

	return Result{Tour: tour, Cost: TourCost(g, tour)}, nil
}
