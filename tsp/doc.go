// Package tsp provides Travelling Salesman route solvers over a *core.Graph.
//
// Four algorithms share one Result{Tour, Cost} shape:
//
//   - Backtrack - exhaustive depth-first search over Hamiltonian cycles that
//     follow existing edges. Exact; O(n!) worst case, guarded by
//     Options.MaxExactVertices. No admissible cycle ⇒ Cost == NoTour and
//     ErrNoHamiltonianCycle.
//
//   - TriangularApprox - Prim MST rooted at the start vertex, stack preorder
//     walk, shortcut and close. Cost ≤ 2·OPT under the triangle inequality.
//
//   - Christofides - MST, odd-degree vertices, pairing through a Matcher,
//     Eulerian circuit (Hierholzer) on a private multigraph, shortcut.
//     GreedyMatcher (default) is NOT a minimum-weight perfect matching and
//     gives no 3/2 bound; ExactMatcher restores the classical guarantee.
//
//   - NearestNeighbor - greedy closest-unvisited walk by stored weight,
//     evaluated from every start, best complete tour kept. Dead ends are
//     handled by Options.DeadEnd.
//
// Distances:
//
//	Walks follow stored edges. Whenever a tour bridges two vertices without a
//	stored edge (shortcutting, closing hops), the cost comes from
//	(*core.Graph).Cost, i.e. the haversine distance of the two positions.
//
// The input graph is never mutated. Solvers that need to consume edges work
// on private copies, so repeated runs on the same graph give identical results.
//
// Use Solve(g, opts) to dispatch by Options.Algo, or call a solver directly.
package tsp
