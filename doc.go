// Package lvtsp plans delivery rounds over an in-memory graph of locations:
// load stops and roads from CSV, then look for the cheapest round trip that
// visits every stop once and returns home.
//
// What is inside?
//
//	A thread-safe location graph plus four route solvers on top of it:
//		• Backtracking: exact optimum, optional branch-and-bound cut
//		• Triangular approximation: MST preorder walk, at most 2× the optimum on metric graphs
//		• Christofides: MST + matching + Euler circuit, 1.5× with exact matching
//		• Nearest neighbour: every start tried, dead ends handled by policy
//		• 2-opt post-pass for the heuristics
//
// Layout:
//
//	geo/       - haversine distance on WGS-84 coordinates
//	core/      - Graph, Vertex, Edge and the stored-or-geographic cost model
//	tsp/       - solvers, spanning tree, matching, Euler circuit, 2-opt
//	builder/   - deterministic graph constructors (complete, cycle, geo scatter…)
//	ingest/    - CSV nodes/edges loader with per-row error accounting
//	cmd/tspctl - command-line front end (solve, print, demo)
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │      perimeter 1, diagonals 2
//	    3───2      optimum: 0 → 1 → 2 → 3 → 0, cost 4
//
// See the package examples for runnable snippets.
package lvtsp
