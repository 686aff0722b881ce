// Package core provides the weighted location graph the route solvers run on.
//
// The Graph G = (V,E) stores:
//
//   - Vertices keyed by a non-negative integer ID (externally assigned, not
//     necessarily contiguous) with optional latitude/longitude and label.
//   - Per-vertex adjacency lists of (neighbor, weight) kept in insertion order.
//   - An edge counter maintained incrementally, one unit per stored direction.
//
// Orientation (GraphOption):
//
//	– WithDirected(false) (default)
//	    AddEdge(u,v,w) stores u→v and mirrors v→u with the same weight.
//	– WithDirected(true)
//	    AddEdge(u,v,w) stores u→v only; asymmetric weights are allowed.
//
// Structural rules:
//
//   - AddVertex rejects negative IDs. Re-adding an existing ID overwrites the
//     data fields and keeps the accumulated adjacency.
//   - AddEdge rejects endpoints that are negative or absent, and rejects a
//     second insertion of the same ordered pair. Rejections do not mutate the
//     graph; they are returned as sentinel errors and logged at debug level
//     through the logger given by WithLogger.
//
// Distances:
//
//	Distance(u,v)  stored weight, or NoEdge (0) when u has no edge to v.
//	Cost(u,v)      stored weight, or the haversine distance between the two
//	               vertex positions when no edge is stored. Solvers use Cost
//	               whenever they bridge two vertices (shortcutting, closing hops).
//
// Core Methods:
//
//	AddVertex(id, lat, long, label) error  // O(1)
//	HasVertex(id) bool                     // O(1)
//	AddEdge(from, to, weight) error        // O(deg(from))
//	Distance(from, to) float64             // O(deg(from))
//	Degree(id) (int, error)                // O(1)
//	Vertices() []int                       // O(V·log V), ascending
//	Neighbors(id) ([]Adjacent, error)      // O(deg), insertion order
//	WriteTo(w) (int64, error)              // O(V·log V + E), diagnostics
//	Clone() / CloneEmpty() *Graph          // private copies for solvers
package core
