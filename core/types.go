// Package core defines the delivery Graph, its Vertex and adjacency records,
// and the sentinel errors reported by structural mutations.
//
// A single sync.RWMutex guards the vertex catalog, the adjacency lists and the
// edge counter, so a built graph can be read by several solver runs at once.
//
// Errors:
//
//	ErrNegativeVertexID - vertex ID below zero.
//	ErrVertexNotFound   - edge endpoint or query target is not in the graph.
//	ErrEdgeExists       - the ordered (from, to) edge is already present.
//	ErrEdgeNotFound     - RemoveEdge on a missing ordered edge.
//	ErrBadWeight        - negative or NaN edge weight.
package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates a vertex ID below zero.
	ErrNegativeVertexID = errors.New("core: negative vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeExists indicates a second insertion of the same ordered edge.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// NoEdge is the value Distance returns when no stored edge connects two vertices.
// It is indistinguishable from a legitimate zero-weight edge; use HasEdge to tell them apart.
const NoEdge float64 = 0

// Vertex is a delivery/visit location.
//
// Lat and Long are in degrees; both zero means the position is unknown.
type Vertex struct {
	// ID is the externally assigned, non-negative identifier.
	ID int

	// Lat is the latitude in degrees.
	Lat float64

	// Long is the longitude in degrees.
	Long float64

	// Label is an optional human-readable name.
	Label string
}

// Point returns the vertex position as a geo.Point.
func (v Vertex) Point() geo.Point { return geo.Point{Lat: v.Lat, Long: v.Long} }

// Adjacent is one adjacency entry: the neighbor ID and the stored weight.
type Adjacent struct {
	To     int
	Weight float64
}

// Edge is an ordered (From, To) pair with its weight, as enumerated by Edges().
type Edge struct {
	From   int
	To     int
	Weight float64
}

// vertexNode is the stored record: vertex data plus its own adjacency in insertion order.
type vertexNode struct {
	Vertex
	adj []Adjacent
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected selects directed (true) or undirected (false, default) edge insertion.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLogger routes rejected mutations to logger at debug level.
func WithLogger(logger *zap.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.log = logger
		}
	}
}

// Graph is the in-memory delivery graph.
//
// vertices maps vertex ID to its record; every adjacency entry references a
// key of vertices. numEdges counts stored adjacency entries, i.e. one per
// direction actually inserted.
type Graph struct {
	mu sync.RWMutex

	directed bool
	log      *zap.Logger

	vertices map[int]*vertexNode
	numEdges int
}

// NewGraph creates an empty Graph. By default the graph is undirected and logs nothing.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:      zap.NewNop(),
		vertices: make(map[int]*vertexNode),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
