// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in rejection rules for vertices and edges (no mutation, sentinel error).
//   - Validate the incremental edge counter and adjacency insertion order.
//   - Document the NoEdge / zero-weight ambiguity of Distance.
package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/geo"
)

// newK4 builds the undirected 4-vertex complete graph used across packages:
// {0-1:1, 0-2:5, 0-3:9, 1-2:3, 1-3:7, 2-3:2}.
func newK4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(id, 0, 0, ""))
	}
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 5}, {From: 0, To: 3, Weight: 9},
		{From: 1, To: 2, Weight: 3}, {From: 1, To: 3, Weight: 7}, {From: 2, To: 3, Weight: 2},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	// Negative IDs are rejected without mutation.
	err := g.AddVertex(-1, 1, 1, "bad")
	require.ErrorIs(t, err, core.ErrNegativeVertexID)
	require.Equal(t, 0, g.VertexCount())
	require.False(t, g.HasVertex(-1))

	// Non-contiguous IDs are fine.
	require.NoError(t, g.AddVertex(7, 41.1, -8.6, "porto"))
	require.NoError(t, g.AddVertex(2, 38.7, -9.1, "lisbon"))
	require.Equal(t, []int{2, 7}, g.Vertices())

	v, ok := g.Vertex(7)
	require.True(t, ok)
	assert.Equal(t, core.Vertex{ID: 7, Lat: 41.1, Long: -8.6, Label: "porto"}, v)

	_, ok = g.Vertex(3)
	require.False(t, ok)
}

// Re-adding a vertex overwrites data fields and keeps the adjacency.
func TestGraph_AddVertex_OverwriteKeepsAdjacency(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, 0, 0, ""))
	require.NoError(t, g.AddVertex(1, 0, 0, ""))
	require.NoError(t, g.AddEdge(0, 1, 4))

	require.NoError(t, g.AddVertex(0, 10, 20, "depot"))

	v, _ := g.Vertex(0)
	require.Equal(t, "depot", v.Label)
	require.Equal(t, 10.0, v.Lat)
	require.True(t, g.HasEdge(0, 1))
	require.Equal(t, 4.0, g.Distance(0, 1))
	require.Equal(t, 2, g.EdgeCount())
}

func TestGraph_AddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, 0, 0, ""))
	require.NoError(t, g.AddVertex(1, 0, 0, ""))

	cases := []struct {
		name     string
		from, to int
		weight   float64
		want     error
	}{
		{"negative origin", -1, 1, 1, core.ErrNegativeVertexID},
		{"negative destination", 0, -3, 1, core.ErrNegativeVertexID},
		{"missing origin", 5, 1, 1, core.ErrVertexNotFound},
		{"missing destination", 0, 5, 1, core.ErrVertexNotFound},
		{"negative weight", 0, 1, -2, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddEdge(tc.from, tc.to, tc.weight), tc.want)
			require.Equal(t, 0, g.EdgeCount())
		})
	}

	require.NoError(t, g.AddEdge(0, 1, 3))
	// Same ordered pair, and the mirror of an undirected edge, are duplicates.
	require.ErrorIs(t, g.AddEdge(0, 1, 8), core.ErrEdgeExists)
	require.ErrorIs(t, g.AddEdge(1, 0, 8), core.ErrEdgeExists)
	require.Equal(t, 3.0, g.Distance(1, 0))
	require.Equal(t, 2, g.EdgeCount())
}

// EdgeCount equals accepted insertions counted per stored direction.
func TestGraph_EdgeCount_PerDirection(t *testing.T) {
	und := newK4(t)
	require.Equal(t, 12, und.EdgeCount())
	require.Len(t, und.Edges(), 12)

	dir := core.NewGraph(core.WithDirected(true))
	for id := 0; id < 3; id++ {
		require.NoError(t, dir.AddVertex(id, 0, 0, ""))
	}
	accepted := 0
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 0, Weight: 4},
		{From: 0, To: 1, Weight: 2}, // duplicate ordered pair
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 9, Weight: 1}, // missing endpoint
	} {
		if dir.AddEdge(e.From, e.To, e.Weight) == nil {
			accepted++
		}
	}
	require.Equal(t, 3, accepted)
	require.Equal(t, accepted, dir.EdgeCount())

	// Asymmetric weights survive in directed graphs.
	require.Equal(t, 1.0, dir.Distance(0, 1))
	require.Equal(t, 4.0, dir.Distance(1, 0))
	require.False(t, dir.HasEdge(2, 1))
}

// Distance returns NoEdge (0) for unconnected vertices, which is the same value
// as a stored zero-weight edge. HasEdge is the only way to tell them apart.
func TestGraph_Distance_NoEdgeAmbiguity(t *testing.T) {
	g := core.NewGraph()
	for id := 0; id < 3; id++ {
		require.NoError(t, g.AddVertex(id, 0, 0, ""))
	}
	require.NoError(t, g.AddEdge(0, 1, 0))

	require.Equal(t, core.NoEdge, g.Distance(0, 1))
	require.Equal(t, core.NoEdge, g.Distance(0, 2))
	require.Equal(t, core.NoEdge, g.Distance(42, 0))
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(0, 2))
}

func TestGraph_Cost_FallsBackToHaversine(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, 41.1579, -8.6291, "porto"))
	require.NoError(t, g.AddVertex(1, 38.7223, -9.1393, "lisbon"))
	require.NoError(t, g.AddVertex(2, 0, 0, ""))
	require.NoError(t, g.AddVertex(3, 0, 0, ""))

	want := geo.Haversine(41.1579, -8.6291, 38.7223, -9.1393)
	require.InDelta(t, want, g.Cost(0, 1), 1e-9)

	require.NoError(t, g.AddEdge(0, 1, 300000))
	require.Equal(t, 300000.0, g.Cost(0, 1))

	// Two unknown positions bridge at 0.
	require.Equal(t, 0.0, g.Cost(2, 3))
}

func TestGraph_Neighbors_InsertionOrder(t *testing.T) {
	g := newK4(t)

	adj, err := g.Neighbors(3)
	require.NoError(t, err)
	require.Equal(t, []core.Adjacent{{To: 0, Weight: 9}, {To: 1, Weight: 7}, {To: 2, Weight: 2}}, adj)

	// The copy is detached from the graph.
	adj[0].Weight = 100
	require.Equal(t, 9.0, g.Distance(3, 0))

	_, err = g.Neighbors(99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 3, deg)
}

func TestGraph_SetVertexInfo(t *testing.T) {
	g := newK4(t)
	require.NoError(t, g.SetLabel(1, "depot"))

	require.NoError(t, g.SetVertexInfo(1, 38.7223, -9.1393))
	v, ok := g.Vertex(1)
	require.True(t, ok)
	require.Equal(t, core.Vertex{ID: 1, Lat: 38.7223, Long: -9.1393, Label: "depot"}, v)
	require.True(t, g.HasEdge(1, 2))
	require.Equal(t, 3, g.Stats().UnknownPositions)

	require.ErrorIs(t, g.SetVertexInfo(42, 1, 1), core.ErrVertexNotFound)
	require.False(t, g.HasVertex(42))
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := newK4(t)

	require.NoError(t, g.RemoveEdge(0, 3))
	require.False(t, g.HasEdge(0, 3))
	require.False(t, g.HasEdge(3, 0))
	require.Equal(t, 10, g.EdgeCount())

	require.ErrorIs(t, g.RemoveEdge(0, 3), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveEdge(9, 3), core.ErrVertexNotFound)
}

func TestGraph_Clone_Independent(t *testing.T) {
	g := newK4(t)

	c := g.Clone()
	require.Equal(t, g.EdgeCount(), c.EdgeCount())
	require.NoError(t, c.RemoveEdge(1, 2))
	require.True(t, g.HasEdge(1, 2))
	require.Equal(t, 12, g.EdgeCount())

	e := g.CloneEmpty()
	require.Equal(t, 4, e.VertexCount())
	require.Equal(t, 0, e.EdgeCount())
	require.False(t, e.Directed())
}

func TestGraph_WriteTo(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(2, 1.5, -2, "b"))
	require.NoError(t, g.AddVertex(1, 0, 0, "a"))
	require.NoError(t, g.AddEdge(2, 1, 7))

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, "1 (0, 0) a: 2\n2 (1.5, -2) b: 1\n", buf.String())
	require.Equal(t, int64(buf.Len()), n)
}

func TestGraph_Stats(t *testing.T) {
	g := newK4(t)
	require.NoError(t, g.AddVertex(10, 41, -8, "lonely"))

	s := g.Stats()
	require.Equal(t, core.GraphStats{
		Directed:         false,
		VertexCount:      5,
		EdgeCount:        12,
		UnknownPositions: 4,
		Isolated:         1,
	}, s)
}

// Rejections are surfaced as debug log lines through WithLogger.
func TestGraph_LogsRejections(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := core.NewGraph(core.WithLogger(zap.New(obsCore)))
	require.NoError(t, g.AddVertex(0, 0, 0, ""))

	require.Error(t, g.AddVertex(-4, 0, 0, ""))
	require.Error(t, g.AddEdge(0, 1, 1))

	require.Equal(t, 1, logs.FilterMessage("vertex rejected").Len())
	entries := logs.FilterMessage("edge rejected").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(1), entries[0].ContextMap()["to"])
}
