package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/builder"
	"github.com/katalvlaran/lvtsp/core"
)

// newK4 builds the reference undirected K4:
//
//	0-1:1, 0-2:5, 0-3:9, 1-2:3, 1-3:7, 2-3:2
//
// Every Hamiltonian cycle through it costs 15 or more; [0,1,2,3,0] costs 15.
func newK4(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(id, 0, 0, ""))
	}
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 5}, {From: 0, To: 3, Weight: 9},
		{From: 1, To: 2, Weight: 3}, {From: 1, To: 3, Weight: 7}, {From: 2, To: 3, Weight: 2},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// newSquare builds a unit square 0-1-2-3 with diagonals of weight 2.
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(id, 0, 0, ""))
	}
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1},
		{From: 3, To: 0, Weight: 1}, {From: 0, To: 2, Weight: 2}, {From: 1, To: 3, Weight: 2},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// geoGraph builds a seeded complete haversine graph of n scattered points.
func geoGraph(t *testing.T, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.GeoScatter(n, builder.DefaultBox))
	require.NoError(t, err)

	return g
}

// star builds Star(n) with unit weights and unknown coordinates.
func star(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Star(n))
	require.NoError(t, err)

	return g
}
