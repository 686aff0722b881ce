package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/tsp"
)

// TestChristofides_K4: the MST is the path 0-1-2-3, its odd ends 0 and 3 are
// matched, and the Eulerian circuit shortcuts to a tour of cost 15.
func TestChristofides_K4(t *testing.T) {
	g := newK4(t)

	res, err := tsp.TSPChristofides(g, tsp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(g, res.Tour, 0))
	assert.Equal(t, []int{0, 3, 2, 1, 0}, res.Tour)
	assert.Equal(t, 15.0, res.Cost)
}

// TestChristofides_ExactMatcher gives the same tour on K4 (two odd vertices).
func TestChristofides_ExactMatcher(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Matcher = tsp.ExactMatcher{}

	res, err := tsp.TSPChristofides(newK4(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.Cost)
}

// TestChristofides_DoesNotMutate: repeated runs agree and the input keeps its edges.
func TestChristofides_DoesNotMutate(t *testing.T) {
	g := geoGraph(t, 9, 3)
	before := g.Edges()

	first, err := tsp.TSPChristofides(g, tsp.DefaultOptions())
	require.NoError(t, err)
	second, err := tsp.TSPChristofides(g, tsp.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, g.Edges())
}

// TestChristofides_Rejections covers directed and disconnected inputs.
func TestChristofides_Rejections(t *testing.T) {
	_, err := tsp.TSPChristofides(newK4(t, core.WithDirected(true)), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDirectedGraph)

	g := newK4(t)
	require.NoError(t, g.AddVertex(7, 0, 0, ""))
	_, err = tsp.TSPChristofides(g, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDisconnected)
}

// TestChristofides_MatcherLimit surfaces ErrTooLarge from the matcher.
func TestChristofides_MatcherLimit(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Matcher = tsp.ExactMatcher{Limit: 1}

	_, err := tsp.TSPChristofides(newK4(t), opts)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

// TestTreeGraph materialises the MST with original weights.
func TestTreeGraph(t *testing.T) {
	g := newK4(t)
	mst, err := tsp.MinimumSpanningTree(g, 0)
	require.NoError(t, err)

	tree, err := tsp.TreeGraph(g, mst)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.VertexCount())
	assert.Equal(t, 6, tree.EdgeCount())
	assert.Equal(t, 3.0, tree.Distance(2, 1))
	assert.False(t, tree.HasEdge(0, 3))
}
