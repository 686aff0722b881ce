package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/tsp"
)

// TestTriangularApprox_K4 follows the MST path 0-1-2-3 and closes 3→0.
func TestTriangularApprox_K4(t *testing.T) {
	res, err := tsp.TSPApprox(newK4(t), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	assert.Equal(t, 15.0, res.Cost)
	assert.False(t, res.Partial)
}

// TestTriangularApprox_ShortcutsThroughHaversine: on a star the walk jumps
// between leaves without an edge; those hops cost the haversine distance,
// 0 for unknown positions.
func TestTriangularApprox_ShortcutsThroughHaversine(t *testing.T) {
	g := star(t, 4)

	res, err := tsp.TSPApprox(g, tsp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(g, res.Tour, 0))
	assert.Equal(t, 2.0, res.Cost) // 0→3 and 1→0 stored; 3→2, 2→1 unknown positions
}

// TestTriangularApprox_Rejections covers directed input and start errors.
func TestTriangularApprox_Rejections(t *testing.T) {
	_, err := tsp.TSPApprox(newK4(t, core.WithDirected(true)), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrDirectedGraph)

	opts := tsp.DefaultOptions()
	opts.Start = 9
	_, err = tsp.TSPApprox(newK4(t), opts)
	require.ErrorIs(t, err, tsp.ErrStartNotFound)
}

// TestTriangularApprox_SingleVertex returns the trivial closed tour.
func TestTriangularApprox_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, 41.1, -8.6, "depot"))

	res, err := tsp.TSPApprox(g, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Tour)
	assert.Zero(t, res.Cost)
}
