package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/tsp"
)

// matchingGraph: four vertices on a line at 0, 1, 2, 10 (weights = gaps) and
// an edgeless tree over the same vertices.
func matchingGraph(t *testing.T) (*core.Graph, *core.Graph) {
	t.Helper()
	pos := []float64{0, 1, 2, 10}
	g := core.NewGraph()
	tree := core.NewGraph()
	for id := range pos {
		require.NoError(t, g.AddVertex(id, 0, 0, ""))
		require.NoError(t, tree.AddVertex(id, 0, 0, ""))
	}
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			require.NoError(t, g.AddEdge(i, j, pos[j]-pos[i]))
		}
	}

	return g, tree
}

func pairCost(g *core.Graph, pairs []tsp.Pair) float64 {
	var c float64
	for _, p := range pairs {
		c += g.Cost(p.U, p.V)
	}

	return c
}

// TestGreedyMatcher_Line: greedy takes 0-1 and 2-10 (1 + 8).
func TestGreedyMatcher_Line(t *testing.T) {
	g, tree := matchingGraph(t)

	pairs, err := tsp.GreedyMatcher{}.Match(g, tree, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []tsp.Pair{{U: 0, V: 1}, {U: 2, V: 3}}, pairs)
	assert.Equal(t, 9.0, pairCost(g, pairs))
}

// TestGreedyMatcher_SkipsTreeNeighbours prefers a partner not adjacent in the tree.
func TestGreedyMatcher_SkipsTreeNeighbours(t *testing.T) {
	g, tree := matchingGraph(t)
	require.NoError(t, tree.AddEdge(0, 1, 1))

	pairs, err := tsp.GreedyMatcher{}.Match(g, tree, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []tsp.Pair{{U: 0, V: 2}, {U: 1, V: 3}}, pairs)

	// With every partner adjacent, the cheapest is taken anyway.
	require.NoError(t, tree.AddEdge(2, 3, 8))
	pairs, err = tsp.GreedyMatcher{}.Match(g, tree, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []tsp.Pair{{U: 2, V: 3}}, pairs)
}

// TestExactMatcher_Optimal finds the minimum-weight perfect matching.
func TestExactMatcher_Optimal(t *testing.T) {
	g, tree := matchingGraph(t)

	pairs, err := tsp.ExactMatcher{}.Match(g, tree, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, 9.0, pairCost(g, pairs)) // 0-1 + 2-3 beats both 11-cost alternatives

	// Every vertex is matched exactly once.
	seen := map[int]int{}
	for _, p := range pairs {
		seen[p.U]++
		seen[p.V]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1}, seen)
}

// TestExactMatcher_BeatsGreedy on a set where greedy's first choice is wrong.
func TestExactMatcher_BeatsGreedy(t *testing.T) {
	// a-b:1 is the cheapest pair but forces c-d:10; a-c:2 + b-d:2 is optimal.
	g := core.NewGraph()
	tree := core.NewGraph()
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(id, 0, 0, ""))
		require.NoError(t, tree.AddVertex(id, 0, 0, ""))
	}
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 10},
		{From: 0, To: 2, Weight: 2}, {From: 1, To: 3, Weight: 2},
		{From: 0, To: 3, Weight: 10}, {From: 1, To: 2, Weight: 10},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}
	odd := []int{0, 1, 2, 3}

	greedy, err := tsp.GreedyMatcher{}.Match(g, tree, odd)
	require.NoError(t, err)
	exact, err := tsp.ExactMatcher{}.Match(g, tree, odd)
	require.NoError(t, err)

	assert.Equal(t, 11.0, pairCost(g, greedy))
	assert.Equal(t, 4.0, pairCost(g, exact))
}

// TestMatcher_Errors covers odd sets, limits and the name lookup.
func TestMatcher_Errors(t *testing.T) {
	g, tree := matchingGraph(t)

	_, err := tsp.GreedyMatcher{}.Match(g, tree, []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrOddMatchingSet)
	_, err = tsp.ExactMatcher{}.Match(g, tree, []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrOddMatchingSet)
	_, err = tsp.ExactMatcher{Limit: 2}.Match(g, tree, []int{0, 1, 2, 3})
	require.ErrorIs(t, err, tsp.ErrTooLarge)

	pairs, err := tsp.ExactMatcher{}.Match(g, tree, nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	m, err := tsp.MatcherFor("exact")
	require.NoError(t, err)
	assert.IsType(t, tsp.ExactMatcher{}, m)
	m, err = tsp.MatcherFor("")
	require.NoError(t, err)
	assert.IsType(t, tsp.GreedyMatcher{}, m)
	_, err = tsp.MatcherFor("blossom")
	require.Error(t, err)
}
