package tsp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/core"
)

// frame is one level of the backtracking search: the vertex on the path, the
// next adjacency position to try from it, and the path cost up to it.
type frame struct {
	v      int
	adj    []core.Adjacent
	cursor int
	cost   float64
}

// TSPBacktrack finds the cheapest Hamiltonian cycle that follows stored edges,
// starting and ending at opts.Start.
//
// The search extends the path along the adjacency of its last vertex, in
// insertion order, to vertices not yet on the path. A full path closes only
// through a stored edge back to the start. The recursion is unrolled onto an
// explicit frame stack, so deep instances do not grow the goroutine stack.
//
// With opts.Prune, a branch is cut once its cost reaches the best cycle so
// far; the optimum is unchanged.
//
// A single-vertex graph yields the trivial tour [start, start] of cost 0.
// When no cycle exists the Result has Cost == NoTour and the error is
// ErrNoHamiltonianCycle.
//
// Graphs where some vertex is unreachable from the start are rejected before
// the search.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrStartNotFound, ErrTooLarge,
// ErrNoHamiltonianCycle.
// Complexity: O(n!) time worst case, O(n) space besides adjacency copies.
func TSPBacktrack(g *core.Graph, opts Options) (Result, error) {
	if err := validateGraph(g, opts.Start, true); err != nil {
		return Result{Cost: NoTour}, err
	}
	n := g.VertexCount()
	if opts.MaxExactVertices > 0 && n > opts.MaxExactVertices {
		return Result{Cost: NoTour}, fmt.Errorf("backtrack on %d vertices, limit %d: %w",
			n, opts.MaxExactVertices, ErrTooLarge)
	}

	start := opts.Start
	if n == 1 {
		return Result{Tour: []int{start, start}}, nil
	}
	// A cycle through every vertex needs every vertex reachable from start.
	if order, _, err := Reachable(g, start); err != nil {
		return Result{Cost: NoTour}, err
	} else if len(order) < n {
		return Result{Cost: NoTour}, fmt.Errorf("%d of %d vertices reachable from %d: %w",
			len(order), n, start, ErrNoHamiltonianCycle)
	}

	adjOf := func(v int) []core.Adjacent {
		adj, _ := g.Neighbors(v)
		return adj
	}

	best := NoTour
	var bestTour []int
	visited := map[int]bool{start: true}
	path := []int{start}
	stack := []frame{{v: start, adj: adjOf(start)}}
	explored := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if len(path) == n {
			// base case: close through a stored edge, then undo
			if w, ok := closingWeight(top.adj, start); ok {
				if c := top.cost + w; c < best {
					best = c
					bestTour = closeTour(path, start)
				}
			}
			popFrame(&stack, &path, visited)
			continue
		}

		if top.cursor >= len(top.adj) {
			popFrame(&stack, &path, visited)
			continue
		}
		a := top.adj[top.cursor]
		top.cursor++
		if visited[a.To] {
			continue
		}
		c := top.cost + a.Weight
		if opts.Prune && c >= best {
			continue
		}

		explored++
		visited[a.To] = true
		path = append(path, a.To)
		stack = append(stack, frame{v: a.To, adj: adjOf(a.To), cost: c})
	}

	opts.logger().Debug("backtrack finished",
		zap.Int("vertices", n), zap.Int("explored", explored), zap.Bool("prune", opts.Prune))

	if bestTour == nil {
		return Result{Cost: NoTour}, ErrNoHamiltonianCycle
	}

	return Result{Tour: bestTour, Cost: best}, nil
}

// popFrame undoes the last extension. The start frame is popped without
// touching path so the loop terminates.
func popFrame(stack *[]frame, path *[]int, visited map[int]bool) {
	s := *stack
	top := s[len(s)-1]
	*stack = s[:len(s)-1]
	if len(*stack) == 0 {
		return
	}
	visited[top.v] = false
	*path = (*path)[:len(*path)-1]
}

// closingWeight scans adj for an edge to start.
func closingWeight(adj []core.Adjacent, start int) (float64, bool) {
	for _, a := range adj {
		if a.To == start {
			return a.Weight, true
		}
	}

	return 0, false
}
