package tsp

import "sort"

// Multigraph is a disposable undirected multigraph arena keyed by vertex ID.
// Parallel edges are kept; each AddEdge stores one entry at both endpoints.
type Multigraph struct {
	adj   map[int][]int
	edges int
}

// NewMultigraph returns an empty arena.
func NewMultigraph() *Multigraph {
	return &Multigraph{adj: make(map[int][]int)}
}

// AddEdge stores one more u–v edge.
func (m *Multigraph) AddEdge(u, v int) {
	m.adj[u] = append(m.adj[u], v)
	m.adj[v] = append(m.adj[v], u)
	m.edges++
}

// EdgeCount is the number of AddEdge calls.
func (m *Multigraph) EdgeCount() int { return m.edges }

// Degree returns the number of edge ends at v.
func (m *Multigraph) Degree(v int) int { return len(m.adj[v]) }

// OddVertices lists the vertices of odd degree in ascending order.
func (m *Multigraph) OddVertices() []int {
	var odd []int
	for v, a := range m.adj {
		if len(a)%2 == 1 {
			odd = append(odd, v)
		}
	}
	sort.Ints(odd)

	return odd
}

// EulerianCircuit walks every edge of m exactly once, starting and ending at
// start, with Hierholzer's algorithm on an explicit stack.
//
// m is not modified: the walk consumes a private copy of the adjacency.
// When every vertex has even degree and the edges are connected, the result
// has m.EdgeCount()+1 entries.
//
// Complexity: O(E·deg) because removing the reverse entry scans one list.
func EulerianCircuit(m *Multigraph, start int) []int {
	local := make(map[int][]int, len(m.adj))
	for u, a := range m.adj {
		local[u] = append([]int(nil), a...)
	}

	circuit := make([]int, 0, m.edges+1)
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		// take u→v and drop one reverse entry v→u
		v := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i, x := range local[v] {
			if x == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	// popped order is the reverse walk
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}
