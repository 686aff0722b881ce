package tsp

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// SpanningTree is a minimum spanning tree in parent-array form.
//
// Vertices are indexed densely: IDs[i] is the vertex ID at position i (IDs
// ascending), and Parent[i] is the position of its parent, or -1 for the root.
type SpanningTree struct {
	IDs    []int
	Parent []int
	Root   int // vertex ID of the root
	Weight float64

	pos map[int]int // vertex ID → dense position
}

// Edges returns the tree edges as (parent, child, weight) in dense order of the child.
func (t *SpanningTree) Edges(g *core.Graph) []core.Edge {
	out := make([]core.Edge, 0, len(t.IDs))
	for i, p := range t.Parent {
		if p < 0 {
			continue
		}
		u, v := t.IDs[p], t.IDs[i]
		out = append(out, core.Edge{From: u, To: v, Weight: g.Cost(u, v)})
	}

	return out
}

// ParentOf returns the parent ID of id and whether it has one.
func (t *SpanningTree) ParentOf(id int) (int, bool) {
	i, ok := t.pos[id]
	if !ok || t.Parent[i] < 0 {
		return 0, false
	}

	return t.IDs[t.Parent[i]], true
}

// MinimumSpanningTree grows a minimum spanning tree from root with Prim's
// algorithm over the stored edge weights of g.
//
// Steps:
//  1. key[v] = +Inf for all v, key[root] = 0; push root on a min-heap.
//  2. Pop the lightest entry; skip it if its vertex is already in the tree.
//  3. Add the vertex, then relax every adjacency entry to a vertex outside the
//     tree whose weight beats its key (parent and key updated on relaxation).
//
// Ties between equal keys pop in push order, so the first relaxation wins.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrStartNotFound, ErrDisconnected.
// Complexity: O(E log E) time, O(V + E) space.
func MinimumSpanningTree(g *core.Graph, root int) (*SpanningTree, error) {
	if err := validateGraph(g, root, true); err != nil {
		return nil, err
	}

	ids := g.Vertices()
	n := len(ids)
	pos := make(map[int]int, n)
	for i, id := range ids {
		pos[id] = i
	}

	key := make([]float64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := range key {
		key[i] = math.Inf(1)
		parent[i] = -1
	}

	r := pos[root]
	key[r] = 0
	pq := &primQueue{}
	heap.Push(pq, primItem{v: r, key: 0})

	added := 0
	for pq.Len() > 0 {
		it := heap.Pop(pq).(primItem)
		u := it.v
		if inTree[u] {
			continue
		}
		inTree[u] = true
		added++

		adj, err := g.Neighbors(ids[u])
		if err != nil {
			return nil, err
		}
		for _, a := range adj {
			v := pos[a.To]
			if !inTree[v] && a.Weight < key[v] {
				key[v] = a.Weight
				parent[v] = u
				heap.Push(pq, primItem{v: v, key: a.Weight, seq: pq.next()})
			}
		}
	}

	if added < n {
		return nil, fmt.Errorf("reached %d of %d vertices from %d: %w", added, n, root, ErrDisconnected)
	}

	var total float64
	for i := range key {
		if i != r {
			total += key[i]
		}
	}

	return &SpanningTree{IDs: ids, Parent: parent, Root: root, Weight: total, pos: pos}, nil
}

// PreorderWalk visits the tree from its root with an explicit stack: each
// popped vertex is emitted, then every not-yet-visited child (found by
// scanning the parent array in dense order) is pushed. The result is an open
// Hamiltonian path of vertex IDs starting at the root.
//
// Complexity: O(V²) because of the parent-array scans.
func PreorderWalk(t *SpanningTree) []int {
	n := len(t.IDs)
	visited := make([]bool, n)
	path := make([]int, 0, n)

	r := t.pos[t.Root]
	visited[r] = true
	stack := []int{r}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		path = append(path, t.IDs[u])

		for v := 0; v < n; v++ {
			if t.Parent[v] == u && !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	return path
}

// primItem is a heap entry: dense vertex, its key at push time and a push sequence.
type primItem struct {
	v   int
	key float64
	seq int
}

// primQueue implements heap.Interface as a min-heap on (key, seq).
type primQueue struct {
	items []primItem
	seq   int
}

func (pq *primQueue) next() int { pq.seq++; return pq.seq }

func (pq *primQueue) Len() int { return len(pq.items) }

func (pq *primQueue) Less(i, j int) bool {
	if pq.items[i].key != pq.items[j].key {
		return pq.items[i].key < pq.items[j].key
	}

	return pq.items[i].seq < pq.items[j].seq
}

func (pq *primQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *primQueue) Push(x interface{}) { pq.items = append(pq.items, x.(primItem)) }

func (pq *primQueue) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
