// File: view.go
// Role: Diagnostic enumeration of the graph.
// Determinism:
//   - Vertices ascending by ID; adjacency in insertion order.

package core

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTo writes one line per vertex, ordered by ID:
//
//	<id> (<lat>, <long>) <label>: <neighbor> <neighbor> ...
//
// It implements io.WriterTo. The output is for diagnostics only.
// Complexity: O(V log V + E).
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, id := range g.sortedIDsLocked() {
		n := g.vertices[id]
		fmt.Fprintf(bw, "%d (%g, %g) %s:", n.ID, n.Lat, n.Long, n.Label)
		for _, a := range n.adj {
			fmt.Fprintf(bw, " %d", a.To)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()

	return cw.n, err
}

// countingWriter tracks the bytes forwarded to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
