package ingest

import (
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/core"
)

// Stats counts what a load did.
type Stats struct {
	Vertices  int // accepted vertex rows, plus vertices created for edge endpoints
	Edges     int // accepted edge rows
	Rejected  int // rows the graph refused (negative IDs, duplicates, bad weights, ...)
	Malformed int // records that did not decode
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Vertices += o.Vertices
	s.Edges += o.Edges
	s.Rejected += o.Rejected
	s.Malformed += o.Malformed
}

// Option configures a Loader.
type Option func(*Loader)

// WithAutoVertices makes edge rows create missing endpoints with unknown
// coordinates instead of being rejected.
func WithAutoVertices() Option {
	return func(l *Loader) { l.autoVertices = true }
}

// WithLogger sets the loader's logger; rejections and malformed rows are
// logged at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.log = logger
		}
	}
}

// Loader applies rows to a graph.
type Loader struct {
	autoVertices bool
	log          *zap.Logger
}

// NewLoader returns a Loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load drains it into g. Rows the graph rejects and malformed records are
// counted and logged, never fatal. The returned error is non-nil only when
// the iterator itself fails.
func (l *Loader) Load(g *core.Graph, it RowIterator) (Stats, error) {
	var st Stats
	for {
		row, err := it.Next()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			var re *RowError
			if errors.As(err, &re) {
				st.Malformed++
				l.log.Warn("malformed row skipped", zap.Int("line", re.Line), zap.Error(re.Err))
				continue
			}

			return st, err
		}

		l.apply(g, row, &st)
	}
}

func (l *Loader) apply(g *core.Graph, row Row, st *Stats) {
	switch r := row.(type) {
	case VertexRow:
		// A vertex already created by an edge row keeps its label.
		place := func() error { return g.AddVertex(r.ID, r.Lat, r.Long, "") }
		if g.HasVertex(r.ID) {
			place = func() error { return g.SetVertexInfo(r.ID, r.Lat, r.Long) }
		}
		if err := place(); err != nil {
			st.Rejected++
			l.log.Warn("vertex rejected", zap.Int("id", r.ID), zap.Error(err))
			return
		}
		st.Vertices++

	case LabeledEdgeRow:
		l.ensure(g, r.From, r.FromLabel, st)
		l.ensure(g, r.To, r.ToLabel, st)
		l.applyEdge(g, r.EdgeRow, st)

	case EdgeRow:
		l.ensure(g, r.From, "", st)
		l.ensure(g, r.To, "", st)
		l.applyEdge(g, r, st)
	}
}

// ensure creates a missing endpoint when auto-vertices are on and records
// a non-empty label either way.
func (l *Loader) ensure(g *core.Graph, id int, label string, st *Stats) {
	if !g.HasVertex(id) {
		if !l.autoVertices {
			return
		}
		if err := g.AddVertex(id, 0, 0, label); err != nil {
			return // AddEdge reports the bad endpoint
		}
		st.Vertices++
		return
	}
	if label != "" {
		_ = g.SetLabel(id, label)
	}
}

func (l *Loader) applyEdge(g *core.Graph, e EdgeRow, st *Stats) {
	if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
		st.Rejected++
		l.log.Warn("edge rejected",
			zap.Int("from", e.From), zap.Int("to", e.To), zap.Float64("weight", e.Weight), zap.Error(err))
		return
	}
	st.Edges++
}

// LoadPath opens path and loads it as a CSV source of the given kind.
func (l *Loader) LoadPath(g *core.Graph, path string, kind Kind) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, pkgerrors.Wrapf(err, "open %s file", kind)
	}
	defer f.Close()

	st, err := l.Load(g, NewCSVSource(f, kind))
	if err != nil {
		return st, pkgerrors.Wrapf(err, "read %s", path)
	}
	l.log.Info("file loaded",
		zap.String("path", path), zap.Stringer("kind", kind),
		zap.Int("vertices", st.Vertices), zap.Int("edges", st.Edges),
		zap.Int("rejected", st.Rejected), zap.Int("malformed", st.Malformed))

	return st, nil
}

// LoadFiles loads a nodes file then an edges file into g. Edge endpoints
// must exist in the nodes file unless the loader has WithAutoVertices.
func LoadFiles(g *core.Graph, nodesPath, edgesPath string, opts ...Option) (Stats, error) {
	l := NewLoader(opts...)

	st, err := l.LoadPath(g, nodesPath, KindNodes)
	if err != nil {
		return st, err
	}
	est, err := l.LoadPath(g, edgesPath, KindEdges)
	st.Add(est)

	return st, err
}

// LoadFile loads a single edges file, creating endpoints on the fly.
func LoadFile(g *core.Graph, edgesPath string, opts ...Option) (Stats, error) {
	l := NewLoader(append([]Option{WithAutoVertices()}, opts...)...)

	return l.LoadPath(g, edgesPath, KindEdges)
}
