package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one decoded record. The set of variants is closed.
type Row interface {
	isRow()
}

// VertexRow positions a vertex.
type VertexRow struct {
	ID   int
	Lat  float64
	Long float64
}

// EdgeRow is a weighted edge between two vertex IDs.
type EdgeRow struct {
	From   int
	To     int
	Weight float64
}

// LabeledEdgeRow is an edge whose file also names both endpoints.
type LabeledEdgeRow struct {
	EdgeRow
	FromLabel string
	ToLabel   string
}

func (VertexRow) isRow()      {}
func (EdgeRow) isRow()        {}
func (LabeledEdgeRow) isRow() {}

// Kind declares what a source contains.
type Kind int

const (
	// KindNodes: id,lat,long records.
	KindNodes Kind = iota
	// KindEdges: from,to,weight records, optionally followed by two labels.
	KindEdges
)

func (k Kind) String() string {
	switch k {
	case KindNodes:
		return "nodes"
	case KindEdges:
		return "edges"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify decodes one record of a source of the given kind.
// Fields are trimmed of surrounding spaces before parsing.
//
// Errors: ErrUnknownKind, or a parse/shape error (the caller wraps it in a RowError).
func Classify(kind Kind, rec []string) (Row, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}

	switch kind {
	case KindNodes:
		if len(rec) != 3 {
			return nil, fmt.Errorf("nodes record has %d fields, want 3", len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("id: %w", err)
		}
		lat, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("lat: %w", err)
		}
		long, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("long: %w", err)
		}

		return VertexRow{ID: id, Lat: lat, Long: long}, nil

	case KindEdges:
		if len(rec) != 3 && len(rec) != 5 {
			return nil, fmt.Errorf("edges record has %d fields, want 3 or 5", len(rec))
		}
		from, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		to, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		w, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("weight: %w", err)
		}
		e := EdgeRow{From: from, To: to, Weight: w}
		if len(rec) == 3 {
			return e, nil
		}

		return LabeledEdgeRow{EdgeRow: e, FromLabel: rec[3], ToLabel: rec[4]}, nil

	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
	}
}
