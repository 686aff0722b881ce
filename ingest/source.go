package ingest

import (
	"encoding/csv"
	"errors"
	"io"
)

// RowIterator yields decoded rows. Next returns io.EOF after the last row.
// A *RowError reports one malformed record; iteration may continue after it.
// Any other error is fatal for the source.
type RowIterator interface {
	Next() (Row, error)
}

// CSVSource reads one CSV stream of a declared Kind. The first record is a
// header and is skipped; blank lines are ignored.
type CSVSource struct {
	kind       Kind
	r          *csv.Reader
	headerRead bool
}

// NewCSVSource wraps r. Records may have a varying number of fields; Classify
// decides whether the count is acceptable.
func NewCSVSource(r io.Reader, kind Kind) *CSVSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &CSVSource{kind: kind, r: cr}
}

// Kind reports the declared content of the source.
func (s *CSVSource) Kind() Kind { return s.kind }

// Next implements RowIterator.
func (s *CSVSource) Next() (Row, error) {
	if !s.headerRead {
		s.headerRead = true
		if _, err := s.r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, err
			}
		}
	}

	rec, err := s.r.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &RowError{Line: pe.Line, Err: pe.Err}
		}

		return nil, err
	}
	line, _ := s.r.FieldPos(0)

	row, err := Classify(s.kind, rec)
	if err != nil {
		return nil, &RowError{Line: line, Err: err}
	}

	return row, nil
}

// SliceSource iterates over rows already in memory.
type SliceSource struct {
	rows []Row
	pos  int
}

// NewSliceSource returns an iterator over rows.
func NewSliceSource(rows ...Row) *SliceSource { return &SliceSource{rows: rows} }

// Next implements RowIterator.
func (s *SliceSource) Next() (Row, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	s.pos++

	return s.rows[s.pos-1], nil
}
