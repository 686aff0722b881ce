package ingest

import (
	"errors"
	"fmt"
)

// ErrMalformedRow marks a record that could not be decoded into a Row.
var ErrMalformedRow = errors.New("ingest: malformed row")

// ErrUnknownKind is returned by Classify for a Kind it does not know.
var ErrUnknownKind = errors.New("ingest: unknown source kind")

// RowError reports a malformed record and its 1-based line number.
// It unwraps to ErrMalformedRow and to the underlying cause.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}
