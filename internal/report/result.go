package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvtsp/tsp"
)

// Entry is one solver outcome to print.
type Entry struct {
	Algorithm tsp.Algorithm
	Result    tsp.Result
	Err       error
}

// FormatTour renders a tour as "0 -> 3 -> 1 -> 0".
func FormatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " -> ")
}

// FormatCost renders a cost in metres, or "no tour" for tsp.NoTour.
func FormatCost(r tsp.Result) string {
	if !r.Found() {
		return "no tour"
	}

	return fmt.Sprintf("%.2f", r.Cost)
}

// WriteTable writes one aligned row per entry: algorithm, cost, status, tour.
func WriteTable(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCOST\tSTATUS\tTOUR")
	for _, e := range entries {
		status := "ok"
		switch {
		case e.Err != nil:
			status = e.Err.Error()
		case e.Result.Partial:
			status = "partial"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Algorithm, FormatCost(e.Result), status, FormatTour(e.Result.Tour))
	}

	return tw.Flush()
}
