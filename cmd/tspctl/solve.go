package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/internal/report"
	"github.com/katalvlaran/lvtsp/tsp"
)

func newSolveCmd(a *app) *cobra.Command {
	var nodes, edges string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Load a graph and print the tour of one or all solvers",
		Example: `  tspctl solve --edges edges.csv --algorithm all
  tspctl solve --nodes nodes.csv --edges edges.csv --algorithm triangular`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if edges == "" {
				return errors.New("--edges is required")
			}
			g, err := a.loadGraph(nodes, edges)
			if err != nil {
				return err
			}

			return a.solve(cmd, g)
		},
	}

	f := cmd.Flags()
	f.StringVar(&nodes, "nodes", "", "nodes CSV (id,lat,long)")
	f.StringVar(&edges, "edges", "", "edges CSV (from,to,weight[,fromLabel,toLabel])")
	addSolverFlags(cmd, tsp.Christofides.String())

	return cmd
}

// addSolverFlags registers the solver flags shared by solve and demo.
func addSolverFlags(cmd *cobra.Command, algorithm string) {
	f := cmd.Flags()
	f.String("algorithm", algorithm, "backtrack, triangular, christofides, nearest or all")
	f.Int("start", 0, "start vertex id")
	f.String("matching", "greedy", "christofides matching: greedy or exact")
	f.String("deadend", tsp.DeadEndFail.String(), "nearest-neighbour dead-end policy: fail, geo or partial")
	f.Int("max-exact", tsp.DefaultMaxExactVertices, "vertex cap for backtracking (0 = none)")
	f.Bool("prune", false, "branch-and-bound cut in backtracking")
	f.Bool("local-search", false, "2-opt post-pass on heuristic tours")
}

// solve runs the configured solver, or every solver when none is selected,
// and prints a result table.
func (a *app) solve(cmd *cobra.Command, g *core.Graph) (err error) {
	defer report.Time(a.log, "solve")(&err)

	opts := a.cfg.Solver
	opts.Logger = a.log.Named("tsp")

	algos := tsp.Algorithms()
	if a.cfg.Algorithm != "" {
		algos = []tsp.Algorithm{opts.Algo}
	}

	entries := make([]report.Entry, 0, len(algos))
	var failed error
	for _, algo := range algos {
		o := opts
		o.Algo = algo
		res, serr := tsp.Solve(g, o)
		entries = append(entries, report.Entry{Algorithm: algo, Result: res, Err: serr})
		if serr != nil && failed == nil {
			failed = errors.Wrapf(serr, "%s", algo)
		}
	}
	if werr := report.WriteTable(cmd.OutOrStdout(), entries); werr != nil {
		return werr
	}

	// One requested solver failing is a command failure; in "all" mode the
	// table already shows each outcome.
	if len(algos) == 1 {
		return failed
	}

	return nil
}
