// Package tsp - unified dispatcher for TSP solvers.
//
// Solve routes to the solver named by Options.Algo and, for the heuristics,
// optionally runs the 2-opt post-pass (Options.LocalSearch). Backtrack tours
// are optimal and returned as-is.
//
// Every run is logged at debug level on Options.Logger with the algorithm,
// vertex count, cost and duration.
package tsp

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/core"
)

// Solve validates g and dispatches to the selected solver.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrUnsupportedAlgorithm and those of
// the individual solvers.
func Solve(g *core.Graph, opts Options) (Result, error) {
	if err := validateGraph(g, opts.Start, false); err != nil {
		return Result{Cost: NoTour}, err
	}
	log := opts.logger().With(zap.Stringer("algorithm", opts.Algo))
	begin := time.Now()

	var (
		res Result
		err error
	)
	switch opts.Algo {
	case Backtrack:
		res, err = TSPBacktrack(g, opts)
	case TriangularApprox:
		res, err = TSPApprox(g, opts)
	case Christofides:
		res, err = TSPChristofides(g, opts)
	case NearestNeighbor:
		res, err = TSPNearestNeighbor(g, opts)
	default:
		return Result{Cost: NoTour}, ErrUnsupportedAlgorithm
	}

	if err == nil && opts.LocalSearch && opts.Algo != Backtrack && !res.Partial && !g.Directed() {
		tour, cost, lerr := TwoOpt(g, res.Tour, 0)
		if lerr != nil {
			return Result{Cost: NoTour}, lerr
		}
		log.Debug("2-opt applied", zap.Float64("before", res.Cost), zap.Float64("after", cost))
		res.Tour, res.Cost = tour, cost
	}

	log.Debug("solve finished",
		zap.Int("vertices", g.VertexCount()),
		zap.Float64("cost", res.Cost),
		zap.Duration("dur", time.Since(begin)),
		zap.Error(err))

	return res, err
}

// SolveAll runs every algorithm of Algorithms() on g with the shared opts and
// returns the results keyed by algorithm. A solver error does not stop the
// others; errors are returned in the second map.
func SolveAll(g *core.Graph, opts Options) (map[Algorithm]Result, map[Algorithm]error) {
	results := make(map[Algorithm]Result, 4)
	errs := make(map[Algorithm]error)
	for _, a := range Algorithms() {
		o := opts
		o.Algo = a
		res, err := Solve(g, o)
		if err != nil {
			errs[a] = err
		}
		results[a] = res
	}

	return results, errs
}
