package tsp

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/core"
)

// Walk is one nearest-neighbour walk from a fixed start.
type Walk struct {
	// Path is closed (ends with the start) when Complete, open otherwise.
	Path []int
	// Cost sums the hops of Path; a partial walk has no closing hop.
	Cost float64
	// Complete reports whether every vertex was visited.
	Complete bool
}

// NearestNeighborFrom walks from start, always moving to the cheapest
// unvisited adjacent vertex by stored weight (ties keep adjacency order).
//
// When no unvisited neighbour remains before every vertex is visited, the
// policy decides: DeadEndGeoFallback hops to the geographically closest
// unvisited vertex (lowest ID on ties); any other policy stops and returns
// the partial walk. A complete walk is closed back to start with g.Cost.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrStartNotFound.
// Complexity: O(V·deg) without fallback hops, O(V²) with them.
func NearestNeighborFrom(g *core.Graph, start int, policy DeadEndPolicy) (Walk, error) {
	if err := validateGraph(g, start, true); err != nil {
		return Walk{}, err
	}

	ids := g.Vertices()
	n := len(ids)
	visited := map[int]bool{start: true}
	path := make([]int, 1, n+1)
	path[0] = start
	var cost float64

	for cur := start; len(path) < n; {
		adj, err := g.Neighbors(cur)
		if err != nil {
			return Walk{}, err
		}

		next, w := -1, math.Inf(1)
		for _, a := range adj {
			if !visited[a.To] && a.Weight < w {
				next, w = a.To, a.Weight
			}
		}

		if next < 0 {
			if policy != DeadEndGeoFallback {
				return Walk{Path: path, Cost: cost}, nil
			}
			next, w = closestUnvisited(g, ids, cur, visited)
		}

		visited[next] = true
		path = append(path, next)
		cost += w
		cur = next
	}

	cost += g.Cost(path[len(path)-1], start)

	return Walk{Path: append(path, start), Cost: cost, Complete: true}, nil
}

// closestUnvisited returns the unvisited vertex nearest to cur by g.Cost,
// scanning ids in ascending order.
func closestUnvisited(g *core.Graph, ids []int, cur int, visited map[int]bool) (int, float64) {
	best, bestCost := -1, math.Inf(1)
	for _, id := range ids {
		if visited[id] {
			continue
		}
		if c := g.Cost(cur, id); c < bestCost {
			best, bestCost = id, c
		}
	}

	return best, bestCost
}

// TSPNearestNeighbor runs NearestNeighborFrom from every vertex (ascending IDs)
// and keeps the cheapest complete tour. opts.Start is ignored.
//
// Dead ends follow opts.DeadEnd:
//   - DeadEndFail: dead-ended starts are skipped. If all of them dead-end the
//     longest (then cheapest) partial walk is returned with Partial set,
//     together with ErrDeadEnd.
//   - DeadEndGeoFallback: every walk completes through fallback hops.
//   - DeadEndPartial: complete and partial walks compete on cost alone; the
//     winner may be partial (Partial set, nil error).
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrDeadEnd.
// Complexity: O(V) walks.
func TSPNearestNeighbor(g *core.Graph, opts Options) (Result, error) {
	if err := validateGraph(g, 0, false); err != nil {
		return Result{Cost: NoTour}, err
	}
	log := opts.logger()

	var (
		best        Walk
		haveBest    bool
		partial     Walk
		havePartial bool
		deadEnds    int
	)
	for _, s := range g.Vertices() {
		w, err := NearestNeighborFrom(g, s, opts.DeadEnd)
		if err != nil {
			return Result{Cost: NoTour}, err
		}
		if !w.Complete {
			deadEnds++
			log.Debug("nearest-neighbour dead end",
				zap.Int("start", s), zap.Int("visited", len(w.Path)), zap.Stringer("policy", opts.DeadEnd))
			if !havePartial || len(w.Path) > len(partial.Path) ||
				(len(w.Path) == len(partial.Path) && w.Cost < partial.Cost) {
				partial, havePartial = w, true
			}
			if opts.DeadEnd != DeadEndPartial {
				continue
			}
		}
		if !haveBest || w.Cost < best.Cost {
			best, haveBest = w, true
		}
	}

	if !haveBest {
		return Result{Tour: partial.Path, Cost: partial.Cost, Partial: true},
			fmt.Errorf("all %d starts dead-ended: %w", deadEnds, ErrDeadEnd)
	}

	return Result{Tour: best.Path, Cost: best.Cost, Partial: !best.Complete}, nil
}
