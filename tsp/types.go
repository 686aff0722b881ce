package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("tsp: nil graph")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("tsp: graph has no vertices")

	// ErrStartNotFound is returned when Options.Start is not a vertex of the graph.
	ErrStartNotFound = errors.New("tsp: start vertex not found")

	// ErrNoHamiltonianCycle is returned by Backtrack when no cycle closes through
	// existing edges. The accompanying Result carries Cost == NoTour.
	ErrNoHamiltonianCycle = errors.New("tsp: no Hamiltonian cycle through existing edges")

	// ErrDisconnected is returned when the spanning tree cannot reach every vertex.
	ErrDisconnected = errors.New("tsp: graph is disconnected")

	// ErrDirectedGraph is returned by tree-based heuristics on directed graphs.
	ErrDirectedGraph = errors.New("tsp: algorithm requires an undirected graph")

	// ErrDeadEnd is returned by NearestNeighbor when every start dead-ends before
	// covering all vertices (DeadEndFail policy).
	ErrDeadEnd = errors.New("tsp: nearest-neighbor walk dead-ended")

	// ErrTooLarge is returned when an exponential step exceeds its configured limit.
	ErrTooLarge = errors.New("tsp: instance too large for exact search")

	// ErrOddMatchingSet is returned when a perfect matching is requested on an odd-sized set.
	ErrOddMatchingSet = errors.New("tsp: odd number of vertices to match")

	// ErrInvalidTour is returned by ValidateTour.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// NoTour is the "infinite" cost sentinel: no admissible cycle was found.
var NoTour = math.Inf(1)

// Result is the outcome of a solver.
type Result struct {
	// Tour is the visiting order. For a complete tour it is closed:
	// len(Tour) == |V|+1 and Tour[0] == Tour[|V|] == start.
	Tour []int

	// Cost is the total distance of Tour, closing hop included.
	Cost float64

	// Partial is set by NearestNeighbor when the returned walk dead-ended;
	// Tour is then open and shorter than |V|.
	Partial bool
}

// Found reports whether r carries an admissible tour (Cost is not NoTour).
func (r Result) Found() bool { return !math.IsInf(r.Cost, 1) }

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// Christofides is MST + odd-vertex matching + Eulerian shortcutting.
	Christofides Algorithm = iota
	// Backtrack is exhaustive depth-first search over Hamiltonian cycles.
	Backtrack
	// TriangularApprox is the MST preorder 2-approximation.
	TriangularApprox
	// NearestNeighbor is the greedy walk evaluated from every start.
	NearestNeighbor
)

var algorithmNames = map[Algorithm]string{
	Christofides:     "christofides",
	Backtrack:        "backtrack",
	TriangularApprox: "triangular",
	NearestNeighbor:  "nearest",
}

// Algorithms lists every algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Backtrack, TriangularApprox, Christofides, NearestNeighbor}
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// DeadEndPolicy decides what NearestNeighbor does when a walk has no
// unvisited neighbor left before covering every vertex.
type DeadEndPolicy int

const (
	// DeadEndFail skips dead-ended starts; if all dead-end, ErrDeadEnd is returned.
	DeadEndFail DeadEndPolicy = iota
	// DeadEndGeoFallback hops to the geographically closest unvisited vertex.
	DeadEndGeoFallback
	// DeadEndPartial returns the best walk even if it is partial (Result.Partial).
	DeadEndPartial
)

var deadEndNames = map[DeadEndPolicy]string{
	DeadEndFail:        "fail",
	DeadEndGeoFallback: "geo",
	DeadEndPartial:     "partial",
}

func (p DeadEndPolicy) String() string {
	if s, ok := deadEndNames[p]; ok {
		return s
	}

	return fmt.Sprintf("DeadEndPolicy(%d)", int(p))
}

// ParseDeadEndPolicy maps "fail", "geo" or "partial" to a DeadEndPolicy.
func ParseDeadEndPolicy(s string) (DeadEndPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range deadEndNames {
		if name == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown dead-end policy %q", s)
}

// Defaults for Options.
const (
	DefaultMaxExactVertices = 16
	DefaultMaxExactMatching = 20
)

// Options configures Solve and the individual solvers.
type Options struct {
	// Algo selects the solver used by Solve.
	Algo Algorithm

	// Start is the vertex ID every tour starts and ends at. NearestNeighbor
	// ignores it: it tries every start and reports the winner's.
	Start int

	// Matcher pairs odd-degree vertices in Christofides; nil means GreedyMatcher.
	Matcher Matcher

	// DeadEnd is the NearestNeighbor dead-end policy.
	DeadEnd DeadEndPolicy

	// Prune enables the branch-and-bound cut in Backtrack (partial cost ≥ best).
	// Results are identical with and without it.
	Prune bool

	// MaxExactVertices caps Backtrack; 0 disables the cap.
	MaxExactVertices int

	// LocalSearch runs a 2-opt post-pass on heuristic tours of undirected graphs.
	LocalSearch bool

	// Logger receives solver diagnostics; nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns Christofides from vertex 0 with greedy matching,
// loud dead-ends, no pruning and the default exact-search cap.
func DefaultOptions() Options {
	return Options{
		Algo:             Christofides,
		Start:            0,
		Matcher:          GreedyMatcher{},
		DeadEnd:          DeadEndFail,
		MaxExactVertices: DefaultMaxExactVertices,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

func (o Options) matcher() Matcher {
	if o.Matcher == nil {
		return GreedyMatcher{}
	}

	return o.Matcher
}
