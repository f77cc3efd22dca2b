package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search routines.
var (
	// ErrPathNotFound is returned, wrapped, when the end is unreachable.
	// It is not fatal: the accompanying Result holds the partial visit order.
	ErrPathNotFound = errors.New("search: no path exists between start and end")

	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an
	// unrecognized algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects one of the four search routines.
type Algorithm int

const (
	// AlgoDijkstra is uniform-cost search over the whole node set.
	AlgoDijkstra Algorithm = iota
	// AlgoAStar is best-first search guided by the Manhattan heuristic.
	AlgoAStar
	// AlgoBFS is breadth-first search.
	AlgoBFS
	// AlgoDFS is depth-first search.
	AlgoDFS
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoDijkstra, AlgoAStar, AlgoBFS, AlgoDFS}
}

// String returns the lower-case name used by the CLI and in errors.
func (a Algorithm) String() string {
	switch a {
	case AlgoDijkstra:
		return "dijkstra"
	case AlgoAStar:
		return "astar"
	case AlgoBFS:
		return "bfs"
	case AlgoDFS:
		return "dfs"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive
// and accepts "a*" and "a-star" as aliases of astar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return AlgoDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgoAStar, nil
	case "bfs":
		return AlgoBFS, nil
	case "dfs":
		return AlgoDFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Result is the outcome of one search run.
//
//   - Visited: cells in the order the algorithm expanded them.
//   - Path:    cells from (excluding) the start to the end; empty on failure
//     and when start equals end.
//   - Found:   whether the end was reached.
type Result struct {
	Algorithm Algorithm
	Visited   []grid.Coord
	Path      []grid.Coord
	Found     bool
}

// PathLength returns the number of edges on the path.
func (r *Result) PathLength() int {
	return len(r.Path)
}

// Option configures a search run.
type Option func(*Options)

// Options holds the tunables shared by every routine.
type Options struct {
	// StrictRelaxation makes Dijkstra update a neighbor only when the new
	// distance is strictly shorter. Ignored by the other routines.
	StrictRelaxation bool

	// MarkPath sets IsPath on the path nodes after a successful run.
	MarkPath bool

	// OnVisit, if non-nil, is called for every expanded cell, in order.
	OnVisit func(c grid.Coord)
}

// DefaultOptions returns the options matching the visualizer's behavior:
// unconditional Dijkstra relaxation, path marking on, no hook.
func DefaultOptions() Options {
	return Options{
		StrictRelaxation: false,
		MarkPath:         true,
		OnVisit:          nil,
	}
}

// WithStrictRelaxation enables the guarded Dijkstra relaxation.
func WithStrictRelaxation() Option {
	return func(o *Options) {
		o.StrictRelaxation = true
	}
}

// WithMarkPath toggles IsPath marking after a successful run.
func WithMarkPath(on bool) Option {
	return func(o *Options) {
		o.MarkPath = on
	}
}

// WithOnVisit registers a callback invoked on every expansion.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
