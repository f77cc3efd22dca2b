package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// runner holds the mutable state of a single search run.
type runner struct {
	g    *grid.Grid
	opts Options
	end  grid.Coord
	res  *Result
}

// newRunner validates g, resets its search state and prepares the result.
func newRunner(alg Algorithm, g *grid.Grid, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	g.ResetSearchState(false)

	return &runner{
		g:    g,
		opts: buildOptions(opts),
		end:  g.End(),
		res: &Result{
			Algorithm: alg,
			Visited:   make([]grid.Coord, 0, g.Len()),
		},
	}, nil
}

// record appends c to the visit order and fires OnVisit.
func (r *runner) record(c grid.Coord) {
	r.res.Visited = append(r.res.Visited, c)
	if r.opts.OnVisit != nil {
		r.opts.OnVisit(c)
	}
}

// open reports whether c may still be entered: not visited, not an obstacle.
func (r *runner) open(n *grid.Node) bool {
	return !n.IsVisited && !n.IsObstacle
}

// succeed finalizes a run that reached the end.
func (r *runner) succeed() (*Result, error) {
	r.res.Found = true
	r.res.Path = ReconstructPath(r.g)
	if r.opts.MarkPath {
		for _, c := range r.res.Path {
			r.g.At(c).IsPath = true
		}
	}
	return r.res, nil
}

// fail finalizes a run that exhausted its frontier. The partial result is
// returned alongside the error.
func (r *runner) fail() (*Result, error) {
	r.res.Found = false
	r.res.Path = nil
	return r.res, fmt.Errorf("%w: %s expanded %d cells", ErrPathNotFound, r.res.Algorithm, len(r.res.Visited))
}
