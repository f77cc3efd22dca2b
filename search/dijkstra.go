package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra runs uniform-cost search from g.Start() to g.End().
//
// Behavior:
//  1. Every cell starts in the unvisited set; the start has Distance 0.
//  2. Each step removes the unvisited cell of minimum Distance (ties by
//     row-major index). If that minimum is infinite, the rest of the grid is
//     unreachable and the run fails.
//  3. Obstacles are removed from the set without being expanded.
//  4. The removed cell is marked visited and recorded; if it is the end,
//     the run succeeds.
//  5. Every unvisited, non-obstacle neighbor gets Distance = current+1 and
//     Previous = current. Without WithStrictRelaxation this overwrite is
//     unconditional; with it, only strictly shorter distances are written.
//
// Returns the Result and nil on success, the partial Result and an error
// wrapping ErrPathNotFound on failure, or ErrNilGrid.
func Dijkstra(g *grid.Grid, opts ...Option) (*Result, error) {
	r, err := newRunner(AlgoDijkstra, g, opts)
	if err != nil {
		return nil, err
	}

	g.At(g.Start()).Distance = 0
	q := newNodeQueue(g, func(n *grid.Node) float64 { return n.Distance })

	for q.Len() > 0 {
		n := q.popMin()
		if math.IsInf(n.Distance, 1) {
			return r.fail()
		}
		if n.IsObstacle {
			continue
		}

		c := n.Coord()
		n.IsVisited = true
		r.record(c)
		if c == r.end {
			return r.succeed()
		}

		r.relaxUnvisited(q, n)
	}

	return r.fail()
}

// relaxUnvisited assigns n.Distance+1 and predecessor n to each enterable
// neighbor of n.
func (r *runner) relaxUnvisited(q *nodeQueue, n *grid.Node) {
	from := n.Coord()
	for _, c := range r.g.Neighbors(from) {
		nb := r.g.At(c)
		if !r.open(nb) {
			continue
		}
		d := n.Distance + 1
		if r.opts.StrictRelaxation && d >= nb.Distance {
			continue
		}
		nb.Distance = d
		prev := from
		nb.Previous = &prev
		q.fix(c)
	}
}
