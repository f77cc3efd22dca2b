package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// AStar runs A* search from g.Start() to g.End() with the Manhattan
// heuristic.
//
// Behavior:
//  1. The open list holds every cell; the start has Distance 0 and its
//     Heuristic set. Other cells have infinite Distance and Heuristic.
//  2. Each step removes the cell minimizing Distance+Heuristic (ties by
//     row-major index). Obstacles are skipped; an infinite Distance means no
//     path exists.
//  3. The removed cell is marked visited and recorded; if it is the end,
//     the run succeeds.
//  4. For each unvisited, non-obstacle neighbor, tentative = Distance+1.
//     If tentative improves the neighbor's Distance, Distance, Heuristic and
//     Previous are updated.
//
// Returns the Result and nil on success, the partial Result and an error
// wrapping ErrPathNotFound on failure, or ErrNilGrid.
func AStar(g *grid.Grid, opts ...Option) (*Result, error) {
	r, err := newRunner(AlgoAStar, g, opts)
	if err != nil {
		return nil, err
	}

	start := g.At(g.Start())
	start.Distance = 0
	start.Heuristic = grid.Manhattan(g.Start(), r.end)
	q := newNodeQueue(g, func(n *grid.Node) float64 { return n.Distance + n.Heuristic })

	for q.Len() > 0 {
		n := q.popMin()
		if n.IsObstacle {
			continue
		}
		if math.IsInf(n.Distance, 1) {
			return r.fail()
		}

		c := n.Coord()
		n.IsVisited = true
		r.record(c)
		if c == r.end {
			return r.succeed()
		}

		for _, nc := range g.Neighbors(c) {
			nb := g.At(nc)
			if !r.open(nb) {
				continue
			}
			tentative := n.Distance + 1
			if tentative < nb.Distance {
				nb.Distance = tentative
				nb.Heuristic = grid.Manhattan(nc, r.end)
				prev := c
				nb.Previous = &prev
				q.fix(nc)
			}
		}
	}

	return r.fail()
}
