package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from g.Start() to g.End().
//
// The start is marked visited before the loop. Each step dequeues the oldest
// cell, records it, stops on the end, and enqueues every unvisited,
// non-obstacle neighbor, marking it visited and setting its predecessor at
// enqueue time. Visit order is therefore non-decreasing in hop distance and
// the predecessor links describe a shortest path by edge count.
//
// Returns the Result and nil on success, the partial Result and an error
// wrapping ErrPathNotFound on failure, or ErrNilGrid.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	r, err := newRunner(AlgoBFS, g, opts)
	if err != nil {
		return nil, err
	}

	queue := make([]grid.Coord, 0, g.Len())
	queue = append(queue, g.Start())
	g.At(g.Start()).IsVisited = true

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		r.record(c)
		if c == r.end {
			return r.succeed()
		}
		queue = r.push(queue, c)
	}

	return r.fail()
}

// push marks each enterable neighbor of c visited, links it to c and appends
// it to frontier.
func (r *runner) push(frontier []grid.Coord, c grid.Coord) []grid.Coord {
	for _, nc := range r.g.Neighbors(c) {
		nb := r.g.At(nc)
		if !r.open(nb) {
			continue
		}
		nb.IsVisited = true
		prev := c
		nb.Previous = &prev
		frontier = append(frontier, nc)
	}
	return frontier
}
