package search

import "github.com/katalvlaran/gridpath/grid"

// DFS runs depth-first search from g.Start() to g.End() with an explicit
// stack.
//
// Marking happens at push time exactly as in BFS, but the most recently
// pushed cell is expanded first, so the search follows the last neighbor in
// Neighbors order (right, then left, down, up). The path found is valid but
// not necessarily shortest.
//
// Returns the Result and nil on success, the partial Result and an error
// wrapping ErrPathNotFound on failure, or ErrNilGrid.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
	r, err := newRunner(AlgoDFS, g, opts)
	if err != nil {
		return nil, err
	}

	stack := make([]grid.Coord, 0, g.Len())
	stack = append(stack, g.Start())
	g.At(g.Start()).IsVisited = true

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r.record(c)
		if c == r.end {
			return r.succeed()
		}
		stack = r.push(stack, c)
	}

	return r.fail()
}
