package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run dispatches to the routine selected by alg.
func Run(alg Algorithm, g *grid.Grid, opts ...Option) (*Result, error) {
	switch alg {
	case AlgoDijkstra:
		return Dijkstra(g, opts...)
	case AlgoAStar:
		return AStar(g, opts...)
	case AlgoBFS:
		return BFS(g, opts...)
	case AlgoDFS:
		return DFS(g, opts...)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
