package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// mustParse builds a grid from a text map or fails the test.
func mustParse(t testing.TB, m string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(m)
	require.NoError(t, err)
	return g
}

// mustNew builds an obstacle-free grid or fails the test.
func mustNew(t testing.TB, rows, cols int, start, end grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, start, end)
	require.NoError(t, err)
	return g
}

// scatter paints each non-endpoint cell as an obstacle with probability p.
func scatter(g *grid.Grid, rng *rand.Rand, p float64) {
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		g.SetObstacle(c.Row, c.Col, rng.Float64() < p)
	}
}

// adjacent reports whether a and b share an edge.
func adjacent(a, b grid.Coord) bool {
	return grid.Manhattan(a, b) == 1
}

// requireValidPath checks that path leads from start (excluded) to end
// through open, pairwise-adjacent cells without repetition.
func requireValidPath(t *testing.T, g *grid.Grid, path []grid.Coord) {
	t.Helper()
	if g.Start() == g.End() {
		require.Empty(t, path)
		return
	}
	require.NotEmpty(t, path)
	require.Equal(t, g.End(), path[len(path)-1])

	seen := map[grid.Coord]bool{g.Start(): true}
	prev := g.Start()
	for _, c := range path {
		require.True(t, adjacent(prev, c), "%v and %v are not adjacent", prev, c)
		require.False(t, g.At(c).IsObstacle, "path crosses obstacle %v", c)
		require.False(t, seen[c], "path repeats %v", c)
		seen[c] = true
		prev = c
	}
}

// runAll runs every algorithm on a clone of g.
func runAll(g *grid.Grid, opts ...search.Option) map[search.Algorithm]*search.Result {
	out := make(map[search.Algorithm]*search.Result, 4)
	for _, alg := range search.Algorithms() {
		res, _ := search.Run(alg, g.Clone(), opts...)
		out[alg] = res
	}
	return out
}

// coords is shorthand for a literal path.
func coords(pairs ...[2]int) []grid.Coord {
	out := make([]grid.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = grid.Coord{Row: p[0], Col: p[1]}
	}
	return out
}
