package search_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ------------------------------------------------------------------------
// 1. Validation and dispatch
// ------------------------------------------------------------------------

func TestRun_NilGrid(t *testing.T) {
	for _, alg := range search.Algorithms() {
		res, err := search.Run(alg, nil)
		assert.Nil(t, res, alg.String())
		assert.ErrorIs(t, err, search.ErrNilGrid, alg.String())
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := grid.NewDefault()
	res, err := search.Run(search.Algorithm(42), g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
	}{
		{"dijkstra", search.AlgoDijkstra},
		{"Dijkstra", search.AlgoDijkstra},
		{"astar", search.AlgoAStar},
		{"aStar", search.AlgoAStar},
		{"A*", search.AlgoAStar},
		{" bfs ", search.AlgoBFS},
		{"DFS", search.AlgoDFS},
	}
	for _, tc := range cases {
		got, err := search.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, alg := range search.Algorithms() {
		back, err := search.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, back)
	}
	assert.Equal(t, "algorithm(9)", search.Algorithm(9).String())
}

// ------------------------------------------------------------------------
// 2. Degenerate grids
// ------------------------------------------------------------------------

// TestStartEqualsEnd: every algorithm succeeds at once with an empty path.
func TestStartEqualsEnd(t *testing.T) {
	c := grid.Coord{Row: 1, Col: 2}
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustNew(t, 3, 4, c, c)
			res, err := search.Run(alg, g)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Equal(t, []grid.Coord{c}, res.Visited)
		})
	}
}

// TestStartWalledIn covers the 3×3 grid with obstacles at (0,1) and (1,0):
// the start has no open neighbor, so only the start is visited.
func TestStartWalledIn(t *testing.T) {
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustParse(t, `
S#.
#..
..E
`)
			res, err := search.Run(alg, g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, search.ErrPathNotFound))
			require.NotNil(t, res, "partial result must accompany PathNotFound")
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Equal(t, []grid.Coord{g.Start()}, res.Visited)
			assert.Empty(t, search.ReconstructPath(g))
		})
	}
}

// TestUnreachable_PartialVisit: a full wall splits the grid; every algorithm
// explores the whole start side before reporting failure.
func TestUnreachable_PartialVisit(t *testing.T) {
	m := `
S.#..
..#..
..#..
..#..
..#.E
`
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustParse(t, m)
			res, err := search.Run(alg, g)
			require.ErrorIs(t, err, search.ErrPathNotFound)
			assert.Len(t, res.Visited, 10)
			for _, c := range res.Visited {
				assert.Less(t, c.Col, 2, "visited %v beyond the wall", c)
			}
			assert.Nil(t, g.At(g.End()).Previous)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Pinned traversals on a 3×3 grid
// ------------------------------------------------------------------------

// TestPerimeterPath: obstacles at (0,1) and (1,1) leave one route of 4 edges.
func TestPerimeterPath(t *testing.T) {
	want := coords([2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := mustParse(t, `
S#.
.#.
..E
`)
			res, err := search.Run(alg, g)
			require.NoError(t, err)
			assert.Equal(t, want, res.Path)
			assert.Equal(t, 4, res.PathLength())
			assert.NotContains(t, res.Path, g.Start())
		})
	}
}

func TestOpen3x3_VisitOrders(t *testing.T) {
	cases := []struct {
		alg     search.Algorithm
		opts    []search.Option
		visited []grid.Coord
		path    []grid.Coord
	}{
		{
			alg: search.AlgoBFS,
			visited: coords([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 0}, [2]int{1, 1},
				[2]int{0, 2}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2}),
			path: coords([2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		},
		{
			alg:     search.AlgoDFS,
			visited: coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
			path:    coords([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
		},
		{
			alg: search.AlgoAStar,
			visited: coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 0}, [2]int{1, 1},
				[2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
			path: coords([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
		},
		{
			// unconditional relaxation keeps the last writer as predecessor
			alg: search.AlgoDijkstra,
			visited: coords([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{0, 2}, [2]int{1, 1},
				[2]int{2, 0}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}),
			path: coords([2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		},
		{
			// strict relaxation keeps the first writer
			alg:  search.AlgoDijkstra,
			opts: []search.Option{search.WithStrictRelaxation()},
			visited: coords([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{0, 2}, [2]int{1, 1},
				[2]int{2, 0}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}),
			path: coords([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
		},
	}
	for _, tc := range cases {
		name := tc.alg.String()
		if len(tc.opts) > 0 {
			name += "/strict"
		}
		t.Run(name, func(t *testing.T) {
			g := mustNew(t, 3, 3, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
			res, err := search.Run(tc.alg, g, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.visited, res.Visited)
			assert.Equal(t, tc.path, res.Path)
		})
	}
}

// ------------------------------------------------------------------------
// 4. Properties on open and random grids
// ------------------------------------------------------------------------

// TestBFS_OpenGrid: visit order is non-decreasing in hop distance and the
// path length equals the Manhattan distance.
func TestBFS_OpenGrid(t *testing.T) {
	cases := []struct {
		rows, cols int
		start, end grid.Coord
	}{
		{20, 20, grid.DefaultStart(), grid.DefaultEnd()},
		{12, 9, grid.Coord{Row: 3, Col: 4}, grid.Coord{Row: 10, Col: 2}},
		{1, 7, grid.Coord{Row: 0, Col: 6}, grid.Coord{Row: 0, Col: 0}},
		{5, 5, grid.Coord{Row: 4, Col: 0}, grid.Coord{Row: 0, Col: 4}},
	}
	for _, tc := range cases {
		g := mustNew(t, tc.rows, tc.cols, tc.start, tc.end)
		res, err := search.BFS(g)
		require.NoError(t, err)

		last := 0.0
		for _, c := range res.Visited {
			d := grid.Manhattan(tc.start, c)
			require.GreaterOrEqual(t, d, last, "visit order regressed at %v", c)
			last = d
		}
		assert.Equal(t, int(grid.Manhattan(tc.start, tc.end)), res.PathLength())
		requireValidPath(t, g, res.Path)
	}
}

// TestOpenGrid_ShortestLengthsAgree: on an obstacle-free grid Dijkstra, A*
// and BFS all return Manhattan-length paths.
func TestOpenGrid_ShortestLengthsAgree(t *testing.T) {
	g := grid.NewDefault()
	want := int(grid.Manhattan(g.Start(), g.End()))
	results := runAll(g)
	for _, alg := range []search.Algorithm{search.AlgoDijkstra, search.AlgoAStar, search.AlgoBFS} {
		assert.Equal(t, want, results[alg].PathLength(), alg.String())
	}
	requireValidPath(t, g, results[search.AlgoDFS].Path)
}

// TestRandomGrids compares the algorithms across seeded random obstacle
// fields.
func TestRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		g := grid.NewDefault()
		scatter(g, rng, 0.3)

		results := runAll(g)
		bfs := results[search.AlgoBFS]
		for alg, res := range results {
			require.Equal(t, bfs.Found, res.Found, "run %d %s: reachability disagrees", i, alg)
		}
		if !bfs.Found {
			continue
		}

		astar := results[search.AlgoAStar]
		assert.LessOrEqual(t, astar.PathLength(), bfs.PathLength(), "run %d", i)
		assert.Equal(t, bfs.PathLength(), astar.PathLength(), "run %d", i)
		// on a 4-connected grid unconditional relaxation never lengthens paths
		assert.Equal(t, bfs.PathLength(), results[search.AlgoDijkstra].PathLength(), "run %d", i)
		assert.GreaterOrEqual(t, results[search.AlgoDFS].PathLength(), bfs.PathLength(), "run %d", i)

		for alg, res := range results {
			cp := g.Clone()
			res2, err := search.Run(alg, cp)
			require.NoError(t, err)
			assert.Equal(t, res.Path, res2.Path, "run %d %s: not deterministic", i, alg)
			requireValidPath(t, cp, res2.Path)
		}
	}
}

// TestDijkstra_StrictMatchesDefaultOrder: both relaxation modes expand the
// same cells in the same order; only predecessors may differ.
func TestDijkstra_StrictMatchesDefaultOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		g := grid.NewDefault()
		scatter(g, rng, 0.25)

		def, errDef := search.Dijkstra(g.Clone())
		strict, errStrict := search.Dijkstra(g.Clone(), search.WithStrictRelaxation())
		assert.Equal(t, errDef == nil, errStrict == nil)
		assert.Equal(t, def.Visited, strict.Visited, "run %d", i)
		assert.Equal(t, def.PathLength(), strict.PathLength(), "run %d", i)
	}
}

// TestDFS_SingleRow: with only one corridor DFS and BFS agree.
func TestDFS_SingleRow(t *testing.T) {
	cases := []struct{ start, end grid.Coord }{
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 5}},
		{grid.Coord{Row: 0, Col: 3}, grid.Coord{Row: 0, Col: 0}},
		{grid.Coord{Row: 0, Col: 5}, grid.Coord{Row: 0, Col: 1}},
	}
	for _, tc := range cases {
		dfs, err := search.DFS(mustNew(t, 1, 6, tc.start, tc.end))
		require.NoError(t, err)
		bfs, err := search.BFS(mustNew(t, 1, 6, tc.start, tc.end))
		require.NoError(t, err)
		assert.Equal(t, bfs.Path, dfs.Path)
	}
}

// ------------------------------------------------------------------------
// 5. Side effects and options
// ------------------------------------------------------------------------

// TestObstaclesUntouched: no algorithm expands, links or weighs an obstacle.
func TestObstaclesUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	base := grid.NewDefault()
	scatter(base, rng, 0.35)

	for _, alg := range search.Algorithms() {
		g := base.Clone()
		res, _ := search.Run(alg, g)
		for _, c := range res.Visited {
			assert.False(t, g.At(c).IsObstacle, "%s visited obstacle %v", alg, c)
		}
		for _, c := range g.Obstacles() {
			n := g.At(c)
			assert.Nil(t, n.Previous, "%s linked obstacle %v", alg, c)
			assert.True(t, math.IsInf(n.Distance, 1), "%s weighed obstacle %v", alg, c)
			assert.False(t, n.IsVisited)
		}
	}
}

func TestMarkPath(t *testing.T) {
	g := mustParse(t, "S#.\n.#.\n..E\n")
	res, err := search.BFS(g)
	require.NoError(t, err)
	for _, c := range res.Path {
		assert.True(t, g.At(c).IsPath, "%v", c)
	}
	assert.False(t, g.At(g.Start()).IsPath, "start is not part of the path")
	assert.Equal(t, "S#.\n*#.\n**E\n", g.String())

	g2 := mustParse(t, "S#.\n.#.\n..E\n")
	_, err = search.BFS(g2, search.WithMarkPath(false))
	require.NoError(t, err)
	for _, n := range g2.Nodes() {
		assert.False(t, n.IsPath)
	}
}

func TestOnVisitHook(t *testing.T) {
	for _, alg := range search.Algorithms() {
		var seen []grid.Coord
		g := grid.NewDefault()
		res, err := search.Run(alg, g, search.WithOnVisit(func(c grid.Coord) {
			seen = append(seen, c)
		}))
		require.NoError(t, err)
		assert.Equal(t, res.Visited, seen, alg.String())
	}
}

// TestRerun_ResetsState: running twice on one grid gives identical results
// and obstacles survive the implicit reset.
func TestRerun_ResetsState(t *testing.T) {
	g := mustParse(t, `
S...
.##.
...E
`)
	for _, alg := range search.Algorithms() {
		first, err := search.Run(alg, g)
		require.NoError(t, err)
		second, err := search.Run(alg, g)
		require.NoError(t, err)
		assert.Equal(t, first, second, alg.String())
		assert.Len(t, g.Obstacles(), 2)
	}
}

func TestVisitedFlagsMatchOrder(t *testing.T) {
	g := grid.NewDefault()
	res, err := search.AStar(g)
	require.NoError(t, err)
	count := 0
	for _, n := range g.Nodes() {
		if n.IsVisited {
			count++
		}
	}
	assert.Equal(t, len(res.Visited), count)
}

// ------------------------------------------------------------------------
// 6. ReconstructPath
// ------------------------------------------------------------------------

func TestReconstructPath_Manual(t *testing.T) {
	g := mustNew(t, 1, 4, grid.Coord{}, grid.Coord{Row: 0, Col: 3})
	for col := 1; col < 4; col++ {
		prev := grid.Coord{Row: 0, Col: col - 1}
		g.At(grid.Coord{Row: 0, Col: col}).Previous = &prev
	}
	assert.Equal(t, coords([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}), search.ReconstructPath(g))
}

func TestReconstructPath_NoPredecessor(t *testing.T) {
	g := grid.NewDefault()
	assert.Empty(t, search.ReconstructPath(g))
}

func TestReconstructPath_CycleGuard(t *testing.T) {
	g := mustNew(t, 1, 3, grid.Coord{}, grid.Coord{Row: 0, Col: 2})
	a, b := grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 0, Col: 2}
	g.At(b).Previous = &a
	g.At(a).Previous = &b
	assert.Nil(t, search.ReconstructPath(g))
}
