package search

import "github.com/katalvlaran/gridpath/grid"

// ReconstructPath walks Previous links back from g.End() and returns the
// cells from (excluding) the root of the search tree to (including) the end.
// The walk stops at the first node without a predecessor, so the start never
// appears in the result. An end without a predecessor, because it was never
// reached or because it is the start, yields an empty path.
func ReconstructPath(g *grid.Grid) []grid.Coord {
	var rev []grid.Coord
	seen := make(map[grid.Coord]bool)
	for cur := g.At(g.End()); cur != nil && cur.Previous != nil; cur = g.At(*cur.Previous) {
		c := cur.Coord()
		if seen[c] {
			// predecessor links must form a tree; bail out on a corrupted grid
			return nil
		}
		seen[c] = true
		rev = append(rev, c)
	}

	path := make([]grid.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
