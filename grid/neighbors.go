package grid

// offsets lists the orthogonal moves in neighbor order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the up-to-four in-bounds cells adjacent to c, in the
// fixed order up, down, left, right. Obstacles and visited cells are not
// filtered; callers decide.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if g.InBounds(r, col) {
			out = append(out, Coord{Row: r, Col: col})
		}
	}
	return out
}
