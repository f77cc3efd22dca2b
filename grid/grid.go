package grid

import "fmt"

// New builds a rows×cols grid with every node at its defaults and the start
// and end flags set. start and end may coincide.
// Returns ErrEmptyGrid if rows or cols is not positive, ErrOutOfBounds if an
// endpoint lies outside the grid.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, start, end Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, start: start, end: end}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(end.Row, end.Col) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, rows, cols)
	}

	g.nodes = make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := &g.nodes[g.index(r, c)]
			n.Row, n.Col = r, c
			n.resetSearch()
		}
	}
	g.nodes[g.index(start.Row, start.Col)].IsStart = true
	g.nodes[g.index(end.Row, end.Col)].IsEnd = true

	return g, nil
}

// NewDefault builds the 20×20 reference grid with start (0,0) and end (19,19).
func NewDefault() *Grid {
	g, _ := New(DefaultRows, DefaultCols, DefaultStart(), DefaultEnd())
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.nodes) }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether (row,col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the node at c, or nil when c is out of bounds.
func (g *Grid) At(c Coord) *Node {
	if !g.InBounds(c.Row, c.Col) {
		return nil
	}
	return &g.nodes[g.index(c.Row, c.Col)]
}

// Index maps c to its row-major slot: Row*Cols + Col.
// The result is meaningless for out-of-bounds coordinates.
func (g *Grid) Index(c Coord) int {
	return g.index(c.Row, c.Col)
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major slot back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Node returns the node stored in row-major slot idx.
func (g *Grid) Node(idx int) *Node {
	return &g.nodes[idx]
}

// Nodes returns pointers to every node in row-major order.
func (g *Grid) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = &g.nodes[i]
	}
	return out
}

// Obstacles lists obstacle coordinates in row-major order.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for i := range g.nodes {
		if g.nodes[i].IsObstacle {
			out = append(out, g.nodes[i].Coord())
		}
	}
	return out
}

// ResetSearchState clears IsVisited, IsPath, Distance, Heuristic and
// Previous on every node. Obstacles are cleared only when clearObstacles is
// true.
func (g *Grid) ResetSearchState(clearObstacles bool) {
	for i := range g.nodes {
		g.nodes[i].resetSearch()
		if clearObstacles {
			g.nodes[i].IsObstacle = false
		}
	}
}

// Clear resets all search state and removes every obstacle.
func (g *Grid) Clear() {
	g.ResetSearchState(true)
}

// ToggleObstacle flips the obstacle flag of (row,col). Start, end and
// out-of-bounds cells are left untouched.
func (g *Grid) ToggleObstacle(row, col int) {
	n := g.editable(row, col)
	if n == nil {
		return
	}
	n.IsObstacle = !n.IsObstacle
}

// SetObstacle sets the obstacle flag of (row,col) to on, with the same
// protection as ToggleObstacle. It reports whether the cell was changed.
func (g *Grid) SetObstacle(row, col int, on bool) bool {
	n := g.editable(row, col)
	if n == nil || n.IsObstacle == on {
		return false
	}
	n.IsObstacle = on
	return true
}

func (g *Grid) editable(row, col int) *Node {
	if !g.InBounds(row, col) {
		return nil
	}
	n := &g.nodes[g.index(row, col)]
	if n.IsStart || n.IsEnd {
		return nil
	}
	return n
}

// Clone returns a deep copy of g, search state included.
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, start: g.start, end: g.end}
	cp.nodes = make([]Node, len(g.nodes))
	copy(cp.nodes, g.nodes)
	for i := range cp.nodes {
		if p := cp.nodes[i].Previous; p != nil {
			prev := *p
			cp.nodes[i].Previous = &prev
		}
	}
	return cp
}
