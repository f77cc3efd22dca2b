package grid

import (
	"fmt"
	"math"
)

// Reference configuration of the visualizer.
const (
	DefaultRows = 20
	DefaultCols = 20
)

// Infinity is the "not reached" sentinel for Distance and Heuristic.
var Infinity = math.Inf(1)

// Coord identifies a cell by its row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// DefaultStart is the top-left corner of the reference grid.
func DefaultStart() Coord { return Coord{Row: 0, Col: 0} }

// DefaultEnd is the bottom-right corner of the reference grid.
func DefaultEnd() Coord { return Coord{Row: DefaultRows - 1, Col: DefaultCols - 1} }

// Node is the search-state record of one grid cell.
// Row and Col are fixed at creation. Previous is nil when the node has no
// predecessor in the current search tree.
type Node struct {
	Row, Col int

	IsStart    bool
	IsEnd      bool
	IsObstacle bool
	IsVisited  bool
	IsPath     bool

	// Distance is the cost from the start; meaningful for Dijkstra and A*.
	Distance float64
	// Heuristic is the Manhattan estimate to the end; meaningful for A*.
	Heuristic float64
	Previous  *Coord
}

// Coord returns the node identity.
func (n *Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// resetSearch restores every per-run field to its initial value.
func (n *Node) resetSearch() {
	n.IsVisited = false
	n.IsPath = false
	n.Distance = Infinity
	n.Heuristic = Infinity
	n.Previous = nil
}

// Grid is a rectangular, row-major collection of Nodes with a unique start
// and end. Dimensions are fixed once built.
type Grid struct {
	rows, cols int
	start, end Coord
	nodes      []Node
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col| as a float64.
func Manhattan(a, b Coord) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}
