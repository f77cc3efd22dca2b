package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map characters.
const (
	CellOpen     = '.'
	CellObstacle = '#'
	CellStart    = 'S'
	CellEnd      = 'E'
	CellPath     = '*'
	CellVisited  = 'o'
)

// Parse reads a text map and builds a Grid from it.
// '*' and 'o' are accepted as open cells so that String output parses back.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrMissingEndpoint or
// ErrDuplicateEndpoint for malformed input.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.Join(strings.Fields(sc.Text()), "")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(lines[0])
	var start, end []Coord
	var walls []Coord
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(line), cols)
		}
		for col, ch := range []byte(line) {
			c := Coord{Row: row, Col: col}
			switch ch {
			case CellOpen, CellPath, CellVisited:
			case CellObstacle:
				walls = append(walls, c)
			case CellStart:
				start = append(start, c)
			case CellEnd:
				end = append(end, c)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, c)
			}
		}
	}
	if len(start) == 0 || len(end) == 0 {
		return nil, ErrMissingEndpoint
	}
	if len(start) > 1 || len(end) > 1 {
		return nil, ErrDuplicateEndpoint
	}

	g, err := New(len(lines), cols, start[0], end[0])
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		g.SetObstacle(w.Row, w.Col, true)
	}
	return g, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Rune returns the map character for n.
func (n *Node) Rune() rune {
	switch {
	case n.IsStart:
		return CellStart
	case n.IsEnd:
		return CellEnd
	case n.IsObstacle:
		return CellObstacle
	case n.IsPath:
		return CellPath
	case n.IsVisited:
		return CellVisited
	default:
		return CellOpen
	}
}

// WriteTo writes the map of g, one line per row.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.nodes[g.index(r, c)].Rune())
		}
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// String renders g in the text map format.
func (g *Grid) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)
	return sb.String()
}
