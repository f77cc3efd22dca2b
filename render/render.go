// Package render draws grids for people: text maps for terminals and PNG
// snapshots through fogleman/gg. It is a presentation layer only; nothing
// in the search core depends on it.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrBadCellSize indicates a non-positive cell size.
var ErrBadCellSize = errors.New("render: cell size must be positive")

// Palette of the visualizer.
var (
	ColorEmpty    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorStart    = color.RGBA{R: 0x2e, G: 0xcc, B: 0x40, A: 0xff}
	ColorEnd      = color.RGBA{R: 0xff, G: 0x41, B: 0x36, A: 0xff}
	ColorObstacle = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	ColorVisited  = color.RGBA{R: 0x7f, G: 0xdb, B: 0xff, A: 0xff}
	ColorGridLine = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
)

// pathColors gives each algorithm its own path color.
var pathColors = map[search.Algorithm]color.RGBA{
	search.AlgoDijkstra: {R: 0xff, G: 0xdc, B: 0x00, A: 0xff},
	search.AlgoAStar:    {R: 0xb1, G: 0x0d, B: 0xc9, A: 0xff},
	search.AlgoBFS:      {R: 0xff, G: 0x85, B: 0x1b, A: 0xff},
	search.AlgoDFS:      {R: 0x01, G: 0xff, B: 0x70, A: 0xff},
}

// PathColor returns the path color used for alg.
func PathColor(alg search.Algorithm) color.RGBA {
	if c, ok := pathColors[alg]; ok {
		return c
	}
	return color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
}

// Options configures image rendering.
type Options struct {
	CellSize  int              // pixels per cell side
	Algorithm search.Algorithm // selects the path color
	GridLines bool             // draw cell borders
}

// DefaultOptions returns 24-pixel cells with grid lines, colored for
// Dijkstra.
func DefaultOptions() Options {
	return Options{CellSize: 24, Algorithm: search.AlgoDijkstra, GridLines: true}
}

// CellColor returns the fill color of n.
func CellColor(n *grid.Node, alg search.Algorithm) color.Color {
	switch {
	case n.IsStart:
		return ColorStart
	case n.IsEnd:
		return ColorEnd
	case n.IsObstacle:
		return ColorObstacle
	case n.IsPath:
		return PathColor(alg)
	case n.IsVisited:
		return ColorVisited
	default:
		return ColorEmpty
	}
}

// Text writes the map of g followed by a one-line legend.
func Text(w io.Writer, g *grid.Grid) error {
	if _, err := g.WriteTo(w); err != nil {
		return fmt.Errorf("render: write map: %w", err)
	}
	_, err := fmt.Fprintf(w, "%c start  %c end  %c wall  %c visited  %c path\n",
		grid.CellStart, grid.CellEnd, grid.CellObstacle, grid.CellVisited, grid.CellPath)
	return err
}

func draw(g *grid.Grid, opts Options) (*gg.Context, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCellSize, opts.CellSize)
	}
	s := float64(opts.CellSize)
	dc := gg.NewContext(g.Cols()*opts.CellSize, g.Rows()*opts.CellSize)
	dc.SetColor(ColorEmpty)
	dc.Clear()

	for _, n := range g.Nodes() {
		dc.SetColor(CellColor(n, opts.Algorithm))
		dc.DrawRectangle(float64(n.Col)*s, float64(n.Row)*s, s, s)
		dc.Fill()
	}

	if opts.GridLines && opts.CellSize > 2 {
		dc.SetColor(ColorGridLine)
		dc.SetLineWidth(1)
		for r := 0; r <= g.Rows(); r++ {
			dc.DrawLine(0, float64(r)*s, float64(g.Cols())*s, float64(r)*s)
		}
		for c := 0; c <= g.Cols(); c++ {
			dc.DrawLine(float64(c)*s, 0, float64(c)*s, float64(g.Rows())*s)
		}
		dc.Stroke()
	}
	return dc, nil
}

// Image draws g into a new image.
func Image(g *grid.Grid, opts Options) (image.Image, error) {
	dc, err := draw(g, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG draws g and writes it as PNG to w.
func PNG(w io.Writer, g *grid.Grid, opts Options) error {
	dc, err := draw(g, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG draws g and writes it to the file at path.
func SavePNG(path string, g *grid.Grid, opts Options) error {
	dc, err := draw(g, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
