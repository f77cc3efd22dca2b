package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/log"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
)

// Maze kinds accepted by --maze.
const (
	mazeNone   = "none"
	mazeRandom = "random"
	mazeNoise  = "noise"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Grid pathfinding with Dijkstra, A*, BFS and DFS",
		Long: `gridpath paints obstacles on a grid, runs one of four search algorithms
from the start cell to the end cell and shows which cells were explored
and which form the final path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error or none")

	root.AddCommand(newRunCmd(opts), newCompareCmd(opts), newMazeCmd(opts))
	return root
}

func (o *rootOptions) logger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), log.LevelFromString(o.logLevel))
}

// gridOptions are the flags shared by every subcommand that builds a grid.
type gridOptions struct {
	rows, cols int
	gridFile   string
	mazeKind   string
	density    float64
	seed       int64
	scale      float64
	threshold  float64
	strict     bool
}

func (o *gridOptions) register(fs *pflag.FlagSet, defaultMaze string) {
	noise := maze.DefaultNoiseOptions()
	fs.IntVarP(&o.rows, "rows", "r", grid.DefaultRows, "Number of grid rows")
	fs.IntVarP(&o.cols, "cols", "c", grid.DefaultCols, "Number of grid columns")
	fs.StringVarP(&o.gridFile, "grid-file", "f", "", "Read the grid from a text map (S start, E end, # wall, . open)")
	fs.StringVarP(&o.mazeKind, "maze", "m", defaultMaze, "Obstacle generator: none, random or noise")
	fs.Float64Var(&o.density, "density", maze.DefaultDensity, "Wall probability of the random generator")
	fs.Int64Var(&o.seed, "seed", 0, "Generator seed (0 picks one from the clock)")
	fs.Float64Var(&o.scale, "noise-scale", noise.Scale, "Noise sampling step per cell")
	fs.Float64Var(&o.threshold, "noise-threshold", noise.Threshold, "Noise value above which a cell becomes a wall")
	fs.BoolVar(&o.strict, "strict", false, "Use guarded relaxation in Dijkstra")
}

// session builds the grid described by the flags and paints its maze.
func (o *gridOptions) session(logger *log.Logger) (*session.Session, error) {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := session.DefaultConfig()
	cfg.Rows, cfg.Cols = o.rows, o.cols
	cfg.End = grid.Coord{Row: o.rows - 1, Col: o.cols - 1}
	cfg.Density = o.density
	cfg.Seed = seed
	cfg.Noise = maze.NoiseOptions{Scale: o.scale, Threshold: o.threshold}
	cfg.StrictDijkstra = o.strict

	var (
		s   *session.Session
		err error
	)
	if o.gridFile != "" {
		s, err = loadSession(o.gridFile, cfg, logger)
	} else {
		s, err = session.New(cfg, logger)
	}
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(o.mazeKind) {
	case mazeNone, "":
		return s, nil
	case mazeRandom:
		_, err = s.GenerateMaze()
	case mazeNoise:
		_, err = s.GenerateNoise(seed)
	default:
		return nil, fmt.Errorf("unknown maze kind %q (use none, random or noise)", o.mazeKind)
	}
	if err != nil {
		return nil, err
	}
	logger.Debugf("%s maze with seed %d", o.mazeKind, seed)
	return s, nil
}

func loadSession(path string, cfg session.Config, logger *log.Logger) (*session.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf("loaded %dx%d grid from %s", g.Rows(), g.Cols(), path)
	return session.FromGrid(g, cfg, logger), nil
}

// imageOptions are the flags controlling PNG output.
type imageOptions struct {
	path      string
	cellSize  int
	gridLines bool
}

func (o *imageOptions) register(fs *pflag.FlagSet) {
	def := render.DefaultOptions()
	fs.StringVar(&o.path, "png", "", "Also write a PNG snapshot to this file")
	fs.IntVar(&o.cellSize, "cell-size", def.CellSize, "PNG cell size in pixels")
	fs.BoolVar(&o.gridLines, "grid-lines", def.GridLines, "Draw cell borders in the PNG")
}

func (o *imageOptions) render(g *grid.Grid, opts render.Options) error {
	if o.path == "" {
		return nil
	}
	opts.CellSize = o.cellSize
	opts.GridLines = o.gridLines
	return render.SavePNG(o.path, g, opts)
}
