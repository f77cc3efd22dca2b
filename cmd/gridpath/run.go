package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/replay"
	"github.com/katalvlaran/gridpath/search"
)

const clearScreen = "\033[H\033[2J"

type runOptions struct {
	gridOptions
	imageOptions
	algo    string
	animate bool
	delay   time.Duration
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search and print the explored grid",
		Long: `Run one search algorithm from the start cell to the end cell.

Examples:
  gridpath run --algo dijkstra
  gridpath run --algo astar --maze random --density 0.35 --seed 42
  gridpath run --grid-file level.txt --algo dfs --animate --delay 30ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, root, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.algo, "algo", "a", search.AlgoDijkstra.String(), "Algorithm: dijkstra, astar, bfs or dfs")
	fs.BoolVar(&opts.animate, "animate", false, "Replay the search frame by frame")
	fs.DurationVar(&opts.delay, "delay", replay.DefaultStepDelay, "Delay between animation frames")
	opts.gridOptions.register(fs, mazeNone)
	opts.imageOptions.register(fs)
	return cmd
}

func runSearch(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	alg, err := search.ParseAlgorithm(opts.algo)
	if err != nil {
		return err
	}
	logger := root.logger(cmd)
	s, err := opts.session(logger)
	if err != nil {
		return err
	}

	res, err := s.Run(alg)
	notFound := errors.Is(err, search.ErrPathNotFound)
	if err != nil && !notFound {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.animate {
		if err := animate(cmd, out, s.Grid(), res, opts.delay); err != nil {
			return err
		}
	} else if err := render.Text(out, s.Grid()); err != nil {
		return err
	}

	if notFound {
		fmt.Fprintf(out, "%s: no path could be found between the start and end nodes (visited %d cells)\n",
			alg, len(res.Visited))
	} else {
		fmt.Fprintf(out, "%s: visited %d cells, path %d edges\n", alg, len(res.Visited), res.PathLength())
	}

	ropts := render.DefaultOptions()
	ropts.Algorithm = alg
	return opts.imageOptions.render(s.Grid(), ropts)
}

// animate redraws a blank copy of g after every replay frame.
func animate(cmd *cobra.Command, out io.Writer, g *grid.Grid, res *search.Result, delay time.Duration) error {
	canvas := replay.Blank(g)
	return replay.New(res).Play(cmd.Context(), delay, func(f replay.Frame) error {
		replay.Apply(canvas, f)
		if _, err := io.WriteString(out, clearScreen); err != nil {
			return err
		}
		return render.Text(out, canvas)
	})
}
