package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

type compareOptions struct {
	gridOptions
	showMaps bool
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all four algorithms on the same grid",
		Long: `Run Dijkstra, A*, BFS and DFS on one grid and tabulate how many cells
each explored and how long its path is.

Examples:
  gridpath compare --maze random --seed 42
  gridpath compare --maze noise --rows 40 --cols 40
  gridpath compare --grid-file level.txt --show-maps`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, root, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.showMaps, "show-maps", false, "Print the explored grid of every algorithm")
	opts.gridOptions.register(cmd.Flags(), mazeNone)
	return cmd
}

func runCompare(cmd *cobra.Command, root *rootOptions, opts *compareOptions) error {
	s, err := opts.session(root.logger(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tVISITED\tPATH\tFOUND\tTIME")
	for _, alg := range search.Algorithms() {
		if _, err := s.Run(alg); err != nil && !errors.Is(err, search.ErrPathNotFound) {
			return err
		}
		if opts.showMaps {
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s:\n", alg)
			if err := render.Text(out, s.Grid()); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		run, _ := s.LastRun()
		path := "-"
		if run.Found {
			path = fmt.Sprint(run.PathLength)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%t\t%s\n", run.Algorithm, run.Visited, path, run.Found, run.Duration)
	}
	return tw.Flush()
}
