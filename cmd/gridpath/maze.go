package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
)

type mazeOptions struct {
	gridOptions
	imageOptions
}

func newMazeCmd(root *rootOptions) *cobra.Command {
	opts := &mazeOptions{}
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a grid and print it as a text map",
		Long: `Generate a grid with random or noise walls and print it in the text map
format read by --grid-file.

Examples:
  gridpath maze --seed 42 > level.txt
  gridpath maze --maze noise --rows 40 --cols 80 --png cave.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.session(root.logger(cmd))
			if err != nil {
				return err
			}
			if _, err := s.Grid().WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			return opts.imageOptions.render(s.Grid(), render.DefaultOptions())
		},
	}
	opts.gridOptions.register(cmd.Flags(), mazeRandom)
	opts.imageOptions.register(cmd.Flags())
	return cmd
}
