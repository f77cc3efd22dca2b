// Command gridpath runs grid pathfinding searches from the terminal.
//
// Examples:
//
//	gridpath run --algo astar --maze random --seed 42
//	gridpath run --grid-file level.txt --algo bfs --animate
//	gridpath compare --maze noise --seed 7
//	gridpath maze --rows 30 --cols 60 --png maze.png
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
