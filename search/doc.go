// Package search runs the four grid search routines (Dijkstra, A*, breadth-
// first and depth-first search) over a *grid.Grid and reconstructs the path
// they found.
//
// Every routine shares one contract:
//
//   - Input: a grid with a unique start and end and zero or more obstacles.
//     The grid's search state is reset before the run; obstacles are kept.
//   - Output: a Result whose Visited field lists cells in expansion order and,
//     on success, whose Path field lists the path from (excluding) the start
//     to (including) the end.
//   - Side effects: IsVisited, Distance, Heuristic and Previous are written
//     on the grid's nodes; IsPath is set on path nodes after a success.
//   - Obstacles are never expanded and never receive a distance or
//     predecessor.
//
// Failure:
//
//	When the frontier is exhausted without reaching the end, the routine
//	returns the partial Result together with an error wrapping
//	ErrPathNotFound. The Result is still valid for replay.
//
// Per-algorithm notes:
//
//   - Dijkstra selects the unvisited node of minimum Distance (ties by
//     row-major index) from the full node set and stops with failure once the
//     minimum is infinite. By default its relaxation overwrites a neighbor's
//     distance and predecessor unconditionally; WithStrictRelaxation switches
//     to the guarded "only if shorter" update.
//   - AStar selects by Distance+Heuristic (Manhattan) and relaxes only on
//     improvement.
//   - BFS and DFS mark a neighbor visited and record its predecessor when it
//     is pushed, not when it is expanded. BFS paths are shortest by edge
//     count; DFS paths are merely valid.
//
// Complexity (V = cells):
//
//   - Dijkstra, AStar: O(V log V) time, O(V) memory.
//   - BFS, DFS:        O(V) time, O(V) memory.
package search
