// Package grid models a fixed-size, 4-connected grid of cells as an implicit
// graph for the search routines in package search.
//
// What:
//
//   - Grid is a rows×cols, row-major collection of Node records.
//   - Each Node carries per-cell search state: visited, obstacle, distance,
//     heuristic, predecessor and path membership.
//   - Exactly one node is the start and one node is the end; both are fixed
//     for the lifetime of a Grid and are never obstacles.
//   - Neighbors yields the up-to-four orthogonal neighbors in the fixed order
//     up, down, left, right.
//
// Identity:
//
//   - Nodes are identified by Coord{Row, Col}; equality is by index pair.
//   - Index/Coordinate convert between Coord and the row-major slot.
//
// Lifecycle:
//
//   - New builds a fresh grid with every node at its defaults.
//   - ResetSearchState clears per-run state and optionally obstacles.
//   - Clear is ResetSearchState(true).
//   - ToggleObstacle / SetObstacle paint obstacles; start/end cells are
//     protected and the call is a silent no-op for them.
//
// Text format:
//
//	S..#
//	.#..
//	...E
//
// Parse reads maps made of '.', '#', 'S' and 'E' (whitespace between cells is
// ignored, blank lines are skipped); String writes the same format and additionally marks path cells
// with '*' and visited cells with 'o'.
//
// Complexity:
//
//   - New, ResetSearchState: O(R×C) time, O(R×C) memory.
//   - Neighbors, At, ToggleObstacle: O(1).
package grid
