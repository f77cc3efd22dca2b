// Package maze paints random obstacle layouts onto a *grid.Grid.
//
//   - Random: every cell except start and end independently becomes an
//     obstacle with a fixed probability (DefaultDensity = 0.3); all other
//     cells are cleared. This is the visualizer's "random maze" button.
//   - Noise: cells whose OpenSimplex noise value exceeds a threshold become
//     obstacles, giving clustered, cave-like walls. Deterministic per seed.
//
// Both generators leave search state untouched; callers usually run
// grid.ResetSearchState or start a new search afterwards.
package maze
