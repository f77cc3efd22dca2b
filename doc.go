// Package gridpath is a grid pathfinding core: paint obstacles on a
// fixed-size grid, pick Dijkstra, A*, BFS or DFS, and get back the order in
// which cells were explored plus the final path, ready to animate.
//
// 🚀 What is gridpath?
//
//	A small, synchronous library plus a CLI:
//		• grid     – the Grid Model, 4-neighbor function and text map codec
//		• search   – Dijkstra, A*, BFS, DFS and path reconstruction
//		• maze     – random and simplex-noise obstacle generators
//		• replay   – finite, non-restartable visit/path frame sequences
//		• render   – text maps and PNG snapshots
//		• session  – one grid, one run at a time (busy flag, run records)
//
// Quick map example (S start, E end, # wall, o visited, * path):
//
//	S#o.
//	*#oo
//	***E
//
// is what BFS leaves behind on a 3×4 grid with two walls in column 1.
//
// Run it from the terminal:
//
//	go run ./cmd/gridpath run --algo astar --maze random --seed 42
package gridpath
