package search

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// nodeQueue is a min-heap over every cell of a grid, keyed by a priority
// read live from the grid (Distance for Dijkstra, Distance+Heuristic for A*).
// Equal keys fall back to row-major index so selection is deterministic.
// After a key changes, fix must be called for that cell.
type nodeQueue struct {
	g    *grid.Grid
	key  func(n *grid.Node) float64
	heap []int // cell indices in heap order
	pos  []int // pos[cell] = position in heap, -1 once popped
}

func newNodeQueue(g *grid.Grid, key func(n *grid.Node) float64) *nodeQueue {
	n := g.Len()
	q := &nodeQueue{g: g, key: key, heap: make([]int, n), pos: make([]int, n)}
	for i := 0; i < n; i++ {
		q.heap[i] = i
		q.pos[i] = i
	}
	heap.Init(q)
	return q
}

// Len returns the number of cells still queued.
func (q *nodeQueue) Len() int { return len(q.heap) }

// Less orders by key, then by row-major index.
func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	ka, kb := q.key(q.g.Node(a)), q.key(q.g.Node(b))
	if ka != kb {
		return ka < kb
	}
	return a < b
}

// Swap swaps two heap slots and keeps pos in sync.
func (q *nodeQueue) Swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

// Push is required by heap.Interface; the queue is filled once in
// newNodeQueue and never grows.
func (q *nodeQueue) Push(x interface{}) {
	idx := x.(int)
	q.pos[idx] = len(q.heap)
	q.heap = append(q.heap, idx)
}

// Pop removes the last heap slot; called by heap.Pop.
func (q *nodeQueue) Pop() interface{} {
	old := q.heap
	n := len(old)
	idx := old[n-1]
	q.heap = old[:n-1]
	q.pos[idx] = -1
	return idx
}

// popMin removes and returns the cell with the smallest key.
func (q *nodeQueue) popMin() *grid.Node {
	return q.g.Node(heap.Pop(q).(int))
}

// fix restores heap order after the key of cell c changed.
func (q *nodeQueue) fix(c grid.Coord) {
	if p := q.pos[q.g.Index(c)]; p >= 0 {
		heap.Fix(q, p)
	}
}
