package traversal

import (
	"container/heap"

	"github.com/katalvlaran/ratmaze/maze"
)

// Item is a frontier entry: vertex reached at Dist through Parent.
// Priority orders heap frontiers (Dist, or Dist+h for A*).
type Item struct {
	Vertex   maze.Vertex
	Parent   maze.Vertex
	Dist     int64
	Priority int64
}

// Frontier is the pending-work structure of a traversal.
// Pop is only called when Len() > 0.
type Frontier interface {
	Push(it Item)
	Pop() Item
	Len() int
}

// queue is a FIFO frontier backed by a slice with a moving head.
type queue struct {
	items []Item
	head  int
}

// NewQueue returns a FIFO frontier (breadth-first order).
func NewQueue() Frontier { return &queue{} }

func (q *queue) Push(it Item) { q.items = append(q.items, it) }

func (q *queue) Pop() Item {
	it := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the buffer
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}

	return it
}

func (q *queue) Len() int { return len(q.items) - q.head }

// stack is a LIFO frontier.
type stack []Item

// NewStack returns a LIFO frontier (depth-first order).
func NewStack() Frontier { return &stack{} }

func (s *stack) Push(it Item) { *s = append(*s, it) }

func (s *stack) Pop() Item {
	old := *s
	it := old[len(old)-1]
	*s = old[:len(old)-1]

	return it
}

func (s *stack) Len() int { return len(*s) }

// heapEntry stamps an Item with its insertion sequence for tie-breaking.
type heapEntry struct {
	Item
	seq uint64
}

// entryPQ is a min-heap ordered by (Priority, Vertex, seq).
type entryPQ []heapEntry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	if pq[i].Vertex != pq[j].Vertex {
		return pq[i].Vertex < pq[j].Vertex
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(heapEntry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// minHeap is a priority frontier with deterministic tie-breaking.
type minHeap struct {
	pq  entryPQ
	seq uint64
}

// NewHeap returns a min-priority frontier. Ties are broken by smaller vertex
// id, then by insertion order.
func NewHeap() Frontier { return &minHeap{} }

func (h *minHeap) Push(it Item) {
	heap.Push(&h.pq, heapEntry{Item: it, seq: h.seq})
	h.seq++
}

func (h *minHeap) Pop() Item { return heap.Pop(&h.pq).(heapEntry).Item }

func (h *minHeap) Len() int { return h.pq.Len() }
