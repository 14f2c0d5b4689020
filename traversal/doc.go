// Package traversal implements single-source search over a maze.Graph.
//
// One engine, many disciplines: Traverse pops items from a Frontier, settles
// each vertex the first time it is popped, and pushes its unsettled neighbors.
// What kind of search that is depends only on the Frontier handed in:
//
//	NewQueue() - FIFO  → BFS (with unit weights)
//	NewStack() - LIFO  → DFS (weighted depth along the explored tree)
//	NewHeap()  - min-priority → Dijkstra, or A* when a heuristic is added
//
// Stale duplicates left in the frontier by a later improvement are skipped on
// pop (lazy deletion), so no decrease-key is needed.
//
// Determinism: neighbors are expanded in ascending order and the heap breaks
// priority ties by vertex id, then by insertion order. The same graph and
// source always give the same Order, Dist and Parent.
//
// Errors:
//
//	ErrGraphNil          - nil graph.
//	ErrOptionViolation   - invalid Option (e.g. negative max distance).
//	maze.ErrInvalidVertex - source or target is not a vertex of the graph.
//
// An unreachable A* target is not an error: AStar returns (nil, Infinity, nil).
//
// Complexity:
//
//   - BFS, DFS: O(V + E).
//   - Dijkstra, A*: O((V + E) log V) with lazy deletion.
package traversal
