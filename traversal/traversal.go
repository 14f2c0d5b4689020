package traversal

import (
	"fmt"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
)

// Traverse runs a generic search from source, using f to order pending work.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain source (maze.ErrInvalidVertex).
//
// The frontier must be empty; Traverse owns it for the duration of the call.
//
// Complexity: O(V + E) pushes for FIFO/LIFO frontiers, plus O(log) per heap
// operation for heap frontiers.
func Traverse(g maze.Graph, source maze.Vertex, f Frontier, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.Has(source) {
		return nil, fmt.Errorf("traversal: source %d: %w", source, maze.ErrInvalidVertex)
	}
	if cfg.target != maze.NoVertex && !g.Has(cfg.target) {
		return nil, fmt.Errorf("traversal: target %d: %w", cfg.target, maze.ErrInvalidVertex)
	}

	// 2) Prepare runner state and run the main loop
	r := &runner{
		g:    g,
		cfg:  cfg,
		f:    f,
		best: make(map[maze.Vertex]int64),
		res: &Result{
			Source: source,
			Dist:   make(map[maze.Vertex]int64),
			Parent: make(route.Table),
		},
	}
	r.push(source, maze.NoVertex, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single traversal.
type runner struct {
	g    maze.Graph
	cfg  Options
	f    Frontier
	best map[maze.Vertex]int64 // tentative distances, used when cfg.Relax
	res  *Result
}

// push records a tentative distance and enqueues v.
func (r *runner) push(v, parent maze.Vertex, d int64) {
	prio := d
	if r.cfg.heuristic != nil {
		prio += r.cfg.heuristic(v, r.cfg.target)
	}
	r.best[v] = d
	r.f.Push(Item{Vertex: v, Parent: parent, Dist: d, Priority: prio})
}

// process pops until the frontier drains or the goal (if any) is settled.
func (r *runner) process() error {
	for r.f.Len() > 0 {
		// 1) Pop; a vertex already settled means a stale duplicate, unless a
		// goal search found it again at a strictly shorter distance.
		it := r.f.Pop()
		reopened := false
		if r.res.Reached(it.Vertex) {
			if !r.reopens() || it.Dist >= r.res.Dist[it.Vertex] {
				continue
			}
			reopened = true
		}
		// 2) Relaxation leaves entries whose distance was since improved.
		if r.cfg.Relax && it.Dist > r.best[it.Vertex] {
			continue
		}

		// 3) Settle.
		r.res.Dist[it.Vertex] = it.Dist
		r.res.Parent[it.Vertex] = it.Parent
		if !reopened {
			r.res.Order = append(r.res.Order, it.Vertex)
		}
		r.cfg.OnSettle(it.Vertex, it.Dist)
		if it.Vertex == r.cfg.target {
			return nil
		}

		// 4) Expand.
		if err := r.expand(it.Vertex, it.Dist); err != nil {
			return err
		}
	}

	return nil
}

// reopens reports whether settled vertices may be settled again. A heuristic
// that is admissible but not consistent can settle a vertex too early, so
// goal searches keep improving it.
func (r *runner) reopens() bool {
	return r.cfg.heuristic != nil && r.cfg.Relax
}

// expand pushes every unsettled neighbor of u that stays within MaxDistance
// (and, under relaxation, improves on its best known distance). Goal searches
// also push settled neighbors they can reach more cheaply.
func (r *runner) expand(u maze.Vertex, du int64) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("traversal: neighbors of %d: %w", u, err)
	}
	for _, v := range nbrs {
		if r.res.Reached(v) && !r.reopens() {
			continue
		}
		w := int64(1)
		if !r.cfg.UnitWeights {
			wi, err := r.g.Weight(u, v)
			if err != nil {
				return fmt.Errorf("traversal: weight %d→%d: %w", u, v, err)
			}
			w = int64(wi)
		}
		nd := du + w
		if nd > r.cfg.MaxDistance {
			continue
		}
		if r.cfg.Relax {
			if old, seen := r.best[v]; seen && nd >= old {
				continue
			}
		}
		r.push(v, u, nd)
	}

	return nil
}

// BFS explores g breadth-first from source, counting every move as 1.
// Dist holds hop counts and each vertex is visited once.
func BFS(g maze.Graph, source maze.Vertex, opts ...Option) (*Result, error) {
	return Traverse(g, source, NewQueue(), append([]Option{WithUnitWeights()}, opts...)...)
}

// DFS explores g depth-first from source, pushing every unsettled neighbor
// and popping the most recent. Dist holds the weighted length of the path
// through the explored tree, which is not in general the shortest.
func DFS(g maze.Graph, source maze.Vertex, opts ...Option) (*Result, error) {
	return Traverse(g, source, NewStack(), append([]Option{WithRelaxation(false)}, opts...)...)
}

// Dijkstra computes shortest weighted distances from source to every
// reachable vertex. A neighbor is relaxed when dist[u]+w < dist[v].
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy deletion keeps stale heap entries)
func Dijkstra(g maze.Graph, source maze.Vertex, opts ...Option) (*Result, error) {
	return Traverse(g, source, NewHeap(), append([]Option{WithRelaxation(true)}, opts...)...)
}

// AStar finds a cheapest route source→target, ordering the heap by
// distance plus h. It stops as soon as target is settled. The cost is
// optimal for any admissible h; an inconsistent h may settle a vertex more
// than once, and OnSettle then fires again with the shorter distance.
//
// Returns (route, cost, nil) on success and (nil, Infinity, nil) when target
// cannot be reached. A nil h means Zero().
func AStar(g maze.Graph, source, target maze.Vertex, h Heuristic, opts ...Option) (route.Route, int64, error) {
	if h == nil {
		h = Zero()
	}
	all := append([]Option{WithRelaxation(true)}, opts...)
	all = append(all, withGoal(target, h))
	res, err := Traverse(g, source, NewHeap(), all...)
	if err != nil {
		return nil, Infinity, err
	}
	if !res.Reached(target) {
		return nil, Infinity, nil
	}
	r, err := res.PathTo(target)
	if err != nil {
		return nil, Infinity, err
	}

	return r, res.Dist[target], nil
}
