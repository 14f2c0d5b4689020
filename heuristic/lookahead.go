package heuristic

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
	"github.com/katalvlaran/ratmaze/traversal"
)

// DefaultBreadth is how many nearest targets Lookahead permutes by default.
const DefaultBreadth = 8

// Cache memoizes shortest paths per source vertex over one graph.
// It is not safe for concurrent use.
type Cache struct {
	g       maze.Graph
	results map[maze.Vertex]*traversal.Result
	runs    int
}

// NewCache returns an empty Cache over g.
func NewCache(g maze.Graph) *Cache {
	return &Cache{g: g, results: make(map[maze.Vertex]*traversal.Result)}
}

// from returns the (memoized) Dijkstra result rooted at src.
func (c *Cache) from(src maze.Vertex) (*traversal.Result, error) {
	if res, ok := c.results[src]; ok {
		return res, nil
	}
	res, err := traversal.Dijkstra(c.g, src)
	if err != nil {
		return nil, err
	}
	c.results[src] = res
	c.runs++

	return res, nil
}

// Distance returns the shortest distance src→dst, Infinity if unreachable.
func (c *Cache) Distance(src, dst maze.Vertex) (int64, error) {
	res, err := c.from(src)
	if err != nil {
		return traversal.Infinity, err
	}

	return res.Distance(dst), nil
}

// Route returns the shortest route src→dst.
func (c *Cache) Route(src, dst maze.Vertex) (route.Route, error) {
	res, err := c.from(src)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// Runs reports how many searches the cache has actually executed.
func (c *Cache) Runs() int { return c.runs }

// LookaheadOption configures Lookahead.
type LookaheadOption func(*lookaheadOptions)

type lookaheadOptions struct {
	breadth int
	cache   *Cache
	err     error
}

// WithBreadth limits the candidate pool to the b nearest targets.
func WithBreadth(b int) LookaheadOption {
	return func(o *lookaheadOptions) {
		if b <= 0 {
			o.err = fmt.Errorf("%w: breadth=%d", ErrInvalidParameter, b)

			return
		}
		o.breadth = b
	}
}

// WithCache reuses c across calls on the same graph.
func WithCache(c *Cache) LookaheadOption {
	return func(o *lookaheadOptions) {
		if c != nil {
			o.cache = c
		}
	}
}

// Lookahead tries every ordered sequence of min(depth, |pool|) targets from
// the pool of nearest reachable targets and returns the first leg of the
// cheapest. Ties keep the sequence found first, candidates being enumerated
// by (distance, vertex id).
//
// Complexity: P!/(P-d)! sequences for pool P and depth d, plus one Dijkstra
// per pool member (memoized).
func Lookahead(g maze.Graph, from maze.Vertex, targets []maze.Vertex, depth int, opts ...LookaheadOption) (Choice, error) {
	o := lookaheadOptions{breadth: DefaultBreadth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return none(), o.err
	}
	if depth <= 0 {
		return none(), fmt.Errorf("%w: depth=%d", ErrInvalidParameter, depth)
	}
	if o.cache == nil {
		o.cache = NewCache(g)
	}
	c := o.cache

	// 1) Candidate pool: reachable targets by (distance, id).
	root, err := c.from(from)
	if err != nil {
		return none(), err
	}
	var pool []maze.Vertex
	for _, t := range dedupe(targets) {
		if root.Reached(t) {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return none(), nil
	}
	sort.SliceStable(pool, func(i, j int) bool { return root.Dist[pool[i]] < root.Dist[pool[j]] })
	if len(pool) > o.breadth {
		pool = pool[:o.breadth]
	}
	if depth > len(pool) {
		depth = len(pool)
	}

	// 2) Enumerate sequences depth-first, pruning on the running cost.
	s := &seqSearch{cache: c, pool: pool, depth: depth, used: make([]bool, len(pool)), best: traversal.Infinity, first: maze.NoVertex}
	if err := s.extend(from, 0, 0, maze.NoVertex); err != nil {
		return none(), err
	}
	if s.first == maze.NoVertex {
		return none(), nil
	}

	r, err := root.PathTo(s.first)
	if err != nil {
		return none(), err
	}

	return Choice{Target: s.first, Cost: root.Dist[s.first], Route: r, Found: true}, nil
}

// seqSearch is the state of one Lookahead enumeration.
type seqSearch struct {
	cache *Cache
	pool  []maze.Vertex
	depth int
	used  []bool
	best  int64
	first maze.Vertex
}

func (s *seqSearch) extend(at maze.Vertex, placed int, cost int64, first maze.Vertex) error {
	if cost >= s.best {
		return nil
	}
	if placed == s.depth {
		s.best, s.first = cost, first
		return nil
	}
	for i, t := range s.pool {
		if s.used[i] {
			continue
		}
		d, err := s.cache.Distance(at, t)
		if err != nil {
			return err
		}
		if d == traversal.Infinity {
			continue
		}
		head := first
		if placed == 0 {
			head = t
		}
		s.used[i] = true
		if err := s.extend(t, placed+1, cost+d, head); err != nil {
			return err
		}
		s.used[i] = false
	}

	return nil
}
