package traversal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
)

// Infinity is the distance of an unreached vertex.
const Infinity int64 = math.MaxInt64

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")
)

// Heuristic estimates the remaining cost from v to target. A* is exact only
// when the estimate never exceeds the true cost.
type Heuristic func(v, target maze.Vertex) int64

// Manhattan returns the grid-distance heuristic for a maze of the given width.
func Manhattan(width int) Heuristic {
	return func(v, target maze.Vertex) int64 {
		return int64(maze.Manhattan(v, target, width))
	}
}

// Zero returns the null heuristic; A* with Zero behaves like Dijkstra with
// an early exit.
func Zero() Heuristic {
	return func(maze.Vertex, maze.Vertex) int64 { return 0 }
}

// Option configures a traversal via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a single traversal.
type Options struct {
	// OnSettle is called when a vertex is settled: once per vertex, except
	// under AStar where a shorter distance found later settles it again.
	OnSettle func(v maze.Vertex, dist int64)

	// MaxDistance bounds exploration: vertices farther than this are not
	// reached. Infinity disables the bound.
	MaxDistance int64

	// UnitWeights counts every move as 1 regardless of edge weight.
	UnitWeights bool

	// Relax pushes a neighbor only when the new distance beats its best known
	// one. Disabled, every unsettled neighbor is pushed (plain DFS behavior).
	Relax bool

	heuristic Heuristic
	target    maze.Vertex
	err       error
}

// DefaultOptions returns Options with no bound, real weights, relaxation on
// and a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		OnSettle:    func(maze.Vertex, int64) {},
		MaxDistance: Infinity,
		Relax:       true,
		target:      maze.NoVertex,
	}
}

// WithOnSettle registers a callback run each time a vertex is settled.
func WithOnSettle(fn func(v maze.Vertex, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithMaxDistance stops exploring past distance d.
//
//	d ≥ 0: vertices with distance > d are not reached
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDistance = d
	}
}

// WithUnitWeights counts every move as 1.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// WithRelaxation toggles the "push only on improvement" rule.
func WithRelaxation(on bool) Option {
	return func(o *Options) { o.Relax = on }
}

// withGoal turns a heap traversal into A*: priorities become dist+h(v) and
// the search stops once target is settled.
func withGoal(target maze.Vertex, h Heuristic) Option {
	return func(o *Options) {
		o.target = target
		o.heuristic = h
	}
}

// Result holds the outcome of a traversal:
//   - Dist: final distance of every reached vertex (unreached are absent).
//   - Parent: routing table; Parent[Source] == maze.NoVertex.
//   - Order: vertices in settle order, Source first.
type Result struct {
	Source maze.Vertex
	Dist   map[maze.Vertex]int64
	Parent route.Table
	Order  []maze.Vertex
}

// Reached reports whether v was settled.
func (r *Result) Reached(v maze.Vertex) bool {
	_, ok := r.Dist[v]

	return ok
}

// Distance returns the distance to v, or Infinity when v was not reached.
func (r *Result) Distance(v maze.Vertex) int64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}

	return Infinity
}

// PathTo reconstructs the route Source→v from the routing table.
// Fails with route.ErrNoRouteFound if v was not reached.
func (r *Result) PathTo(v maze.Vertex) (route.Route, error) {
	return route.Reconstruct(r.Parent, r.Source, v)
}
