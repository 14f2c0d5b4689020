// Package metagraph compresses a maze to its points of interest.
//
// Build runs one Dijkstra per point (the agent position and every target)
// and keeps, for each, the shortest distance to every other point plus the
// routing table it came from. The result is a complete weighted graph over
// the points that a TSP solver can order, and Expand turns an order back into
// a walkable maze route.
//
// Distances are stored in a dense n×n int64 buffer; an unreachable pair holds
// Infinity. The table stays exact only while the maze and the point set are
// unchanged; any change means a rebuild.
package metagraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
	"github.com/katalvlaran/ratmaze/traversal"
	"github.com/katalvlaran/ratmaze/tsp"
)

// Infinity marks an unreachable pair.
const Infinity = traversal.Infinity

var (
	// ErrNoPoints is returned by Build when the point list is empty.
	ErrNoPoints = errors.New("metagraph: no points of interest")

	// ErrUnknownPoint is returned when a vertex is not one of the points.
	ErrUnknownPoint = errors.New("metagraph: vertex is not a point of interest")
)

var _ tsp.Matrix = (*MetaGraph)(nil)

// MetaGraph is the complete graph over points of interest.
type MetaGraph struct {
	points []maze.Vertex
	index  map[maze.Vertex]int
	dist   []int64 // dist[i*n+j]
	tables []route.Table
}

// Build computes pairwise shortest distances between points on g.
// Duplicates are dropped keeping first occurrence, so points[0] (the agent
// position by convention) stays index 0.
//
// Complexity: O(P · (V + E) log V) for P distinct points.
func Build(g maze.Graph, points []maze.Vertex) (*MetaGraph, error) {
	if g == nil {
		return nil, traversal.ErrGraphNil
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	mg := &MetaGraph{index: make(map[maze.Vertex]int, len(points))}
	for _, p := range points {
		if !g.Has(p) {
			return nil, fmt.Errorf("metagraph: point %d: %w", p, maze.ErrInvalidVertex)
		}
		if _, dup := mg.index[p]; dup {
			continue
		}
		mg.index[p] = len(mg.points)
		mg.points = append(mg.points, p)
	}

	n := len(mg.points)
	mg.dist = make([]int64, n*n)
	mg.tables = make([]route.Table, n)
	for i, p := range mg.points {
		res, err := traversal.Dijkstra(g, p)
		if err != nil {
			return nil, err
		}
		mg.tables[i] = res.Parent
		for j, q := range mg.points {
			mg.dist[i*n+j] = res.Distance(q)
		}
	}

	return mg, nil
}

// Len returns the number of distinct points.
func (mg *MetaGraph) Len() int { return len(mg.points) }

// Points returns the points in index order.
func (mg *MetaGraph) Points() []maze.Vertex { return mg.points }

// Point returns the vertex at index i.
func (mg *MetaGraph) Point(i int) maze.Vertex { return mg.points[i] }

// Index returns the index of v, or false if v is not a point.
func (mg *MetaGraph) Index(v maze.Vertex) (int, bool) {
	i, ok := mg.index[v]

	return i, ok
}

// At returns the shortest distance from point i to point j (Infinity if none).
func (mg *MetaGraph) At(i, j int) int64 { return mg.dist[i*len(mg.points)+j] }

// Weight returns the shortest distance between two point vertices.
func (mg *MetaGraph) Weight(a, b maze.Vertex) (int64, error) {
	i, ok := mg.index[a]
	if !ok {
		return Infinity, fmt.Errorf("%w: %d", ErrUnknownPoint, a)
	}
	j, ok := mg.index[b]
	if !ok {
		return Infinity, fmt.Errorf("%w: %d", ErrUnknownPoint, b)
	}

	return mg.At(i, j), nil
}

// Reachable reports whether point j can be reached from point i.
func (mg *MetaGraph) Reachable(i, j int) bool { return mg.At(i, j) != Infinity }

// Table returns the routing table rooted at point v.
func (mg *MetaGraph) Table(v maze.Vertex) (route.Table, error) {
	i, ok := mg.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPoint, v)
	}

	return mg.tables[i], nil
}

// Expand joins the maze routes between consecutive points of tour, dropping
// the duplicated joint vertex of each leg.
// Fails with ErrUnknownPoint or route.ErrNoRouteFound.
func (mg *MetaGraph) Expand(tour []maze.Vertex) (route.Route, error) {
	if len(tour) == 0 {
		return nil, nil
	}
	if _, ok := mg.index[tour[0]]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPoint, tour[0])
	}
	out := route.Route{tour[0]}
	for k := 1; k < len(tour); k++ {
		table, err := mg.Table(tour[k-1])
		if err != nil {
			return nil, err
		}
		if _, ok := mg.index[tour[k]]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPoint, tour[k])
		}
		leg, err := route.Reconstruct(table, tour[k-1], tour[k])
		if err != nil {
			return nil, err
		}
		out = append(out, leg[1:]...)
	}

	return out, nil
}

// ExpandIndices is Expand over point indices, e.g. a tsp.Result tour.
func (mg *MetaGraph) ExpandIndices(order []int) (route.Route, error) {
	tour := make([]maze.Vertex, len(order))
	for k, i := range order {
		if i < 0 || i >= len(mg.points) {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownPoint, i)
		}
		tour[k] = mg.points[i]
	}

	return mg.Expand(tour)
}
