package maze

import "fmt"

// gridOffsets lists the four PyRat moves as (Δrow, Δcol).
var gridOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

type mud struct {
	a, b   Vertex
	weight int
}

// gridOptions collects the edits applied to an open grid.
type gridOptions struct {
	walls    [][2]Vertex
	muds     []mud
	isolated []Vertex
	err      error // first invalid option argument, surfaced by NewGrid
}

// GridOption configures NewGrid.
type GridOption func(*gridOptions)

// WithWall removes the passage between two orthogonally adjacent cells.
func WithWall(a, b Vertex) GridOption {
	return func(o *gridOptions) {
		o.walls = append(o.walls, [2]Vertex{a, b})
	}
}

// WithMud makes the passage a↔b cost weight turns in both directions.
// Mud is slower than an open passage, so weight < 2 is recorded as an
// option violation.
func WithMud(a, b Vertex, weight int) GridOption {
	return func(o *gridOptions) {
		if weight < 2 && o.err == nil {
			o.err = fmt.Errorf("%w: mud %d↔%d weight=%d", ErrOptionViolation, a, b, weight)

			return
		}
		o.muds = append(o.muds, mud{a: a, b: b, weight: weight})
	}
}

// WithIsolated removes every passage touching v. The cell stays a vertex.
func WithIsolated(v Vertex) GridOption {
	return func(o *gridOptions) {
		o.isolated = append(o.isolated, v)
	}
}

// NewGrid builds a width×height 4-connected maze with unit weights, then
// applies walls, mud and isolated cells in that order.
//
// Stage 1 (Validate): dimensions and every option argument (in range, adjacent).
// Stage 2 (Execute): lay out the open grid, then edit it.
// Complexity: O(W×H + k) for k options.
func NewGrid(width, height int, opts ...GridOption) (*Sparse, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	pair := func(a, b Vertex) error {
		if !inRange(a, width, height) || !inRange(b, width, height) {
			return fmt.Errorf("%w: %d↔%d outside %dx%d", ErrOptionViolation, a, b, width, height)
		}
		if Manhattan(a, b, width) != 1 {
			return fmt.Errorf("%w: %d and %d are not adjacent", ErrOptionViolation, a, b)
		}

		return nil
	}

	adj := make(map[Vertex]map[Vertex]int, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			u := Index(r, c, width)
			adj[u] = make(map[Vertex]int, 4)
			for _, d := range gridOffsets {
				nr, nc := r+d[0], c+d[1]
				if InBounds(nr, nc, width, height) {
					adj[u][Index(nr, nc, width)] = 1
				}
			}
		}
	}

	for _, w := range o.walls {
		if err := pair(w[0], w[1]); err != nil {
			return nil, err
		}
		delete(adj[w[0]], w[1])
		delete(adj[w[1]], w[0])
	}
	for _, m := range o.muds {
		if err := pair(m.a, m.b); err != nil {
			return nil, err
		}
		if _, open := adj[m.a][m.b]; open {
			adj[m.a][m.b] = m.weight
		}
		if _, open := adj[m.b][m.a]; open {
			adj[m.b][m.a] = m.weight
		}
	}
	for _, v := range o.isolated {
		if !inRange(v, width, height) {
			return nil, fmt.Errorf("%w: isolated %d outside %dx%d", ErrOptionViolation, v, width, height)
		}
		for u := range adj[v] {
			delete(adj[u], v)
		}
		adj[v] = make(map[Vertex]int)
	}

	return newSparse(width, height, adj), nil
}
