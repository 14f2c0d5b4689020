package maze

import (
	"fmt"
	"sort"
)

// Sparse is an adjacency-map backed Graph (PyRat's "dictionary" representation).
//
// adj[u][v] = weight of u→v. Any vertex mentioned only as a neighbor is added
// as a vertex with no outgoing moves, so a one-way edge never points at a
// vertex the graph does not know.
type Sparse struct {
	width, height int
	adj           map[Vertex]map[Vertex]int
	neighbors     map[Vertex][]Vertex // sorted per vertex
	vertices      []Vertex            // sorted
}

// NewSparse builds a Sparse graph from a PyRat-style adjacency map.
// The input is deep-copied.
//
// Stage 1 (Validate): dimensions, vertex range, weights ≥ 1, no self-loops.
// Stage 2 (Prepare): copy the map and precompute sorted neighbor lists.
// Complexity: O(V log V + E log d).
func NewSparse(width, height int, adj map[int]map[int]int) (*Sparse, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	copied := make(map[Vertex]map[Vertex]int, len(adj))
	for u, row := range adj {
		uv := Vertex(u)
		if !inRange(uv, width, height) {
			return nil, fmt.Errorf("%w: %d outside %dx%d", ErrInvalidVertex, u, width, height)
		}
		if copied[uv] == nil {
			copied[uv] = make(map[Vertex]int, len(row))
		}
		for v, w := range row {
			vv := Vertex(v)
			if err := checkEdge(uv, vv, w, width, height); err != nil {
				return nil, err
			}
			copied[uv][vv] = w
			if _, ok := copied[vv]; !ok {
				copied[vv] = make(map[Vertex]int)
			}
		}
	}

	return newSparse(width, height, copied), nil
}

// newSparse finalizes an already validated adjacency map (owned by the callee).
func newSparse(width, height int, adj map[Vertex]map[Vertex]int) *Sparse {
	s := &Sparse{
		width:     width,
		height:    height,
		adj:       adj,
		neighbors: make(map[Vertex][]Vertex, len(adj)),
		vertices:  make([]Vertex, 0, len(adj)),
	}
	for u, row := range adj {
		s.vertices = append(s.vertices, u)
		nbrs := make([]Vertex, 0, len(row))
		for v := range row {
			nbrs = append(nbrs, v)
		}
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		s.neighbors[u] = nbrs
	}
	sort.Slice(s.vertices, func(i, j int) bool { return s.vertices[i] < s.vertices[j] })

	return s
}

// checkEdge validates a single u→v edge of weight w.
func checkEdge(u, v Vertex, w, width, height int) error {
	if !inRange(v, width, height) {
		return fmt.Errorf("%w: %d outside %dx%d", ErrInvalidVertex, v, width, height)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if w < 1 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrBadWeight, u, v, w)
	}

	return nil
}

// Width returns the number of columns.
func (s *Sparse) Width() int { return s.width }

// Height returns the number of rows.
func (s *Sparse) Height() int { return s.height }

// Has reports whether v is present in the adjacency map.
func (s *Sparse) Has(v Vertex) bool {
	_, ok := s.adj[v]

	return ok
}

// Vertices returns all vertices ascending.
func (s *Sparse) Vertices() []Vertex { return s.vertices }

// Neighbors returns the sorted out-neighbors of v.
func (s *Sparse) Neighbors(v Vertex) ([]Vertex, error) {
	nbrs, ok := s.neighbors[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	return nbrs, nil
}

// Weight returns the cost of u→v.
func (s *Sparse) Weight(u, v Vertex) (int, error) {
	row, ok := s.adj[u]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, u)
	}
	if !s.Has(v) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	w, ok := row[v]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrNoEdge, u, v)
	}

	return w, nil
}

// Adjacency returns a deep copy of the backing map in PyRat's plain-int shape.
// Complexity: O(V + E).
func (s *Sparse) Adjacency() map[int]map[int]int {
	out := make(map[int]map[int]int, len(s.adj))
	for u, row := range s.adj {
		r := make(map[int]int, len(row))
		for v, w := range row {
			r[int(v)] = w
		}
		out[int(u)] = r
	}

	return out
}
