package maze

import "fmt"

// FromRepresentation builds a Graph from whatever backing a caller holds.
//
// Accepted shapes:
//
//	map[int]map[int]int       → *Sparse (PyRat dictionary)
//	map[Vertex]map[Vertex]int → *Sparse
//	[][]int                   → *Dense  (PyRat matrix, 0 = no edge)
//	*Sparse, *Dense           → returned as-is (dimensions must match)
//
// Anything else fails with ErrUnsupportedRepresentation. The selection happens
// once here; no algorithm downstream inspects the concrete type.
func FromRepresentation(width, height int, rep any) (Graph, error) {
	switch r := rep.(type) {
	case map[int]map[int]int:
		return NewSparse(width, height, r)
	case map[Vertex]map[Vertex]int:
		adj := make(map[int]map[int]int, len(r))
		for u, row := range r {
			out := make(map[int]int, len(row))
			for v, w := range row {
				out[int(v)] = w
			}
			adj[int(u)] = out
		}

		return NewSparse(width, height, adj)
	case [][]int:
		return NewDense(width, height, r)
	case *Sparse:
		if r == nil {
			break
		}
		if r.width != width || r.height != height {
			return nil, fmt.Errorf("%w: graph is %dx%d, want %dx%d", ErrInvalidDimensions, r.width, r.height, width, height)
		}

		return r, nil
	case *Dense:
		if r == nil {
			break
		}
		if r.width != width || r.height != height {
			return nil, fmt.Errorf("%w: graph is %dx%d, want %dx%d", ErrInvalidDimensions, r.width, r.height, width, height)
		}

		return r, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedRepresentation, rep)
}

// ToDense converts any Graph into its matrix form.
// Complexity: O(n² + E).
func ToDense(g Graph) (*Dense, error) {
	n := g.Width() * g.Height()
	weights := make([][]int, n)
	for i := range weights {
		weights[i] = make([]int, n)
	}
	for _, u := range g.Vertices() {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			w, err := g.Weight(u, v)
			if err != nil {
				return nil, err
			}
			weights[u][v] = w
		}
	}

	return NewDense(g.Width(), g.Height(), weights)
}
