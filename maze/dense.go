package maze

import "fmt"

// Dense is a matrix-backed Graph (PyRat's "matrix" representation).
// weights holds n*n entries in row-major order, n = Width*Height;
// weights[u*n+v] == 0 means "no move u→v". Every cell in range is a vertex.
type Dense struct {
	width, height int
	n             int
	weights       []int      // flat backing storage, length == n*n
	neighbors     [][]Vertex // precomputed, ascending per row
	vertices      []Vertex
}

// NewDense builds a Dense graph from an n×n weight matrix, n = width*height.
//
// Stage 1 (Validate): dimensions, squareness, weights ≥ 0, zero diagonal.
// Stage 2 (Prepare): flatten rows and precompute neighbor lists.
// Complexity: O(n²) time and memory.
func NewDense(width, height int, weights [][]int) (*Dense, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if len(weights) != n {
		return nil, fmt.Errorf("%w: matrix has %d rows, want %d", ErrInvalidDimensions, len(weights), n)
	}

	d := &Dense{
		width:     width,
		height:    height,
		n:         n,
		weights:   make([]int, n*n),
		neighbors: make([][]Vertex, n),
		vertices:  make([]Vertex, n),
	}
	for u, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, u, len(row), n)
		}
		d.vertices[u] = Vertex(u)
		nbrs := make([]Vertex, 0, 4)
		for v, w := range row {
			switch {
			case w == 0:
				continue
			case u == v:
				return nil, fmt.Errorf("%w: %d", ErrSelfLoop, u)
			case w < 0:
				return nil, fmt.Errorf("%w: %d→%d weight=%d", ErrBadWeight, u, v, w)
			}
			d.weights[u*n+v] = w
			nbrs = append(nbrs, Vertex(v))
		}
		d.neighbors[u] = nbrs
	}

	return d, nil
}

// Width returns the number of columns.
func (d *Dense) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense) Height() int { return d.height }

// Has reports whether v is a cell of the maze.
func (d *Dense) Has(v Vertex) bool { return v >= 0 && int(v) < d.n }

// Vertices returns 0..n-1.
func (d *Dense) Vertices() []Vertex { return d.vertices }

// Neighbors returns the columns of row v holding a non-zero weight.
func (d *Dense) Neighbors(v Vertex) ([]Vertex, error) {
	if !d.Has(v) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	return d.neighbors[v], nil
}

// Weight returns the cost of u→v.
func (d *Dense) Weight(u, v Vertex) (int, error) {
	if !d.Has(u) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, u)
	}
	if !d.Has(v) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	w := d.weights[int(u)*d.n+int(v)]
	if w == 0 {
		return 0, fmt.Errorf("%w: %d→%d", ErrNoEdge, u, v)
	}

	return w, nil
}

// Matrix returns a copy of the backing matrix as n rows of n weights.
// Complexity: O(n²).
func (d *Dense) Matrix() [][]int {
	out := make([][]int, d.n)
	for u := range out {
		out[u] = make([]int, d.n)
		copy(out[u], d.weights[u*d.n:(u+1)*d.n])
	}

	return out
}
