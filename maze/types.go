package maze

import "errors"

// Sentinel errors for maze construction and queries.
var (
	// ErrInvalidVertex indicates a vertex outside [0, Width*Height) or one that
	// a sparse backing does not contain.
	ErrInvalidVertex = errors.New("maze: invalid vertex")

	// ErrUnsupportedRepresentation indicates FromRepresentation was handed a
	// backing shape it does not recognize.
	ErrUnsupportedRepresentation = errors.New("maze: unsupported graph representation")

	// ErrNoEdge indicates Weight was queried for a pair that is not adjacent.
	ErrNoEdge = errors.New("maze: no edge between vertices")

	// ErrInvalidDimensions indicates non-positive dimensions or a weight
	// matrix whose side is not Width*Height.
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")

	// ErrBadWeight indicates an edge weight below 1.
	ErrBadWeight = errors.New("maze: edge weight must be >= 1")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("maze: self-loop not allowed")

	// ErrOptionViolation is returned when an invalid GridOption is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Vertex identifies a maze cell by its row-major index.
type Vertex int

// NoVertex is the "none" sentinel, e.g. the predecessor of a search source.
const NoVertex Vertex = -1

// Graph is a read-only weighted adjacency view over a maze.
//
// Implementations must return neighbors and vertices sorted ascending and must
// never be mutated after construction; callers must not modify returned slices.
type Graph interface {
	// Width is the number of columns of the maze.
	Width() int

	// Height is the number of rows of the maze.
	Height() int

	// Has reports whether v is a vertex of the graph.
	Has(v Vertex) bool

	// Vertices returns every vertex, ascending.
	Vertices() []Vertex

	// Neighbors returns the vertices reachable from v in one move, ascending.
	// Fails with ErrInvalidVertex if !Has(v).
	Neighbors(v Vertex) ([]Vertex, error)

	// Weight returns the cost of the move u→v.
	// Fails with ErrInvalidVertex or ErrNoEdge.
	Weight(u, v Vertex) (int, error)
}
