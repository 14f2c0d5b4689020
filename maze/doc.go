// Package maze models a PyRat maze as a read-only weighted graph over grid cells.
//
// What:
//
//   - Vertex is a cell index in [0, Width*Height), row-major:
//     row = v / Width, col = v % Width.
//   - Graph is the capability set every algorithm in this module consumes:
//     Neighbors, Weight, Vertices (plus Width/Height for coordinate math).
//   - Two concrete backings with identical observable behavior:
//     Sparse (adjacency map, PyRat "dictionary" representation) and
//     Dense  (flat n×n weight matrix, PyRat "matrix" representation).
//   - FromRepresentation selects the backing from a raw value at construction time.
//   - NewGrid builds open 4-connected grids with walls, mud and isolated cells.
//   - Components / Reachable answer connectivity questions before planning.
//
// Invariants:
//
//   - Weights are positive integers (≥ 1); mud is simply a heavier edge.
//   - No self-loops.
//   - Symmetry is typical but not required: Weight(u,v) may differ from Weight(v,u).
//   - Neighbors and Vertices are sorted ascending, so every traversal built on
//     top of a Graph is deterministic.
//
// Errors:
//
//	ErrInvalidVertex             - vertex out of range or absent from a sparse backing.
//	ErrUnsupportedRepresentation - FromRepresentation got an unknown shape.
//	ErrNoEdge                    - Weight(u,v) where v is not a neighbor of u.
//	ErrInvalidDimensions         - non-positive width/height or mis-sized matrix.
//	ErrBadWeight                 - weight < 1.
//	ErrSelfLoop                  - edge from a vertex to itself.
//	ErrOptionViolation           - invalid grid option.
//
// Complexity:
//
//   - Neighbors, Weight, Has: O(1) (neighbor lists are precomputed).
//   - Vertices: O(1) (returns the precomputed sorted slice).
//   - Construction: O(V + E) sparse, O(V²) dense.
package maze
