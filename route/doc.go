// Package route turns search output into something an agent can execute.
//
// A routing Table maps every reached vertex to its predecessor (the source maps
// to maze.NoVertex). Reconstruct walks a Table back from a target to build a
// Route (source first), and ToActions converts a Route into the per-turn moves
// the game engine understands: north, south, east, west, or stay.
//
// Errors:
//
//	ErrNoRouteFound     - target not in the table, or the predecessor walk breaks.
//	ErrNonAdjacentStep  - two consecutive route vertices are not one move apart.
//	ErrUnknownAction    - ParseAction got an unrecognized name.
package route
