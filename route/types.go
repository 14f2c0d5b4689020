package route

import (
	"errors"

	"github.com/katalvlaran/ratmaze/maze"
)

// Sentinel errors.
var (
	// ErrNoRouteFound indicates the target is absent from the routing table or
	// the predecessor chain does not lead back to the source.
	ErrNoRouteFound = errors.New("route: no route found")

	// ErrNonAdjacentStep indicates a coordinate delta that is not a single move.
	ErrNonAdjacentStep = errors.New("route: non-adjacent step")

	// ErrUnknownAction indicates ParseAction received an unknown name.
	ErrUnknownAction = errors.New("route: unknown action")
)

// Table maps each reached vertex to its predecessor; the source maps to
// maze.NoVertex.
type Table map[maze.Vertex]maze.Vertex

// Route is a vertex sequence, source first; consecutive vertices are adjacent.
type Route []maze.Vertex

// Len returns the number of moves, i.e. len(r)-1 (0 for an empty route).
func (r Route) Len() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Last returns the final vertex, or maze.NoVertex if r is empty.
func (r Route) Last() maze.Vertex {
	if len(r) == 0 {
		return maze.NoVertex
	}

	return r[len(r)-1]
}

// Action is a single-turn move.
type Action int

const (
	Stay Action = iota
	North
	South
	East
	West
)

var actionNames = [...]string{
	Stay:  "stay",
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

// String returns the lowercase move name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}

	return actionNames[a]
}

// Delta returns the (Δrow, Δcol) of a.
func (a Action) Delta() (dr, dc int) {
	switch a {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
