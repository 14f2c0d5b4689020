package heuristic

import (
	"errors"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
)

// ErrInvalidParameter is returned for a non-positive depth, breadth or k.
var ErrInvalidParameter = errors.New("heuristic: invalid parameter")

// Choice is the selected next target and how to get there.
type Choice struct {
	Target maze.Vertex
	Cost   int64
	Route  route.Route
	Found  bool
}

// Chain is a greedy visiting order over several targets.
type Chain struct {
	// Order lists targets in visiting order.
	Order []maze.Vertex
	// Route is the full walk, starting at the origin.
	Route route.Route
	// Cost is the total weight of Route.
	Cost int64
	// Unreached holds targets no leg could reach, ascending.
	Unreached []maze.Vertex
}

// none is the empty Choice.
func none() Choice {
	return Choice{Target: maze.NoVertex}
}
