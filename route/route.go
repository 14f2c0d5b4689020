package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratmaze/maze"
)

// Reconstruct walks table from target back to source and returns the route
// source→target. A target equal to source yields Route{source}.
//
// Fails with ErrNoRouteFound when target is not in table, the walk reaches a
// vertex without a predecessor before the source, or the walk loops.
// Complexity: O(L) for a route of L vertices.
func Reconstruct(table Table, source, target maze.Vertex) (Route, error) {
	if _, ok := table[target]; !ok {
		return nil, fmt.Errorf("%w: %d not in routing table", ErrNoRouteFound, target)
	}

	var rev Route
	cur := target
	for steps := 0; ; steps++ {
		// a well-formed table cannot be longer than itself
		if steps > len(table) {
			return nil, fmt.Errorf("%w: cycle while walking back from %d", ErrNoRouteFound, target)
		}
		rev = append(rev, cur)
		if cur == source {
			break
		}
		prev, ok := table[cur]
		if !ok || prev == maze.NoVertex {
			return nil, fmt.Errorf("%w: chain from %d stops at %d before %d", ErrNoRouteFound, target, cur, source)
		}
		cur = prev
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// ActionBetween returns the move that takes a to b on a maze of the given
// width. A zero delta is Stay; anything but a single orthogonal step fails
// with ErrNonAdjacentStep.
func ActionBetween(a, b maze.Vertex, width int) (Action, error) {
	ar, ac := maze.Coordinate(a, width)
	br, bc := maze.Coordinate(b, width)

	switch [2]int{br - ar, bc - ac} {
	case [2]int{0, 0}:
		return Stay, nil
	case [2]int{-1, 0}:
		return North, nil
	case [2]int{1, 0}:
		return South, nil
	case [2]int{0, 1}:
		return East, nil
	case [2]int{0, -1}:
		return West, nil
	}

	return Stay, fmt.Errorf("%w: %d→%d (Δ=%d,%d)", ErrNonAdjacentStep, a, b, br-ar, bc-ac)
}

// ToActions converts consecutive pairs of r into moves. A route of zero or one
// vertex yields no actions.
// Complexity: O(len(r)).
func ToActions(r Route, width int) ([]Action, error) {
	if len(r) < 2 {
		return nil, nil
	}
	actions := make([]Action, 0, len(r)-1)
	for i := 1; i < len(r); i++ {
		a, err := ActionBetween(r[i-1], r[i], width)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}

	return actions, nil
}

// Replay applies actions from source on a width-wide maze and returns the
// final vertex. Walls are not consulted; Replay is pure coordinate math.
func Replay(source maze.Vertex, actions []Action, width int) maze.Vertex {
	row, col := maze.Coordinate(source, width)
	for _, a := range actions {
		dr, dc := a.Delta()
		row, col = row+dr, col+dc
	}

	return maze.Index(row, col, width)
}

// ParseAction maps a move name to an Action. Matching is case-insensitive and
// PyRat's "nothing" is accepted as Stay.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stay", "nothing":
		return Stay, nil
	case "north":
		return North, nil
	case "south":
		return South, nil
	case "east":
		return East, nil
	case "west":
		return West, nil
	}

	return Stay, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(actionNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
