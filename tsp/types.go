package tsp

import (
	"errors"
	"fmt"
	"math"
)

// Infinity marks a missing edge in a Matrix.
const Infinity int64 = math.MaxInt64

// MaxHeldKarp is the largest instance HeldKarp accepts.
const MaxHeldKarp = 16

// Sentinel errors.
var (
	// ErrEmptyMatrix is returned for a matrix with no points.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrStartOutOfRange is returned when the start index is not a point.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNegativeWeight is returned when a matrix entry is negative.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrIncompleteGraph is returned when no finite-cost tour exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrTooLarge is returned when HeldKarp is asked for more than MaxHeldKarp points.
	ErrTooLarge = errors.New("tsp: instance too large for Held-Karp")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")
)

// Matrix is a square table of travel costs; At(i, i) is ignored.
type Matrix interface {
	Len() int
	At(i, j int) int64
}

// Dense is a Matrix over a [][]int64.
type Dense [][]int64

// Len returns the number of rows.
func (d Dense) Len() int { return len(d) }

// At returns d[i][j].
func (d Dense) At(i, j int) int64 { return d[i][j] }

// Result holds the outcome of a solve.
type Result struct {
	// Tour lists point indices in visiting order, Tour[0] == start.
	// Open path: len == n. Closed cycle: len == n+1 and Tour[n] == start
	// (for n == 1 the tour is just [start]).
	Tour []int

	// Cost is the total of the traversed edges.
	Cost int64
}

// Algorithm selects the exact solver.
type Algorithm int

const (
	// BranchAndBound is depth-first search with pruning (default).
	BranchAndBound Algorithm = iota
	// HeldKarp is the subset dynamic program.
	HeldKarp
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case BranchAndBound:
		return "branch-and-bound"
	case HeldKarp:
		return "held-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Option configures Solve.
type Option func(*Options)

// Options holds solver configuration.
type Options struct {
	// Start is the index the tour begins at.
	Start int

	// Closed requests a cycle back to Start instead of an open path.
	Closed bool

	// Algorithm selects the solver.
	Algorithm Algorithm

	// Bound enables the degree lower bound in BranchAndBound. Disabled, only
	// the running cost is compared with the incumbent.
	Bound bool

	// SortedNeighbors makes BranchAndBound try cheaper children first.
	// Disabled, children are tried in index order.
	SortedNeighbors bool

	err error
}

// DefaultOptions returns an open path from 0, solved by BranchAndBound with
// bounding and sorted branching.
func DefaultOptions() Options {
	return Options{
		Start:           0,
		Algorithm:       BranchAndBound,
		Bound:           true,
		SortedNeighbors: true,
	}
}

// WithStart sets the start index. A negative index is an option violation;
// an index ≥ n is reported by Solve as ErrStartOutOfRange.
func WithStart(i int) Option {
	return func(o *Options) {
		if i < 0 {
			o.err = fmt.Errorf("%w: start cannot be negative (%d)", ErrOptionViolation, i)

			return
		}
		o.Start = i
	}
}

// WithClosed toggles cycle mode.
func WithClosed(closed bool) Option {
	return func(o *Options) { o.Closed = closed }
}

// WithAlgorithm selects the solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != BranchAndBound && a != HeldKarp {
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))

			return
		}
		o.Algorithm = a
	}
}

// WithBound toggles the BranchAndBound lower bound.
func WithBound(on bool) Option {
	return func(o *Options) { o.Bound = on }
}

// WithSortedNeighbors toggles ascending-cost branching in BranchAndBound.
func WithSortedNeighbors(on bool) Option {
	return func(o *Options) { o.SortedNeighbors = on }
}
