package tsp

import "fmt"

// Solve returns the cheapest order in which to visit every point of m.
//
// Validation (in order): options, non-empty matrix, start in range,
// no negative entry. n == 1 yields Tour [start] with cost 0.
func Solve(m Matrix, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if m == nil || m.Len() == 0 {
		return Result{}, ErrEmptyMatrix
	}
	n := m.Len()
	if cfg.Start >= n {
		return Result{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, cfg.Start, n)
	}
	w, err := prefetch(m)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return Result{Tour: []int{cfg.Start}, Cost: 0}, nil
	}

	switch cfg.Algorithm {
	case HeldKarp:
		return heldKarp(n, w, cfg)
	default:
		return branchAndBound(n, w, cfg)
	}
}

// prefetch copies m into a flat row-major buffer and rejects negative costs.
func prefetch(m Matrix) ([]int64, error) {
	n := m.Len()
	w := make([]int64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			x := m.At(i, j)
			if x < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeWeight, i, j, x)
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}

// TourCost sums the consecutive edges of tour over m; Infinity if any is missing.
func TourCost(m Matrix, tour []int) int64 {
	var total int64
	for i := 1; i < len(tour); i++ {
		c := m.At(tour[i-1], tour[i])
		if c == Infinity {
			return Infinity
		}
		total += c
	}

	return total
}
