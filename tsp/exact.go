package tsp

import "fmt"

// heldKarp solves the instance by dynamic programming over subsets.
//
// dp[mask*n+j] = least cost of a path that starts at start, visits exactly
// the points of mask (which contains start) and ends at j. Open mode takes
// the best dp[full][j]; closed mode adds the edge j→start first.
// Ties resolve to the smaller index.
//
// Time:   O(n²·2ⁿ)
// Memory: O(n·2ⁿ)
func heldKarp(n int, w []int64, cfg Options) (Result, error) {
	if n > MaxHeldKarp {
		return Result{}, fmt.Errorf("%w: %d points (max %d)", ErrTooLarge, n, MaxHeldKarp)
	}
	at := func(u, v int) int64 { return w[u*n+v] }
	start := cfg.Start
	full := (1 << n) - 1
	startMask := 1 << start

	// 1) Allocate DP and parent tables.
	dp := make([]int64, (full+1)*n)
	parent := make([]int, (full+1)*n)
	for i := range dp {
		dp[i] = Infinity
		parent[i] = -1
	}
	dp[startMask*n+start] = 0

	// 2) Fill masks containing start in increasing order.
	for mask := startMask; mask <= full; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				base, c := dp[prev*n+k], at(k, j)
				if base == Infinity || c == Infinity {
					continue
				}
				if cand := base + c; cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	// 3) Pick the best endpoint.
	best, last := Infinity, -1
	for j := 0; j < n; j++ {
		if j == start {
			continue
		}
		total := dp[full*n+j]
		if total == Infinity {
			continue
		}
		if cfg.Closed {
			c := at(j, start)
			if c == Infinity {
				continue
			}
			total += c
		}
		if total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	// 4) Walk the parent table back to start.
	tourLen := n
	if cfg.Closed {
		tourLen = n + 1
	}
	tour := make([]int, tourLen)
	if cfg.Closed {
		tour[n] = start
	}
	mask, j := full, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask*n+j]
		mask ^= 1 << j
		j = p
	}
	tour[0] = start

	return Result{Tour: tour, Cost: best}, nil
}
