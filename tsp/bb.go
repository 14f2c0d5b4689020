// Branch-and-bound over visiting orders.
//
// The search owns a single engine: the current path, visited flags and the
// incumbent live in one struct and recursion depth equals the point count.
//
// Lower bound (degree relaxation): every unvisited point still needs one
// incoming edge, so the completion costs at least Σ minIn over them. Outgoing
// edges are still needed from 'last' and every unvisited point except the
// final one (open path), hence at least Σ minOut − max minOut over that set.
// In cycle mode the start still needs its incoming edge and nobody is exempt
// from leaving. LB = costSoFar + max(in, out); prune when LB ≥ best.

package tsp

import "sort"

// bbEngine holds all search data for one solve.
type bbEngine struct {
	n        int
	start    int
	closed   bool
	useBound bool

	w      []int64 // w[u*n+v]
	minIn  []int64
	minOut []int64
	order  [][]int // children of u in branching order

	visited []bool
	path    []int

	bestTour []int
	bestCost int64
}

func (e *bbEngine) at(u, v int) int64 { return e.w[u*e.n+v] }

// precomputeMinima fills minIn/minOut over other points (Infinity if none).
func (e *bbEngine) precomputeMinima() {
	e.minIn = make([]int64, e.n)
	e.minOut = make([]int64, e.n)
	for v := 0; v < e.n; v++ {
		mi, mo := Infinity, Infinity
		for u := 0; u < e.n; u++ {
			if u == v {
				continue
			}
			if c := e.at(u, v); c < mi {
				mi = c
			}
			if c := e.at(v, u); c < mo {
				mo = c
			}
		}
		e.minIn[v], e.minOut[v] = mi, mo
	}
}

// buildOrder lists, for each u, the other points either by ascending w[u→v]
// (index tiebreak) or by index.
func (e *bbEngine) buildOrder(sorted bool) {
	e.order = make([][]int, e.n)
	for u := 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v := 0; v < e.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		if sorted {
			sort.SliceStable(row, func(i, j int) bool {
				return e.at(u, row[i]) < e.at(u, row[j])
			})
		}
		e.order[u] = row
	}
}

// lowerBound returns an admissible bound on any completion of the current
// path, or Infinity when no completion can be finite.
func (e *bbEngine) lowerBound(costSoFar int64, last int) int64 {
	if !e.useBound {
		return costSoFar
	}
	var sumIn, sumOut, maxOut int64
	infOut := 0
	for v := 0; v < e.n; v++ {
		if e.visited[v] && v != last {
			continue
		}
		if !e.visited[v] {
			if e.minIn[v] == Infinity {
				return Infinity
			}
			sumIn += e.minIn[v]
		}
		if e.minOut[v] == Infinity {
			infOut++

			continue
		}
		sumOut += e.minOut[v]
		if e.minOut[v] > maxOut {
			maxOut = e.minOut[v]
		}
	}

	var extraOut int64
	if e.closed {
		if infOut > 0 || e.minIn[e.start] == Infinity {
			return Infinity
		}
		sumIn += e.minIn[e.start]
		extraOut = sumOut
	} else {
		switch infOut {
		case 0:
			extraOut = sumOut - maxOut
		case 1:
			// the dead end must be the final point
			extraOut = sumOut
		default:
			return Infinity
		}
	}

	if sumIn > extraOut {
		return costSoFar + sumIn
	}

	return costSoFar + extraOut
}

// dfs extends the path from last; depth points are already placed.
func (e *bbEngine) dfs(last, depth int, costSoFar int64) {
	if lb := e.lowerBound(costSoFar, last); lb >= e.bestCost {
		return
	}

	if depth == e.n {
		total := costSoFar
		if e.closed {
			c := e.at(last, e.start)
			if c == Infinity {
				return
			}
			total += c
		}
		if total < e.bestCost {
			e.bestCost = total
			copy(e.bestTour, e.path)
			if e.closed {
				e.bestTour[e.n] = e.start
			}
		}

		return
	}

	for _, v := range e.order[last] {
		if e.visited[v] {
			continue
		}
		c := e.at(last, v)
		if c == Infinity {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, costSoFar+c)
		e.visited[v] = false
	}
}

// branchAndBound runs the engine on a prefetched n×n buffer (n ≥ 2).
// Complexity: O(n!) worst case; O(n) per node for the bound.
func branchAndBound(n int, w []int64, cfg Options) (Result, error) {
	e := &bbEngine{
		n:        n,
		start:    cfg.Start,
		closed:   cfg.Closed,
		useBound: cfg.Bound,
		w:        w,
		visited:  make([]bool, n),
		path:     make([]int, n),
		bestCost: Infinity,
	}
	tourLen := n
	if e.closed {
		tourLen = n + 1
	}
	e.bestTour = make([]int, tourLen)
	e.precomputeMinima()
	e.buildOrder(cfg.SortedNeighbors)

	e.path[0] = e.start
	e.visited[e.start] = true
	e.dfs(e.start, 1, 0)

	if e.bestCost == Infinity {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Tour: e.bestTour, Cost: e.bestCost}, nil
}
