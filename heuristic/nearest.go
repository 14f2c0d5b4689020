package heuristic

import (
	"sort"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/traversal"
)

// Nearest returns the target closest to from by weighted distance.
// Ties resolve to the smaller vertex id.
// Complexity: one Dijkstra, O((V + E) log V).
func Nearest(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Choice, error) {
	res, err := traversal.Dijkstra(g, from)
	if err != nil {
		return none(), err
	}

	return nearestIn(res, targets)
}

// nearestIn picks the closest reached target of an existing search.
func nearestIn(res *traversal.Result, targets []maze.Vertex) (Choice, error) {
	best := none()
	bestDist := traversal.Infinity
	for _, t := range targets {
		d, ok := res.Dist[t]
		if !ok {
			continue
		}
		if d < bestDist || (d == bestDist && t < best.Target) {
			best.Target, bestDist = t, d
		}
	}
	if best.Target == maze.NoVertex {
		return best, nil
	}
	r, err := res.PathTo(best.Target)
	if err != nil {
		return none(), err
	}

	return Choice{Target: best.Target, Cost: bestDist, Route: r, Found: true}, nil
}

// GreedyChain visits targets by repeatedly walking to the nearest remaining
// one. Targets that become unreachable are reported in Unreached.
// Complexity: O(T · (V + E) log V) for T targets.
func GreedyChain(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Chain, error) {
	remaining := dedupe(targets)
	chain := Chain{}
	cur := from
	for len(remaining) > 0 {
		c, err := Nearest(g, cur, remaining)
		if err != nil {
			return Chain{}, err
		}
		if !c.Found {
			break
		}
		chain.Order = append(chain.Order, c.Target)
		chain.Cost += c.Cost
		if len(chain.Route) == 0 {
			chain.Route = append(chain.Route, c.Route...)
		} else {
			chain.Route = append(chain.Route, c.Route[1:]...)
		}
		remaining = without(remaining, c.Target)
		cur = c.Target
	}
	chain.Unreached = remaining
	if len(chain.Route) == 0 {
		chain.Route = append(chain.Route, from)
	}

	return chain, nil
}

// dedupe returns the distinct targets, ascending.
func dedupe(targets []maze.Vertex) []maze.Vertex {
	seen := make(map[maze.Vertex]bool, len(targets))
	out := make([]maze.Vertex, 0, len(targets))
	for _, t := range targets {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// without returns vs minus v, preserving order.
func without(vs []maze.Vertex, v maze.Vertex) []maze.Vertex {
	out := vs[:0:0]
	for _, x := range vs {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
