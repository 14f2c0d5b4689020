package heuristic

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/traversal"
)

// DensityConfig tunes DensityPick.
type DensityConfig struct {
	// Radius is the Manhattan radius within which other targets count.
	Radius int `yaml:"radius"`
	// Lambda weighs the isolation penalty against travel distance.
	Lambda float64 `yaml:"lambda"`
}

// DefaultDensityConfig returns radius 5 and λ = 0.5.
func DefaultDensityConfig() DensityConfig {
	return DensityConfig{Radius: 5, Lambda: 0.5}
}

// Density scores how crowded the neighborhood of candidate is:
// Σ 1/(1+d) over the other targets at Manhattan distance d ≤ radius.
// Complexity: O(T).
func Density(width int, candidate maze.Vertex, targets []maze.Vertex, radius int) float64 {
	var score float64
	for _, t := range targets {
		if t == candidate {
			continue
		}
		if d := maze.Manhattan(candidate, t, width); d <= radius {
			score += 1 / float64(1+d)
		}
	}

	return score
}

// DistanceSum returns the total shortest-path distance from candidate to the
// other targets it can reach, together with how many it reached. Lower sums
// mean denser clusters.
// Complexity: one Dijkstra.
func DistanceSum(g maze.Graph, candidate maze.Vertex, targets []maze.Vertex) (sum int64, reached int, err error) {
	res, err := traversal.Dijkstra(g, candidate)
	if err != nil {
		return 0, 0, err
	}
	for _, t := range targets {
		if t == candidate {
			continue
		}
		if d, ok := res.Dist[t]; ok {
			sum += d
			reached++
		}
	}

	return sum, reached, nil
}

// DensityPick returns the reachable target minimizing
// dist + Lambda·(1 − Density). Ties resolve to the smaller vertex id.
// Complexity: one Dijkstra plus O(T²).
func DensityPick(g maze.Graph, from maze.Vertex, targets []maze.Vertex, cfg DensityConfig) (Choice, error) {
	if cfg.Radius < 0 {
		return none(), fmt.Errorf("%w: radius %d", ErrInvalidParameter, cfg.Radius)
	}
	res, err := traversal.Dijkstra(g, from)
	if err != nil {
		return none(), err
	}

	uniq := dedupe(targets)
	best := none()
	var bestScore float64
	for _, t := range uniq {
		d, ok := res.Dist[t]
		if !ok {
			continue
		}
		score := float64(d) + cfg.Lambda*(1-Density(g.Width(), t, uniq, cfg.Radius))
		if best.Target == maze.NoVertex || score < bestScore {
			best.Target, bestScore = t, score
		}
	}
	if best.Target == maze.NoVertex {
		return best, nil
	}
	r, err := res.PathTo(best.Target)
	if err != nil {
		return none(), err
	}

	return Choice{Target: best.Target, Cost: res.Dist[best.Target], Route: r, Found: true}, nil
}

// ClusterPick ranks targets by DistanceSum (ties by vertex id), keeps the k
// densest, and returns the one nearest to from.
// Complexity: T+1 Dijkstra runs.
func ClusterPick(g maze.Graph, from maze.Vertex, targets []maze.Vertex, k int) (Choice, error) {
	if k <= 0 {
		return none(), fmt.Errorf("%w: k=%d", ErrInvalidParameter, k)
	}
	res, err := traversal.Dijkstra(g, from)
	if err != nil {
		return none(), err
	}

	type ranked struct {
		v   maze.Vertex
		sum int64
	}
	uniq := dedupe(targets)
	var pool []ranked
	for _, t := range uniq {
		if !res.Reached(t) {
			continue
		}
		sum, _, err := DistanceSum(g, t, uniq)
		if err != nil {
			return none(), err
		}
		pool = append(pool, ranked{v: t, sum: sum})
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].sum < pool[j].sum })
	if len(pool) > k {
		pool = pool[:k]
	}

	densest := make([]maze.Vertex, len(pool))
	for i, p := range pool {
		densest[i] = p.v
	}

	return nearestIn(res, densest)
}
