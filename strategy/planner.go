package strategy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ratmaze/heuristic"
	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/metagraph"
	"github.com/katalvlaran/ratmaze/route"
	"github.com/katalvlaran/ratmaze/traversal"
	"github.com/katalvlaran/ratmaze/tsp"
)

// ErrNoReachableTarget is returned when targets exist but none can be reached.
var ErrNoReachableTarget = errors.New("strategy: no reachable target")

// Plan is a walk to execute: Route from the current position, the Actions
// that follow it, and the Goals it collects in order.
type Plan struct {
	Route   route.Route
	Actions []route.Action
	Goals   []maze.Vertex
}

// Planner builds a Plan from the current board.
type Planner interface {
	Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error)
}

// NewPlanner builds the planner named by cfg.Planner.
func NewPlanner(cfg Config) (Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algo, _ := cfg.algorithm()
	tspPlanner := &TSPPlanner{MaxExactTargets: cfg.MaxExactTargets, Closed: cfg.ClosedTour, Algorithm: algo}
	cluster := &ClusterPlanner{K: cfg.ClusterSize}

	switch cfg.Planner {
	case PlannerTSP:
		return tspPlanner, nil
	case PlannerGreedy:
		return &GreedyPlanner{}, nil
	case PlannerLookahead:
		return &LookaheadPlanner{Depth: cfg.LookaheadDepth, Breadth: cfg.LookaheadBreadth}, nil
	case PlannerDensity:
		return &DensityPlanner{Config: cfg.Density}, nil
	case PlannerCluster:
		return cluster, nil
	default:
		return &RegimePlanner{Config: cfg.Regime, Route: tspPlanner, Density: cluster}, nil
	}
}

// reachableTargets keeps the distinct targets the agent can reach, in input
// order. No targets at all is not an error; targets none of which are
// reachable is ErrNoReachableTarget.
func reachableTargets(g maze.Graph, from maze.Vertex, targets []maze.Vertex) ([]maze.Vertex, error) {
	if g == nil {
		return nil, traversal.ErrGraphNil
	}
	reach, err := maze.Reachable(g, from)
	if err != nil {
		return nil, err
	}
	seen := make(map[maze.Vertex]bool, len(targets))
	out := make([]maze.Vertex, 0, len(targets))
	for _, t := range targets {
		if reach[t] && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	if len(out) == 0 && len(targets) > 0 {
		return nil, fmt.Errorf("%w: %d target(s) from %d", ErrNoReachableTarget, len(targets), from)
	}

	return out, nil
}

// newPlan derives the action list of r.
func newPlan(width int, r route.Route, goals []maze.Vertex) (Plan, error) {
	actions, err := route.ToActions(r, width)
	if err != nil {
		return Plan{}, err
	}

	return Plan{Route: r, Actions: actions, Goals: goals}, nil
}

// single wraps a heuristic choice as a one-goal Plan.
func single(g maze.Graph, c heuristic.Choice, err error) (Plan, error) {
	if err != nil {
		return Plan{}, err
	}
	if !c.Found {
		return Plan{}, ErrNoReachableTarget
	}

	return newPlan(g.Width(), c.Route, []maze.Vertex{c.Target})
}

// TSPPlanner orders every reachable target exactly over the meta-graph and
// falls back to a greedy chain above MaxExactTargets or when no exact order
// has finite cost (one-way passages).
type TSPPlanner struct {
	MaxExactTargets int
	Closed          bool
	Algorithm       tsp.Algorithm
}

// Plan implements Planner.
func (p *TSPPlanner) Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	reach, err := reachableTargets(g, from, targets)
	if err != nil {
		return Plan{}, err
	}
	if len(reach) == 0 {
		return Plan{Route: route.Route{from}}, nil
	}
	if len(reach) > p.MaxExactTargets {
		return greedyPlan(g, from, reach)
	}

	mg, err := metagraph.Build(g, append([]maze.Vertex{from}, reach...))
	if err != nil {
		return Plan{}, err
	}
	if mg.Len() == 1 {
		// the only target is under the agent
		return Plan{Route: route.Route{from}}, nil
	}
	res, err := tsp.Solve(mg, tsp.WithClosed(p.Closed), tsp.WithAlgorithm(p.Algorithm))
	if errors.Is(err, tsp.ErrIncompleteGraph) {
		return greedyPlan(g, from, reach)
	}
	if err != nil {
		return Plan{}, err
	}

	r, err := mg.ExpandIndices(res.Tour)
	if err != nil {
		return Plan{}, err
	}
	goals := make([]maze.Vertex, 0, mg.Len()-1)
	for _, i := range res.Tour[1:] {
		if i != 0 {
			goals = append(goals, mg.Point(i))
		}
	}

	return newPlan(g.Width(), r, goals)
}

// GreedyPlanner chains nearest targets.
type GreedyPlanner struct{}

// Plan implements Planner.
func (p *GreedyPlanner) Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	reach, err := reachableTargets(g, from, targets)
	if err != nil {
		return Plan{}, err
	}

	return greedyPlan(g, from, reach)
}

func greedyPlan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	chain, err := heuristic.GreedyChain(g, from, targets)
	if err != nil {
		return Plan{}, err
	}

	return newPlan(g.Width(), chain.Route, chain.Order)
}

// LookaheadPlanner heads for the first target of the best short sequence.
type LookaheadPlanner struct {
	Depth   int
	Breadth int
}

// Plan implements Planner.
func (p *LookaheadPlanner) Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	reach, err := reachableTargets(g, from, targets)
	if err != nil {
		return Plan{}, err
	}
	if len(reach) == 0 {
		return Plan{Route: route.Route{from}}, nil
	}
	c, err := heuristic.Lookahead(g, from, reach, p.Depth, heuristic.WithBreadth(p.Breadth))

	return single(g, c, err)
}

// DensityPlanner heads for the target with the best distance/density score.
type DensityPlanner struct {
	Config heuristic.DensityConfig
}

// Plan implements Planner.
func (p *DensityPlanner) Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	reach, err := reachableTargets(g, from, targets)
	if err != nil {
		return Plan{}, err
	}
	if len(reach) == 0 {
		return Plan{Route: route.Route{from}}, nil
	}
	c, err := heuristic.DensityPick(g, from, reach, p.Config)

	return single(g, c, err)
}

// ClusterPlanner heads for the nearest of the K densest targets.
type ClusterPlanner struct {
	K int
}

// Plan implements Planner.
func (p *ClusterPlanner) Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	reach, err := reachableTargets(g, from, targets)
	if err != nil {
		return Plan{}, err
	}
	if len(reach) == 0 {
		return Plan{Route: route.Route{from}}, nil
	}
	c, err := heuristic.ClusterPick(g, from, reach, p.K)

	return single(g, c, err)
}

// RegimePlanner delegates to Route or Density depending on SelectRegime.
type RegimePlanner struct {
	Config  heuristic.RegimeConfig
	Route   Planner
	Density Planner
}

// Plan implements Planner.
func (p *RegimePlanner) Plan(g maze.Graph, from maze.Vertex, targets []maze.Vertex) (Plan, error) {
	reach, err := reachableTargets(g, from, targets)
	if err != nil {
		return Plan{}, err
	}
	if heuristic.SelectRegime(len(reach), g.Width(), g.Height(), p.Config) == heuristic.RegimeDensity {
		return p.Density.Plan(g, from, reach)
	}

	return p.Route.Plan(g, from, reach)
}
