package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
	"github.com/katalvlaran/ratmaze/strategy"
	"github.com/katalvlaran/ratmaze/tsp"
)

// allPlanners returns one planner of each kind with default tuning.
func allPlanners(t *testing.T) map[string]strategy.Planner {
	t.Helper()
	out := make(map[string]strategy.Planner)
	for _, name := range []string{
		strategy.PlannerTSP, strategy.PlannerGreedy, strategy.PlannerLookahead,
		strategy.PlannerDensity, strategy.PlannerCluster, strategy.PlannerRegime,
	} {
		cfg := strategy.DefaultConfig()
		cfg.Planner = name
		p, err := strategy.NewPlanner(cfg)
		require.NoError(t, err)
		out[name] = p
	}

	return out
}

// TestPlanners_PlansAreWalkable checks every planner's actions replay to the
// end of its route and that every goal is a target on that route.
func TestPlanners_PlansAreWalkable(t *testing.T) {
	g, err := maze.NewGrid(6, 5,
		maze.WithWall(1, 7),
		maze.WithMud(8, 9, 3),
		maze.WithWall(14, 20),
	)
	require.NoError(t, err)
	targets := []maze.Vertex{5, 17, 24, 29, 12}

	for name, p := range allPlanners(t) {
		t.Run(name, func(t *testing.T) {
			plan, err := p.Plan(g, 0, targets)
			require.NoError(t, err)
			require.NotEmpty(t, plan.Goals)
			require.Len(t, plan.Actions, plan.Route.Len())
			assert.Equal(t, maze.Vertex(0), plan.Route[0])
			assert.Equal(t, plan.Route.Last(), route.Replay(0, plan.Actions, g.Width()))
			for i := 1; i < len(plan.Route); i++ {
				_, err := g.Weight(plan.Route[i-1], plan.Route[i])
				require.NoError(t, err)
			}
			for _, goal := range plan.Goals {
				assert.Contains(t, targets, goal)
				assert.Contains(t, plan.Route, goal)
			}
		})
	}
}

func TestPlanners_NoReachableTarget(t *testing.T) {
	g, err := maze.NewGrid(3, 3, maze.WithIsolated(8))
	require.NoError(t, err)

	for name, p := range allPlanners(t) {
		_, err := p.Plan(g, 0, []maze.Vertex{8})
		assert.ErrorIs(t, err, strategy.ErrNoReachableTarget, name)
	}
}

func TestTSPPlanner_Order(t *testing.T) {
	g, err := maze.NewGrid(5, 1)
	require.NoError(t, err)
	p := &strategy.TSPPlanner{MaxExactTargets: 10}

	plan, err := p.Plan(g, 0, []maze.Vertex{4, 2})
	require.NoError(t, err)
	assert.Equal(t, []maze.Vertex{2, 4}, plan.Goals)
	assert.Equal(t, route.Route{0, 1, 2, 3, 4}, plan.Route)
	assert.Equal(t, []route.Action{route.East, route.East, route.East, route.East}, plan.Actions)
}

func TestTSPPlanner_ClosedTourReturns(t *testing.T) {
	g, err := maze.NewGrid(5, 1)
	require.NoError(t, err)
	p := &strategy.TSPPlanner{MaxExactTargets: 10, Closed: true, Algorithm: tsp.HeldKarp}

	plan, err := p.Plan(g, 2, []maze.Vertex{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 8, plan.Route.Len())
	assert.Equal(t, maze.Vertex(2), plan.Route.Last())
	assert.ElementsMatch(t, []maze.Vertex{0, 4}, plan.Goals)
}

func TestTSPPlanner_FallsBackToGreedy(t *testing.T) {
	g, err := maze.NewGrid(7, 1)
	require.NoError(t, err)
	exact := &strategy.TSPPlanner{MaxExactTargets: 10}
	capped := &strategy.TSPPlanner{MaxExactTargets: 1}
	greedy := &strategy.GreedyPlanner{}
	targets := []maze.Vertex{0, 5, 6}

	// three targets exceed the cap of one, so the greedy order is used
	want, err := greedy.Plan(g, 2, targets)
	require.NoError(t, err)
	got, err := capped.Plan(g, 2, targets)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []maze.Vertex{0, 5, 6}, got.Goals)

	best, err := exact.Plan(g, 2, targets)
	require.NoError(t, err)
	assert.Equal(t, []maze.Vertex{0, 5, 6}, best.Goals)
	assert.LessOrEqual(t, best.Route.Len(), got.Route.Len())
}

func TestTSPPlanner_OneWay(t *testing.T) {
	// 0 → 1 is one-way; 2 is only reachable through 1
	g, err := maze.NewSparse(3, 1, map[int]map[int]int{
		0: {1: 1},
		1: {2: 1},
		2: {1: 1},
	})
	require.NoError(t, err)

	plan, err := (&strategy.TSPPlanner{MaxExactTargets: 5}).Plan(g, 0, []maze.Vertex{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []maze.Vertex{1, 2}, plan.Goals)
}

func TestRegimePlanner_Switches(t *testing.T) {
	g, err := maze.NewGrid(10, 10)
	require.NoError(t, err)
	p, err := strategy.NewPlanner(strategy.DefaultConfig())
	require.NoError(t, err)

	few := []maze.Vertex{9, 90, 99}
	plan, err := p.Plan(g, 0, few)
	require.NoError(t, err)
	assert.Len(t, plan.Goals, 3, "route regime orders every target")

	many := make([]maze.Vertex, 0, 16)
	for v := maze.Vertex(40); len(many) < 16; v += 3 {
		many = append(many, v)
	}
	plan, err = p.Plan(g, 0, many)
	require.NoError(t, err)
	assert.Len(t, plan.Goals, 1, "density regime heads for one cluster target")
}
