package strategy_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
	"github.com/katalvlaran/ratmaze/strategy"
)

// step applies a to pos when the move is legal on g; walls leave pos unchanged.
func step(g maze.Graph, pos maze.Vertex, a route.Action) maze.Vertex {
	next := route.Replay(pos, []route.Action{a}, g.Width())
	if _, err := g.Weight(pos, next); err != nil {
		return pos
	}

	return next
}

// remove drops v from targets.
func remove(targets []maze.Vertex, v maze.Vertex) []maze.Vertex {
	out := targets[:0:0]
	for _, t := range targets {
		if t != v {
			out = append(out, t)
		}
	}

	return out
}

type panicPlanner struct{}

func (panicPlanner) Plan(maze.Graph, maze.Vertex, []maze.Vertex) (strategy.Plan, error) {
	panic("boom")
}

// AgentSuite exercises the turn state machine end to end.
type AgentSuite struct {
	suite.Suite
	grid *maze.Sparse
	tsp  strategy.Planner
}

func (s *AgentSuite) SetupTest() {
	g, err := maze.NewGrid(5, 5)
	s.Require().NoError(err)
	s.grid = g
	s.tsp = &strategy.TSPPlanner{MaxExactTargets: 10}
}

// TestFiveByFive walks from the corner to the center cheese.
func (s *AgentSuite) TestFiveByFive() {
	a := strategy.NewAgent(s.tsp)
	s.Require().NoError(a.Preprocessing(s.grid, 0, []maze.Vertex{12}))
	s.Equal(strategy.Executing, a.State())

	pending := append([]route.Action(nil), a.Pending()...)
	s.Len(pending, 4)
	counts := map[route.Action]int{}
	for _, act := range pending {
		counts[act]++
	}
	s.Equal(map[route.Action]int{route.South: 2, route.East: 2}, counts)

	pos := maze.Vertex(0)
	for range pending {
		pos = step(s.grid, pos, a.Turn(s.grid, pos, []maze.Vertex{12}))
	}
	s.Equal(maze.Vertex(12), pos)

	s.Equal(route.Stay, a.Turn(s.grid, pos, nil))
	s.Equal(strategy.Done, a.State())
	stats := a.Postprocessing()
	s.Equal(strategy.Stats{Turns: 5, Plans: 1}, stats)
}

// TestTurnIdempotence replays the queue in order without replanning while
// the world does not change.
func (s *AgentSuite) TestTurnIdempotence() {
	targets := []maze.Vertex{24, 4, 20}
	a := strategy.NewAgent(s.tsp)
	s.Require().NoError(a.Preprocessing(s.grid, 0, targets))
	want := append([]route.Action(nil), a.Pending()...)

	var got []route.Action
	pos := maze.Vertex(0)
	for len(targets) > 0 && len(got) < 100 {
		act := a.Turn(s.grid, pos, targets)
		got = append(got, act)
		pos = step(s.grid, pos, act)
		targets = remove(targets, pos)
	}
	s.Equal(want, got)
	s.Equal(1, a.Stats().Plans)
	s.Zero(a.Stats().Replans)
}

// TestReplanWhenGoalEaten switches direction once the planned goal vanishes.
func (s *AgentSuite) TestReplanWhenGoalEaten() {
	g, err := maze.NewGrid(7, 1)
	s.Require().NoError(err)
	a := strategy.NewAgent(s.tsp)
	s.Require().NoError(a.Preprocessing(g, 2, []maze.Vertex{0, 6}))

	s.Equal(route.West, a.Turn(g, 2, []maze.Vertex{0, 6}))
	// an opponent took 0
	s.Equal(route.East, a.Turn(g, 1, []maze.Vertex{6}))
	s.Equal(1, a.Stats().Replans)
	s.Equal(2, a.Stats().Plans)
}

// TestReplanWhenQueueExhausted plans again for targets that appeared later.
func (s *AgentSuite) TestReplanWhenQueueExhausted() {
	g, err := maze.NewGrid(4, 1)
	s.Require().NoError(err)
	a := strategy.NewAgent(s.tsp)
	s.Require().NoError(a.Preprocessing(g, 0, []maze.Vertex{1}))

	s.Equal(route.East, a.Turn(g, 0, []maze.Vertex{1}))
	s.Equal(route.East, a.Turn(g, 1, []maze.Vertex{3}))
	s.Equal(1, a.Stats().Replans)
}

// TestInvalidateReplans replans after an external maze change.
func (s *AgentSuite) TestInvalidateReplans() {
	a := strategy.NewAgent(s.tsp)
	s.Require().NoError(a.Preprocessing(s.grid, 0, []maze.Vertex{12}))
	pos := step(s.grid, 0, a.Turn(s.grid, 0, []maze.Vertex{12}))

	a.Invalidate()
	s.Equal(strategy.Replanning, a.State())
	a.Turn(s.grid, pos, []maze.Vertex{12})
	s.Equal(1, a.Stats().Replans)
	s.Equal(strategy.Executing, a.State())
	s.Len(a.Pending(), 2)
}

// TestIsolatedTargetFallsBack stays put when nothing can be reached.
func (s *AgentSuite) TestIsolatedTargetFallsBack() {
	g, err := maze.NewGrid(3, 3, maze.WithIsolated(8))
	s.Require().NoError(err)
	var buf bytes.Buffer
	a := strategy.NewAgent(s.tsp, strategy.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	err = a.Preprocessing(g, 0, []maze.Vertex{8})
	s.ErrorIs(err, strategy.ErrNoReachableTarget)

	s.Equal(route.Stay, a.Turn(g, 0, []maze.Vertex{8}))
	s.Equal(route.Stay, a.Turn(g, 0, []maze.Vertex{8}))
	s.Equal(2, a.Stats().Fallbacks)
	s.Equal(strategy.Replanning, a.State())
	s.Contains(buf.String(), "turn fallback")
}

// TestPanicBecomesStay recovers from a misbehaving planner.
func (s *AgentSuite) TestPanicBecomesStay() {
	var buf bytes.Buffer
	a := strategy.NewAgent(panicPlanner{}, strategy.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	s.Equal(route.Stay, a.Turn(s.grid, 0, []maze.Vertex{3}))
	s.Equal(1, a.Stats().Fallbacks)
	s.Equal(1, a.Stats().Turns)
	s.Contains(buf.String(), "boom")
}

// TestPanicDuringPreprocessing surfaces the panic as an error.
func (s *AgentSuite) TestPanicDuringPreprocessing() {
	a := strategy.NewAgent(panicPlanner{})

	var err error
	s.NotPanics(func() {
		err = a.Preprocessing(s.grid, 0, []maze.Vertex{3})
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "boom")
	s.Equal(strategy.Replanning, a.State())
	s.Equal(1, a.Stats().Fallbacks)
}

// TestNoTargets goes straight to Done.
func (s *AgentSuite) TestNoTargets() {
	a := strategy.NewAgent(s.tsp)
	s.Require().NoError(a.Preprocessing(s.grid, 0, nil))
	s.Equal(strategy.Done, a.State())
	s.Equal(route.Stay, a.Turn(s.grid, 0, nil))
	s.Zero(a.Stats().Plans)
}

func TestAgentSuite(t *testing.T) {
	suite.Run(t, new(AgentSuite))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "planning", strategy.Planning.String())
	assert.Equal(t, "executing", strategy.Executing.String())
	assert.Equal(t, "replanning", strategy.Replanning.String())
	assert.Equal(t, "done", strategy.Done.String())
	assert.Equal(t, "State(9)", strategy.State(9).String())
}

// TestAgent_EveryPlannerCollectsAll plays a full game on a muddy maze with
// each planner and checks that every target is collected.
func TestAgent_EveryPlannerCollectsAll(t *testing.T) {
	g, err := maze.NewGrid(6, 6,
		maze.WithWall(2, 8),
		maze.WithWall(13, 14),
		maze.WithMud(20, 21, 4),
		maze.WithMud(27, 33, 2),
	)
	require.NoError(t, err)
	start := []maze.Vertex{3, 35, 30, 11, 22, 18, 5}

	for name, p := range allPlanners(t) {
		t.Run(name, func(t *testing.T) {
			targets := append([]maze.Vertex(nil), start...)
			a := strategy.NewAgent(p)
			require.NoError(t, a.Preprocessing(g, 0, targets))

			pos := maze.Vertex(0)
			for turn := 0; turn < 500 && len(targets) > 0; turn++ {
				pos = step(g, pos, a.Turn(g, pos, targets))
				targets = remove(targets, pos)
			}
			assert.Empty(t, targets)
			stats := a.Postprocessing()
			assert.Zero(t, stats.Fallbacks)
			assert.Equal(t, strategy.Done, a.State())
		})
	}
}
