package strategy

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
)

// State is the phase of an Agent.
type State int

const (
	Planning State = iota
	Executing
	Replanning
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Planning:
		return "planning"
	case Executing:
		return "executing"
	case Replanning:
		return "replanning"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats summarizes a game from the agent's side.
type Stats struct {
	Turns     int `json:"turns"`
	Plans     int `json:"plans"`
	Replans   int `json:"replans"`
	Fallbacks int `json:"fallbacks"`
}

// AgentOption configures an Agent.
type AgentOption func(*Agent)

// WithLogger sets the logger for plan, replan and fallback events.
func WithLogger(l *slog.Logger) AgentOption {
	return func(a *Agent) {
		if l != nil {
			a.log = l
		}
	}
}

// Agent is the per-player turn driver. It is not safe for concurrent use.
type Agent struct {
	planner Planner
	log     *slog.Logger

	state State
	plan  Plan
	// cursor counts actions already returned from plan; the agent is
	// expected to stand on plan.Route[cursor].
	cursor int
	// goalAt[i] is the route index at which plan.Goals[i] is collected.
	goalAt []int
	stats  Stats
}

// NewAgent returns an Agent in the Planning state.
func NewAgent(p Planner, opts ...AgentOption) *Agent {
	a := &Agent{
		planner: p,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:   Planning,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// State returns the current phase.
func (a *Agent) State() State { return a.state }

// Stats returns the counters so far.
func (a *Agent) Stats() Stats { return a.stats }

// Pending returns the actions not yet played.
func (a *Agent) Pending() []route.Action {
	return a.plan.Actions[a.cursor:]
}

// Preprocessing computes the initial plan. With no targets the agent goes
// straight to Done. A planner panic is returned as an error and leaves the
// agent Replanning, so the next Turn tries again.
func (a *Agent) Preprocessing(g maze.Graph, start maze.Vertex, targets []maze.Vertex) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy: panic: %v", r)
			a.fallback(err)
		}
	}()
	a.state = Planning
	a.plan, a.cursor, a.goalAt = Plan{}, 0, nil
	if len(targets) == 0 {
		a.state = Done

		return nil
	}
	if err := a.replan(g, start, targets); err != nil {
		return err
	}
	a.log.Debug("initial plan",
		slog.Int("targets", len(targets)),
		slog.Int("moves", len(a.plan.Actions)),
		slog.Int("goals", len(a.plan.Goals)))

	return nil
}

// Turn returns this turn's action. It never fails: planning errors and
// panics are logged, counted as fallbacks, and answered with Stay.
func (a *Agent) Turn(g maze.Graph, pos maze.Vertex, targets []maze.Vertex) (act route.Action) {
	a.stats.Turns++
	defer func() {
		if r := recover(); r != nil {
			a.fallback(fmt.Errorf("strategy: panic: %v", r))
			act = route.Stay
		}
	}()

	if len(targets) == 0 {
		a.state = Done
		a.plan, a.cursor, a.goalAt = Plan{}, 0, nil

		return route.Stay
	}

	if a.needsReplan(targets) {
		a.state = Replanning
		if err := a.replan(g, pos, targets); err != nil {
			a.fallback(err)

			return route.Stay
		}
		a.stats.Replans++
		a.log.Debug("replanned",
			slog.Int("turn", a.stats.Turns),
			slog.Int("targets", len(targets)),
			slog.Int("moves", len(a.plan.Actions)))
	}
	if a.cursor >= len(a.plan.Actions) {
		// plan with no moves: the agent already stands on its goal
		return route.Stay
	}

	act = a.plan.Actions[a.cursor]
	a.cursor++

	return act
}

// Invalidate forces a replan on the next Turn, e.g. after the maze changed.
func (a *Agent) Invalidate() {
	if a.state != Done {
		a.state = Replanning
	}
}

// Postprocessing ends the game and returns the final Stats.
func (a *Agent) Postprocessing() Stats {
	a.state = Done
	a.log.Debug("game over",
		slog.Int("turns", a.stats.Turns),
		slog.Int("plans", a.stats.Plans),
		slog.Int("replans", a.stats.Replans),
		slog.Int("fallbacks", a.stats.Fallbacks))

	return a.stats
}

// needsReplan reports whether the queue is exhausted or the next pending
// goal is no longer a target.
func (a *Agent) needsReplan(targets []maze.Vertex) bool {
	if a.state != Executing || a.cursor >= len(a.plan.Actions) {
		return true
	}
	next, ok := a.nextGoal()
	if !ok {
		return true
	}
	for _, t := range targets {
		if t == next {
			return false
		}
	}

	return true
}

// nextGoal returns the first goal still ahead of the cursor.
func (a *Agent) nextGoal() (maze.Vertex, bool) {
	for i, at := range a.goalAt {
		if at > a.cursor {
			return a.plan.Goals[i], true
		}
	}

	return maze.NoVertex, false
}

// replan asks the planner for a fresh plan from pos.
func (a *Agent) replan(g maze.Graph, pos maze.Vertex, targets []maze.Vertex) error {
	p, err := a.planner.Plan(g, pos, targets)
	if err != nil {
		return err
	}
	a.plan, a.cursor = p, 0
	a.goalAt = goalIndices(p.Route, p.Goals)
	a.stats.Plans++
	a.state = Executing

	return nil
}

func (a *Agent) fallback(err error) {
	a.stats.Fallbacks++
	a.state = Replanning
	a.log.Warn("turn fallback",
		slog.Int("turn", a.stats.Turns),
		slog.Any("err", err))
}

// goalIndices finds, in order, the route index at which each goal is reached.
// A goal missing from the rest of the route gets index len(r).
func goalIndices(r route.Route, goals []maze.Vertex) []int {
	out := make([]int, len(goals))
	k := 0
	for i, goal := range goals {
		for k < len(r) && r[k] != goal {
			k++
		}
		out[i] = k
	}

	return out
}
