// Package strategy drives one agent through a game, turn by turn.
//
// A Planner turns (maze, position, targets) into a Plan: a maze route, the
// per-turn actions that walk it, and the targets it collects in order. The
// Agent owns the resulting action queue and exposes the three game hooks:
//
//	Preprocessing  - plan once before the first turn (the expensive call).
//	Turn           - pop the next action; replan only when the queue is
//	                 empty or the next goal has vanished (eaten elsewhere).
//	Postprocessing - report Stats.
//
// Turn never fails: planning errors and panics are logged and become Stay.
//
// State machine:
//
//	Planning ──plan ok──▶ Executing ──queue empty / goal gone──▶ Replanning
//	    │                     ▲                                      │
//	    └──no targets──▶ Done └──────────────plan ok─────────────────┘
//
// Config selects and tunes the planner and can be loaded from YAML.
package strategy
