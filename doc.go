// Package ratmaze is a routing toolkit for PyRat-style maze games: a rat
// moves one cell per turn on a rectangular grid, walls block moves, mud
// makes moves cost more turns, and the goal is to collect cheese.
//
// 🚀 What is inside?
//
//	• Maze models: sparse and dense adjacency, built from either representation
//	• Traversals: BFS, DFS, Dijkstra and A* over a single frontier engine
//	• Routes: parent-table reconstruction, moves ↔ actions, replay
//	• Meta-graph: pairwise shortest distances between points of interest
//	• TSP: exact open/closed tours by branch-and-bound or Held–Karp
//	• Heuristics: greedy nearest, density scoring, bounded lookahead
//	• Strategy: planners plus a turn-driven agent with replanning
//	• Server: an HTTP front end hosting one agent per game
//
// Packages:
//
//	maze/       Graph, Sparse, Dense, grid builder, coordinates, components
//	route/      Table, Route, Action and conversions
//	traversal/  Frontier engine, BFS, DFS, Dijkstra, AStar
//	metagraph/  complete weighted graph over chosen vertices
//	tsp/        Solve, TourCost
//	heuristic/  Nearest, GreedyChain, Density, Lookahead, SelectRegime
//	strategy/   Config, Planner implementations, Agent
//	server/     gin routes for game sessions
//	cmd/ratd/   the server binary
//
// Quick ASCII example (3×2, wall between 1 and 4, mud 0→3 costs 5):
//
//	    0───1───2
//	    ≈       │
//	    3───4───5
//
//	go get github.com/katalvlaran/ratmaze
package ratmaze
