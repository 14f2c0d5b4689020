// Package heuristic picks the next target when exact ordering is too costly.
//
// Strategies, cheapest first:
//
//   - Nearest: one Dijkstra, closest target (ties by smaller vertex id).
//   - GreedyChain: Nearest repeated from each reached target.
//   - DensityPick: distance plus a penalty for sitting far from other
//     targets, score = dist + λ·(1 − density).
//   - ClusterPick: among the k targets with the least total distance to the
//     others, the closest one.
//   - Lookahead: every ordered sequence of depth targets drawn from the
//     nearest candidates, shortest total wins; only its first leg is returned.
//
// SelectRegime switches between route-driven and density-driven play from
// the number of remaining targets and the maze area.
//
// Unreachable targets are never chosen; when nothing is reachable the Choice
// has Found == false and no error.
package heuristic
