// Package tsp orders a small set of points of interest exactly.
//
// Input is a Matrix of pairwise travel costs (typically a metagraph.MetaGraph);
// output is the visiting order with least total cost. By default the walk is
// an open path: it starts at WithStart (index 0) and ends wherever is
// cheapest, since a rat never has to come home. WithClosed(true) asks for a
// Hamiltonian cycle instead.
//
// Two exact algorithms:
//
//   - BranchAndBound - depth-first over permutations with one owned search
//     engine; children are tried in ascending edge cost, and a branch is cut as
//     soon as its cost plus an admissible degree bound reaches the incumbent.
//     Worst case O(n!), practical up to a dozen or so points.
//   - HeldKarp - dynamic programming over subsets, O(n²·2ⁿ) time and
//     O(n·2ⁿ) memory; refused above MaxHeldKarp points.
//
// Missing edges are encoded as Infinity. A negative cost is rejected.
//
// Errors:
//
//	ErrEmptyMatrix      - zero points.
//	ErrStartOutOfRange  - start index outside [0, n).
//	ErrNegativeWeight   - some At(i, j) < 0.
//	ErrIncompleteGraph  - no path/cycle through every point has finite cost.
//	ErrTooLarge         - HeldKarp on more than MaxHeldKarp points.
//	ErrOptionViolation  - invalid option.
package tsp
