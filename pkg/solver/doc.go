// Package solver finds Hamiltonian paths on rectangular grids: simple
// paths visiting every cell exactly once between two given endpoints,
// using axis-aligned single-step moves.
//
// # Algorithm
//
// The search is heuristically ordered depth-first backtracking:
//
//  1. A parity pre-check rejects analytically infeasible requests before
//     any search work. A grid path alternates checkerboard colors, so on
//     an even-area grid the endpoints must differ in color and on an
//     odd-area grid both must sit on the majority color.
//  2. Candidate moves are ranked by a composite score: Warnsdorff's rule
//     (fewest onward options first) as the primary key, a positional
//     bonus for corners and edges, and distance-to-target shaping that
//     discourages approaching the target early and encourages it in the
//     endgame. The target itself is always tried last so the path closes
//     only once everything else is placed.
//  3. A connectivity pruner abandons moves that split the unvisited
//     region into disconnected islands. A cheap cut-vertex pre-filter
//     skips the full traversal for moves that provably cannot disconnect
//     the remainder.
//
// Work is bounded by a caller-supplied iteration budget, which caps
// worst-case latency at the cost of completeness. The search is
// deterministic: the same request always explores the same nodes in the
// same order and reports the same iteration count.
//
// # Usage
//
//	res, err := solver.Find(start, end, grid.Size{Rows: 8, Cols: 8}, 100000)
//	if err != nil {
//	    return err // malformed input
//	}
//	if !res.Found {
//	    // infeasible (res.Iterations == 0) or budget exhausted
//	}
package solver
