// Package assignment solves the linear assignment problem: given an n×n
// matrix of non-negative integer costs between two vertex sets X and Y
// (workers and tasks), find the perfect matching X→Y of minimum total cost
// using the primal-dual Hungarian (Kuhn–Munkres) method.
//
// What:
//
//   - Solve(cost) runs the full pipeline: validation ▸ row/column reduction ▸
//     zero-edge graph ▸ augmenting-path search ▸ dual adjustment ▸ matching.
//   - Reduce(m) applies the row-then-column minimum subtraction in place.
//   - Price(cost, mx) evaluates a matching against the ORIGINAL cost matrix.
//
// Why:
//
//   - Task scheduling: assign n jobs to n machines at minimum total cost.
//   - Tracking: pair detections with tracks under a distance matrix.
//   - Any bijection-under-budget problem with integer costs.
//
// Algorithm Outline:
//  1. Subtract each row's minimum from its row, then each column's minimum
//     from its column. Every row and column now holds at least one zero;
//     the set of optimal assignments is unchanged.
//  2. Build the zero-edge bipartite graph: (i,j) is an edge iff m[i][j]==0.
//  3. For each unmatched X vertex, grow an alternating tree over zero edges
//     with an explicit-stack depth-first search. Reaching an unmatched Y
//     vertex yields an augmenting path; flip the matching along it.
//  4. If the search exhausts without reaching a free Y vertex, shift the
//     duals: subtract d = min over (visited rows × unvisited columns) from
//     the visited rows and add d to the visited columns. This keeps every
//     entry ≥ 0 and manufactures at least one new zero edge into unvisited
//     territory, so the paused search can be resumed and strictly extended.
//  5. Repeat until every X vertex is matched; the matching is then a perfect
//     bijection and Σ cost[i][mx[i]] over the original matrix is minimal.
//
// Complexity:
//
//	Time   = O(n⁴) worst case (n augmentations × n adjustments × n² scans)
//	Memory = O(n²) for the working matrix copy; O(n) per search state
//
// Errors:
//
//   - ErrEmptyMatrix        — nil or 0×0 input (nothing to match).
//   - ErrNonSquare          — ragged rows or n×m with n ≠ m.
//   - ErrNegativeCost       — a negative entry (forbidden edges must use a
//     sufficiently large finite cost instead).
//   - ErrBadMatching        — Price called with a non-bijection mx.
//   - ErrInvariantViolated  — internal progress guarantee broken; indicates
//     an implementation bug, never a legitimate input failure.
//
// Determinism: single-threaded, no randomness, no context, no logging —
// results are reproducible bit for bit across runs.
package assignment
