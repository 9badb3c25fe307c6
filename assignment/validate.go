// Package assignment - input validation shared by Solve, Reduce and Price.
//
// Design principles (matching the rest of the library):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case; no hidden allocations.
package assignment

// validateMatrix verifies shape and sign of a cost matrix before any
// mutation. It returns n (matrix order) on success.
//
// Contract:
//   - cost must be non-nil with n ≥ 1 rows (n = 0 ⇒ ErrEmptyMatrix).
//   - every row must have exactly n entries (⇒ ErrNonSquare otherwise).
//   - every entry must be ≥ 0 (⇒ ErrNegativeCost otherwise).
//
// Complexity: O(n²) time, O(1) extra space.
func validateMatrix(cost [][]int) (int, error) {
	// Stage 1: shape — non-empty and square.
	n := len(cost)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		if len(cost[i]) != n {
			return 0, ErrNonSquare
		}
	}

	// Stage 2: sign — every entry non-negative.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cost[i][j] < 0 {
				return 0, ErrNegativeCost
			}
		}
	}

	return n, nil
}

// validateMatching verifies that mx has length n and is a bijection of
// {1..n}, i.e. every Y vertex appears exactly once.
//
// Complexity: O(n) time, O(n) extra space.
func validateMatching(mx []int, n int) error {
	if len(mx) != n {
		return ErrBadMatching
	}
	seen := make([]bool, n)
	for _, y := range mx {
		if y < 1 || y > n || seen[y-1] {
			return ErrBadMatching
		}
		seen[y-1] = true
	}

	return nil
}

// cloneMatrix returns a deep copy of m. Solve works on a copy so the
// caller's matrix survives untouched for price evaluation.
func cloneMatrix(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}

	return out
}
