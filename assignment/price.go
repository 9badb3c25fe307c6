package assignment

// Price evaluates a matching against the original (unreduced) cost
// matrix: Σ over i of cost[i][mx[i]]. mx uses 1-based Y ids as returned
// in Result.MX and must be a bijection of {1..n}.
//
// Pure function — neither argument is mutated.
//
// Complexity: O(n²) for validation, O(n) for the sum.
func Price(cost [][]int, mx []int) (int, error) {
	n, err := validateMatrix(cost)
	if err != nil {
		return 0, err
	}
	if err = validateMatching(mx, n); err != nil {
		return 0, err
	}

	total := 0
	for i := 0; i < n; i++ {
		total += cost[i][mx[i]-1]
	}

	return total, nil
}
