package assignment

// Reduce applies the classic Hungarian reduction to m in place: subtract
// each row's minimum from that row, then each column's minimum (of the
// row-reduced result) from that column.
//
// Postcondition: every entry ≥ 0 and every row and every column contains
// at least one zero. Only a constant is subtracted per row/column, so the
// set of cost-minimizing assignments is unchanged — the transformation
// shifts bookkeeping, never the argmin.
//
// Reduce is idempotent: a second application subtracts all-zero minima.
//
// Complexity: O(n²) time, O(1) extra space.
func Reduce(m [][]int) error {
	if _, err := validateMatrix(m); err != nil {
		return err
	}
	reduceInPlace(m)

	return nil
}

// reduceInPlace is Reduce without revalidation, for use on matrices the
// solver already owns.
func reduceInPlace(m [][]int) {
	n := len(m)

	// 1. Row pass: strip each row's minimum.
	for i := 0; i < n; i++ {
		rowMin := m[i][0]
		for j := 1; j < n; j++ {
			if m[i][j] < rowMin {
				rowMin = m[i][j]
			}
		}
		if rowMin == 0 {
			continue // row already holds a zero
		}
		for j := 0; j < n; j++ {
			m[i][j] -= rowMin
		}
	}

	// 2. Column pass on the row-reduced result.
	for j := 0; j < n; j++ {
		colMin := m[0][j]
		for i := 1; i < n; i++ {
			if m[i][j] < colMin {
				colMin = m[i][j]
			}
		}
		if colMin == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			m[i][j] -= colMin
		}
	}
}
