package assignment

// adjustDuals performs the dual shift that unblocks an exhausted search:
// d = min{ m[i][j] : i ∈ tree rows, j ∉ tree columns } is subtracted from
// every tree row and added to every tree column.
//
// Net effect per block:
//
//	tree×tree       −d+d = 0   (zero edges inside the tree survive)
//	tree×outside    −d         (the cell attaining d becomes a new zero)
//	outside×tree    +d
//	outside×outside unchanged
//
// d is the minimum of the only block that decreases, so every entry stays
// ≥ 0, and at least one new zero edge leads from the tree into unvisited
// territory. Had such a zero already existed, the exhausted search would
// have consumed it — which is why d must come out strictly positive here.
//
// Complexity: O(n²) time, O(1) extra space.
func adjustDuals(m [][]int, st *searchState) error {
	n := len(m)

	// 1. d = min over visited rows × unvisited columns.
	d, seen := 0, false
	for _, i := range st.ordX {
		for j := 0; j < n; j++ {
			if st.trY[j] {
				continue
			}
			if !seen || m[i][j] < d {
				d, seen = m[i][j], true
			}
		}
	}
	if !seen || d <= 0 {
		// No unvisited column left, or a zero edge the search should have
		// taken: the progress guarantee is broken.
		return ErrInvariantViolated
	}

	// 2. Row subtraction on the tree's X side.
	for _, i := range st.ordX {
		row := m[i]
		for j := 0; j < n; j++ {
			row[j] -= d
		}
	}

	// 3. Column addition on the tree's Y side.
	for j := 0; j < n; j++ {
		if !st.trY[j] {
			continue
		}
		for i := 0; i < n; i++ {
			m[i][j] += d
		}
	}

	return nil
}
