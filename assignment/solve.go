package assignment

// Solve finds a minimum-cost perfect matching for the given n×n cost
// matrix. The input is validated, copied and reduced; the caller's matrix
// is never mutated. On success the returned Result holds the matching in
// 1-based vertex ids together with its price over the original costs.
//
// State machine per free X vertex: grow an alternating tree over zero
// edges (find); when the tree exhausts, shift the duals (adjustDuals) and
// resume the same tree over the newly created zeros; repeat until a free
// Y vertex is reached, then flip the matching along the path (augment).
// Each adjustment lets the following resumption claim at least one new Y
// vertex, so n rounds always suffice for valid input.
//
// Complexity: O(n⁴) worst case, O(n²) memory.
func Solve(cost [][]int) (*Result, error) {
	n, err := validateMatrix(cost)
	if err != nil {
		return nil, err
	}

	// 1. Private working copy; the original stays intact for pricing.
	m := cloneMatrix(cost)
	reduceInPlace(m)

	// 2. Empty partial matching, 0-based with unset sentinels.
	mx := make([]int, n)
	my := make([]int, n)
	for i := 0; i < n; i++ {
		mx[i], my[i] = unset, unset
	}

	// 3. One augmenting path per X vertex. Every vertex, including the
	//    first, goes through the same general loop.
	adj := zeroAdjacency(m)
	for x := 0; x < n; x++ {
		if mx[x] != unset {
			continue
		}
		st := newSearchState(n, x)

		augmented := false
		for round := 0; round <= n; round++ {
			yEnd, found := st.find(adj, my)
			if found {
				st.augment(mx, my, yEnd)
				augmented = true
				break
			}
			if err = adjustDuals(m, st); err != nil {
				return nil, err
			}
			adj = zeroAdjacency(m) // matrix changed; adjacency is derived
		}
		if !augmented {
			// More than n adjustments for one start vertex: the bounded
			// progress property of the method was broken.
			return nil, ErrInvariantViolated
		}
	}

	// 4. Export 1-based ids and price against the original matrix.
	res := &Result{MX: make([]int, n), MY: make([]int, n)}
	for i := 0; i < n; i++ {
		res.MX[i] = mx[i] + 1
		res.MY[i] = my[i] + 1
		res.Price += cost[i][mx[i]]
	}

	return res, nil
}
