package assignment_test

import "math"

// minPricePermute is the brute-force oracle: the minimum assignment price
// over all n! column permutations. Keep n ≤ 8.
func minPricePermute(cost [][]int) int {
	n := len(cost)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := math.MaxInt
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			total := 0
			for i, j := range perm {
				total += cost[i][j]
			}
			if total < best {
				best = total
			}

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

// clone returns a deep copy of m, for asserting non-mutation of inputs.
func clone(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}

	return out
}
