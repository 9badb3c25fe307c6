package assignment

// zeroAdjacency derives the zero-cost bipartite adjacency list from the
// current matrix snapshot: adj[i] lists, in ascending order, every Y
// vertex j (0-based) with m[i][j] == 0.
//
// The adjacency is purely derived state — it must be rebuilt after any
// mutation of m (reduction or dual adjustment) and is never patched
// incrementally.
//
// Complexity: O(n²) time, O(n + z) space where z is the zero count.
func zeroAdjacency(m [][]int) [][]int {
	n := len(m)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m[i][j] == 0 {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return adj
}
