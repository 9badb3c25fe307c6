package assignment

// searchState carries the alternating-tree bookkeeping for one starting X
// vertex. It deliberately persists across a failed search and the dual
// adjustment that follows: px/py/trX/trY only ever grow until an
// augmenting path is found, and this monotonicity is what bounds the
// number of dual adjustments per start vertex by n.
type searchState struct {
	root int    // the free X vertex this tree grows from
	px   []int  // px[x] = Y vertex through which x entered the tree (unset at root)
	py   []int  // py[y] = X vertex through which y entered the tree
	trX  []bool // X vertices currently in the tree
	trY  []bool // Y vertices currently in the tree
	ordX []int  // tree X vertices in discovery order, root first
}

// frame is one worklist entry of the explicit-stack DFS: an X vertex plus
// the index of its next unexamined zero-edge neighbor. Keeping the cursor
// in the frame (instead of the call stack) bounds auxiliary memory by n
// regardless of how deep the alternating tree grows.
type frame struct {
	x    int
	next int
}

// newSearchState creates fresh state for growing a tree rooted at root.
func newSearchState(n, root int) *searchState {
	st := &searchState{
		root: root,
		px:   make([]int, n),
		py:   make([]int, n),
		trX:  make([]bool, n),
		trY:  make([]bool, n),
		ordX: make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		st.px[i], st.py[i] = unset, unset
	}
	st.trX[root] = true
	st.ordX = append(st.ordX, root)

	return st
}

// find runs — or, after a dual adjustment, resumes — the depth-first
// augmenting-path search over the zero adjacency adj, honoring the
// current partial matching my. On success it returns the free Y vertex
// ending the path; the caller flips the matching via augment.
//
// Resumption: adj is rebuilt after every matrix mutation, so per-vertex
// cursors from the previous call cannot be carried over. Instead the
// worklist is reseeded with every tree X vertex and each is rescanned
// from its first neighbor; trY filtering skips everything examined
// before, so only edges manufactured by the adjustment can extend the
// tree. A Y vertex enters the tree at most once across all resumptions.
//
// Complexity: O(n²) amortized over all resumptions for one start vertex.
func (st *searchState) find(adj [][]int, my []int) (int, bool) {
	// Seed deepest-first so the traversal continues where the tree ends.
	stack := make([]frame, len(st.ordX))
	for i, x := range st.ordX {
		stack[len(st.ordX)-1-i] = frame{x: x}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := adj[top.x]
		descended := false
		for top.next < len(neighbors) {
			y := neighbors[top.next]
			top.next++
			if st.trY[y] {
				continue // already in the tree; revisiting is forbidden
			}
			st.py[y] = top.x
			st.trY[y] = true
			if my[y] == unset {
				return y, true // free Y vertex: augmenting path endpoint
			}
			// y is taken: pull its partner into the tree and descend.
			// The partner cannot be in the tree yet — a non-root X vertex
			// only ever enters through its own matched Y, and that Y was
			// unvisited until just now.
			xNext := my[y]
			st.px[xNext] = y
			st.trX[xNext] = true
			st.ordX = append(st.ordX, xNext)
			stack = append(stack, frame{x: xNext})
			descended = true
			break
		}
		if !descended {
			stack = stack[:len(stack)-1] // exhausted this vertex
		}
	}

	return 0, false
}

// augment flips the matching along the alternating path ending at the
// free Y vertex yEnd: walk the parent pointers back to the root, and at
// each step rebind the path's X vertex to the Y vertex it was reached
// from. Old pairs along the path are overwritten pair by pair, so the
// mutual-inverse invariant mx[x]=y ⇔ my[y]=x holds throughout.
func (st *searchState) augment(mx, my []int, yEnd int) {
	y := yEnd
	for {
		x := st.py[y]
		prev := st.px[x] // Y vertex that discovered x; unset at the root
		mx[x], my[y] = y, x
		if prev == unset {
			return
		}
		y = prev
	}
}
