package assignment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlopt/assignment"
	"github.com/stretchr/testify/require"
)

// requireBijection asserts the mutual-inverse invariant of a Result:
// MX is a bijection of {1..n} and MY is its exact inverse.
func requireBijection(t *testing.T, res *assignment.Result, n int) {
	t.Helper()
	require.Len(t, res.MX, n)
	require.Len(t, res.MY, n)
	for i, j := range res.MX {
		require.GreaterOrEqual(t, j, 1)
		require.LessOrEqual(t, j, n)
		require.Equal(t, i+1, res.MY[j-1], "MX[%d]=%d but MY[%d]=%d", i, j, j-1, res.MY[j-1])
	}
}

// TestSolve_Cyclic3 is the diagonal-of-ones scenario: each row's cheapest
// entry sits on a distinct column, so the optimum picks all three.
func TestSolve_Cyclic3(t *testing.T) {
	cost := [][]int{
		{1, 2, 3},
		{3, 1, 2},
		{2, 3, 1},
	}
	res, err := assignment.Solve(cost)
	require.NoError(t, err)
	requireBijection(t, res, 3)
	require.Equal(t, 3, res.Price)
}

// TestSolve_RequiresDualAdjustment uses a matrix whose reduced zeros do
// not admit a perfect matching, forcing at least one dual shift.
func TestSolve_RequiresDualAdjustment(t *testing.T) {
	cost := [][]int{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	res, err := assignment.Solve(cost)
	require.NoError(t, err)
	requireBijection(t, res, 3)
	require.Equal(t, minPricePermute(cost), res.Price)
}

// TestSolve_TiedOptimum asserts only price equality with the oracle since
// several distinct matchings share the minimum.
func TestSolve_TiedOptimum(t *testing.T) {
	cost := [][]int{
		{1, 1, 5},
		{1, 1, 5},
		{5, 5, 1},
	}
	res, err := assignment.Solve(cost)
	require.NoError(t, err)
	requireBijection(t, res, 3)
	require.Equal(t, 3, res.Price)
}

// TestSolve_Single is the n = 1 boundary: one worker, one task.
func TestSolve_Single(t *testing.T) {
	res, err := assignment.Solve([][]int{{5}})
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.MX)
	require.Equal(t, []int{1}, res.MY)
	require.Equal(t, 5, res.Price)
}

// TestSolve_OracleRandom cross-checks the solver against brute force on
// random matrices for every n ≤ 8.
func TestSolve_OracleRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 8; n++ {
		for trial := 0; trial < 25; trial++ {
			cost := make([][]int, n)
			for i := range cost {
				cost[i] = make([]int, n)
				for j := range cost[i] {
					cost[i][j] = rng.Intn(20)
				}
			}
			res, err := assignment.Solve(cost)
			require.NoError(t, err, "n=%d trial=%d", n, trial)
			requireBijection(t, res, n)
			require.Equal(t, minPricePermute(cost), res.Price, "n=%d trial=%d cost=%v", n, trial, cost)
		}
	}
}

// TestSolve_InputUntouched verifies Solve never mutates the caller's
// matrix (it is still needed for pricing afterwards).
func TestSolve_InputUntouched(t *testing.T) {
	cost := [][]int{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	before := clone(cost)
	_, err := assignment.Solve(cost)
	require.NoError(t, err)
	require.Equal(t, before, cost)
}

// TestSolve_Errors verifies malformed input is rejected before any work.
func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		cost [][]int
		err  error
	}{
		{"Nil", nil, assignment.ErrEmptyMatrix},
		{"Empty", [][]int{}, assignment.ErrEmptyMatrix},
		{"Ragged", [][]int{{1, 2}, {3}}, assignment.ErrNonSquare},
		{"Rectangular", [][]int{{1, 2, 3}, {4, 5, 6}}, assignment.ErrNonSquare},
		{"Negative", [][]int{{0, 1}, {-1, 2}}, assignment.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := assignment.Solve(tc.cost)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSolve_LargeForbiddenCosts exercises the documented forbidden-edge
// convention: a sufficiently large finite cost keeps an edge out of the
// optimum without special semantics.
func TestSolve_LargeForbiddenCosts(t *testing.T) {
	const big = 1 << 30
	cost := [][]int{
		{big, 1, big},
		{2, big, big},
		{big, big, 3},
	}
	res, err := assignment.Solve(cost)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, res.MX)
	require.Equal(t, 6, res.Price)
}
