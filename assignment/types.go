// Package assignment - shared types and sentinel errors for the Hungarian
// solver. All user-facing failures are sentinel errors comparable with
// errors.Is; the package never panics on user input.
package assignment

import "errors"

// unset marks an X or Y vertex with no partner (internal 0-based bookkeeping).
const unset = -1

var (
	// ErrEmptyMatrix indicates a nil or zero-size cost matrix.
	ErrEmptyMatrix = errors.New("assignment: cost matrix must have at least one row and one column")

	// ErrNonSquare indicates ragged rows or a non-square cost matrix.
	ErrNonSquare = errors.New("assignment: cost matrix must be square")

	// ErrNegativeCost indicates a negative entry in the cost matrix.
	ErrNegativeCost = errors.New("assignment: cost matrix entries must be non-negative")

	// ErrBadMatching indicates that a matching passed to Price is not a
	// bijection of {1..n} or has the wrong length.
	ErrBadMatching = errors.New("assignment: matching is not a bijection of 1..n")

	// ErrInvariantViolated indicates that the solver's progress guarantee
	// was broken. The primal-dual method precludes this for valid input;
	// observing it means an implementation bug, not an input failure.
	ErrInvariantViolated = errors.New("assignment: internal invariant violated")
)

// Result holds the outcome of Solve.
//
// Vertex ids are 1-based: MX[i-1] = j means X vertex i is matched to Y
// vertex j, and the mutual-inverse invariant MX[i-1] = j ⇔ MY[j-1] = i
// holds for every entry. Both slices have length n with no unset entries.
type Result struct {
	// MX maps each X vertex (worker) to its Y partner (task).
	MX []int

	// MY maps each Y vertex (task) to its X partner (worker); exact
	// inverse of MX.
	MY []int

	// Price is the total cost of the matching evaluated against the
	// original (unreduced) matrix.
	Price int
}
