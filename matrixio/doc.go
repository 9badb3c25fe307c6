// Package matrixio reads and writes integer cost matrices as delimited
// text, the interchange format used by the assignment examples.
//
// What:
//
//   - Load / LoadFile parse a matrix from whitespace- or comma-delimited
//     text. Blank lines and lines starting with '#' are skipped.
//   - Fprint writes a matrix as right-aligned columns for console display.
//
// Format:
//
//	# n×n integer matrix, one row per line
//	4  1  3
//	2, 0, 5
//	3  2  2
//
// Loading checks only that the text parses into rows of equal length —
// squareness and sign are the solver's contract and are validated by
// package assignment, the single owner of input validation.
//
// Errors:
//
//   - ErrEmptyInput — no data rows in the input.
//   - ErrRaggedRow  — a row with a different number of cells than the first.
//   - CellError     — a cell that does not parse as an integer; wraps the
//     strconv failure and carries the 1-based row/column position.
package matrixio
