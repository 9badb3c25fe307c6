package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput indicates the input contained no data rows.
	ErrEmptyInput = errors.New("matrixio: input contains no matrix rows")

	// ErrRaggedRow indicates rows of differing lengths.
	ErrRaggedRow = errors.New("matrixio: all rows must have the same number of cells")
)

// CellError reports a cell that failed to parse as an integer.
// Row and Col are 1-based positions in the parsed matrix (comment and
// blank lines do not count).
type CellError struct {
	Row, Col int
	Text     string
	Err      error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("matrixio: bad cell %q at row %d, column %d: %v", e.Text, e.Row, e.Col, e.Err)
}

// Unwrap exposes the underlying strconv error for errors.Is/As.
func (e *CellError) Unwrap() error { return e.Err }

// Load parses an integer matrix from r. Cells are separated by any mix of
// spaces, tabs and commas; blank lines and '#' comment lines are skipped.
// Every row must have as many cells as the first.
//
// Complexity: O(total input size).
func Load(r io.Reader) ([][]int, error) {
	var (
		m       [][]int
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cells := strings.FieldsFunc(line, func(c rune) bool {
			return c == ' ' || c == '\t' || c == ','
		})
		row := make([]int, 0, len(cells))
		for col, cell := range cells {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, &CellError{Row: len(m) + 1, Col: col + 1, Text: cell, Err: err}
			}
			row = append(row, v)
		}

		if len(m) > 0 && len(row) != len(m[0]) {
			return nil, ErrRaggedRow
		}
		m = append(m, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}
	if len(m) == 0 {
		return nil, ErrEmptyInput
	}

	return m, nil
}

// LoadFile is Load over the named file.
func LoadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}
