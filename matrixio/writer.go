package matrixio

import (
	"fmt"
	"io"
	"strconv"
)

// Fprint writes m to w as right-aligned space-separated columns, one row
// per line. Column width follows the widest cell in the whole matrix so
// successive prints of reduced/adjusted variants line up on the console.
func Fprint(w io.Writer, m [][]int) error {
	width := 1
	for _, row := range m {
		for _, v := range row {
			if l := len(strconv.Itoa(v)); l > width {
				width = l
			}
		}
	}

	for _, row := range m {
		for j, v := range row {
			sep := " "
			if j == len(row)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%*d%s", width, v, sep); err != nil {
				return fmt.Errorf("matrixio: write: %w", err)
			}
		}
	}

	return nil
}
