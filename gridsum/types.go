// Package gridsum defines sentinel errors and shared validation for the
// 2-D difference-grid and prefix-sum types.
package gridsum

import "errors"

// Sentinel errors for gridsum operations.
var (
	// ErrEmptyGrid indicates non-positive dimensions or an input with no
	// rows or no columns.
	ErrEmptyGrid = errors.New("gridsum: grid must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("gridsum: all rows must have the same length")

	// ErrRectOutOfRange indicates a rectangle outside the grid or with
	// inverted corners.
	ErrRectOutOfRange = errors.New("gridsum: rectangle out of range")
)

// checkRect validates the 1-based inclusive rectangle (r1,c1)-(r2,c2)
// against a rows×cols grid.
func checkRect(rows, cols, r1, c1, r2, c2 int) error {
	if r1 < 1 || c1 < 1 || r2 > rows || c2 > cols || r1 > r2 || c1 > c2 {
		return ErrRectOutOfRange
	}

	return nil
}
