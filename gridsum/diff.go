// Package gridsum implements the 2-D difference-grid / prefix-sum pair:
// stage any number of O(1) rectangle increments on a Diff, materialize the
// cell values once with Build, then answer O(1) rectangle-sum queries
// through a Prefix.
//
// Coordinates are 1-based and rectangles are corner-inclusive at every
// public boundary, matching the rest of the toolbox; storage is 0-based
// with one guard row and column.
//
// Complexity:
//
//   - AddRect:    O(1) per staged rectangle.
//   - Build:      O(rows×cols), one prefix pass.
//   - FromValues: O(rows×cols).
//   - Sum:        O(1) per query.
package gridsum

// Diff is a 2-D difference grid: rectangle increments are staged as four
// corner deltas and only materialized by Build. Build-once, then query the
// result (directly or through a Prefix); further AddRect calls stage work
// for the next Build.
type Diff struct {
	rows, cols int
	d          [][]int64 // (rows+1) × (cols+1), the +1 absorbs corner deltas
}

// New creates an empty rows×cols difference grid.
// Non-positive dimensions yield ErrEmptyGrid.
func New(rows, cols int) (*Diff, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	d := make([][]int64, rows+1)
	for i := range d {
		d[i] = make([]int64, cols+1)
	}

	return &Diff{rows: rows, cols: cols, d: d}, nil
}

// Rows reports the grid height.
func (g *Diff) Rows() int { return g.rows }

// Cols reports the grid width.
func (g *Diff) Cols() int { return g.cols }

// AddRect stages delta onto every cell of the 1-based inclusive rectangle
// (r1,c1)-(r2,c2) in O(1), via the four-corner trick.
// Returns ErrRectOutOfRange for inverted or out-of-grid rectangles.
func (g *Diff) AddRect(r1, c1, r2, c2 int, delta int64) error {
	if err := checkRect(g.rows, g.cols, r1, c1, r2, c2); err != nil {
		return err
	}
	g.d[r1-1][c1-1] += delta
	g.d[r2][c1-1] -= delta
	g.d[r1-1][c2] -= delta
	g.d[r2][c2] += delta

	return nil
}

// Build materializes the staged rectangle increments into a fresh
// rows×cols value matrix (0-based) by one prefix-summation pass.
// The staged deltas are left in place, so Build is repeatable.
func (g *Diff) Build() [][]int64 {
	values := make([][]int64, g.rows)
	for r := 0; r < g.rows; r++ {
		values[r] = make([]int64, g.cols)
		for c := 0; c < g.cols; c++ {
			v := g.d[r][c]
			if r > 0 {
				v += values[r-1][c]
			}
			if c > 0 {
				v += values[r][c-1]
			}
			if r > 0 && c > 0 {
				v -= values[r-1][c-1]
			}
			values[r][c] = v
		}
	}

	return values
}
