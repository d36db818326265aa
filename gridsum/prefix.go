package gridsum

// Prefix is a 2-D cumulative-sum grid answering rectangle-sum queries in
// O(1) after an O(rows×cols) build. It is immutable once constructed.
type Prefix struct {
	rows, cols int
	sum        [][]int64 // (rows+1) × (cols+1), sum[r][c] = sum of values[0..r)[0..c)
}

// FromValues builds a Prefix over a rows×cols value matrix (0-based).
// Returns ErrEmptyGrid for missing rows/columns and ErrNonRectangular for
// ragged input. The input is read once and not retained.
func FromValues(values [][]int64) (*Prefix, error) {
	rows := len(values)
	if rows == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(values[0])

	sum := make([][]int64, rows+1)
	sum[0] = make([]int64, cols+1)
	for r := 1; r <= rows; r++ {
		if len(values[r-1]) != cols {
			return nil, ErrNonRectangular
		}
		sum[r] = make([]int64, cols+1)
		for c := 1; c <= cols; c++ {
			sum[r][c] = values[r-1][c-1] + sum[r-1][c] + sum[r][c-1] - sum[r-1][c-1]
		}
	}

	return &Prefix{rows: rows, cols: cols, sum: sum}, nil
}

// Rows reports the grid height.
func (p *Prefix) Rows() int { return p.rows }

// Cols reports the grid width.
func (p *Prefix) Cols() int { return p.cols }

// Sum returns the total of the 1-based inclusive rectangle (r1,c1)-(r2,c2)
// by inclusion-exclusion over four prefix cells.
// Returns ErrRectOutOfRange for inverted or out-of-grid rectangles.
func (p *Prefix) Sum(r1, c1, r2, c2 int) (int64, error) {
	if err := checkRect(p.rows, p.cols, r1, c1, r2, c2); err != nil {
		return 0, err
	}

	return p.sum[r2][c2] - p.sum[r1-1][c2] - p.sum[r2][c1-1] + p.sum[r1-1][c1-1], nil
}
