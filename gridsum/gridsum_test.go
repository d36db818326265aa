package gridsum_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvik/algopad/gridsum"
)

func TestNew_Validation(t *testing.T) {
	_, err := gridsum.New(0, 3)
	assert.ErrorIs(t, err, gridsum.ErrEmptyGrid)
	_, err = gridsum.New(3, -1)
	assert.ErrorIs(t, err, gridsum.ErrEmptyGrid)

	g, err := gridsum.New(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 5, g.Cols())
}

func TestDiff_SingleRect(t *testing.T) {
	g, err := gridsum.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.AddRect(1, 1, 2, 2, 5))

	assert.Equal(t, [][]int64{
		{5, 5, 0},
		{5, 5, 0},
		{0, 0, 0},
	}, g.Build())
}

func TestDiff_OverlappingRects(t *testing.T) {
	g, err := gridsum.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.AddRect(1, 1, 3, 3, 1))
	require.NoError(t, g.AddRect(2, 2, 3, 3, 10))
	require.NoError(t, g.AddRect(1, 1, 1, 3, -1))

	assert.Equal(t, [][]int64{
		{0, 0, 0},
		{1, 11, 11},
		{1, 11, 11},
	}, g.Build())
}

func TestDiff_RectValidation(t *testing.T) {
	g, err := gridsum.New(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddRect(0, 1, 2, 2, 1), gridsum.ErrRectOutOfRange)
	assert.ErrorIs(t, g.AddRect(1, 1, 4, 2, 1), gridsum.ErrRectOutOfRange)
	assert.ErrorIs(t, g.AddRect(2, 2, 1, 3, 1), gridsum.ErrRectOutOfRange)

	// Rejected rectangles stage nothing.
	assert.Equal(t, [][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, g.Build())
}

// TestDiff_MatchesNaiveApplication cross-checks the four-corner trick
// against literally adding delta to every cell of each rectangle.
func TestDiff_MatchesNaiveApplication(t *testing.T) {
	const rows, cols = 6, 7
	r := rand.New(rand.NewSource(5))

	g, err := gridsum.New(rows, cols)
	require.NoError(t, err)
	naive := make([][]int64, rows)
	for i := range naive {
		naive[i] = make([]int64, cols)
	}

	for i := 0; i < 50; i++ {
		r1, c1 := 1+r.Intn(rows), 1+r.Intn(cols)
		r2, c2 := r1+r.Intn(rows-r1+1), c1+r.Intn(cols-c1+1)
		delta := int64(r.Intn(21) - 10)
		require.NoError(t, g.AddRect(r1, c1, r2, c2, delta))
		for rr := r1; rr <= r2; rr++ {
			for cc := c1; cc <= c2; cc++ {
				naive[rr-1][cc-1] += delta
			}
		}
	}

	assert.Equal(t, naive, g.Build())
}

func TestPrefix_Sums(t *testing.T) {
	p, err := gridsum.FromValues([][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	total, err := p.Sum(1, 1, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(45), total)

	mid, err := p.Sum(2, 2, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(28), mid)

	cell, err := p.Sum(2, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cell)

	_, err = p.Sum(1, 1, 4, 3)
	assert.ErrorIs(t, err, gridsum.ErrRectOutOfRange)
}

func TestPrefix_Validation(t *testing.T) {
	_, err := gridsum.FromValues(nil)
	assert.ErrorIs(t, err, gridsum.ErrEmptyGrid)
	_, err = gridsum.FromValues([][]int64{{}})
	assert.ErrorIs(t, err, gridsum.ErrEmptyGrid)
	_, err = gridsum.FromValues([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, gridsum.ErrNonRectangular)
}

// TestDiffThenPrefix exercises the intended lifecycle: stage updates,
// build values, wrap them in a Prefix, and query rectangle sums.
func TestDiffThenPrefix(t *testing.T) {
	g, err := gridsum.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, g.AddRect(1, 1, 4, 4, 2))
	require.NoError(t, g.AddRect(2, 2, 3, 3, 3))

	p, err := gridsum.FromValues(g.Build())
	require.NoError(t, err)

	total, err := p.Sum(1, 1, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2*16+3*4), total)

	inner, err := p.Sum(2, 2, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5*4), inner)
}
