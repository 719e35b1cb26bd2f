package table_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/table"
)

// TestNew_BadShape verifies that non-positive dimensions are rejected.
func TestNew_BadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		tb, err := table.New(dims[0], dims[1])
		assert.ErrorIs(t, err, table.ErrBadShape, "dims %v", dims)
		assert.Nil(t, tb)
	}
}

// TestNew_Unresolved checks that a fresh table has no resolved cells.
func TestNew_Unresolved(t *testing.T) {
	tb, err := table.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, tb.Rows())
	assert.Equal(t, 4, tb.Cols())
	assert.EqualValues(t, 0, tb.Resolutions())
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			assert.False(t, tb.IsResolved(i, j))
		}
	}
}

// TestNew_CellLimit verifies the allocation failure path for oversized tables.
func TestNew_CellLimit(t *testing.T) {
	tb, err := table.New(10, 10, table.WithMaxCells(99))
	require.Error(t, err)
	assert.Nil(t, tb)
	assert.ErrorIs(t, err, table.ErrAllocation)

	var ae *table.AllocationError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 10, ae.Rows)
	assert.Equal(t, 10, ae.Cols)

	_, err = table.New(10, 10, table.WithMaxCells(100))
	assert.NoError(t, err)
}

// TestNew_Overflow verifies rows*cols overflow is reported as an allocation failure.
func TestNew_Overflow(t *testing.T) {
	_, err := table.New(math.MaxInt/2, 3, table.WithMaxCells(math.MaxInt))
	assert.ErrorIs(t, err, table.ErrAllocation)
}

// TestWithMaxCells_Panics verifies constructor validation.
func TestWithMaxCells_Panics(t *testing.T) {
	assert.Panics(t, func() { table.WithMaxCells(0) })
	assert.Panics(t, func() { table.WithMaxCells(-5) })
}

// TestInitializeBoundary checks gap multiples along row 0 and column 0.
func TestInitializeBoundary(t *testing.T) {
	tb, err := table.New(4, 3)
	require.NoError(t, err)
	require.NoError(t, tb.InitializeBoundary(-2))

	for i := 0; i < 4; i++ {
		c, err := tb.Cell(i, 0)
		require.NoError(t, err)
		assert.True(t, c.Resolved)
		assert.EqualValues(t, -2*i, c.Score)
	}
	for j := 0; j < 3; j++ {
		c, err := tb.Cell(0, j)
		require.NoError(t, err)
		assert.True(t, c.Resolved)
		assert.EqualValues(t, -2*j, c.Score)
	}
	assert.False(t, tb.IsResolved(1, 1))
	// 4 + 3 - 1 boundary cells, origin counted once
	assert.EqualValues(t, 6, tb.Resolutions())

	err = tb.InitializeBoundary(-2)
	assert.ErrorIs(t, err, table.ErrAlreadyResolved)
	assert.EqualValues(t, 6, tb.Resolutions())
}

// TestInitializeBoundary_SingleCell covers the empty-vs-empty table.
func TestInitializeBoundary_SingleCell(t *testing.T) {
	tb, err := table.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, tb.InitializeBoundary(-1))

	score, err := tb.Final()
	require.NoError(t, err)
	assert.EqualValues(t, 0, score)
	assert.EqualValues(t, 1, tb.Resolutions())
}

// TestResolve_Once verifies the false→true transition happens exactly once.
func TestResolve_Once(t *testing.T) {
	tb, err := table.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, tb.Resolve(1, 1, 7))
	err = tb.Resolve(1, 1, 9)
	assert.ErrorIs(t, err, table.ErrAlreadyResolved)

	c, err := tb.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, table.Cell{Score: 7, Resolved: true}, c)
	assert.EqualValues(t, 1, tb.Resolutions())

	// boundary initialization must refuse once any boundary cell is set
	require.NoError(t, tb.Resolve(0, 1, 3))
	assert.ErrorIs(t, tb.InitializeBoundary(-1), table.ErrAlreadyResolved)
	assert.False(t, tb.IsResolved(0, 0), "failed initialization must not write")
}

// TestIndexing_OutOfRange verifies accessors report ErrOutOfRange instead of panicking.
func TestIndexing_OutOfRange(t *testing.T) {
	tb, err := table.New(2, 3)
	require.NoError(t, err)

	_, err = tb.Cell(2, 0)
	assert.ErrorIs(t, err, table.ErrOutOfRange)
	_, err = tb.Cell(0, -1)
	assert.ErrorIs(t, err, table.ErrOutOfRange)
	assert.ErrorIs(t, tb.Resolve(0, 3, 1), table.ErrOutOfRange)
	assert.False(t, tb.IsResolved(5, 5))
}

// TestFinal_Unresolved verifies Final refuses to report a missing score.
func TestFinal_Unresolved(t *testing.T) {
	tb, err := table.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, tb.InitializeBoundary(-1))

	_, err = tb.Final()
	assert.ErrorIs(t, err, table.ErrUnresolved)
}

// TestRelease verifies idempotent release and use-after-release errors.
func TestRelease(t *testing.T) {
	tb, err := table.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, tb.InitializeBoundary(-1))

	assert.False(t, tb.Released())
	tb.Release()
	tb.Release()
	assert.True(t, tb.Released())
	assert.Equal(t, 0, tb.Rows())
	assert.Equal(t, 0, tb.Cols())

	_, err = tb.Cell(0, 0)
	assert.ErrorIs(t, err, table.ErrReleased)
	assert.ErrorIs(t, tb.Resolve(1, 1, 0), table.ErrReleased)
	assert.ErrorIs(t, tb.InitializeBoundary(0), table.ErrReleased)
	_, err = tb.Final()
	assert.ErrorIs(t, err, table.ErrReleased)
	assert.Equal(t, "<released>", tb.String())

	var nilTable *table.Table
	assert.NotPanics(t, func() { nilTable.Release() })
	assert.Equal(t, 0, nilTable.Rows())
	assert.True(t, nilTable.Released())
}

// TestString renders resolved and unresolved cells.
func TestString(t *testing.T) {
	tb, err := table.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, tb.InitializeBoundary(-1))

	assert.Equal(t, "[  0  -1]\n[ -1   .]\n", tb.String())
}
