package table

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Cell is one entry of the score table.
// Score is meaningful only when Resolved is true.
type Cell struct {
	Score    int64
	Resolved bool
}

// Table is a row-major grid of cells owned by a single alignment computation.
// rows and cols are fixed at construction; cells holds rows*cols entries.
//
// Distinct cells may be resolved from different goroutines as long as no
// cell is read before its writer has been synchronized with the reader
// (the wavefront filler uses one barrier per anti-diagonal).
type Table struct {
	rows, cols int
	cells      []Cell
	resolved   atomic.Int64 // count of false→true transitions
	released   bool
}

// New creates a rows×cols table of unresolved cells.
// Stage 1 (Validate): rows and cols must be >= 1.
// Stage 2 (Prepare): check rows*cols against overflow and the cell limit.
// Stage 3 (Finalize): allocate the flat buffer, converting allocation
// panics into *AllocationError.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int, opts ...Option) (*Table, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("table.New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	if rows > math.MaxInt/cols {
		return nil, &AllocationError{Rows: rows, Cols: cols, Cause: errSizeOverflow}
	}
	n := rows * cols
	if n > o.maxCells {
		return nil, &AllocationError{
			Rows:  rows,
			Cols:  cols,
			Cause: fmt.Errorf("%w (%d > %d)", errCellLimit, n, o.maxCells),
		}
	}

	cells, err := allocCells(n)
	if err != nil {
		return nil, &AllocationError{Rows: rows, Cols: cols, Cause: err}
	}

	return &Table{rows: rows, cols: cols, cells: cells}, nil
}

// allocCells recovers the runtime panic raised by make for impossible sizes.
func allocCells(n int) (cells []Cell, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	return make([]Cell, n), nil
}

// Rows returns the number of rows (0 after Release).
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}

	return t.rows
}

// Cols returns the number of columns (0 after Release).
func (t *Table) Cols() int {
	if t == nil {
		return 0
	}

	return t.cols
}

// Released reports whether Release has been called. A nil table counts as released.
func (t *Table) Released() bool {
	return t == nil || t.released
}

// Resolutions returns how many cells have been resolved so far, boundary
// cells included. A fully resolved table reports Rows()*Cols().
func (t *Table) Resolutions() int64 {
	if t == nil {
		return 0
	}

	return t.resolved.Load()
}

// indexOf computes the flat index for (row, col).
func (t *Table) indexOf(method string, row, col int) (int, error) {
	if t == nil || t.released {
		return 0, cellErrorf(method, row, col, ErrReleased)
	}
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0, cellErrorf(method, row, col, ErrOutOfRange)
	}

	return row*t.cols + col, nil
}

// InitializeBoundary sets (i,0) = gap*i and (0,j) = gap*j and marks them resolved.
// If any boundary cell is already resolved (e.g. a second call) it returns
// ErrAlreadyResolved without touching any cell.
// Complexity: O(rows + cols).
func (t *Table) InitializeBoundary(gap int64) error {
	if t == nil || t.released {
		return fmt.Errorf("Table.InitializeBoundary: %w", ErrReleased)
	}

	var i int
	for i = 0; i < t.rows; i++ {
		if t.cells[i*t.cols].Resolved {
			return cellErrorf("InitializeBoundary", i, 0, ErrAlreadyResolved)
		}
	}
	for i = 1; i < t.cols; i++ {
		if t.cells[i].Resolved {
			return cellErrorf("InitializeBoundary", 0, i, ErrAlreadyResolved)
		}
	}

	for i = 0; i < t.rows; i++ {
		t.cells[i*t.cols] = Cell{Score: gap * int64(i), Resolved: true}
	}
	// (0,0) was set by the row loop
	for i = 1; i < t.cols; i++ {
		t.cells[i] = Cell{Score: gap * int64(i), Resolved: true}
	}
	t.resolved.Add(int64(t.rows + t.cols - 1))

	return nil
}

// Cell returns a copy of the cell at (row, col).
// Complexity: O(1).
func (t *Table) Cell(row, col int) (Cell, error) {
	idx, err := t.indexOf("Cell", row, col)
	if err != nil {
		return Cell{}, err
	}

	return t.cells[idx], nil
}

// IsResolved reports whether (row, col) exists and holds a final score.
func (t *Table) IsResolved(row, col int) bool {
	idx, err := t.indexOf("IsResolved", row, col)
	if err != nil {
		return false
	}

	return t.cells[idx].Resolved
}

// Resolve fixes the score of (row, col). A cell can be resolved once;
// a second call returns ErrAlreadyResolved and keeps the first score.
// Complexity: O(1).
func (t *Table) Resolve(row, col int, score int64) error {
	idx, err := t.indexOf("Resolve", row, col)
	if err != nil {
		return err
	}
	if t.cells[idx].Resolved {
		return cellErrorf("Resolve", row, col, ErrAlreadyResolved)
	}
	t.cells[idx] = Cell{Score: score, Resolved: true}
	t.resolved.Add(1)

	return nil
}

// Final returns the score of the bottom-right cell.
func (t *Table) Final() (int64, error) {
	if t == nil || t.released {
		return 0, fmt.Errorf("Table.Final: %w", ErrReleased)
	}
	c := t.cells[len(t.cells)-1]
	if !c.Resolved {
		return 0, cellErrorf("Final", t.rows-1, t.cols-1, ErrUnresolved)
	}

	return c.Score, nil
}

// Release drops the cell buffer. It is idempotent and safe on a nil table.
func (t *Table) Release() {
	if t == nil || t.released {
		return
	}
	t.cells = nil
	t.rows, t.cols = 0, 0
	t.released = true
}

// String implements fmt.Stringer for debugging; unresolved cells print as ".".
// Complexity: O(rows*cols).
func (t *Table) String() string {
	if t == nil || t.released {
		return "<released>"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < t.rows; i++ {
		sb.WriteString("[")
		for j = 0; j < t.cols; j++ {
			c := t.cells[i*t.cols+j]
			if c.Resolved {
				fmt.Fprintf(&sb, "%3d", c.Score)
			} else {
				sb.WriteString("  .")
			}
			if j < t.cols-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
