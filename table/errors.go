// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// All methods return these sentinels (possibly wrapped with coordinates);
// callers match them via errors.Is.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when rows < 1 or cols < 1.
	ErrBadShape = errors.New("table: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrAllocation indicates the cell buffer could not be obtained.
	// Returned errors are *AllocationError values that match this sentinel.
	ErrAllocation = errors.New("table: cannot allocate score table")

	// ErrAlreadyResolved signals an attempt to resolve a cell a second time.
	ErrAlreadyResolved = errors.New("table: cell already resolved")

	// ErrUnresolved is returned by Final when the bottom-right cell has no score yet.
	ErrUnresolved = errors.New("table: cell not resolved")

	// ErrReleased is returned by any accessor used after Release.
	ErrReleased = errors.New("table: use of released table")
)

// allocation failure causes
var (
	errCellLimit    = errors.New("cell count exceeds limit")
	errSizeOverflow = errors.New("cell count overflows int")
)

// AllocationError describes a failed table allocation.
type AllocationError struct {
	Rows, Cols int
	Cause      error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("table: cannot allocate %dx%d score table: %v", e.Rows, e.Cols, e.Cause)
}

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// Unwrap returns the underlying cause.
func (e *AllocationError) Unwrap() error { return e.Cause }

// cellErrorf wraps an underlying error with method and coordinate context.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}
