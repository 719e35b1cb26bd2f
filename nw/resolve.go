package nw

import (
	"fmt"

	"github.com/katalvlaran/seqalign/table"
)

// Choose returns the best of the three candidates and the move it came from.
// Ties prefer Diagonal, then Up, then Left.
func Choose(diag, up, left int64) (int64, Move) {
	best, move := diag, Diagonal
	if up > best {
		best, move = up, Up
	}
	if left > best {
		best, move = left, Left
	}

	return best, move
}

// Resolve computes cell (r, c) of t from its diagonal, up and left
// neighbours and the symbols a[r-1], b[c-1].
//
// Contract:
//   - r, c >= 1, otherwise ErrBoundaryCell.
//   - t must be (len(a)+1)x(len(b)+1), otherwise ErrShapeMismatch.
//   - All three predecessors must be resolved, otherwise *PrecursorError.
//   - An already resolved cell is left untouched and (None, nil) is returned.
//
// Complexity: O(1).
func Resolve(t *table.Table, r, c int, a, b string, s Scoring) (Move, error) {
	if t.Rows() != len(a)+1 || t.Cols() != len(b)+1 {
		return None, fmt.Errorf("%w: table %dx%d, sequences %d/%d",
			ErrShapeMismatch, t.Rows(), t.Cols(), len(a), len(b))
	}
	if r == 0 || c == 0 {
		return None, fmt.Errorf("%w: (%d,%d)", ErrBoundaryCell, r, c)
	}

	self, err := t.Cell(r, c)
	if err != nil {
		return None, err
	}
	if self.Resolved {
		return None, nil
	}

	diag, err := predecessor(t, r, c, r-1, c-1)
	if err != nil {
		return None, err
	}
	up, err := predecessor(t, r, c, r-1, c)
	if err != nil {
		return None, err
	}
	left, err := predecessor(t, r, c, r, c-1)
	if err != nil {
		return None, err
	}

	if a[r-1] == b[c-1] {
		diag += s.Match
	} else {
		diag += s.Mismatch
	}
	best, move := Choose(diag, up+s.Gap, left+s.Gap)
	if err = t.Resolve(r, c, best); err != nil {
		return None, err
	}

	return move, nil
}

// predecessor reads a resolved neighbour of (r, c).
func predecessor(t *table.Table, r, c, pr, pc int) (int64, error) {
	cell, err := t.Cell(pr, pc)
	if err != nil {
		return 0, err
	}
	if !cell.Resolved {
		return 0, &PrecursorError{Row: r, Col: c, PredRow: pr, PredCol: pc}
	}

	return cell.Score, nil
}
