package nw

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqalign/table"
)

const (
	// descentCheckEvery is how many stack pops Descent performs between
	// cancellation checks.
	descentCheckEvery = 4096

	// minWavefrontChunk is the smallest run of cells handed to one goroutine;
	// shorter diagonals are resolved inline.
	minWavefrontChunk = 256
)

// Fill resolves every non-boundary cell of t in an order that respects the
// dependency DAG, using opts.Strategy. The boundary must already be
// initialized. opts.Ctx is checked between rows, diagonals or batches of
// stack pops; on cancellation the table is left partially filled and the
// context error is returned.
func Fill(t *table.Table, a, b string, s Scoring, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := checkTable(t, a, b); err != nil {
		return err
	}
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	switch opts.Strategy {
	case Descent:
		return fillDescent(ctx, t, a, b, s)
	case Wavefront:
		workers := opts.Workers
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		return fillWavefront(ctx, t, a, b, s, workers)
	default:
		return fillSweep(ctx, t, a, b, s)
	}
}

// checkTable rejects released tables and tables not sized for a and b.
func checkTable(t *table.Table, a, b string) error {
	if t.Released() {
		return fmt.Errorf("nw: fill: %w", table.ErrReleased)
	}
	if t.Rows() != len(a)+1 || t.Cols() != len(b)+1 {
		return fmt.Errorf("%w: table %dx%d, sequences %d/%d",
			ErrShapeMismatch, t.Rows(), t.Cols(), len(a), len(b))
	}

	return nil
}

// fillSweep visits (1,1)..(rows-1,cols-1) row by row.
func fillSweep(ctx context.Context, t *table.Table, a, b string, s Scoring) error {
	rows, cols := t.Rows(), t.Cols()
	var r, c int
	for r = 1; r < rows; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for c = 1; c < cols; c++ {
			if _, err := Resolve(t, r, c, a, b, s); err != nil {
				return err
			}
		}
	}

	return nil
}

// frame is one pending cell on the Descent work stack. A frame is expanded
// once its unresolved predecessors have been pushed above it.
type frame struct {
	r, c     int
	expanded bool
}

// fillDescent resolves the bottom-right cell top-down. Every cell of the
// table is an ancestor of (rows-1, cols-1), so the whole table gets filled.
// The resolved flag is the memo: a cell reachable by several paths is
// computed only the first time it is popped. Boundary cells are never
// pushed; an unresolved one is reported as a *PrecursorError of the
// interior cell that needs it.
func fillDescent(ctx context.Context, t *table.Table, a, b string, s Scoring) error {
	stack := []frame{{r: t.Rows() - 1, c: t.Cols() - 1}}
	var pops int
	for len(stack) > 0 {
		pops++
		if pops%descentCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.r == 0 || f.c == 0 || t.IsResolved(f.r, f.c) {
			// only the start frame can be a boundary cell; Final reports it
			continue
		}
		if !f.expanded {
			preds := [3][2]int{{f.r - 1, f.c - 1}, {f.r - 1, f.c}, {f.r, f.c - 1}}
			for _, p := range preds {
				if (p[0] == 0 || p[1] == 0) && !t.IsResolved(p[0], p[1]) {
					return &PrecursorError{Row: f.r, Col: f.c, PredRow: p[0], PredCol: p[1]}
				}
			}
			stack = append(stack, frame{r: f.r, c: f.c, expanded: true})
			// pushed in reverse so the diagonal is handled first
			for i := len(preds) - 1; i >= 0; i-- {
				p := preds[i]
				if p[0] >= 1 && p[1] >= 1 && !t.IsResolved(p[0], p[1]) {
					stack = append(stack, frame{r: p[0], c: p[1]})
				}
			}
			continue
		}
		if _, err := Resolve(t, f.r, f.c, a, b, s); err != nil {
			return err
		}
	}

	return nil
}

// fillWavefront resolves anti-diagonals d = r+c in increasing order. Cells on
// one diagonal only depend on the two previous diagonals, so each diagonal is
// split into chunks resolved concurrently, and Wait acts as the barrier
// before the next diagonal starts.
func fillWavefront(ctx context.Context, t *table.Table, a, b string, s Scoring, workers int) error {
	rows, cols := t.Rows(), t.Cols()
	last := (rows - 1) + (cols - 1)
	for d := 2; d <= last; d++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lo := max(1, d-(cols-1)) // first row on the diagonal
		hi := min(rows-1, d-1)   // last row on the diagonal
		if lo > hi {
			continue
		}
		n := hi - lo + 1

		chunks := min(workers, n/minWavefrontChunk)
		if chunks <= 1 {
			if err := resolveDiagonal(t, a, b, s, d, lo, hi); err != nil {
				return err
			}
			continue
		}

		var g errgroup.Group
		size := (n + chunks - 1) / chunks
		for from := lo; from <= hi; from += size {
			to := min(hi, from+size-1)
			g.Go(func() error {
				return resolveDiagonal(t, a, b, s, d, from, to)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// resolveDiagonal resolves rows lo..hi of anti-diagonal d.
func resolveDiagonal(t *table.Table, a, b string, s Scoring, d, lo, hi int) error {
	for r := lo; r <= hi; r++ {
		if _, err := Resolve(t, r, d-r, a, b, s); err != nil {
			return err
		}
	}

	return nil
}
