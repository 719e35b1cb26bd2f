package nw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqalign/table"
)

// Score returns the optimal global alignment score of a and b.
//
// Algorithm Outline:
//  1. Validate options and check that no score can overflow int64.
//  2. Allocate a (len(a)+1)x(len(b)+1) table; release it on every return path.
//  3. Initialize row 0 and column 0 with gap multiples.
//  4. Fill the interior with opts.Strategy.
//  5. Report the bottom-right cell.
//
// Errors:
//   - ErrBadOptions, ErrBadStrategy  — invalid opts.
//   - ErrScoreOverflow               — parameters too large for the lengths.
//   - table.ErrAllocation            — the table could not be allocated.
//   - ErrPrecursorUnresolved         — fill-order bug (never expected).
//   - context errors from opts.Ctx.
//
// Table size limit: a pair needs (len(a)+1)*(len(b)+1) cells and, unless
// opts.MaxCells says otherwise, at most table.DefaultMaxCells (1<<26) are
// allocated, so two 10k-symbol sequences fail with table.ErrAllocation by
// default. Raise opts.MaxCells (the CLI's -max-cells flag) to score them.
//
// A nil opts means DefaultOptions(). No partial score is ever returned with
// a non-nil error.
func Score(a, b string, s Scoring, opts *Options) (int64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, err
	}
	if err := checkOverflow(len(a), len(b), s); err != nil {
		return 0, err
	}

	var topts []table.Option
	if o.MaxCells > 0 {
		topts = append(topts, table.WithMaxCells(o.MaxCells))
	}
	t, err := table.New(len(a)+1, len(b)+1, topts...)
	if err != nil {
		return 0, err
	}
	defer t.Release()

	if err = t.InitializeBoundary(s.Gap); err != nil {
		return 0, err
	}
	if err = Fill(t, a, b, s, o); err != nil {
		return 0, err
	}

	return t.Final()
}

// checkOverflow rejects parameters whose worst-case path score, at most
// (n+m) steps of the largest magnitude, falls outside int64.
func checkOverflow(n, m int, s Scoring) error {
	var worst int64
	for _, v := range [3]int64{s.Match, s.Mismatch, s.Gap} {
		if v == math.MinInt64 {
			return fmt.Errorf("%w: parameter %d", ErrScoreOverflow, v)
		}
		if v < 0 {
			v = -v
		}
		worst = max(worst, v)
	}
	steps := int64(n) + int64(m)
	if worst > 0 && steps > math.MaxInt64/worst {
		return fmt.Errorf("%w: %d steps of magnitude %d", ErrScoreOverflow, steps, worst)
	}

	return nil
}
