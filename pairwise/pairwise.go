package pairwise

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/sequence"
	"github.com/katalvlaran/seqalign/table"
)

// Pairs lists every (i, j) with 0 <= i < j < n in lexicographic order.
func Pairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}

	return out
}

// ForEach scores every pair of seqs and calls visit for each success, in
// completion order. visit calls are serialized. It returns the skipped
// pairs (only with opts.SkipFailed) and the first aborting error.
func ForEach(
	ctx context.Context,
	seqs []sequence.Sequence,
	s nw.Scoring,
	opts Options,
	visit func(Result) error,
) ([]Failure, error) {
	workers, err := opts.workers()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger

	var (
		mu       sync.Mutex
		failures []Failure
		stopped  bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, p := range Pairs(len(seqs)) {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		a, b := seqs[p.I], seqs[p.J]
		g.Go(func() error {
			align := opts.Align
			align.Ctx = gctx
			score, err := nw.Score(a.Symbols(), b.Symbols(), s, &align)
			if err != nil {
				if opts.SkipFailed && skippable(err) {
					if logger != nil {
						logger.Warn("skipping pair", "seq1", a.Name(), "seq2", b.Name(), "err", err)
					}
					mu.Lock()
					failures = append(failures, Failure{I: p.I, J: p.J, Name1: a.Name(), Name2: b.Name(), Err: err})
					mu.Unlock()
					return nil
				}
				return &PairError{Name1: a.Name(), Name2: b.Name(), Err: err}
			}
			if logger != nil {
				logger.Debug("aligned", "seq1", a.Name(), "seq2", b.Name(), "score", score)
			}

			mu.Lock()
			defer mu.Unlock()
			if err := gctx.Err(); err != nil {
				return err
			}
			return visit(Result{I: p.I, J: p.J, Name1: a.Name(), Name2: b.Name(), Score: score})
		})
	}

	err = g.Wait()
	slices.SortFunc(failures, comparePairs(func(f Failure) Pair { return Pair{I: f.I, J: f.J} }))
	if err != nil {
		return failures, err
	}
	if stopped {
		return failures, ctx.Err()
	}

	return failures, nil
}

// Run scores every pair and returns the results ordered by (I, J).
// On error no report is returned.
func Run(ctx context.Context, seqs []sequence.Sequence, s nw.Scoring, opts Options) (*Report, error) {
	results := make([]Result, 0, len(seqs)*(len(seqs)-1)/2+1)
	skipped, err := ForEach(ctx, seqs, s, opts, func(r Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(results, comparePairs(func(r Result) Pair { return Pair{I: r.I, J: r.J} }))
	if opts.Logger != nil {
		opts.Logger.Info("pairwise run complete", "sequences", len(seqs), "scored", len(results), "skipped", len(skipped))
	}

	return &Report{Results: results, Skipped: skipped}, nil
}

// skippable reports whether err is confined to its own pair.
func skippable(err error) bool {
	return errors.Is(err, table.ErrAllocation) || errors.Is(err, nw.ErrScoreOverflow)
}

// comparePairs orders values by their (I, J) key.
func comparePairs[T any](key func(T) Pair) func(x, y T) int {
	return func(x, y T) int {
		kx, ky := key(x), key(y)
		if kx.I != ky.I {
			return kx.I - ky.I
		}

		return kx.J - ky.J
	}
}
