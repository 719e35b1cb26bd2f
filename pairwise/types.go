package pairwise

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/seqalign/nw"
)

// ErrBadOptions indicates a negative worker count.
var ErrBadOptions = errors.New("pairwise: invalid options")

// Pair indexes two sequences, I < J.
type Pair struct {
	I, J int
}

// Result is the reported score of one pair.
type Result struct {
	I, J         int
	Name1, Name2 string
	Score        int64
}

// Failure records a skipped pair.
type Failure struct {
	I, J         int
	Name1, Name2 string
	Err          error
}

// Report is the outcome of Run, both slices ordered by (I, J).
type Report struct {
	Results []Result
	Skipped []Failure
}

// PairError wraps the error that aborted a run at a given pair.
type PairError struct {
	Name1, Name2 string
	Err          error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pairwise: %s vs %s: %v", e.Name1, e.Name2, e.Err)
}

func (e *PairError) Unwrap() error { return e.Err }

// Options configures a run.
//   - Workers    — concurrent pairs; 0 means runtime.GOMAXPROCS(0).
//   - SkipFailed — record allocation/overflow failures instead of aborting.
//   - Align      — per-pair options; Align.Ctx is replaced by the run context.
//   - Logger     — optional; nil disables logging.
type Options struct {
	Workers    int
	SkipFailed bool
	Align      nw.Options
	Logger     *log.Logger
}

// DefaultOptions returns GOMAXPROCS workers, abort-on-failure and nw defaults.
func DefaultOptions() Options {
	return Options{Align: nw.DefaultOptions()}
}

// workers resolves the effective worker count.
func (o Options) workers() (int, error) {
	if o.Workers < 0 {
		return 0, fmt.Errorf("%w: Workers=%d", ErrBadOptions, o.Workers)
	}
	if o.Workers == 0 {
		return runtime.GOMAXPROCS(0), nil
	}

	return o.Workers, nil
}
