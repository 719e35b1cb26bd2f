package nw

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadOptions indicates a negative worker count or cell limit.
	ErrBadOptions = errors.New("nw: invalid options")

	// ErrBadStrategy indicates an unknown fill strategy.
	ErrBadStrategy = errors.New("nw: unknown fill strategy")

	// ErrBoundaryCell is returned when the resolver is asked for row 0 or column 0.
	ErrBoundaryCell = errors.New("nw: boundary cells are fixed by initialization")

	// ErrShapeMismatch indicates the table is not (len(a)+1)x(len(b)+1).
	ErrShapeMismatch = errors.New("nw: table shape does not match sequences")

	// ErrScoreOverflow indicates the worst-case score magnitude does not fit in int64.
	ErrScoreOverflow = errors.New("nw: score may overflow int64")

	// ErrPrecursorUnresolved marks a cell read before its predecessor was resolved.
	// It signals a fill-order bug, never bad input.
	ErrPrecursorUnresolved = errors.New("nw: predecessor cell not resolved")
)

// PrecursorError reports which predecessor of (Row, Col) was still unresolved.
type PrecursorError struct {
	Row, Col         int
	PredRow, PredCol int
}

func (e *PrecursorError) Error() string {
	return fmt.Sprintf("nw: cell (%d,%d) read predecessor (%d,%d) before it was resolved",
		e.Row, e.Col, e.PredRow, e.PredCol)
}

// Is reports whether target is ErrPrecursorUnresolved.
func (e *PrecursorError) Is(target error) bool { return target == ErrPrecursorUnresolved }

// Scoring holds the linear scoring parameters, constant for a whole run.
// Gap is usually negative or zero; no sign is enforced.
type Scoring struct {
	Match    int64
	Mismatch int64
	Gap      int64
}

// DefaultScoring returns the textbook +1/-1/-1 scheme.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Mismatch: -1, Gap: -1}
}

// Move names the predecessor a cell's score was taken from.
type Move uint8

const (
	// None is reported when no candidate was chosen (cell already resolved).
	None Move = iota
	// Diagonal aligns a[i-1] with b[j-1].
	Diagonal
	// Up aligns a[i-1] with a gap.
	Up
	// Left aligns b[j-1] with a gap.
	Left
)

func (m Move) String() string {
	switch m {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Strategy selects how the table filler orders cell resolution.
type Strategy int

const (
	// Sweep resolves rows top to bottom, columns left to right.
	Sweep Strategy = iota
	// Descent resolves top-down from the bottom-right cell with an explicit stack.
	Descent
	// Wavefront resolves anti-diagonals, splitting each across workers.
	Wavefront
)

var strategyNames = map[Strategy]string{
	Sweep:     "sweep",
	Descent:   "descent",
	Wavefront: "wavefront",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a case-insensitive name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return Sweep, fmt.Errorf("%w: %q", ErrBadStrategy, name)
}

// Options configures a single-pair computation.
//
// Fields:
//   - Strategy — fill order; Sweep by default.
//   - Workers  — goroutines per anti-diagonal for Wavefront.
//     0 means runtime.GOMAXPROCS(0). Ignored by other strategies.
//   - MaxCells — largest table accepted, in cells; 0 means
//     table.DefaultMaxCells (1<<26, roughly two 8k-symbol sequences).
//   - Ctx      — cancellation; nil means context.Background().
//
// Example:
//
//	opts := nw.DefaultOptions()
//	opts.Strategy = nw.Wavefront
//	opts.Workers = 4
//	score, err := nw.Score(a, b, nw.DefaultScoring(), &opts)
type Options struct {
	Strategy Strategy
	Workers  int
	MaxCells int
	Ctx      context.Context
}

// DefaultOptions returns Sweep with default limits and a background context.
func DefaultOptions() Options {
	return Options{
		Strategy: Sweep,
		Ctx:      context.Background(),
	}
}

// validate checks option ranges; it does not mutate opts.
func (o Options) validate() error {
	if _, ok := strategyNames[o.Strategy]; !ok {
		return fmt.Errorf("%w: %v", ErrBadStrategy, o.Strategy)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: Workers=%d", ErrBadOptions, o.Workers)
	}
	if o.MaxCells < 0 {
		return fmt.Errorf("%w: MaxCells=%d", ErrBadOptions, o.MaxCells)
	}

	return nil
}
