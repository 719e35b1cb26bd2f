// SPDX-License-Identifier: MIT

package table

// DefaultMaxCells caps the number of cells New will allocate unless
// overridden with WithMaxCells. 1<<26 cells is 1 GiB of 16-byte cells.
const DefaultMaxCells = 1 << 26

const panicMaxCellsInvalid = "table: WithMaxCells: limit must be > 0"

// Option mutates table construction settings.
type Option func(*options)

type options struct {
	maxCells int // > 0; DefaultMaxCells
}

func defaultOptions() options {
	return options{maxCells: DefaultMaxCells}
}

// WithMaxCells sets the largest rows*cols product New accepts.
// Panics if n <= 0 (programmer error).
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *options) { o.maxCells = n }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
