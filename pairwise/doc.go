// Package pairwise scores every distinct unordered pair of a sequence
// collection with nw.Score.
//
// For n sequences the n·(n-1)/2 pairs (i, j), i < j, are independent: each
// gets its own score table, created, filled, read and released inside one
// worker. Nothing is shared between workers beyond the read-only sequences
// and scoring parameters.
//
// Error policy:
//   - Allocation and overflow failures are pair-level. With
//     Options.SkipFailed they are recorded as Failures and the run continues;
//     otherwise the run aborts with a *PairError.
//   - Precursor (fill-order) errors, visit errors and context cancellation
//     always abort the run.
//
// A failed pair never produces a Result.
package pairwise
