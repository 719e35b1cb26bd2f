// Package table provides the score table used by global sequence alignment.
//
// A Table is a rows×cols grid of cells stored in one flat, row-major buffer
// (index = row*cols + col). Every cell carries a score and a resolved flag;
// the flag moves from false to true exactly once.
//
// Row 0 and column 0 are boundary cells: aligning a prefix of length k
// against an empty sequence costs k gap penalties. InitializeBoundary fills
// them; everything else is resolved by the caller (see package nw).
//
// Lifecycle:
//
//	t, err := table.New(len(a)+1, len(b)+1)
//	if err != nil {
//	  // errors.Is(err, table.ErrAllocation) or table.ErrBadShape
//	}
//	defer t.Release()
//	_ = t.InitializeBoundary(gap)
//	// ... resolve interior cells ...
//	score, err := t.Final()
//
// Memory: O(rows·cols). A single buffer means there is exactly one release
// point; Release is idempotent and safe on nil or partially built tables.
package table
