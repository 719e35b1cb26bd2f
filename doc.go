// Package seqalign scores pairwise global alignments of symbol sequences
// (Needleman–Wunsch with linear match, mismatch and gap costs).
//
// Everything is organized under small subpackages, leaves first:
//
//	sequence/ — named immutable sequences, an ordered Store, FASTA reader
//	table/    — flat row-major score table with once-only cell resolution
//	nw/       — cell resolver, table fillers (sweep, descent, wavefront), Score
//	pairwise/ — scores every unordered pair with a bounded worker pool
//	cmd/nwscore — command-line front end
//
// Quick example:
//
//	score, err := nw.Score("GCATGCU", "GATTACA", nw.DefaultScoring(), nil)
//	// score == 0
//
// Only the optimal score is reported; there is no traceback, local alignment
// or affine gap model.
package seqalign
