// Package nw computes Needleman–Wunsch global alignment scores with linear
// match, mismatch and gap costs.
//
// What is computed?
//
//	For sequences a (n symbols) and b (m symbols) a (n+1)x(m+1) score table
//	is filled with
//	  T[i][0] = gap·i,  T[0][j] = gap·j
//	  T[i][j] = max( T[i-1][j-1] + (a[i-1]==b[j-1] ? match : mismatch),
//	                 T[i-1][j]   + gap,
//	                 T[i][j-1]   + gap )
//	and T[n][m] is the optimal global alignment score.
//
// Ties between candidates are broken Diagonal, then Up, then Left. The score
// does not depend on the tie-break; the reported Move does.
//
// Fill strategies (Options.Strategy):
//   - Sweep     — row-major nested loops, O(1) call stack (default).
//   - Descent   — memoized top-down resolution from the bottom-right cell,
//     driven by an explicit work stack instead of native recursion.
//   - Wavefront — anti-diagonals resolved in parallel chunks with one
//     barrier per diagonal.
//
// All strategies resolve every cell exactly once and yield identical scores.
//
// Usage:
//
//	s := nw.Scoring{Match: 1, Mismatch: -1, Gap: -1}
//	score, err := nw.Score("GCATGCU", "GATTACA", s, nil) // 0
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) table; Descent adds an O(N·M) worst-case work stack.
package nw
