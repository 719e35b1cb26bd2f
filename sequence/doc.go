// Package sequence holds named, immutable symbol sequences and reads them
// from FASTA-style text.
//
// A Store keeps sequences in insertion order with unique names; the
// alignment driver borrows them read-only.
package sequence
