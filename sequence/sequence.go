package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName indicates a sequence without a name.
	ErrEmptyName = errors.New("sequence: name must be non-empty")

	// ErrDuplicateName indicates a second sequence with an existing name.
	ErrDuplicateName = errors.New("sequence: duplicate name")

	// ErrMalformedFASTA indicates input that is not FASTA-like.
	ErrMalformedFASTA = errors.New("sequence: malformed FASTA")
)

// Sequence is a named symbol string. The zero value is not valid; use New.
type Sequence struct {
	name    string
	symbols string
}

// New returns a Sequence; symbols may be empty, name may not.
func New(name, symbols string) (Sequence, error) {
	if name == "" {
		return Sequence{}, ErrEmptyName
	}

	return Sequence{name: name, symbols: symbols}, nil
}

// Name returns the sequence name.
func (s Sequence) Name() string { return s.name }

// Symbols returns the symbol string.
func (s Sequence) Symbols() string { return s.symbols }

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.symbols) }

func (s Sequence) String() string {
	return fmt.Sprintf("%s(%d)", s.name, len(s.symbols))
}

// Store is an ordered collection of sequences with unique names.
// It is not safe for concurrent mutation; read-only sharing is fine.
type Store struct {
	seqs  []Sequence
	index map[string]int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Add appends seq. Returns ErrEmptyName or ErrDuplicateName.
func (st *Store) Add(seq Sequence) error {
	if seq.name == "" {
		return ErrEmptyName
	}
	if _, dup := st.index[seq.name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, seq.name)
	}
	st.index[seq.name] = len(st.seqs)
	st.seqs = append(st.seqs, seq)

	return nil
}

// Len returns the number of stored sequences.
func (st *Store) Len() int { return len(st.seqs) }

// At returns the i-th sequence in insertion order. It panics if i is out of range.
func (st *Store) At(i int) Sequence { return st.seqs[i] }

// Get looks a sequence up by name.
func (st *Store) Get(name string) (Sequence, bool) {
	i, ok := st.index[name]
	if !ok {
		return Sequence{}, false
	}

	return st.seqs[i], true
}

// All returns a copy of the sequences in insertion order.
func (st *Store) All() []Sequence {
	out := make([]Sequence, len(st.seqs))
	copy(out, st.seqs)

	return out
}
