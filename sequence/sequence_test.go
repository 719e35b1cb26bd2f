package sequence_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/sequence"
)

// TestNew validates the name requirement and accessors.
func TestNew(t *testing.T) {
	_, err := sequence.New("", "ACGT")
	assert.ErrorIs(t, err, sequence.ErrEmptyName)

	s, err := sequence.New("seq1", "")
	require.NoError(t, err)
	assert.Equal(t, "seq1", s.Name())
	assert.Equal(t, "", s.Symbols())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "seq1(0)", s.String())
}

// TestStore verifies ordering, lookup and duplicate rejection.
func TestStore(t *testing.T) {
	st := sequence.NewStore()
	a, _ := sequence.New("a", "AC")
	b, _ := sequence.New("b", "GT")
	require.NoError(t, st.Add(a))
	require.NoError(t, st.Add(b))

	dup, _ := sequence.New("a", "TTT")
	assert.ErrorIs(t, st.Add(dup), sequence.ErrDuplicateName)
	assert.ErrorIs(t, st.Add(sequence.Sequence{}), sequence.ErrEmptyName)

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, "b", st.At(1).Name())
	got, ok := st.Get("a")
	require.True(t, ok)
	assert.Equal(t, "AC", got.Symbols())
	_, ok = st.Get("zz")
	assert.False(t, ok)

	all := st.All()
	all[0] = b
	assert.Equal(t, "a", st.At(0).Name(), "All must return a copy")
}

// TestReadFASTA parses multi-line and empty records.
func TestReadFASTA(t *testing.T) {
	in := `; comment
>seq1 first record
GCAT
GCU

>seq2
GAT TACA
>empty
>seq3 desc`
	st, err := sequence.ReadFASTA(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, st.Len())

	want := [][2]string{{"seq1", "GCATGCU"}, {"seq2", "GATTACA"}, {"empty", ""}, {"seq3", ""}}
	for i, w := range want {
		assert.Equal(t, w[0], st.At(i).Name())
		assert.Equal(t, w[1], st.At(i).Symbols())
	}
}

// TestReadFASTA_Malformed covers the rejection paths.
func TestReadFASTA_Malformed(t *testing.T) {
	_, err := sequence.ReadFASTA(strings.NewReader("ACGT\n>x\nAC\n"))
	assert.ErrorIs(t, err, sequence.ErrMalformedFASTA)

	_, err = sequence.ReadFASTA(strings.NewReader(">   \nAC\n"))
	assert.ErrorIs(t, err, sequence.ErrMalformedFASTA)

	_, err = sequence.ReadFASTA(strings.NewReader(">x\nAC\n>x\nGT\n"))
	assert.ErrorIs(t, err, sequence.ErrDuplicateName)

	st, err := sequence.ReadFASTA(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, st.Len())
}

// TestReadFASTA_KeepsRawBytes: symbols are bytes; invalid UTF-8 must survive
// unchanged so sequence lengths and scores are not altered.
func TestReadFASTA_KeepsRawBytes(t *testing.T) {
	st, err := sequence.ReadFASTA(strings.NewReader(">x\nA\xffC\n\xfe G\tT\n"))
	require.NoError(t, err)
	require.Equal(t, 1, st.Len())
	assert.Equal(t, "A\xffC\xfeGT", st.At(0).Symbols())
	assert.Equal(t, 6, st.At(0).Len())
}
