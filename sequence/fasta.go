package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single input line (sequence lines can be long).
const maxLineSize = 64 << 20

// ReadFASTA parses FASTA-like records into a new Store.
//
// Lines starting with '>' open a record; the name is the first
// whitespace-delimited token of the header. Following lines up to the next
// header are concatenated with all whitespace removed. Blank lines and lines
// starting with ';' are ignored. A record with no sequence lines is an empty
// sequence.
//
// Errors: ErrMalformedFASTA (data before the first header, empty name),
// ErrDuplicateName, or the reader's error.
func ReadFASTA(r io.Reader) (*Store, error) {
	st := NewStore()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		name   string
		open   bool
		body   strings.Builder
		lineNo int
	)
	flush := func() error {
		if !open {
			return nil
		}
		seq, err := New(name, body.String())
		if err != nil {
			return err
		}
		body.Reset()

		return st.Add(seq)
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			if err := flush(); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("%w: line %d: empty record name", ErrMalformedFASTA, lineNo)
			}
			name, open = fields[0], true
		default:
			if !open {
				return nil, fmt.Errorf("%w: line %d: sequence data before first header", ErrMalformedFASTA, lineNo)
			}
			// byte-preserving: invalid UTF-8 must not become U+FFFD
			for _, f := range strings.Fields(line) {
				body.WriteString(f)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sequence: read FASTA: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return st, nil
}
