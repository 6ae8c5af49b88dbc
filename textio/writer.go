// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sfecode/alphabet"
)

// WriteAlphabet writes a in the alphabet file format, one
// "<symbol> <probability>" line per entry. Probabilities use the shortest
// representation that ReadAlphabet parses back to the same float64.
func WriteAlphabet(w io.Writer, a *alphabet.Alphabet) error {
	if a == nil {
		return alphabet.ErrEmptyAlphabet
	}
	bw := bufio.NewWriter(w)
	for _, e := range a.Entries() {
		fmt.Fprintf(bw, "%s %s\n", e.Symbol, strconv.FormatFloat(e.P, 'g', -1, 64))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write alphabet: %w", err)
	}

	return nil
}

// WriteSequence writes tokens separated by spaces, perLine tokens per line
// (all on one line when perLine <= 0), ending with a newline.
func WriteSequence(w io.Writer, tokens []string, perLine int) error {
	bw := bufio.NewWriter(w)
	for i, tok := range tokens {
		switch {
		case i == 0:
		case perLine > 0 && i%perLine == 0:
			bw.WriteByte('\n')
		default:
			bw.WriteByte(' ')
		}
		bw.WriteString(tok)
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write sequence: %w", err)
	}

	return nil
}
