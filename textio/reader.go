// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/sfecode/alphabet"
)

// maxLineBytes bounds a single input line. Sequence files may keep every
// token on one line.
const maxLineBytes = 16 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	return sc
}

// ReadAlphabet parses an alphabet from r.
//
// Per line, in order: field count (ErrFormat), symbol
// (alphabet.ErrInvalidSymbol), number (ErrInvalidProbability), duplicate
// (alphabet.ErrDuplicateSymbol), range (alphabet.ErrProbabilityRange).
// The sum is checked once all lines are read. Nothing is returned on error.
func ReadAlphabet(r io.Reader) (*alphabet.Alphabet, error) {
	var (
		entries []alphabet.Entry
		seen    = make(map[string]struct{})
		lineNo  int
	)

	sc := newScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: ErrFormat}
		}

		sym, probText := fields[0], fields[1]
		if err := alphabet.ValidateSymbol(sym); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		p, err := strconv.ParseFloat(probText, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %q", ErrInvalidProbability, probText)}
		}
		if _, dup := seen[sym]; dup {
			return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %q", alphabet.ErrDuplicateSymbol, sym)}
		}
		if err := alphabet.ValidateProbability(p); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}

		seen[sym] = struct{}{}
		entries = append(entries, alphabet.Entry{Symbol: sym, P: p})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read alphabet: %w", err)
	}

	return alphabet.New(entries)
}

// ReadSequence parses whitespace separated tokens from r.
//
// Each token must be an allowed symbol or a binary string (ErrInvalidToken).
// Input without tokens fails with ErrEmptySequence.
func ReadSequence(r io.Reader) ([]string, error) {
	var (
		seq    []string
		lineNo int
	)

	sc := newScanner(r)
	for sc.Scan() {
		lineNo++
		for _, tok := range strings.Fields(sc.Text()) {
			if !alphabet.IsSymbol(tok) && !alphabet.IsCodeword(tok) {
				return nil, &ParseError{Line: lineNo, Text: tok, Err: ErrInvalidToken}
			}
			seq = append(seq, tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read sequence: %w", err)
	}
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}

	return seq, nil
}

// LoadAlphabet opens path and parses it with ReadAlphabet.
func LoadAlphabet(path string) (*alphabet.Alphabet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: open alphabet: %w", err)
	}
	defer f.Close()

	a, err := ReadAlphabet(f)
	if err != nil {
		return nil, withSource(err, path)
	}

	return a, nil
}

// LoadSequence opens path and parses it with ReadSequence.
func LoadSequence(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: open sequence: %w", err)
	}
	defer f.Close()

	seq, err := ReadSequence(f)
	if err != nil {
		return nil, withSource(err, path)
	}

	return seq, nil
}

// ValidateTokens applies the sequence-file token rules to an in-memory
// sequence: every token must be a symbol or a binary string, and there must
// be at least one token.
func ValidateTokens(seq []string) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	for i, tok := range seq {
		if !alphabet.IsSymbol(tok) && !alphabet.IsCodeword(tok) {
			return fmt.Errorf("%w %q at position %d", ErrInvalidToken, tok, i)
		}
	}

	return nil
}
