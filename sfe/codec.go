// SPDX-License-Identifier: MIT

package sfe

import (
	"fmt"

	"github.com/katalvlaran/sfecode/alphabet"
)

// Encode builds a fresh code for a and encodes seq with it.
// The built code is returned alongside the codewords.
func Encode(a *alphabet.Alphabet, seq []string) ([]string, *Code, error) {
	c, err := Build(a)
	if err != nil {
		return nil, nil, err
	}
	out, err := c.Encode(seq)
	if err != nil {
		return nil, nil, err
	}

	return out, c, nil
}

// Decode builds a fresh code for a and decodes seq with it.
func Decode(a *alphabet.Alphabet, seq []string) ([]string, *Code, error) {
	c, err := Build(a)
	if err != nil {
		return nil, nil, err
	}
	out, err := c.Decode(seq)
	if err != nil {
		return nil, nil, err
	}

	return out, c, nil
}

// Encode maps every symbol token to its codeword.
// The first token not in the alphabet aborts with a wrapped ErrUnknownSymbol;
// nothing is returned for the tokens before it.
func (c *Code) Encode(seq []string) ([]string, error) {
	out := make([]string, len(seq))
	for i, tok := range seq {
		idx, ok := c.bySymbol[tok]
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrUnknownSymbol, tok, i)
		}
		out[i] = c.Codewords[idx]
	}

	return out, nil
}

// Decode maps every codeword token back to its symbol by exact match.
// The first token equal to no codeword aborts with a wrapped ErrUnknownCode.
func (c *Code) Decode(seq []string) ([]string, error) {
	out := make([]string, len(seq))
	for i, tok := range seq {
		idx, ok := c.byCodeword[tok]
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrUnknownCode, tok, i)
		}
		out[i] = c.Symbols[idx]
	}

	return out, nil
}

// Codeword returns the codeword assigned to symbol.
func (c *Code) Codeword(symbol string) (string, bool) {
	i, ok := c.bySymbol[symbol]
	if !ok {
		return "", false
	}

	return c.Codewords[i], true
}

// Symbol returns the symbol whose codeword equals word.
func (c *Code) Symbol(word string) (string, bool) {
	i, ok := c.byCodeword[word]
	if !ok {
		return "", false
	}

	return c.Symbols[i], true
}

// Len returns the number of symbols in the code.
func (c *Code) Len() int {
	return len(c.Codewords)
}
