// SPDX-License-Identifier: MIT

package alphabet

import "errors"

// AllowedSymbols lists every character that may appear as a symbol.
const AllowedSymbols = "+-*/="

// SumTolerance is the maximum accepted deviation of the probability sum from 1.
const SumTolerance = 1e-9

// Sentinel errors for alphabet construction.
var (
	// ErrEmptyAlphabet indicates no entries were supplied.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols")

	// ErrInvalidSymbol indicates a symbol outside AllowedSymbols or longer than one character.
	ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

	// ErrDuplicateSymbol indicates the same symbol was declared twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrProbabilityRange indicates a probability outside [0, 1] or NaN.
	ErrProbabilityRange = errors.New("alphabet: probability out of range [0,1]")

	// ErrProbabilitySum indicates the probabilities do not sum to 1 within SumTolerance.
	ErrProbabilitySum = errors.New("alphabet: probabilities must sum to 1")
)

// Entry is a single (symbol, probability) pair.
type Entry struct {
	Symbol string  `yaml:"symbol"`
	P      float64 `yaml:"probability"`
}

// Alphabet is an ordered, validated collection of entries.
//
// entries keeps declaration order; index maps a symbol to its position
// in entries and is only used for lookups.
type Alphabet struct {
	entries []Entry
	index   map[string]int
}
