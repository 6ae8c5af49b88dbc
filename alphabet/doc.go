// SPDX-License-Identifier: MIT

// Package alphabet holds the source model for the sfecode codec: an ordered
// list of (symbol, probability) pairs.
//
// What is an Alphabet?
//
//	A finite set of symbols drawn from {+, -, *, /, =}, each with a
//	probability. Probabilities lie in [0, 1] and sum to 1 (within SumTolerance).
//
// Order matters:
//
//	The declaration order of the symbols is the order in which cumulative
//	probabilities are accumulated by the code builder, and the order in which
//	codewords are returned. Alphabet therefore keeps an ordered slice of
//	entries together with an index map used only for lookups; it never
//	iterates the map.
//
// Usage:
//
//	a, err := alphabet.New([]alphabet.Entry{
//		{Symbol: "+", P: 0.5},
//		{Symbol: "-", P: 0.25},
//		{Symbol: "*", P: 0.25},
//	})
//	if err != nil {
//		// ErrInvalidSymbol, ErrDuplicateSymbol, ErrProbabilityRange,
//		// ErrProbabilitySum or ErrEmptyAlphabet
//	}
//
// An Alphabet is immutable once built; every accessor returns a copy.
package alphabet
