// SPDX-License-Identifier: MIT

package alphabet

import "fmt"

// New validates entries and returns an Alphabet preserving their order.
//
// Checks run per entry in declaration order (symbol, duplicate, range),
// then the whole-alphabet sum check. The first failure is returned and no
// Alphabet is produced.
//
// Errors: ErrEmptyAlphabet, ErrInvalidSymbol, ErrDuplicateSymbol,
// ErrProbabilityRange, ErrProbabilitySum.
//
// Complexity: O(n).
func New(entries []Entry) (*Alphabet, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	ps := make([]float64, 0, len(entries))
	for i, e := range entries {
		if err := ValidateSymbol(e.Symbol); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := a.index[e.Symbol]; dup {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrDuplicateSymbol, e.Symbol)
		}
		if err := ValidateProbability(e.P); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Symbol, err)
		}
		a.index[e.Symbol] = len(a.entries)
		a.entries = append(a.entries, e)
		ps = append(ps, e.P)
	}
	if err := ValidateSum(ps); err != nil {
		return nil, err
	}

	return a, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed tables.
func MustNew(entries []Entry) *Alphabet {
	a, err := New(entries)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.entries)
}

// Entries returns a copy of the entries in declaration order.
func (a *Alphabet) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)

	return out
}

// Symbols returns the symbols in declaration order.
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Symbol
	}

	return out
}

// Probabilities returns the probabilities in declaration order.
func (a *Alphabet) Probabilities() []float64 {
	out := make([]float64, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.P
	}

	return out
}

// Index returns the position of symbol, or -1 and false if absent.
func (a *Alphabet) Index(symbol string) (int, bool) {
	i, ok := a.index[symbol]
	if !ok {
		return -1, false
	}

	return i, true
}

// At returns the entry at position i. It panics if i is out of range,
// like slice indexing.
func (a *Alphabet) At(i int) Entry {
	return a.entries[i]
}
