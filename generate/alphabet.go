// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/sfecode/alphabet"
)

// Alphabet draws n weights with the configured WeightFn, normalizes them to
// sum to 1 and assigns them to the first n configured symbols.
//
// Errors: ErrTooFewSymbols, ErrTooManySymbols, ErrDegenerateWeights.
// Complexity: O(n).
func Alphabet(n int, opts ...Option) (*alphabet.Alphabet, error) {
	cfg := newConfig(opts...)
	if err := checkCount(n, cfg); err != nil {
		return nil, err
	}

	weights := make([]float64, n)
	var total float64
	for i := range weights {
		w := cfg.weightFn(cfg.rng)
		if !(w > 0) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("%w: weight %d = %g", ErrDegenerateWeights, i, w)
		}
		weights[i] = w
		total += w
	}
	if math.IsInf(total, 1) {
		return nil, fmt.Errorf("%w: weights overflow", ErrDegenerateWeights)
	}

	entries := make([]alphabet.Entry, n)
	for i, w := range weights {
		entries[i] = alphabet.Entry{Symbol: cfg.symbols[i], P: w / total}
	}

	return alphabet.New(entries)
}

// Dyadic returns the n-symbol source 1/2, 1/4, ..., 1/2^(n-1), 1/2^(n-1).
// Every probability is a power of two, so each Shannon–Fano–Elias word is
// exactly one bit longer than the ideal length. Options other than
// WithSymbols are ignored.
func Dyadic(n int, opts ...Option) (*alphabet.Alphabet, error) {
	cfg := newConfig(opts...)
	if err := checkCount(n, cfg); err != nil {
		return nil, err
	}

	entries := make([]alphabet.Entry, n)
	for i := range entries {
		exp := -(i + 1)
		if i == n-1 {
			exp = -i
		}
		entries[i] = alphabet.Entry{Symbol: cfg.symbols[i], P: math.Ldexp(1, exp)}
	}

	return alphabet.New(entries)
}

// Sequence draws length symbols from a, each independently with the
// alphabet's probabilities. Requires WithSeed or WithRand.
//
// Errors: ErrNeedRandSource, ErrBadLength, alphabet.ErrEmptyAlphabet (nil a).
// Complexity: O(length · log n).
func Sequence(a *alphabet.Alphabet, length int, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)
	if a == nil {
		return nil, alphabet.ErrEmptyAlphabet
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, length)
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	syms := a.Symbols()
	ps := a.Probabilities()
	cum := make([]float64, len(ps))
	last := 0
	var acc float64
	for i, p := range ps {
		acc += p
		cum[i] = acc
		if p > 0 {
			last = i
		}
	}

	out := make([]string, length)
	for k := range out {
		u := cfg.rng.Float64()
		i := sort.Search(len(cum), func(j int) bool { return cum[j] > u })
		if i == len(cum) {
			// u landed in the rounding gap above the final cumulative sum.
			i = last
		}
		out[k] = syms[i]
	}

	return out, nil
}

func checkCount(n int, cfg genConfig) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrTooFewSymbols, n)
	}
	if n > len(cfg.symbols) {
		return fmt.Errorf("%w: got %d, have %d", ErrTooManySymbols, n, len(cfg.symbols))
	}

	return nil
}
