// SPDX-License-Identifier: MIT

package sfe

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/sfecode/alphabet"
)

// Build: Shannon–Fano–Elias code construction
//
// Algorithm:
//  1. F[i] = Σ_{j<i} p[j] in alphabet order (F[0] = 0).
//  2. M[i] = F[i] + p[i]/2.
//  3. L[i] = ⌈-log₂(p[i]/2)⌉.
//  4. Reject the lengths if Σ 2^-L[i] > 1.
//  5. Codeword[i] = first L[i] bits of the binary expansion of M[i].
//
// Errors:
//   - ErrZeroProbability: some symbol has p = 0.
//   - ErrKraftViolation : the lengths violate the Kraft inequality.
//
// No partial Code is returned on error.
func Build(a *alphabet.Alphabet) (*Code, error) {
	ps := a.Probabilities()

	lengths, err := WordLengths(ps)
	if err != nil {
		return nil, err
	}
	kraft, err := CheckKraft(lengths)
	if err != nil {
		return nil, err
	}

	mids := Midpoints(ps)
	c := &Code{
		Symbols:       a.Symbols(),
		Probabilities: ps,
		Midpoints:     mids,
		Lengths:       lengths,
		Codewords:     make([]string, len(ps)),
		KraftSum:      kraft,
		bySymbol:      make(map[string]int, len(ps)),
		byCodeword:    make(map[string]int, len(ps)),
	}
	for i := range ps {
		w := BinaryFraction(mids[i], lengths[i])
		c.Codewords[i] = w
		c.AvgLength += ps[i] * float64(len(w))

		c.bySymbol[c.Symbols[i]] = i
		// first symbol wins if two codewords ever coincide
		if _, seen := c.byCodeword[w]; !seen {
			c.byCodeword[w] = i
		}
	}

	return c, nil
}

// Cumulative returns F where F[i] is the sum of ps[0..i-1].
func Cumulative(ps []float64) []float64 {
	out := make([]float64, len(ps))
	var sum float64
	for i, p := range ps {
		out[i] = sum
		sum += p
	}

	return out
}

// Midpoints returns M where M[i] = F[i] + ps[i]/2.
func Midpoints(ps []float64) []float64 {
	out := Cumulative(ps)
	for i, p := range ps {
		out[i] += p / 2
	}

	return out
}

// WordLength returns ⌈-log₂(p/2)⌉ for p ∈ (0, 1].
//
// The value is computed as 1 - log₂(p), which is the same number but stays
// finite for subnormal p. Results within lengthSnap of an integer are
// snapped to it, so p = 0.5 gives exactly 2 and p = 0.25 exactly 3.
func WordLength(p float64) (int, error) {
	if err := alphabet.ValidateProbability(p); err != nil {
		return 0, err
	}
	if p == 0 {
		return 0, ErrZeroProbability
	}

	x := 1 - math.Log2(p)
	if r := math.Round(x); math.Abs(x-r) < lengthSnap {
		x = r
	}

	return int(math.Ceil(x)), nil
}

// WordLengths applies WordLength to every probability, in order.
func WordLengths(ps []float64) ([]int, error) {
	out := make([]int, len(ps))
	for i, p := range ps {
		l, err := WordLength(p)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		out[i] = l
	}

	return out, nil
}

// KraftSum returns Σ 2^-lengths[i].
func KraftSum(lengths []int) float64 {
	var sum float64
	for _, l := range lengths {
		sum += math.Ldexp(1, -l)
	}

	return sum
}

// CheckKraft returns the Kraft sum, or a wrapped ErrKraftViolation if it exceeds 1.
func CheckKraft(lengths []int) (float64, error) {
	sum := KraftSum(lengths)
	if sum > 1 {
		return sum, fmt.Errorf("%w: %v > 1", ErrKraftViolation, sum)
	}

	return sum, nil
}

// BinaryFraction writes the first length bits of value's binary expansion.
//
// Each step doubles the running value; a result ≥ 1 emits '1' and subtracts
// one, otherwise '0' is emitted. Bits are truncated, never rounded.
// value is expected in [0, 1).
func BinaryFraction(value float64, length int) string {
	if length <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(length)
	x := value
	for i := 0; i < length; i++ {
		x *= 2
		if x >= 1 {
			b.WriteByte('1')
			x--
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
