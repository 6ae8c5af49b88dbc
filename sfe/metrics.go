// SPDX-License-Identifier: MIT

package sfe

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sfecode/alphabet"
)

// Entropy returns the Shannon entropy Σ -p·log₂(p) in bits.
// Zero probabilities contribute nothing (0·log₂0 = 0).
func Entropy(ps []float64) float64 {
	var h float64
	for _, p := range ps {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}

	return h
}

// ComputeMetrics derives average length, entropy, redundancy and Kraft sum
// from the alphabet probabilities and a word-length list aligned with it.
//
// Errors: ErrLengthMismatch if len(lengths) != a.Len().
func ComputeMetrics(a *alphabet.Alphabet, lengths []int) (Metrics, error) {
	if len(lengths) != a.Len() {
		return Metrics{}, fmt.Errorf("%w: %d lengths for %d symbols", ErrLengthMismatch, len(lengths), a.Len())
	}

	return metrics(a.Probabilities(), lengths), nil
}

// Metrics returns the metrics of c.
func (c *Code) Metrics() Metrics {
	return metrics(c.Probabilities, c.Lengths)
}

func metrics(ps []float64, lengths []int) Metrics {
	var avg float64
	for i, p := range ps {
		avg += p * float64(lengths[i])
	}
	h := Entropy(ps)

	return Metrics{
		AvgLength:  avg,
		Entropy:    h,
		Redundancy: avg - h,
		KraftSum:   KraftSum(lengths),
	}
}
