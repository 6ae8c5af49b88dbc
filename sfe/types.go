// SPDX-License-Identifier: MIT

package sfe

import "errors"

// Sentinel errors for code construction and lookup.
var (
	// ErrKraftViolation indicates Σ 2^-L > 1: the word lengths cannot form a prefix code.
	ErrKraftViolation = errors.New("sfe: Kraft inequality violated")

	// ErrZeroProbability indicates a symbol with p = 0, which has no finite word length.
	ErrZeroProbability = errors.New("sfe: zero probability has no codeword")

	// ErrLengthMismatch indicates the word-length list does not match the alphabet size.
	ErrLengthMismatch = errors.New("sfe: word lengths do not match alphabet size")

	// ErrUnknownSymbol indicates an encode token that is not in the alphabet.
	ErrUnknownSymbol = errors.New("sfe: unknown symbol")

	// ErrUnknownCode indicates a decode token that equals no codeword.
	ErrUnknownCode = errors.New("sfe: unknown codeword")
)

// lengthSnap is how close -log₂(p/2) must be to an integer to be treated as one.
// It keeps exact powers of two from picking up an extra bit through log rounding.
const lengthSnap = 1e-12

// Code is a built Shannon–Fano–Elias code. All slices are index-aligned with
// the alphabet the code was built from. A Code is never mutated after Build.
type Code struct {
	Symbols       []string
	Probabilities []float64
	Midpoints     []float64
	Lengths       []int
	Codewords     []string

	// KraftSum is Σ 2^-Lengths[i].
	KraftSum float64
	// AvgLength is Σ p[i]·len(Codewords[i]).
	AvgLength float64

	bySymbol   map[string]int
	byCodeword map[string]int
}

// Metrics describes code quality. All values are in bits.
type Metrics struct {
	AvgLength  float64 `yaml:"average_length"`
	Entropy    float64 `yaml:"entropy"`
	Redundancy float64 `yaml:"redundancy"`
	KraftSum   float64 `yaml:"kraft_sum"`
}

// KraftOK reports whether the Kraft inequality holds (KraftSum ≤ 1).
func (m Metrics) KraftOK() bool {
	return m.KraftSum <= 1
}
