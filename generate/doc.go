// SPDX-License-Identifier: MIT

// Package generate produces alphabets and symbol sequences for tests,
// benchmarks and the "sfe gen" command.
//
// Everything is configured through functional options:
//
//   - WithSeed / WithRand:   attach a deterministic RNG.
//   - WithWeightFn:          choose the weight distribution before normalization.
//   - WithSymbols:           restrict or reorder the symbols used.
//
// Weight distributions (WeightFn):
//
//   - ConstantWeightFn:      every symbol gets the same weight (uniform source).
//   - UniformWeightFn:       weights ~U[min,max], min > 0.
//   - ExponentialWeightFn:   weights ~Exp(rate), giving skewed sources.
//
// Constructors:
//
//   - Alphabet(n, ...):      n symbols, weights drawn then normalized to sum 1.
//   - Dyadic(n, ...):        1/2, 1/4, ..., 1/2^(n-1), 1/2^(n-1); no RNG needed.
//   - Sequence(a, k, ...):   k symbols drawn from a (requires an RNG).
//
// Guarantees:
//
//   - Same seed and options yield the same output.
//   - Without an RNG every WeightFn returns DefaultWeight, so Alphabet is
//     uniform and fully deterministic.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewSymbols, ErrTooManySymbols, ErrDegenerateWeights,
//     ErrNeedRandSource, ErrBadLength) wrapped with context.
package generate
