// SPDX-License-Identifier: MIT
// Package: sfecode/generate
//
// errors.go: sentinel errors for the generate package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package generate

import "errors"

// ErrTooFewSymbols indicates n < 1.
var ErrTooFewSymbols = errors.New("generate: need at least one symbol")

// ErrTooManySymbols indicates n exceeds the configured symbol set.
var ErrTooManySymbols = errors.New("generate: more symbols requested than available")

// ErrDegenerateWeights indicates a WeightFn returned a weight that is not a
// finite positive number, so no valid source can be formed.
var ErrDegenerateWeights = errors.New("generate: weight must be finite and > 0")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrBadLength indicates a sequence length < 1.
var ErrBadLength = errors.New("generate: sequence length must be >= 1")
