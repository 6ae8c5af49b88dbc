// SPDX-License-Identifier: MIT
// Package: sfecode/generate
//
// options.go: functional options for the generate package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Constructors themselves never panic; they return sentinel errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sfecode/alphabet"
)

// Option customizes a constructor by mutating genConfig before use.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-symbol weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("generate: WithWeightFn(nil)")
	}
	return func(c *genConfig) {
		c.weightFn = fn
	}
}

// WithSymbols sets the symbols to draw from, in assignment order.
// Panics if syms is empty, holds a character outside alphabet.AllowedSymbols,
// or repeats one.
func WithSymbols(syms string) Option {
	if syms == "" {
		panic("generate: WithSymbols(\"\")")
	}
	seen := make(map[rune]bool, len(syms))
	for _, r := range syms {
		if !alphabet.IsSymbol(string(r)) {
			panic(fmt.Sprintf("generate: WithSymbols: invalid symbol %q", r))
		}
		if seen[r] {
			panic(fmt.Sprintf("generate: WithSymbols: duplicate symbol %q", r))
		}
		seen[r] = true
	}
	list := splitSymbols(syms)

	return func(c *genConfig) {
		c.symbols = list
	}
}

// WithConstantWeight sets every weight to w via ConstantWeightFn.
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max float64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithExponentialWeight draws weights from Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) Option {
	return WithWeightFn(ExponentialWeightFn(rate))
}
