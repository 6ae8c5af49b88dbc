// SPDX-License-Identifier: MIT
// Package: sfecode/generate
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                     (no randomness unless seeded)
//   • weightFn = DefaultWeightFn         (uniform source)
//   • symbols  = alphabet.AllowedSymbols ("+-*/=")

package generate

import (
	"math/rand"

	"github.com/katalvlaran/sfecode/alphabet"
)

// genConfig aggregates all knobs used by constructors.
type genConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator, one call per symbol.
	weightFn WeightFn
	// Symbols in the order they are assigned.
	symbols []string
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		weightFn: DefaultWeightFn,
		symbols:  splitSymbols(alphabet.AllowedSymbols),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func splitSymbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}
