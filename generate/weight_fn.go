// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is returned by every WeightFn when no RNG is configured.
const DefaultWeight float64 = 1

// WeightFn produces an unnormalized symbol weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value <= 0.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 < min <= max. With a nil RNG it yields DefaultWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from Exp(rate), mean 1/rate.
// Panics if rate <= 0. With a nil RNG it yields DefaultWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}

		return rng.ExpFloat64() / rate
	}
}
