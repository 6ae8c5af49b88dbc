// SPDX-License-Identifier: MIT
package generate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(ps []float64) float64 {
	var s float64
	for _, p := range ps {
		s += p
	}

	return s
}

// TestAlphabet_DefaultIsUniform needs no RNG and yields equal probabilities.
func TestAlphabet_DefaultIsUniform(t *testing.T) {
	a, err := generate.Alphabet(4)
	require.NoError(t, err)

	assert.Equal(t, []string{"+", "-", "*", "/"}, a.Symbols())
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, a.Probabilities())
}

// TestAlphabet_SeedIsDeterministic checks reproducibility and normalization.
func TestAlphabet_SeedIsDeterministic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  generate.Option
	}{
		{"uniform", generate.WithUniformWeight(0.01, 1)},
		{"exponential", generate.WithExponentialWeight(2)},
		{"constant", generate.WithConstantWeight(3)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a1, err := generate.Alphabet(5, generate.WithSeed(7), tc.opt)
			require.NoError(t, err)
			a2, err := generate.Alphabet(5, generate.WithSeed(7), tc.opt)
			require.NoError(t, err)

			assert.Equal(t, a1.Entries(), a2.Entries())
			assert.InDelta(t, 1.0, sum(a1.Probabilities()), alphabet.SumTolerance)
		})
	}
}

func TestAlphabet_Errors(t *testing.T) {
	_, err := generate.Alphabet(0)
	assert.ErrorIs(t, err, generate.ErrTooFewSymbols)

	_, err = generate.Alphabet(6)
	assert.ErrorIs(t, err, generate.ErrTooManySymbols)

	_, err = generate.Alphabet(3, generate.WithSymbols("+-"))
	assert.ErrorIs(t, err, generate.ErrTooManySymbols)

	zero := func(*rand.Rand) float64 { return 0 }
	_, err = generate.Alphabet(2, generate.WithWeightFn(zero))
	assert.ErrorIs(t, err, generate.ErrDegenerateWeights)

	inf := func(*rand.Rand) float64 { return math.Inf(1) }
	_, err = generate.Alphabet(2, generate.WithWeightFn(inf))
	assert.ErrorIs(t, err, generate.ErrDegenerateWeights)

	huge := func(*rand.Rand) float64 { return math.MaxFloat64 }
	_, err = generate.Alphabet(3, generate.WithWeightFn(huge))
	assert.ErrorIs(t, err, generate.ErrDegenerateWeights)
}

func TestDyadic(t *testing.T) {
	a, err := generate.Dyadic(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25, 0.125, 0.0625, 0.0625}, a.Probabilities())

	one, err := generate.Dyadic(1, generate.WithSymbols("="))
	require.NoError(t, err)
	assert.Equal(t, []alphabet.Entry{{Symbol: "=", P: 1}}, one.Entries())

	_, err = generate.Dyadic(0)
	assert.ErrorIs(t, err, generate.ErrTooFewSymbols)
}

func TestWithSymbols_Order(t *testing.T) {
	a, err := generate.Alphabet(2, generate.WithSymbols("=/"))
	require.NoError(t, err)
	assert.Equal(t, []string{"=", "/"}, a.Symbols())
}

// TestOptionPanics covers the option constructors' fail-fast contract.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand(nil)", func() { generate.WithRand(nil) }},
		{"WithWeightFn(nil)", func() { generate.WithWeightFn(nil) }},
		{"WithSymbols empty", func() { generate.WithSymbols("") }},
		{"WithSymbols invalid", func() { generate.WithSymbols("+x") }},
		{"WithSymbols duplicate", func() { generate.WithSymbols("++") }},
		{"ConstantWeightFn zero", func() { generate.ConstantWeightFn(0) }},
		{"UniformWeightFn min zero", func() { generate.UniformWeightFn(0, 1) }},
		{"UniformWeightFn max < min", func() { generate.UniformWeightFn(2, 1) }},
		{"ExponentialWeightFn zero rate", func() { generate.ExponentialWeightFn(0) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tc.fn)
		})
	}
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, generate.DefaultWeight, generate.DefaultWeightFn(nil))
	assert.Equal(t, generate.DefaultWeight, generate.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, generate.DefaultWeight, generate.ExponentialWeightFn(1)(nil))
	assert.Equal(t, 5.0, generate.ConstantWeightFn(5)(nil))

	r := rand.New(rand.NewSource(1))
	assert.Equal(t, 2.0, generate.UniformWeightFn(2, 2)(r))
	for i := 0; i < 1000; i++ {
		w := generate.UniformWeightFn(2, 3)(r)
		require.GreaterOrEqual(t, w, 2.0)
		require.Less(t, w, 3.0)
		require.GreaterOrEqual(t, generate.ExponentialWeightFn(4)(r), 0.0)
	}
}

func TestSequence(t *testing.T) {
	a := alphabet.MustNew([]alphabet.Entry{{Symbol: "+", P: 0.7}, {Symbol: "-", P: 0}, {Symbol: "*", P: 0.3}})

	seq, err := generate.Sequence(a, 2000, generate.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, seq, 2000)

	counts := map[string]int{}
	for _, s := range seq {
		counts[s]++
	}
	assert.Zero(t, counts["-"], "zero-probability symbol never drawn")
	assert.InDelta(t, 0.7, float64(counts["+"])/2000, 0.05)

	again, err := generate.Sequence(a, 2000, generate.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, seq, again)
}

func TestSequence_Errors(t *testing.T) {
	a := alphabet.MustNew([]alphabet.Entry{{Symbol: "+", P: 1}})

	_, err := generate.Sequence(a, 10)
	assert.ErrorIs(t, err, generate.ErrNeedRandSource)

	_, err = generate.Sequence(a, 0, generate.WithSeed(1))
	assert.ErrorIs(t, err, generate.ErrBadLength)

	_, err = generate.Sequence(nil, 1, generate.WithSeed(1))
	assert.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)
}
