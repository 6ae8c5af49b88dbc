// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"math"
	"strings"
)

// IsSymbol reports whether token is a single allowed symbol character.
func IsSymbol(token string) bool {
	return len(token) == 1 && strings.Contains(AllowedSymbols, token)
}

// IsCodeword reports whether token is a non-empty string of '0' and '1'.
func IsCodeword(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] != '0' && token[i] != '1' {
			return false
		}
	}

	return true
}

// ValidateSymbol returns a wrapped ErrInvalidSymbol if s is not an allowed symbol.
func ValidateSymbol(s string) error {
	if !IsSymbol(s) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}

	return nil
}

// ValidateProbability returns a wrapped ErrProbabilityRange unless p ∈ [0, 1].
// NaN fails the check.
func ValidateProbability(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: %v", ErrProbabilityRange, p)
	}

	return nil
}

// ValidateSum checks that ps sums to 1 within SumTolerance.
// The sum is accumulated in slice order, like the code builder does.
func ValidateSum(ps []float64) error {
	var total float64
	for _, p := range ps {
		total += p
	}
	if math.Abs(total-1) > SumTolerance {
		return fmt.Errorf("%w (got %v)", ErrProbabilitySum, total)
	}

	return nil
}
