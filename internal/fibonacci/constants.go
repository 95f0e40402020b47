package fibonacci

import "math"

const (
	// FibonacciGrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// F(n) has about FibonacciGrowthFactor*n bits.
	FibonacciGrowthFactor = 0.69424

	// MaxNaiveIndex bounds the linear-recurrence strategy. Above it the
	// O(n) big additions take seconds and the strategy refuses to run.
	MaxNaiveIndex = 200_000

	// MaxLastDigits bounds the modulus 10^K accepted by the last-digits mode.
	MaxLastDigits = 10_000
)

// EstimateBitLength returns the approximate bit length of F(n).
// The estimate is within a couple of bits for n >= 2.
func EstimateBitLength(n int64) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * FibonacciGrowthFactor))
}

// EstimateDigits returns the approximate number of decimal digits of F(n).
func EstimateDigits(n int64) int {
	if n <= 1 {
		return 1
	}
	// F(n) ≈ phi^n / sqrt(5); log10(phi) ≈ 0.20898764, log10(sqrt(5)) ≈ 0.349485.
	return int(math.Floor(float64(n)*0.20898764-0.349485)) + 1
}
