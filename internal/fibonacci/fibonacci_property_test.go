package fibonacci

import (
	"context"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// calcF is a shorthand that computes F(n) with the given core.
func calcF(calc coreCalculator, n int64) (*big.Int, error) {
	return calc.CalculateCore(context.Background(), func(float64) {}, n)
}

// allCalculators returns the cores available in every build.
func allCalculators() []coreCalculator {
	return []coreCalculator{
		&RecursiveDoubling{},
		&IterativeDoubling{},
		&NaiveRecurrence{},
	}
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

// TestCassinisIdentity_PropertyBased checks F(n-1)*F(n+1) - F(n)² = (-1)ⁿ.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	properties := newProperties()

	for _, calculator := range allCalculators() {
		properties.Property(calculator.Name()+" satisfies Cassini's identity", prop.ForAll(
			func(n int64) bool {
				fnMinus1, err1 := calcF(calculator, n-1)
				fn, err2 := calcF(calculator, n)
				fnPlus1, err3 := calcF(calculator, n+1)
				if err1 != nil || err2 != nil || err3 != nil {
					return false
				}

				left := new(big.Int).Mul(fnMinus1, fnPlus1)
				left.Sub(left, new(big.Int).Mul(fn, fn))

				right := big.NewInt(1)
				if n%2 != 0 {
					right.Neg(right)
				}
				return left.Cmp(right) == 0
			},
			gen.Int64Range(1, 20000),
		))
	}

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased checks F(n) = F(n-1) + F(n-2).
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	properties := newProperties()

	for _, calculator := range allCalculators() {
		properties.Property(calculator.Name()+" satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
			func(n int64) bool {
				fn, err1 := calcF(calculator, n)
				fn1, err2 := calcF(calculator, n-1)
				fn2, err3 := calcF(calculator, n-2)
				if err1 != nil || err2 != nil || err3 != nil {
					return false
				}
				return fn.Cmp(new(big.Int).Add(fn1, fn2)) == 0
			},
			gen.Int64Range(2, 20000),
		))
	}

	properties.TestingRun(t)
}

// TestPairInvariant_PropertyBased checks that FibPair returns two
// consecutive terms, i.e. FibPair(n) = (F(n), F(n+1)).
func TestPairInvariant_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("FibPair(n) = (F(n), F(n+1))", prop.ForAll(
		func(n int64) bool {
			p, err := FibPair(n)
			if err != nil {
				return false
			}
			next, err := FibPair(n + 1)
			if err != nil {
				return false
			}
			return p.Fn1.Cmp(next.Fn) == 0 &&
				next.Fn1.Cmp(new(big.Int).Add(p.Fn, p.Fn1)) == 0
		},
		gen.Int64Range(0, 50000),
	))

	properties.TestingRun(t)
}

// TestGCDIdentity_PropertyBased checks GCD(F(m), F(n)) = F(GCD(m, n)).
func TestGCDIdentity_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("GCD(F(m), F(n)) = F(GCD(m, n))", prop.ForAll(
		func(m, n int64) bool {
			fm, err1 := Fibonacci(m)
			fn, err2 := Fibonacci(n)
			fGCD, err3 := Fibonacci(gcdInt64(m, n))
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}
			return new(big.Int).GCD(nil, nil, fm, fn).Cmp(fGCD) == 0
		},
		gen.Int64Range(1, 5000),
		gen.Int64Range(1, 5000),
	))

	properties.TestingRun(t)
}

// TestNegativeIndexRejected_PropertyBased checks that every negative index
// is rejected instead of recursing.
func TestNegativeIndexRejected_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("Fibonacci(n) fails for n < 0", prop.ForAll(
		func(n int64) bool {
			res, err := Fibonacci(n)
			return res == nil && err != nil
		},
		gen.Int64Range(-1<<62, -1),
	))

	properties.TestingRun(t)
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
