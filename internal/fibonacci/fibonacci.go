package fibonacci

import (
	"math/big"

	apperrors "github.com/agbru/algodemo/internal/errors"
)

// Pair holds two consecutive Fibonacci numbers, F(n) and F(n+1).
type Pair struct {
	Fn  *big.Int
	Fn1 *big.Int
}

// Fibonacci returns F(n) under F(0)=0, F(1)=1, F(k)=F(k-1)+F(k-2).
// A negative n yields an error matching apperrors.ErrInvalidArgument.
func Fibonacci(n int64) (*big.Int, error) {
	p, err := FibPair(n)
	if err != nil {
		return nil, err
	}
	return p.Fn, nil
}

// FibPair returns (F(n), F(n+1)). The returned integers are freshly
// allocated and owned by the caller.
func FibPair(n int64) (Pair, error) {
	if err := validateIndex(n); err != nil {
		return Pair{}, err
	}
	return fibPair(n), nil
}

// fibPair halves n on each call, so the recursion depth is bits.Len64(n).
func fibPair(n int64) Pair {
	if n == 0 {
		return Pair{Fn: big.NewInt(0), Fn1: big.NewInt(1)}
	}

	half := fibPair(n / 2)
	a, b := half.Fn, half.Fn1

	// c = F(2k) = a * (2b - a)
	c := new(big.Int).Lsh(b, 1)
	c.Sub(c, a)
	c.Mul(c, a)

	// d = F(2k+1) = a² + b²
	d := new(big.Int).Mul(a, a)
	d.Add(d, new(big.Int).Mul(b, b))

	if n%2 == 0 {
		return Pair{Fn: c, Fn1: d}
	}
	c.Add(c, d)
	return Pair{Fn: d, Fn1: c}
}

func validateIndex(n int64) error {
	if n < 0 {
		return apperrors.NewValidationError("n", "Fibonacci index must be non-negative, got %d", n)
	}
	return nil
}
