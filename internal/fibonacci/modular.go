package fibonacci

import (
	"math/big"
	"math/bits"
	"strings"

	apperrors "github.com/agbru/algodemo/internal/errors"
)

// FastDoublingMod computes F(n) mod m with the iterative doubling loop,
// reducing after every operation. Memory stays O(log m) regardless of n,
// which is what the last-digits mode relies on.
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))  mod m
//	F(2k+1) = F(k+1)² + F(k)²            mod m
func FastDoublingMod(n int64, m *big.Int) (*big.Int, error) {
	if err := validateIndex(n); err != nil {
		return nil, err
	}
	if m == nil || m.Sign() <= 0 {
		return nil, apperrors.NewValidationError("modulus", "must be positive")
	}

	fk := big.NewInt(0)
	fk1 := big.NewInt(1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := bits.Len64(uint64(n)) - 1; i >= 0; i-- {
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		// Mod is Euclidean, so a negative intermediate still lands in [0, m).
		t1.Mod(t1, m)
		t1.Mul(t1, fk)
		t1.Mod(t1, m)

		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)
		t2.Mod(t2, m)

		fk.Set(t1)
		fk1.Set(t2)

		if (uint64(n)>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			t1.Mod(t1, m)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}

	return fk, nil
}

// LastDigits returns the last k decimal digits of F(n), zero-padded to
// exactly k characters.
func LastDigits(n int64, k int) (string, error) {
	if k <= 0 || k > MaxLastDigits {
		return "", apperrors.NewValidationError("last-digits", "must be in [1, %d], got %d", MaxLastDigits, k)
	}
	mod := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	r, err := FastDoublingMod(n, mod)
	if err != nil {
		return "", err
	}
	s := r.String()
	if len(s) < k {
		s = strings.Repeat("0", k-len(s)) + s
	}
	return s, nil
}
