package fibonacci

import (
	"context"
	"math/big"
	"testing"
)

// FuzzDoublingStrategiesAgree checks that the recursive and iterative
// doubling strategies produce identical results for any index.
func FuzzDoublingStrategiesAgree(f *testing.F) {
	for _, n := range []int64{0, 1, 2, 10, 50, 92, 93, 94, 100, 500, 1000, 5000, -1, -100} {
		f.Add(n)
	}

	f.Fuzz(func(t *testing.T, n int64) {
		if n > 50000 {
			return
		}

		recursive, errR := Fibonacci(n)
		iterative, errI := NewCalculator(&IterativeDoubling{}).Calculate(context.Background(), nil, 0, n)

		if n < 0 {
			if errR == nil || errI == nil {
				t.Fatalf("n=%d: expected errors, got recursive=%v iterative=%v", n, errR, errI)
			}
			return
		}
		if errR != nil || errI != nil {
			t.Fatalf("n=%d: unexpected errors recursive=%v iterative=%v", n, errR, errI)
		}
		if recursive.Cmp(iterative) != 0 {
			t.Errorf("n=%d: recursive=%s iterative=%s", n, recursive, iterative)
		}
		if recursive.Sign() < 0 {
			t.Errorf("n=%d: negative result %s", n, recursive)
		}
	})
}

// FuzzFastDoublingModConsistency checks F(n) mod m against the full value.
func FuzzFastDoublingModConsistency(f *testing.F) {
	f.Add(int64(0), int64(7))
	f.Add(int64(100), int64(10000))
	f.Add(int64(1000), int64(1))
	f.Add(int64(4321), int64(1_000_000_007))

	f.Fuzz(func(t *testing.T, n, m int64) {
		if n < 0 || n > 20000 || m <= 0 {
			return
		}
		mod := big.NewInt(m)

		full, err := Fibonacci(n)
		if err != nil {
			t.Fatal(err)
		}
		got, err := FastDoublingMod(n, mod)
		if err != nil {
			t.Fatal(err)
		}
		if want := new(big.Int).Mod(full, mod); got.Cmp(want) != 0 {
			t.Errorf("F(%d) mod %d = %s, want %s", n, m, got, want)
		}
	})
}
