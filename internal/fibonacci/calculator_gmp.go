//go:build gmp

// GMP-backed strategy. Building it requires cgo, libgmp and
// `go build -tags=gmp`; default builds stay on math/big.

package fibonacci

import (
	"context"
	"math/big"
	"math/bits"

	"github.com/ncw/gmp"

	"github.com/agbru/algodemo/internal/progress"
)

func init() {
	RegisterCalculator("gmp", func() coreCalculator { return &GMPDoubling{} })
}

// GMPDoubling runs the iterative doubling loop on GMP integers.
type GMPDoubling struct{}

// Name returns the name of the strategy.
func (*GMPDoubling) Name() string {
	return "Fast Doubling (GMP)"
}

// gmpDoublingStep maps (F(k), F(k+1)) in (a, b) to (F(2k), F(2k+1)).
func gmpDoublingStep(a, b, t1, t2 *gmp.Int) {
	t1.MulUint32(b, 2)
	t1.Sub(t1, a)
	t1.Mul(a, t1)

	t2.Mul(a, a)
	a.Mul(b, b)
	t2.Add(t2, a)

	a.Set(t1)
	b.Set(t2)
}

// CalculateCore computes F(n) and converts the result to math/big.
func (*GMPDoubling) CalculateCore(ctx context.Context, reporter ProgressCallback, n int64) (*big.Int, error) {
	a := gmp.NewInt(0)
	b := gmp.NewInt(1)
	t1 := gmp.NewInt(0)
	t2 := gmp.NewInt(0)

	numBits := bits.Len64(uint64(n))
	totalWork := progress.CalcTotalWork(numBits)
	var lastReported, workDone float64

	for i := numBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		gmpDoublingStep(a, b, t1, t2)
		if (uint64(n)>>uint(i))&1 == 1 {
			t1.Add(a, b)
			a.Set(b)
			b.Set(t1)
		}
		workDone = progress.ReportStepProgress(reporter, &lastReported, totalWork, workDone, i, numBits)
	}
	return new(big.Int).SetBytes(a.Bytes()), nil
}
