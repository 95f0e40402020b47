package fibonacci

import (
	"context"
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/progress"
)

func init() {
	RegisterCalculator("fast", func() coreCalculator { return &RecursiveDoubling{} })
	RegisterCalculator("iterative", func() coreCalculator { return &IterativeDoubling{} })
	RegisterCalculator("naive", func() coreCalculator { return &NaiveRecurrence{} })
}

// RecursiveDoubling is the reference strategy: the doubling recursion of
// [FibPair]. The recursion is too short to be worth interrupting, so it only
// checks the context before starting.
type RecursiveDoubling struct{}

// Name returns the name of the strategy.
func (*RecursiveDoubling) Name() string {
	return "Fast Doubling (recursive)"
}

// CalculateCore computes F(n) with fibPair.
func (*RecursiveDoubling) CalculateCore(ctx context.Context, _ ProgressCallback, n int64) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fibPair(n).Fn, nil
}

// IterativeDoubling walks the bits of n from the most significant one,
// applying the same pair recurrence as [FibPair] without recursion.
type IterativeDoubling struct{}

// Name returns the name of the strategy.
func (*IterativeDoubling) Name() string {
	return "Fast Doubling (iterative)"
}

// CalculateCore computes F(n), reporting progress after every bit.
func (*IterativeDoubling) CalculateCore(ctx context.Context, reporter ProgressCallback, n int64) (*big.Int, error) {
	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	t1 := new(big.Int)
	t2 := new(big.Int)

	numBits := bits.Len64(uint64(n))
	totalWork := progress.CalcTotalWork(numBits)
	var lastReported, workDone float64

	for i := numBits - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// F(2k) = F(k) * (2*F(k+1) - F(k))
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mul(t1, fk)

		// F(2k+1) = F(k+1)² + F(k)²
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)

		fk, t1 = t1, fk
		fk1, t2 = t2, fk1

		if (uint64(n)>>uint(i))&1 == 1 {
			t1.Add(fk, fk1)
			fk, fk1, t1 = fk1, t1, fk
		}

		workDone = progress.ReportStepProgress(reporter, &lastReported, totalWork, workDone, i, numBits)
	}
	return fk, nil
}

// NaiveRecurrence applies F(k) = F(k-1) + F(k-2) n times. It is the oracle
// the fast strategies are checked against and is limited to MaxNaiveIndex.
type NaiveRecurrence struct{}

// Name returns the name of the strategy.
func (*NaiveRecurrence) Name() string {
	return "Linear Recurrence"
}

// naiveCheckInterval is how many additions run between context checks.
const naiveCheckInterval = 1024

// CalculateCore computes F(n) by repeated addition.
func (*NaiveRecurrence) CalculateCore(ctx context.Context, reporter ProgressCallback, n int64) (*big.Int, error) {
	if n > MaxNaiveIndex {
		return nil, apperrors.NewValidationError("n", "linear recurrence is limited to n <= %d, got %d", MaxNaiveIndex, n)
	}

	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(0); i < n; i++ {
		if i%naiveCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if reporter != nil && n > naiveCheckInterval {
				reporter(float64(i) / float64(n))
			}
		}
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}
