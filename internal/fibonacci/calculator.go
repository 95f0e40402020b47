//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

package fibonacci

import (
	"context"
	"math/big"

	"github.com/agbru/algodemo/internal/progress"
)

// Calculator is the public interface of a Fibonacci strategy as consumed by
// the orchestration layer, the REPL, the TUI and the HTTP server.
type Calculator interface {
	// Calculate computes F(n). Progress values are sent on progressChan
	// tagged with calcIndex; progressChan may be nil.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int64) (*big.Int, error)
	// Name returns a human-readable strategy name.
	Name() string
}

// coreCalculator is implemented by each strategy. It receives an already
// validated, non-negative n.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressCallback, n int64) (*big.Int, error)
	Name() string
}

// FibCalculator adapts a coreCalculator to the Calculator interface. It owns
// argument validation and the translation of callbacks into channel updates.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps core into a Calculator.
func NewCalculator(core coreCalculator) Calculator {
	return &FibCalculator{core: core}
}

// Name returns the wrapped strategy's name.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Calculate validates n, runs the core and always reports completion (1.0)
// on success.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int64) (*big.Int, error) {
	if err := validateIndex(n); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reporter := func(v float64) {
		if progressChan == nil {
			return
		}
		// Intermediate updates are dropped rather than stalling the core.
		select {
		case progressChan <- progress.ProgressUpdate{CalculatorIndex: calcIndex, Value: v}:
		default:
		}
	}

	result, err := c.core.CalculateCore(ctx, reporter, n)
	if err != nil {
		return nil, err
	}

	if progressChan != nil {
		select {
		case progressChan <- progress.ProgressUpdate{CalculatorIndex: calcIndex, Value: 1.0}:
		case <-ctx.Done():
		}
	}
	return result, nil
}
