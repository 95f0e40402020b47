package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/algodemo/internal/progress"
)

// CalculationResult is the outcome of one strategy computing F(n).
type CalculationResult struct {
	// Name is the display name of the strategy.
	Name string
	// Result is nil when Err is set.
	Result   *big.Int
	Duration time.Duration
	Err      error
}

// PresentationOptions configures how a single result is shown.
type PresentationOptions struct {
	N         int64
	Verbose   bool
	Details   bool
	ShowValue bool
}

// ProgressReporter displays progress updates while calculations run.
// DisplayProgress runs in its own goroutine, consumes progressChan until it
// is closed, and calls wg.Done before returning.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the channel without output. Used in quiet mode
// and by the HTTP server.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders comparison tables and final results.
type ResultPresenter interface {
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
	HandleError(err error, duration time.Duration, out io.Writer) int
}
