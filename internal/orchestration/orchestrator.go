package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/fibonacci"
)

// TracerName identifies the spans emitted by this package.
const TracerName = "github.com/agbru/algodemo/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel per calculator so slow
// displays rarely make calculators drop intermediate updates.
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs every calculator concurrently on index n and
// returns their results in input order. Each run is wrapped in a span named
// "fibonacci.calculate". Failures are recorded in the results rather than
// cancelling sibling calculations.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n int64, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	tracer := otel.Tracer(TracerName)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "fibonacci.calculate",
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(
					attribute.String("fibonacci.algorithm", calc.Name()),
					attribute.Int64("fibonacci.n", n),
				))
			defer span.End()

			start := time.Now()
			res, err := calc.Calculate(spanCtx, progressChan, i, n)
			results[i] = CalculationResult{Name: calc.Name(), Result: res, Duration: time.Since(start), Err: err}

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int("fibonacci.result_bits", res.BitLen()))
				span.SetStatus(codes.Ok, "")
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), presents the comparison table and checks that every successful
// strategy produced the same value. It returns the process exit code:
// ExitErrorMismatch when two strategies disagree.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(firstValid.Result) != 0 {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree on F(%d).\n",
				firstValid.Name, res.Name, opts.N)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
