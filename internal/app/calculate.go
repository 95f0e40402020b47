package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/algodemo/internal/cli"
	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/logging"
	"github.com/agbru/algodemo/internal/metrics"
	"github.com/agbru/algodemo/internal/orchestration"
	"github.com/agbru/algodemo/internal/ui"
)

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	presentOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		presentOut = io.Discard
	}

	var results []orchestration.CalculationResult
	footprint := metrics.NewMemoryCollector().Measure(func() {
		results = orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config.N, progressReporter, presentOut)
	})
	a.Logger.Debug("calculation finished",
		logging.Int64("n", a.Config.N),
		logging.String("algo", a.Config.Algo),
		logging.Uint64("allocated", footprint.Allocated))

	presOpts := orchestration.PresentationOptions{
		N:         a.Config.N,
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		ShowValue: a.Config.ShowValue,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, presentOut)

	best := findBestResult(results)
	if a.Config.Quiet {
		switch {
		case exitCode == apperrors.ExitSuccess:
			cli.DisplayQuietResult(out, best.Result)
		case best == nil:
			apperrors.HandleCalculationError(results[0].Err, 0, a.ErrWriter, cli.CLIColorProvider{})
		default:
			fmt.Fprintln(a.ErrWriter, "Error: strategies disagree")
		}
	} else if a.Config.Details {
		cli.DisplayMemoryStats(footprint, out)
	}

	if exitCode == apperrors.ExitSuccess && a.Config.OutputFile != "" {
		if err := a.saveResult(best); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
		}
	}
	return exitCode
}

// runLastDigits computes only the last K decimal digits of F(N) using modular
// arithmetic, requiring O(K) memory regardless of N.
func (a *Application) runLastDigits(out io.Writer) int {
	start := time.Now()
	digits, err := fibonacci.LastDigits(a.Config.N, a.Config.LastDigits)
	elapsed := time.Since(start)
	if err != nil {
		return apperrors.HandleCalculationError(err, elapsed, a.ErrWriter, cli.CLIColorProvider{})
	}

	if a.Config.Quiet {
		fmt.Fprintln(out, digits)
	} else {
		cli.DisplayLastDigits(digits, a.Config.N, elapsed, a.Config.Details, out)
	}
	return apperrors.ExitSuccess
}

// runAbbreviation answers whether -a abbreviates to -b. A negative answer
// is a result, not an error.
func (a *Application) runAbbreviation(out io.Writer) int {
	report := cli.CheckAbbreviation(a.Config.A, a.Config.B)
	a.Logger.Debug("abbreviation checked",
		logging.Int("rows", report.Table.Rows()),
		logging.Int("cols", report.Table.Cols()),
		logging.Bool("possible", report.Table.Possible()))

	if a.Config.Quiet {
		cli.DisplayQuietAbbreviation(out, report.Table.Possible())
	} else {
		cli.DisplayAbbreviation(report, a.Config.Verbose, a.Config.Details, out)
	}
	return apperrors.ExitSuccess
}

func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResult(res *orchestration.CalculationResult) error {
	cfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}
	if err := cli.WriteResultToFile(res.Result, a.Config.N, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
