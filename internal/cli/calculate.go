package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/algodemo/internal/config"
	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/ui"
)

// PrintExecutionConfig prints the target index, timeout and environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(%d)%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.N, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if cfg.N >= 0 {
		fmt.Fprintf(out, "Expected size: ~%s%d%s bits, ~%s%d%s digits.\n",
			ui.ColorCyan(), fibonacci.EstimateBitLength(cfg.N), ui.ColorReset(),
			ui.ColorCyan(), fibonacci.EstimateDigits(cfg.N), ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode announces a single run or a comparison.
func PrintExecutionMode(calculators []fibonacci.Calculator, out io.Writer) {
	modeDesc := "Parallel comparison of all algorithms"
	if len(calculators) == 1 {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
