package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/format"
	"github.com/agbru/algodemo/internal/ui"
)

// DisplayResult prints a Fibonacci result. details adds sizes and timing,
// showValue prints the value itself, truncated unless verbose.
func DisplayResult(result *big.Int, n int64, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "Result binary size: %s%s%s bits.\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(result.BitLen())), ui.ColorReset())

	if details {
		digits := len(result.String())
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "Calculation time        : %s%s%s\n",
			ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "Number of digits        : %s%s%s\n",
			ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(digits)), ui.ColorReset())
		fmt.Fprintf(out, "Estimated digits        : %s%s%s\n",
			ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(fibonacci.EstimateDigits(n))), ui.ColorReset())
		if digits > 6 {
			fmt.Fprintf(out, "Scientific notation     : %s%s%s\n",
				ui.ColorCyan(), scientific(result), ui.ColorReset())
		}
	}

	if !showValue {
		return
	}

	value := result.String()
	fmt.Fprintf(out, "\n%s--- Calculated value ---%s\n", ui.ColorBold(), ui.ColorReset())
	if verbose || len(value) <= TruncationLimit {
		fmt.Fprintf(out, "F(%d) = %s%s%s\n", n, ui.ColorGreen(), format.FormatNumberString(value), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "F(%d) = %s%s...%s%s (truncated)\n",
		n, ui.ColorGreen(), value[:DisplayEdges], value[len(value)-DisplayEdges:], ui.ColorReset())
	fmt.Fprintf(out, "Tip: use %s-v%s to print the full value.\n", ui.ColorYellow(), ui.ColorReset())
}

// scientific renders a positive integer as d.dddd x 10^e.
func scientific(x *big.Int) string {
	s := x.String()
	mantissa := s[:1]
	if len(s) > 1 {
		mantissa += "." + s[1:min(len(s), 6)]
	}
	return fmt.Sprintf("%s × 10^%d", mantissa, len(s)-1)
}

// DisplayLastDigits prints the result of -last-digits.
func DisplayLastDigits(digits string, n int64, duration time.Duration, details bool, out io.Writer) {
	fmt.Fprintf(out, "Last %s%d%s digits of F(%d): %s%s%s\n",
		ui.ColorCyan(), len(digits), ui.ColorReset(), n, ui.ColorGreen(), digits, ui.ColorReset())
	if details {
		fmt.Fprintf(out, "Calculation time: %s%s%s\n",
			ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	}
}
