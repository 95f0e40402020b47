package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/algodemo/internal/abbreviation"
	"github.com/agbru/algodemo/internal/format"
	"github.com/agbru/algodemo/internal/ui"
)

// AbbreviationReport is the outcome of checking one (a, b) pair.
type AbbreviationReport struct {
	A, B     string
	Table    *abbreviation.Table
	Duration time.Duration
}

// CheckAbbreviation builds the table for a and b and times it.
func CheckAbbreviation(a, b string) AbbreviationReport {
	start := time.Now()
	table := abbreviation.NewTable(a, b)
	return AbbreviationReport{A: a, B: b, Table: table, Duration: time.Since(start)}
}

// FormatPlan renders a derivation plan, one step per line.
func FormatPlan(plan []abbreviation.Step) string {
	var sb strings.Builder
	for _, s := range plan {
		switch s.Op {
		case abbreviation.OpDelete:
			fmt.Fprintf(&sb, "  %3d  %q  %s\n", s.Index, s.Rune, s.Op)
		default:
			fmt.Fprintf(&sb, "  %3d  %q  %-10s -> b[%d]\n", s.Index, s.Rune, s.Op, s.Target)
		}
	}
	return sb.String()
}

// DisplayAbbreviation prints whether A abbreviates to B. details adds the
// derivation plan and timing, verbose the reachability table.
func DisplayAbbreviation(r AbbreviationReport, verbose, details bool, out io.Writer) {
	ok := r.Table.Possible()
	verdict := fmt.Sprintf("%syes%s", ui.ColorGreen(), ui.ColorReset())
	if !ok {
		verdict = fmt.Sprintf("%sno%s", ui.ColorRed(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Can %s%q%s become %s%q%s? %s\n",
		ui.ColorMagenta(), r.A, ui.ColorReset(), ui.ColorMagenta(), r.B, ui.ColorReset(), verdict)

	if details {
		fmt.Fprintf(out, "\n%s--- Details ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "Table size      : %s%d x %d%s\n", ui.ColorCyan(), r.Table.Rows(), r.Table.Cols(), ui.ColorReset())
		fmt.Fprintf(out, "Check time      : %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(r.Duration), ui.ColorReset())
		if plan, found := r.Table.Plan(); found {
			fmt.Fprintf(out, "Derivation      : %s%q%s\n", ui.ColorGreen(), abbreviation.Apply(r.A, plan), ui.ColorReset())
			fmt.Fprint(out, FormatPlan(plan))
		}
	}

	if verbose {
		fmt.Fprintf(out, "\n%s--- Reachability table ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprint(out, r.Table.String())
	}
}

// DisplayQuietAbbreviation prints only "true" or "false".
func DisplayQuietAbbreviation(out io.Writer, ok bool) {
	fmt.Fprintln(out, ok)
}
