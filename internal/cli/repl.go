package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/format"
	"github.com/agbru/algodemo/internal/orchestration"
	"github.com/agbru/algodemo/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the strategy used by "fib" until changed with "algo".
	DefaultAlgo string
	// Timeout bounds each command.
	Timeout time.Duration
	// Details prints the derivation plan for "abbr".
	Details bool
}

// REPL is an interactive session over both algorithms.
type REPL struct {
	config      REPLConfig
	factory     fibonacci.CalculatorFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a session reading stdin and writing stdout.
func NewREPL(factory fibonacci.CalculatorFactory, config REPLConfig) *REPL {
	currentAlgo := config.DefaultAlgo
	if _, err := factory.Get(currentAlgo); err != nil {
		if names := factory.List(); len(names) > 0 {
			currentAlgo = names[0]
		}
	}
	return &REPL{
		config:      config,
		factory:     factory,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads and executes commands until "exit", EOF, or ctx is done.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nInterrupted.")
			return
		}
		fmt.Fprint(r.out, ui.ColorGreen()+"algo> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(ctx, line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %sAlgorithm playground - interactive mode%s    %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	cmd := func(name, desc string) {
		fmt.Fprintf(r.out, "  %s%-14s%s - %s\n", ui.ColorYellow(), name, ui.ColorReset(), desc)
	}
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	cmd("fib <n>", "Calculate F(n) with the current algorithm")
	cmd("abbr <a> [b]", `Check whether a can be abbreviated to b ("" for empty)`)
	cmd("compare <n>", "Compare all algorithms for F(n)")
	cmd("algo <name>", "Change algorithm ("+strings.Join(r.factory.List(), ", ")+")")
	cmd("list", "List available algorithms")
	cmd("help", "Display this help")
	cmd("exit", "Leave interactive mode")
}

// processCommand executes one line and returns false when the session ends.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "fib", "calc", "f":
		if n, ok := r.parseIndex("fib", args); ok {
			r.calculate(ctx, n)
		}
	case "abbr", "ab":
		r.cmdAbbr(args)
	case "compare", "cmp":
		if n, ok := r.parseIndex("compare", args); ok {
			r.compare(ctx, n)
		}
	case "algo":
		r.cmdAlgo(args)
	case "list", "ls":
		r.cmdList()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if n, err := strconv.ParseInt(cmd, 10, 64); err == nil {
			r.calculate(ctx, n)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) parseIndex(name string, args []string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: %s <n>%s\n", ui.ColorRed(), name, ui.ColorReset())
		return 0, false
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return 0, false
	}
	return n, true
}

func (r *REPL) calculate(ctx context.Context, n int64) {
	calc, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Calculating F(%s%d%s) with %s%s%s...\n",
		ui.ColorMagenta(), n, ui.ColorReset(), ui.ColorCyan(), calc.Name(), ui.ColorReset())

	progressChan := make(chan fibonacci.ProgressUpdate, orchestration.ProgressBufferMultiplier)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	result, err := calc.Calculate(ctx, progressChan, 0, n)
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	value := result.String()
	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time:   %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Bits:   %s%d%s\n", ui.ColorCyan(), result.BitLen(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Digits: %s%d%s\n", ui.ColorCyan(), len(value), ui.ColorReset())
	if len(value) > TruncationLimit {
		fmt.Fprintf(r.out, "  F(%d) = %s%s...%s%s (truncated)\n",
			n, ui.ColorGreen(), value[:DisplayEdges], value[len(value)-DisplayEdges:], ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "  F(%d) = %s%s%s\n", n, ui.ColorGreen(), value, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) compare(ctx context.Context, n int64) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	calculators := orchestration.GetCalculatorsToRun(orchestration.AllAlgorithms, r.factory)
	results := orchestration.ExecuteCalculations(ctx, calculators, n, orchestration.NullProgressReporter{}, r.out)
	orchestration.AnalyzeComparisonResults(results, orchestration.PresentationOptions{N: n, ShowValue: true}, CLIResultPresenter{}, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdAbbr(args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(r.out, "%sUsage: abbr <a> [b]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	a := unquoteEmpty(args[0])
	b := ""
	if len(args) == 2 {
		b = unquoteEmpty(args[1])
	}
	DisplayAbbreviation(CheckAbbreviation(a, b), false, r.config.Details, r.out)
	fmt.Fprintln(r.out)
}

// unquoteEmpty maps the tokens "" and '' to the empty string so an empty
// operand can be typed on a whitespace-split line.
func unquoteEmpty(tok string) string {
	if tok == `""` || tok == "''" {
		return ""
	}
	return tok
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	calc, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), calc.Name(), ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		calc, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), calc.Name())
	}
	fmt.Fprintln(r.out)
}
