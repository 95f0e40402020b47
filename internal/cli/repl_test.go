package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/algodemo/internal/fibonacci"
)

func runREPL(t *testing.T, input string) string {
	t.Helper()
	r := NewREPL(fibonacci.NewDefaultFactory(), REPLConfig{DefaultAlgo: "fast", Timeout: 10 * time.Second, Details: true})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start(context.Background())
	return out.String()
}

func TestREPL_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{"fib", "fib 10\nexit\n", []string{"F(10) = 55", "Goodbye!"}},
		{"bare number", "50\n", []string{"F(50) = 12586269025"}},
		{"negative index", "fib -1\n", []string{"Error:", "must be non-negative"}},
		{"fib without argument", "fib\n", []string{"Usage: fib <n>"}},
		{"fib with junk", "fib ten\n", []string{"Invalid value: ten"}},
		{"abbr yes", "abbr daBcd ABC\n", []string{"? yes", "Derivation"}},
		{"abbr no", "abbr dBcd ABC\n", []string{"? no"}},
		{"abbr empty target", "abbr abc\n", []string{`"abc" become ""? yes`}},
		{"abbr empty source", "abbr \"\" \"\"\n", []string{`"" become ""? yes`}},
		{"abbr empty source nonempty target", "abbr \"\" A\n", []string{`"" become "A"? no`}},
		{"abbr usage", "abbr\n", []string{"Usage: abbr <a> [b]"}},
		{"compare", "compare 30\n", []string{"Comparison Summary", "All valid results are consistent", "832,040"}},
		{"switch algorithm", "algo iterative\nlist\n", []string{"Algorithm changed to: Fast Doubling (iterative)", "► iterative"}},
		{"unknown algorithm", "algo quantum\n", []string{"Unknown algorithm: quantum"}},
		{"unknown command", "frobnicate\n", []string{"Unknown command: frobnicate"}},
		{"help", "help\n", []string{"abbr <a> [b]", "compare <n>"}},
		{"eof without newline", "fib 7", []string{"F(7) = 13", "Goodbye!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := runREPL(t, tt.input)
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestREPL_ExitStopsReading(t *testing.T) {
	t.Parallel()

	out := runREPL(t, "exit\nfib 10\n")
	if strings.Contains(out, "F(10)") {
		t.Error("commands after exit must not run")
	}
}

func TestREPL_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewREPL(fibonacci.NewDefaultFactory(), REPLConfig{Timeout: time.Second})
	var out bytes.Buffer
	r.SetInput(strings.NewReader("fib 10\n"))
	r.SetOutput(&out)
	r.Start(ctx)

	if !strings.Contains(out.String(), "Interrupted.") || strings.Contains(out.String(), "F(10)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestNewREPL_FallsBackToFirstAlgorithm(t *testing.T) {
	t.Parallel()

	factory := fibonacci.NewDefaultFactory()
	r := NewREPL(factory, REPLConfig{DefaultAlgo: "all"})
	if r.currentAlgo != factory.List()[0] {
		t.Errorf("currentAlgo = %q, want %q", r.currentAlgo, factory.List()[0])
	}
}
