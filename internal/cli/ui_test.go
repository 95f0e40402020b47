package cli

import (
	"bytes"
	"io"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/algodemo/internal/progress"
)

type mockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *mockSpinner) Start() { m.mu.Lock(); m.started = true; m.mu.Unlock() }
func (m *mockSpinner) Stop()  { m.mu.Lock(); m.stopped = true; m.mu.Unlock() }
func (m *mockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	m.suffix = suffix
	m.mu.Unlock()
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()

	big200 := new(big.Int).Exp(big.NewInt(10), big.NewInt(200), nil)
	tests := []struct {
		name      string
		result    *big.Int
		verbose   bool
		details   bool
		showValue bool
		contains  []string
		excludes  []string
	}{
		{
			name:     "details only",
			result:   big.NewInt(12345),
			details:  true,
			contains: []string{"Result binary size:", "Detailed result analysis", "Calculation time", "Number of digits"},
			excludes: []string{"Calculated value"},
		},
		{
			name:      "value with separators",
			result:    big.NewInt(12345),
			showValue: true,
			contains:  []string{"Calculated value", "F(10) = 12,345"},
		},
		{
			name:      "truncated",
			result:    big200,
			showValue: true,
			contains:  []string{"(truncated)", "Tip: use -v"},
		},
		{
			name:      "verbose prints everything",
			result:    big200,
			verbose:   true,
			showValue: true,
			contains:  []string{"F(10) = 100,000,000,000"},
			excludes:  []string{"(truncated)"},
		},
		{
			name:     "scientific notation for large values",
			result:   big200,
			details:  true,
			contains: []string{"1.00000 × 10^200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayResult(tt.result, 10, time.Millisecond, tt.verbose, tt.details, tt.showValue, &buf)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestDisplayLastDigits(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	DisplayLastDigits("0075", 100, time.Millisecond, true, &buf)
	for _, want := range []string{"Last 4 digits of F(100): 0075", "Calculation time"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	rs := &realSpinner{spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if rs.s.Suffix != " test" {
		t.Errorf("suffix = %q", rs.s.Suffix)
	}
}

// Not parallel: replaces newSpinner.
func TestDisplayProgress(t *testing.T) {
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })

	mock := &mockSpinner{}
	newSpinner = func(...spinner.Option) Spinner { return mock }

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate)

	go func() {
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 1, Value: 1.0}
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 2, io.Discard)
	wg.Wait()

	mock.mu.Lock()
	defer mock.mu.Unlock()
	if !mock.started || !mock.stopped {
		t.Errorf("spinner started=%v stopped=%v, want both", mock.started, mock.stopped)
	}
	if !strings.Contains(mock.suffix, "2 strategies") || !strings.Contains(mock.suffix, "75.0%") {
		t.Errorf("final suffix = %q", mock.suffix)
	}
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{Value: 0.3}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}
